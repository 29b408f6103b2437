package claude

import (
	"encoding/json"
	"io"
)

// ReadHookPayload reads a single JSON object from r (normally the stdin
// pipe of a hook or status line invocation). An empty pipe, a read error,
// or malformed JSON all return the zero payload: absence of hook data is a
// normal condition, not an error.
func ReadHookPayload(r io.Reader) HookPayload {
	var payload HookPayload

	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return HookPayload{}
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return HookPayload{}
	}
	return payload
}
