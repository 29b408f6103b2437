package claude

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// transcriptEntry is the top-level structure of a transcript JSONL line.
// Only the fields needed for token accounting are decoded.
type transcriptEntry struct {
	Type    string          `json:"type"`
	Message json.RawMessage `json:"message"`
}

// assistantMessage carries the usage block of an assistant-role message.
type assistantMessage struct {
	Usage messageUsage `json:"usage"`
}

// messageUsage mirrors the per-message token counts Claude Code records.
type messageUsage struct {
	InputTokens              int64 `json:"input_tokens"`
	OutputTokens             int64 `json:"output_tokens"`
	CacheReadInputTokens     int64 `json:"cache_read_input_tokens"`
	CacheCreationInputTokens int64 `json:"cache_creation_input_tokens"`
}

// ParseSessionTokens sums per-message token usage across a single session
// transcript. An empty path, a missing file, or an unreadable file all
// return the zero value; a line that fails to parse is skipped and scanning
// continues. Only assistant records contribute to the sums.
func ParseSessionTokens(path string) SessionTokens {
	var sum SessionTokens
	if path == "" {
		return sum
	}

	f, err := os.Open(path)
	if err != nil {
		return sum
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Increase buffer for long JSONL lines (up to 10MB).
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		var entry transcriptEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		if entry.Type != "assistant" || entry.Message == nil {
			continue
		}

		var msg assistantMessage
		if err := json.Unmarshal(entry.Message, &msg); err != nil {
			continue
		}

		sum.Input += msg.Usage.InputTokens
		sum.Output += msg.Usage.OutputTokens
		sum.CacheRead += msg.Usage.CacheReadInputTokens
		sum.CacheCreate += msg.Usage.CacheCreationInputTokens
	}

	sum.Total = sum.Input + sum.Output
	return sum
}

// LiveTranscripts returns the paths of session transcripts under
// claudeHome/projects/ whose modification time is at or after cutoff.
// Used by the watcher to find sessions still accumulating tokens today.
func LiveTranscripts(claudeHome string, cutoff time.Time) []string {
	projectsDir := filepath.Join(claudeHome, "projects")
	projectDirs, err := os.ReadDir(projectsDir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, projEntry := range projectDirs {
		if !projEntry.IsDir() {
			continue
		}
		dirPath := filepath.Join(projectsDir, projEntry.Name())

		files, err := os.ReadDir(dirPath)
		if err != nil {
			continue
		}

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".jsonl") {
				continue
			}
			info, err := f.Info()
			if err != nil || info.ModTime().Before(cutoff) {
				continue
			}
			paths = append(paths, filepath.Join(dirPath, f.Name()))
		}
	}

	return paths
}
