package analyzer

import (
	"encoding/json"
	"strings"
)

// extractJSONObject pulls a JSON object out of free-form model output.
// It takes the span from the first '{' to the last '}' when both
// exist, otherwise it parses the whole string.
//
// Three outcomes: (m, nil) when the text holds a JSON object;
// (nil, nil) when it holds valid JSON that is not an object (a bare
// array or scalar); (nil, err) when nothing parses.
func extractJSONObject(content string) (map[string]any, error) {
	candidate := content

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end != -1 && start < end {
		candidate = content[start : end+1]
	}

	var value any
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return nil, err
	}

	if m, ok := value.(map[string]any); ok {
		return m, nil
	}
	return nil, nil
}
