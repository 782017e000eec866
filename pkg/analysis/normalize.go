package analysis

import (
	"encoding/json"
	"strings"
)

// Normalize converts a raw LLM response into a Result. It never fails: the
// models frequently wrap the requested JSON in commentary, so parsing is
// attempted in order of decreasing trust and the schema fallback covers
// everything else.
//
// Fields of a successfully parsed object are taken at face value, even when
// they fall outside the known enumerations. This matches the behavior the
// digest consumers were built against; validation helpers exist in schema.go
// for callers that want to check.
func Normalize(raw string) Result {
	// First try: the whole response is the JSON object we asked for.
	if result, ok := parseObject(raw); ok {
		return result
	}

	// Second try: the object is embedded in surrounding prose. Take the
	// smallest span from the first '{' to the next '}'. This does not
	// survive nested braces; in practice the requested schema is flat.
	if fragment, ok := extractObject(raw); ok {
		if result, ok := parseObject(fragment); ok {
			return result
		}
	}

	return Fallback
}

// parseObject parses s as a single JSON object in the Result shape.
func parseObject(s string) (Result, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") {
		return Result{}, false
	}

	var result Result
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return Result{}, false
	}

	return result, true
}

// extractObject returns the first brace-delimited span of s, if any.
func extractObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start == -1 {
		return "", false
	}

	end := strings.Index(s[start:], "}")
	if end == -1 {
		return "", false
	}

	return s[start : start+end+1], true
}
