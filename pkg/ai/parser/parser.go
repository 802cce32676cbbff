// Package parser recovers JSON payloads from LLM responses. Models are asked
// to return bare JSON but occasionally wrap it in prose or markdown fences;
// this package tolerates that wrapping without ever accepting malformed JSON
// as success.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnparsable marks a response whose JSON payload could not be recovered.
// Callers match it with errors.Is and surface a fixed parse-failure message
// distinct from transport errors.
var ErrUnparsable = errors.New("unparsable llm response")

// ParseArray extracts and decodes a JSON array embedded in raw. v must be a
// pointer to a slice type.
func ParseArray(raw string, v interface{}) error {
	return parse(raw, '[', ']', v)
}

// ParseObject extracts and decodes a JSON object embedded in raw. v must be
// a pointer to a struct or map.
func ParseObject(raw string, v interface{}) error {
	return parse(raw, '{', '}', v)
}

// parse takes the greedy outermost span (first open to last close) and
// decodes it; if no span exists, the whole text is tried verbatim. Any decode
// failure is terminal: no partial recovery, no guessed defaults.
func parse(raw string, open, close byte, v interface{}) error {
	candidate := raw
	if span, ok := extractSpan(raw, open, close); ok {
		candidate = span
	}

	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	return nil
}

func extractSpan(raw string, open, close byte) (string, bool) {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, close)
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}
