// Package tolerant decodes JSON objects out of untrusted LLM text output.
// LLM responses are never strict-parsed directly: wrapping every call
// through Decode keeps a markdown-fenced or slightly malformed response
// from failing a meeting extraction outright.
package tolerant

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// DecodeError wraps a decode failure. The raw text is retained by the
// caller for truncated logging, never surfaced to the user verbatim.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tolerant decode failed: %s", e.Reason)
}

var fencePattern = regexp.MustCompile("```(?:json)?")

var trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)

// Decode implements the five-step tolerant extraction algorithm:
//  1. strip every fenced code-block wrapper (``` or ```json)
//  2. attempt a direct strict parse
//  3. else take the substring from the first '{' to the last '}'
//  4. strip trailing commas immediately before '}' or ']'
//  5. attempt a strict parse of the cleaned candidate
func Decode(raw string) (map[string]interface{}, error) {
	text := strings.TrimSpace(raw)
	text = stripFences(text)

	var direct map[string]interface{}
	if err := json.Unmarshal([]byte(text), &direct); err == nil {
		return direct, nil
	}

	candidate, err := extractBraces(text)
	if err != nil {
		return nil, err
	}

	cleaned := trailingCommaPattern.ReplaceAllString(candidate, "$1")

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &DecodeError{Reason: err.Error()}
	}
	return result, nil
}

// stripFences removes every ``` / ```json fence marker, keeping the text
// between them. A response with no fences passes through unchanged.
func stripFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

// extractBraces locates the first '{' and last '}' in text and returns the
// inclusive substring between them.
func extractBraces(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", &DecodeError{Reason: "no balanced braces found in response"}
	}
	return text[start : end+1], nil
}
