package genai

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ExtractionError signals that no decodable JSON value could be recovered
// from a model response. It carries the raw response text so endpoints
// without a safe fallback can attach it to their error reply.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	return "failed to extract JSON from model response: " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON recovers the first JSON value embedded in free text and
// decodes it into out. A fenced code block (optionally tagged json) is
// preferred; otherwise the text is scanned for the first balanced
// brace/bracket span. Malformed JSON is reported as *ExtractionError,
// never propagated as a decode panic or a bare unmarshal error.
func ExtractJSON(text string, out interface{}) error {
	candidate, ok := jsonCandidate(text)
	if !ok {
		return &ExtractionError{Raw: text, Err: errors.New("no JSON value found in response")}
	}
	if err := json.Unmarshal([]byte(candidate), out); err != nil {
		return &ExtractionError{Raw: text, Err: err}
	}
	return nil
}

// jsonCandidate returns the most plausible JSON substring of text.
func jsonCandidate(text string) (string, bool) {
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		inner := strings.TrimSpace(m[1])
		if span, ok := balancedSpan(inner); ok {
			return span, true
		}
		if inner != "" {
			return inner, true
		}
	}
	return balancedSpan(text)
}

// balancedSpan scans for the first complete brace- or bracket-delimited
// span, tracking nesting depth and string state rather than matching the
// first opening to the last closing character. This avoids false captures
// when the model emits commentary containing braces after the JSON value.
func balancedSpan(text string) (string, bool) {
	for start := 0; start < len(text); start++ {
		open := text[start]
		if open != '{' && open != '[' {
			continue
		}
		if end, ok := scanBalanced(text, start); ok {
			return text[start : end+1], true
		}
		// An opener that never closes cannot contain a later complete
		// value either; stop scanning.
		break
	}
	return "", false
}

func scanBalanced(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
