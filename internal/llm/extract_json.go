package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON locates the first balanced top-level JSON object inside
// free-form model output and returns it. Models often wrap the object in
// prose or markdown fences, so the scan starts at the first '{' and
// tracks brace depth while honoring string literals and escape
// sequences. Braces inside strings do not count toward the balance.
func ExtractJSON(s string) (json.RawMessage, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return nil, fmt.Errorf("%w: no opening brace", ErrParse)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := s[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return nil, fmt.Errorf("%w: brace group is not valid JSON", ErrParse)
				}
				return json.RawMessage(candidate), nil
			}
		}
	}

	return nil, fmt.Errorf("%w: unbalanced braces", ErrParse)
}
