package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value; a non-nil error rejects it.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object found in raw model output into T.
// Markdown fences, chatter around the object, comments, trailing commas and
// bare leading decimals (".8") are tolerated.
func ExtractJSON[T any](raw string, validate SchemaValidator[T]) (T, error) {
	var zero T

	obj := firstObject(unfence(raw))
	if obj == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var out T
	if err := json.Unmarshal([]byte(repair(obj)), &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validate != nil {
		if err := validate(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

// unfence drops markdown fence lines, keeping their contents.
func unfence(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// scanJSON walks s and calls visit for every byte outside string literals.
// visit returns how many extra bytes to skip; string bytes go to emit as-is.
func scanJSON(s string, visit func(i int) (skip int, stop bool), emit func(c byte)) {
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			emit(c)
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
		if c == '"' {
			inString = true
			emit(c)
			continue
		}
		skip, stop := visit(i)
		if stop {
			return
		}
		i += skip
	}
}

// firstObject returns the first balanced {...} block.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth, end := 0, -1
	scanJSON(s[start:], func(i int) (int, bool) {
		switch s[start+i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = start + i
				return 0, true
			}
		}
		return 0, false
	}, func(byte) {})
	if end < 0 {
		return ""
	}
	return s[start : end+1]
}

// repair strips comments and trailing commas and fixes leading-dot numbers
// outside string literals.
func repair(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	scanJSON(s, func(i int) (int, bool) {
		c := s[i]
		switch {
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			end := strings.IndexByte(s[i:], '\n')
			if end < 0 {
				return len(s) - i - 1, false
			}
			return end - 1, false
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return len(s) - i - 1, false
			}
			return end + 3, false
		case c == ',' && closesNext(s, i+1):
			return 0, false
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(prevNonSpace(s, i-1)):
			b.WriteByte('0')
		}
		b.WriteByte(c)
		return 0, false
	}, func(c byte) { b.WriteByte(c) })
	return b.String()
}

// closesNext reports whether the next non-space byte closes an object or array.
func closesNext(s string, i int) bool {
	for ; i < len(s); i++ {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return false
}

func prevNonSpace(s string, i int) byte {
	for ; i >= 0; i-- {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
			continue
		}
		return s[i]
	}
	return 0
}

func startsNumber(prev byte) bool {
	switch prev {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
