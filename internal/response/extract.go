// File path: internal/response/extract.go
package response

// ExtractObject locates the first balanced top-level brace-delimited
// substring in free text. Generation output routinely wraps its JSON in
// prose or markdown fences, so extraction is a separate, independently
// tested step with exactly this contract: from the first '{' to its
// matching '}', honoring string literals and escapes.
func ExtractObject(raw string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if start >= 0 && inString {
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
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return "", false
}
