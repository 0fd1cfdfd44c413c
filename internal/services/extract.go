package services

import "strings"

// ExtractJSONObject returns the text between the first '{' and the last '}'
// after it, inclusive. It does not balance braces: stray braces in the prose
// around the object widen the match.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", false
	}

	end := strings.LastIndex(text, "}")
	if end < start {
		return "", false
	}

	return text[start : end+1], true
}
