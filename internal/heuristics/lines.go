package heuristics

import "strings"

// bulletCutset covers the list markers models emit: numbering, dashes,
// bullets, asterisks.
const bulletCutset = "1234567890.-•* \t"

// Lines splits raw model output into lines. No trimming is applied so
// callers decide how much cleanup each extraction needs.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

// StripBullet removes leading list markers and surrounding whitespace.
func StripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), bulletCutset))
}

// IsEnumerated reports whether a trimmed line starts with a numbered or
// bulleted list marker.
func IsEnumerated(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '-', '*':
		return true
	}
	if strings.HasPrefix(trimmed, "•") {
		return true
	}
	if trimmed[0] >= '0' && trimmed[0] <= '9' {
		rest := strings.TrimLeft(trimmed, "0123456789")
		return strings.HasPrefix(rest, ".")
	}
	return false
}

// ContainsDigit reports whether the line carries at least one numeral.
func ContainsDigit(line string) bool {
	return strings.ContainsAny(line, "0123456789")
}
