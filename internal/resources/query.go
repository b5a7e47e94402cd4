// Package resources turns a nameplate analysis into a search query and the
// resulting web hits into a categorized reference block. Everything here is
// best-effort: a failed or empty search degrades to a missing category, and
// an analysis without usable identifiers yields no query at all.
package resources

import (
	"regexp"
	"strings"
)

// Ordered alternatives for model-labeled lines; the first capture wins.
var modelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^[\s\-•*]*model\s*(?:number|no\.?|#)\s*[:\-]\s*([A-Za-z0-9][A-Za-z0-9/\-]*)`),
	regexp.MustCompile(`(?im)^[\s\-•*]*model\s*[:\-]\s*([A-Za-z0-9][A-Za-z0-9/\-]*)`),
	regexp.MustCompile(`(?im)\bmodel\s*(?:number|no\.?|#)?\s*[:\-]\s*([A-Za-z0-9][A-Za-z0-9/\-]*)`),
}

// Ordered alternatives for manufacturer-labeled lines.
var manufacturerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^[\s\-•*]*manufacturer\s*[:\-]\s*([A-Za-z][A-Za-z0-9 &\-]*)`),
	regexp.MustCompile(`(?im)^[\s\-•*]*(?:brand|make)\s*[:\-]\s*([A-Za-z][A-Za-z0-9 &\-]*)`),
	// Inline labels capture a single token; only line-anchored labels may
	// claim a multiword name.
	regexp.MustCompile(`(?im)\b(?:manufacturer|brand|make)\s*[:\-]\s*([A-Za-z][A-Za-z0-9&\-]*)`),
}

// ExtractQuery derives a "{manufacturer} {model}" search query from analysis
// text. If only one half is found it is returned alone; if neither is found
// the result is empty and augmentation must be skipped.
func ExtractQuery(analysis string) string {
	manufacturer := firstMatch(manufacturerPatterns, analysis)
	model := firstMatch(modelPatterns, analysis)

	switch {
	case manufacturer != "" && model != "":
		return manufacturer + " " + model
	case manufacturer != "":
		return manufacturer
	default:
		return model
	}
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
