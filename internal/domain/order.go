package domain

import "regexp"

// orderIDPattern matches the first run of 4 or more digits bounded by
// non-digit word boundaries.
var orderIDPattern = regexp.MustCompile(`\b\d{4,}\b`)

// ExtractOrderID pulls a candidate order identifier out of free text.
// Only the first match is used; later numeric runs are ignored. This is a
// best-effort heuristic, not a validated lookup: a postal code can match.
func ExtractOrderID(text string) (string, bool) {
	m := orderIDPattern.FindString(text)
	return m, m != ""
}

// HasOrderID reports whether the text contains a candidate order identifier.
func HasOrderID(text string) bool {
	return orderIDPattern.MatchString(text)
}
