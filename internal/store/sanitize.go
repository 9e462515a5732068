package store

import "strings"

// missingDateTokens are the markers historical exports wrote for an absent
// due date. All of them collapse to the empty string on load, never to a
// sentinel that could be misread as a real date.
var missingDateTokens = map[string]struct{}{
	"nan":  {},
	"none": {},
	"nat":  {},
	"<na>": {},
	"null": {},
}

// SanitizeDate normalizes a stored due-date token. Tokens marking a missing
// date become ""; real values pass through trimmed.
func SanitizeDate(s string) string {
	t := strings.TrimSpace(s)
	if _, missing := missingDateTokens[strings.ToLower(t)]; missing {
		return ""
	}
	return t
}
