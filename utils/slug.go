package utils

import "strings"

// Slugify derives the stable URL identifier for a category name: lowercase,
// "&" becomes "and", runs of anything non-alphanumeric collapse to a single
// "-", leading and trailing "-" trimmed.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "&", "and")

	var b strings.Builder
	lastHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
