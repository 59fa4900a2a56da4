package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe slug from a French title: accents stripped,
// lowercased, anything non-alphanumeric collapsed into single dashes.
func Slugify(title string) string {
	flat, _, err := transform.String(deaccenter, title)
	if err != nil {
		flat = title
	}

	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(flat) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}
