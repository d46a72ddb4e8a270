// Package taxid converts between VAT numbers and bare national
// identifiers (EIK in Bulgaria). Both transforms are pure, and
// StripPrefix followed by WithPrefix yields the canonical VAT form.
package taxid

import "strings"

// StripPrefix removes a leading two-letter country prefix and every
// non-digit character, leaving the bare national ID.
// "BG123456789" -> "123456789".
func StripPrefix(vatNumber string) string {
	s := strings.TrimSpace(vatNumber)
	if len(s) >= 2 && isLetter(s[0]) && isLetter(s[1]) {
		s = s[2:]
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// WithPrefix prefixes a bare national ID with a country code, producing
// the canonical VAT number. Applying it to an already prefixed value is
// safe: the old prefix is stripped first.
func WithPrefix(id, countryCode string) string {
	bare := StripPrefix(id)
	if bare == "" {
		return ""
	}
	return strings.ToUpper(countryCode) + bare
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
