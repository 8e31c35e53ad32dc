package resume

import (
	"regexp"
	"strings"
)

var (
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// NormalizePhone strips every non-digit character and keeps the last 10
// digits. Returns "" when fewer than 10 digits survive; such numbers are
// too short to compare reliably and are excluded from matching.
func NormalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) < 10 {
		return ""
	}
	return digits[len(digits)-10:]
}

// NormalizeName lowercases, trims, and collapses inner whitespace runs to
// single spaces.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	return whitespaceRegex.ReplaceAllString(name, " ")
}

// Fingerprint derives the duplicate-lookup key for a candidate from its
// identifying fields. Present fields are normalized and joined as
// "key:value" pairs with "|", in the fixed order email, phone, name, so
// equivalent inputs always produce the same string. A phone with fewer
// than 10 digits is omitted entirely.
func Fingerprint(email, phone, name string) string {
	var parts []string

	if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
		parts = append(parts, "email:"+e)
	}
	if p := NormalizePhone(phone); p != "" {
		parts = append(parts, "phone:"+p)
	}
	if n := NormalizeName(name); n != "" {
		parts = append(parts, "name:"+n)
	}

	return strings.Join(parts, "|")
}
