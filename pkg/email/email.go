package email

import (
	"strings"
	"unicode"
)

// LocalPart returns the part of the address before '@', or the whole string
// when there is no '@'. Signup uses it as the default username.
func LocalPart(email string) string {
	if at := strings.IndexByte(email, '@'); at >= 0 {
		return email[:at]
	}
	return email
}

// DeriveNameFromEmail splits the local part on common separators and returns a
// capitalised first and last name. Missing parts fall back to "User".
func DeriveNameFromEmail(email string) (string, string) {
	parts := strings.FieldsFunc(LocalPart(email), func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

// DisplayName joins the derived first and last name.
func DisplayName(email string) string {
	first, last := DeriveNameFromEmail(email)
	return first + " " + last
}

// Normalize lowercases and trims an address for identity derivation.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
