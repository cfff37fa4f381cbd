package directory

// ValidPhone reports whether the value is a valid phone number: one or
// more decimal digits, nothing else. No separators, spaces, or leading +
// are accepted; internationalization is deliberately out of scope.
func ValidPhone(phone string) bool {
	if phone == "" {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
