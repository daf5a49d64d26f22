package validators

// IsE164 reports whether the number looks like E.164: a leading + and 8 to
// 15 digits. Twilio numbers are always stored in this form.
func IsE164(number string) bool {
	if len(number) < 9 || len(number) > 16 {
		return false
	}
	if number[0] != '+' {
		return false
	}
	for _, r := range number[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
