package transform

import "strings"

// CleanCPF strips everything but digits: "123.456.789-01" -> "12345678901".
func CleanCPF(s string) string {
	return digits(s)
}

// FormatCPF renders an 11-digit CPF for display. Anything else is
// returned unchanged.
func FormatCPF(s string) string {
	d := digits(s)
	if len(d) != 11 {
		return s
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// CleanPhone strips formatting from a phone number.
func CleanPhone(s string) string {
	return digits(s)
}

// FormatPhone renders a 10 or 11 digit Brazilian phone with area code.
func FormatPhone(s string) string {
	d := digits(s)
	switch len(d) {
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	default:
		return s
	}
}

// CleanCEP strips formatting from a CEP: "01310-100" -> "01310100".
func CleanCEP(s string) string {
	return digits(s)
}

func digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
