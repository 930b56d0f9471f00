package core

// utoa converts an unsigned integer to a string without using the fmt
// package. Status text is rendered on the firmware side where fmt is
// too heavy.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1
	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// FormatFrequency renders a frequency for constrained displays: whole
// kilohertz values shorten to "N kHz", everything else stays in hertz.
func FormatFrequency(freqHz uint32) string {
	if freqHz >= 1000 && freqHz%1000 == 0 {
		return utoa(freqHz/1000) + " kHz"
	}
	return utoa(freqHz) + " Hz"
}
