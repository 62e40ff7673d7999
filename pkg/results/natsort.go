package results

import "strings"

// NaturalLess orders strings with embedded unsigned integers compared
// numerically, so "run2" sorts before "run10".
func NaturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		aChunk, aDigits := chunk(a)
		bChunk, bDigits := chunk(b)

		if aDigits && bDigits {
			aNum := strings.TrimLeft(aChunk, "0")
			bNum := strings.TrimLeft(bChunk, "0")
			if len(aNum) != len(bNum) {
				return len(aNum) < len(bNum)
			}
			if aNum != bNum {
				return aNum < bNum
			}
		} else if aChunk != bChunk {
			return aChunk < bChunk
		}

		a = a[len(aChunk):]
		b = b[len(bChunk):]
	}
	return len(a) < len(b)
}

// chunk splits off the leading run of digits or non-digits.
func chunk(s string) (string, bool) {
	digits := isDigit(s[0])
	for i := 1; i < len(s); i++ {
		if isDigit(s[i]) != digits {
			return s[:i], digits
		}
	}
	return s, digits
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
