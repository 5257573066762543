package format

import "fmt"

const factor = 1024

var scales = [...]string{"", "K", "M", "G", "T", "P"}

// Bytes scales a byte count to its binary-prefixed form with two
// decimals, e.g. 1253656 => "1.20MB", 1253656678 => "1.17GB".
// Past the last scale the numeric part may exceed 1024.
func Bytes(n uint64, suffix string) string {
	v := float64(n)
	for _, scale := range scales[:len(scales)-1] {
		if v < factor {
			return fmt.Sprintf("%.2f%s%s", v, scale, suffix)
		}
		v /= factor
	}
	return fmt.Sprintf("%.2f%s%s", v, scales[len(scales)-1], suffix)
}

// Size formats n with the default "B" suffix.
func Size(n uint64) string { return Bytes(n, "B") }
