package utils

import (
	"strconv"
	"strings"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders n in binary units (1 KB = 1024 B) with at most two
// decimal places and trailing zeros trimmed, e.g. "1.5 KB", "931.51 GB".
// Units stop at TB.
func FormatBytes(n int64) string {
	if n < 0 {
		return "-" + FormatBytes(-n)
	}
	v := float64(n)
	i := 0
	for i < len(byteUnits)-1 && v >= 1024 {
		v /= 1024
		i++
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + " " + byteUnits[i]
}
