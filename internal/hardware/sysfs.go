package hardware

import (
	"os"
	"strconv"
	"strings"
)

// readString returns the trimmed contents of a sysfs attribute, or "".
func readString(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// readInt parses a sysfs attribute as a decimal integer. ok is false when
// the file is missing or malformed.
func readInt(path string) (n int64, ok bool) {
	s := readString(path)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
