package homes

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseAmenities splits comma-separated input into trimmed, non-empty entries.
// Order is preserved and duplicates are kept.
func ParseAmenities(input string) []string {
	out := []string{}
	for _, part := range strings.Split(input, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ParseCount reads a base-10 integer from the start of the input the way a
// lenient form field does: leading whitespace and a sign are allowed and
// parsing stops at the first non-digit. Anything unparseable yields 0, as
// does a negative result. Values too large for an int saturate at math.MaxInt.
func ParseCount(input string) int {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}
