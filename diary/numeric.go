package diary

import (
	"strconv"
	"strings"

	"github.com/justyn/myfitnesspal"
)

// ParseNumeric extracts a whole number from decorated cell text such as
// "1,234 kcal" or "27g". Every character other than an ASCII digit or a
// period is dropped, in order, and the remainder must read as a whole
// number. Text with no digits is EMALFORMED, never zero.
func ParseNumeric(text string) (int, error) {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	whole, frac, hasPoint := strings.Cut(digits, ".")
	if whole == "" && frac == "" {
		return 0, myfitnesspal.Errorf(myfitnesspal.EMALFORMED, "no digits in %q", text)
	}
	if hasPoint && (frac == "" || strings.Contains(frac, ".")) {
		return 0, myfitnesspal.Errorf(myfitnesspal.EMALFORMED, "malformed number %q in %q", digits, text)
	}
	if strings.Trim(frac, "0") != "" {
		return 0, myfitnesspal.Errorf(myfitnesspal.EMALFORMED, "%q is not a whole number", digits)
	}
	if whole == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(whole)
	if err != nil {
		return 0, myfitnesspal.Errorf(myfitnesspal.EMALFORMED, "number %q out of range", digits)
	}
	return n, nil
}
