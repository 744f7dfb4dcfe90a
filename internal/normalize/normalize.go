// Package normalize holds the total string and number helpers applied to
// report cells. None of them fail: malformed input degrades to a default or
// is passed through unchanged.
package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

const (
	fullwidthSpace = "　"
	halfwidthSpace = " "

	// DefaultMinExitFee is the floor applied to the move-out procedure fee.
	DefaultMinExitFee = 70000

	outputDateLayout = "2006/01/02"
)

var (
	hyphenReplacer = strings.NewReplacer(
		"－", "-", // full-width hyphen-minus
		"ー", "-", // prolonged sound mark, commonly typed in place of a hyphen
		"‐", "-",
		"‑", "-",
		"−", "-",
		"―", "-",
		"—", "-",
	)
	parenReplacer = strings.NewReplacer("（", "(", "）", ")")

	slashedDate = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}`)
	dashedDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

	// Month and day accept one or two digits, as the source systems pad inconsistently.
	inputDateLayouts = []string{
		"2006-1-2",
		"2006年1月2日",
		"2006.1.2",
		"2006/1/2",
		"20060102",
	}
)

// RemoveFullwidthSpace strips every ideographic (full-width) space.
func RemoveFullwidthSpace(s string) string {
	return strings.ReplaceAll(s, fullwidthSpace, "")
}

// RemoveHalfwidthSpace strips every ASCII space.
func RemoveHalfwidthSpace(s string) string {
	return strings.ReplaceAll(s, halfwidthSpace, "")
}

// RemoveAllSpaces strips both full-width and ASCII spaces.
func RemoveAllSpaces(s string) string {
	return RemoveHalfwidthSpace(RemoveFullwidthSpace(s))
}

// CanonicalWidth applies NFKC, folding half-width katakana to full-width and
// full-width ASCII to plain ASCII.
func CanonicalWidth(s string) string {
	if s == "" {
		return s
	}
	return norm.NFKC.String(s)
}

// AddLeadingZero prefixes "0". Empty input stays empty.
func AddLeadingZero(s string) string {
	if s == "" {
		return s
	}
	return "0" + s
}

// Phone canonicalises a telephone number to ASCII digits, '-', '(' and ')'.
// Phone(Phone(x)) == Phone(x).
func Phone(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = hyphenReplacer.Replace(s)
	s = parenReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' || r == '(' || r == ')' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDate renders a date as YYYY/MM/DD. Values already starting with
// that shape, and values in no known layout, are returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	if slashedDate.MatchString(s) {
		return s
	}
	if t, ok := ParseDate(s); ok {
		return t.Format(outputDateLayout)
	}
	return s
}

// ParseDate tries every accepted input layout in turn.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range inputDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateJapanese renders YYYY/MM/DD or YYYY-MM-DD as "YYYY年M月D日"
// without zero padding. Anything else passes through.
func FormatDateJapanese(s string) string {
	if s == "" {
		return ""
	}
	var layout string
	switch {
	case slashedDate.MatchString(s):
		layout = "2006/01/02"
	case dashedDate.MatchString(s):
		layout = "2006-01-02"
	default:
		return s
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}

// SafeInt parses a possibly comma-grouped number and truncates it toward
// zero. Empty, unparseable or out-of-range input yields 0.
func SafeInt(s string) int {
	s = strings.TrimSpace(norm.NFKC.String(s))
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt || f < math.MinInt {
		return 0
	}
	return int(math.Trunc(f))
}

// SafeString trims whitespace and collapses the textual null markers
// "nan", "none" and "null" (any case) to "".
func SafeString(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan", "none", "null":
		return ""
	}
	return s
}

// RoomNumber drops a spurious decimal part from numeric room numbers
// ("101.0" -> "101"). Non-numeric values pass through trimmed.
func RoomNumber(s string) string {
	s = SafeString(s)
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	return strconv.Itoa(int(math.Trunc(f)))
}

// Amount renders a monetary cell as plain decimal text. Empty stays empty.
func Amount(s string) string {
	if SafeString(s) == "" {
		return ""
	}
	return strconv.Itoa(SafeInt(s))
}

// ExitFee sums rent, management, parking and other fees and applies floor
// as the minimum.
func ExitFee(floor int, rent, management, parking, other string) string {
	total := SafeInt(rent) + SafeInt(management) + SafeInt(parking) + SafeInt(other)
	return strconv.Itoa(max(total, floor))
}

// TakeoverInfo builds the advisory note carried over with every contract.
func TakeoverInfo(moveInDate string) string {
	return "●20日～25日頃に督促手数料2,750円or2,970円が加算されることあり。案内注意！！　●入居日：" + FormatDate(moveInDate)
}

// Today formats now as YYYY/MM/DD.
func Today(now time.Time) string {
	return now.Format(outputDateLayout)
}
