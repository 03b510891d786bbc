// Package dates converts the date strings exchanged with the accounting
// backends into canonical calendar dates.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const ISOLayout = "2006-01-02"

var mesesEs = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

var esDatePattern = regexp.MustCompile(`^(\d{1,2}) de (\p{L}+)$`)

var whitespace = regexp.MustCompile(`\s+`)

// ToISOFromEs converts a "DD de Mes" string such as "15 de enero" into
// "YYYY-MM-DD" for the given year. A year <= 0 means the current year. Days
// that do not exist in that month, such as "31 de febrero", are rejected.
func ToISOFromEs(fecha string, year int) (string, error) {
	if year <= 0 {
		year = time.Now().Year()
	}

	normalized := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(fecha)), " ")
	match := esDatePattern.FindStringSubmatch(normalized)
	if match == nil {
		return "", fmt.Errorf("invalid date format %q: use \"DD de Mes\"", fecha)
	}

	month, ok := mesesEs[match[2]]
	if !ok {
		return "", fmt.Errorf("unrecognized month %q", match[2])
	}

	day := match[1]
	if len(day) == 1 {
		day = "0" + day
	}
	iso := fmt.Sprintf("%04d-%02d-%s", year, int(month), day)
	if _, err := time.Parse(ISOLayout, iso); err != nil {
		return "", fmt.Errorf("invalid date %q: day %s does not exist in %s %d", fecha, match[1], match[2], year)
	}
	return iso, nil
}

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	ISOLayout,
	"2006/01/02",
}

// Parse reads the date formats the backends are known to send. Values that
// carry a timezone are reduced to the calendar date they name in that zone.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// Canonical returns the YYYY-MM-DD form of s, or s unchanged when it cannot
// be parsed.
func Canonical(s string) string {
	t, err := Parse(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return t.Format(ISOLayout)
}

// InRange reports whether s falls within [from, to], inclusive, comparing
// calendar dates. Unparseable values are never in range.
func InRange(s, from, to string) bool {
	d, err := Parse(s)
	if err != nil {
		return false
	}
	f, err := Parse(from)
	if err != nil {
		return false
	}
	t, err := Parse(to)
	if err != nil {
		return false
	}
	day := d.Format(ISOLayout)
	return day >= f.Format(ISOLayout) && day <= t.Format(ISOLayout)
}
