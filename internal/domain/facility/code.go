package facility

import (
	"fmt"
	"strings"
	"time"
)

// NewCode renders the human-readable facility code for a creation instant:
// CS_<YYYYMMDD>_<last 3 digits of the epoch millisecond timestamp>.
// The calendar date is taken in now's location.
func NewCode(now time.Time) string {
	return fmt.Sprintf("CS_%04d%02d%02d_%03d",
		now.Year(), int(now.Month()), now.Day(), now.UnixMilli()%1000)
}

var certificateDateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseCertificateDate turns the wire form of certificate_date into a date.
// An empty string clears the date.
func ParseCertificateDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range certificateDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d, nil
		}
	}
	return nil, ErrInvalidCertificateDate
}

// FormatCertificateDate is the inverse of ParseCertificateDate.
func FormatCertificateDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
