// Package mapper converts backend wire DTOs to UI models and back. All
// functions are pure: no calls, no caches. This is the only place that
// translates the backend's snake_case records into client types, and the only
// place derived display fields (meta lines, masked numbers, date labels) are
// computed.
package mapper

import (
	"strings"
	"time"
)

// dateLabelLayout renders timestamps for list display. Localized rendering is
// applied by the presentation layer on top of this.
const dateLabelLayout = "Jan 2, 2006"

// parseTime decodes an RFC 3339 timestamp, returning the zero time for
// missing or malformed values rather than failing the whole record.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseTime(*s)
	return &t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// DateLabel formats a timestamp for list display; zero times render empty.
func DateLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLabelLayout)
}

// metaLine picks the first non-empty candidate as the single-line preview
// shown under an item's title.
func metaLine(candidates ...string) string {
	for _, c := range candidates {
		if s := strings.TrimSpace(c); s != "" {
			return s
		}
	}
	return ""
}

// MaskNumber reduces a card number to its masked display form ("•••• 1234").
// Inputs shorter than four digits mask entirely.
func MaskNumber(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return "••••"
	}
	return "•••• " + string(digits[len(digits)-4:])
}
