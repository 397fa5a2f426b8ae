package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var datePhraseRe = regexp.MustCompile(
	`(?i)\b(` +
		`\d{4}-\d{2}-\d{2}` + // YYYY-MM-DD
		`|` +
		`\d{1,2}/\d{1,2}/\d{4}` + // DD/MM/YYYY
		`|` +
		`hari ini|besok|lusa|today|tomorrow` +
		`)`,
)

// ExtractTimeFromText tries to extract a requested rental start date from a
// booking utterance. Relative phrases resolve against ref in loc.
func ExtractTimeFromText(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	m := datePhraseRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	token := strings.ToLower(strings.TrimSpace(m[1]))

	if t, ok := resolveRelative(token, ref, loc); ok {
		return t, true
	}

	// Slash dates are day-first in this locale.
	t, err := dateparse.ParseIn(token, loc, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func resolveRelative(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	day := dateOnly(ref.In(loc))

	switch token {
	case "hari ini", "today":
		return day, true
	case "besok", "tomorrow":
		return day.AddDate(0, 0, 1), true
	case "lusa":
		return day.AddDate(0, 0, 2), true
	}
	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
