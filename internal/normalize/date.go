// Package normalize converts the loosely formatted date and time phrases
// produced by package extract into machine-usable values. The two routines
// deliberately fail differently: an unparseable date becomes null so it never
// reaches storage, while an unrecognized time passes through unchanged so the
// raw phrase stays visible downstream.
package normalize

import (
	"log"
	"regexp"
	"strings"
	"time"
)

var (
	ordinalRx       = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)`)
	weekdayPrefixRx = regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday),?\s+`)
)

var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// ISODate converts a spoken date phrase ("Wednesday, February 25th, 2026")
// to ISO form ("2026-02-25"). Unparseable input yields ok=false and a logged
// diagnostic; the caller stores null.
func ISODate(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	cleaned := ordinalRx.ReplaceAllString(strings.TrimSpace(raw), "$1")

	spokenDay := ""
	if m := weekdayPrefixRx.FindStringSubmatch(cleaned); m != nil {
		spokenDay = m[1]
		cleaned = cleaned[len(m[0]):]
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		// The spoken weekday is trusted as-is for the stored phrase, but a
		// disagreement with the calendar date is worth surfacing.
		if spokenDay != "" && !strings.EqualFold(spokenDay, t.Weekday().String()) {
			log.Printf("normalize: weekday %q disagrees with date %s (%s)",
				spokenDay, t.Format("2006-01-02"), t.Weekday())
		}
		return t.Format("2006-01-02"), true
	}

	log.Printf("normalize: failed to parse date %q (cleaned %q)", raw, cleaned)
	return "", false
}
