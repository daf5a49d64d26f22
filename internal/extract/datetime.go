package extract

import "regexp"

var (
	// A weekday name followed by a long-form month/day/year phrase, with an
	// optional ordinal suffix on the day ("Thursday, March 5th, 2026").
	dateRx = regexp.MustCompile(`(?i)(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday),?\s+[a-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}`)

	// An hour, optional minutes, and an AM/PM marker ("3 PM", "10:30am").
	timeRx = regexp.MustCompile(`(?i)\d{1,2}(?::\d{2})?\s*(?:am|pm)`)
)

// ExtractDate returns the first weekday-anchored date phrase in the summary,
// still in its spoken form. No cross-check against the weekday is done here.
func ExtractDate(summary string) *string {
	if m := dateRx.FindString(summary); m != "" {
		return &m
	}
	return nil
}

// ExtractTime returns the first clock-time phrase in the summary.
func ExtractTime(summary string) *string {
	if m := timeRx.FindString(summary); m != "" {
		return &m
	}
	return nil
}
