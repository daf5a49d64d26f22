package extract

import (
	"regexp"
	"strings"
)

// Summaries describe the request in the opening sentence and then pivot into
// scheduling detail and confirmation boilerplate. The special-request tiers
// only look at the text before that pivot so they don't pick up phrases like
// "The appointment was confirmed".
var scheduleBoundaryRx = regexp.MustCompile(`\. The appointment|\.  The|The appointment`)

func requestWindow(summary string) string {
	if loc := scheduleBoundaryRx.FindStringIndex(summary); loc != nil {
		return summary[:loc[0]]
	}
	return summary
}

var (
	quotedRequestRx = regexp.MustCompile(`(?i)requesting (?:a\s+)?"([^"]+)"`)

	styleWithRx = regexp.MustCompile(`(?i)(?:haircut|trim)\s+with\s+(?:a\s+)?([a-z\s]+?)(?:\s+for|\.|,|$)`)
	personRefRx = regexp.MustCompile(`(?i)\b(?:his|her|their|my|the|sammy|bobby|johnny)\b`)

	plainRequestRx = regexp.MustCompile(`(?i)requesting\s+(?:a\s+)?([a-z\s]+?)(?:\.|,|for)`)
	bookingWordRx  = regexp.MustCompile(`(?i)\b(?:haircut|appointment|book|his|her)\b`)
)

// styleVocabulary is the closed list of hairstyle terms for the last-resort
// scan. Longer phrases come first so "taper" does not shadow "taper fade".
var styleVocabulary = []string{
	"taper fade", "low fade", "mid fade", "high fade", "skin fade",
	"faded beard", "buzz cut", "crew cut", "comb over", "hard part",
	"line up", "mohawk", "pompadour", "undercut", "taper", "fade",
}

// ExtractSpecialRequests pulls the styling request out of the call record.
// Tiers run in descending confidence; only the first tier with a non-empty
// result contributes, lower tiers are never merged in.
func ExtractSpecialRequests(summary, transcript string) *string {
	window := requestWindow(summary)

	// Tier 1: an explicitly quoted phrase after "requesting".
	if m := quotedRequestRx.FindStringSubmatch(window); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return &v
		}
	}

	// Tier 2: "haircut with a STYLE", unless the phrase is really a person
	// reference ("haircut with his dad").
	if m := styleWithRx.FindStringSubmatch(window); m != nil {
		v := strings.TrimSpace(m[1])
		if v != "" && !personRefRx.MatchString(v) {
			return &v
		}
	}

	// Tier 3: unquoted "requesting STYLE", unless it only restates the
	// booking itself.
	if m := plainRequestRx.FindStringSubmatch(window); m != nil {
		v := strings.TrimSpace(m[1])
		if v != "" && !bookingWordRx.MatchString(v) {
			return &v
		}
	}

	// Tier 4: closed-vocabulary scan over everything we have.
	if v := scanStyleVocabulary(summary + " " + transcript); v != "" {
		return &v
	}

	return nil
}

func scanStyleVocabulary(text string) string {
	lower := strings.ToLower(text)

	var found []string
	for _, term := range styleVocabulary {
		if !strings.Contains(lower, term) {
			continue
		}
		shadowed := false
		for _, kept := range found {
			if strings.Contains(kept, term) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			found = append(found, term)
		}
	}

	return strings.Join(found, ", ")
}
