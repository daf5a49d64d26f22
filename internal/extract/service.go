package extract

import (
	"regexp"
	"strings"
)

// Service vocabulary. A detected combination is joined with " and " in the
// fixed order haircut → kid's haircut → beard trim.
const (
	ServiceDefault     = "appointment"
	ServiceHaircut     = "men's haircut"
	ServiceKidsHaircut = "kid's haircut"
	ServiceBeardTrim   = "beard trim"
)

// serviceOverride captures the customer changing their request mid-call.
// When one matches, the corrected service replaces the whole detection set.
type serviceOverride struct {
	Pattern *regexp.Regexp
	Service string
}

var serviceOverrides = []serviceOverride{
	{regexp.MustCompile(`(?i)changed.*(?:to|request to)\s+(?:a\s+)?beard\s*trim`), ServiceBeardTrim},
	{regexp.MustCompile(`(?i)changed.*(?:to|request to)\s+(?:a\s+)?(?:men's\s+)?haircut`), ServiceHaircut},
}

var (
	kidsHaircutRx = regexp.MustCompile(`(?i)kid'?s?\s+haircut|child'?s?\s+haircut|haircut\s+for\s+(?:his|her|their)\s+(?:son|daughter|child)`)
	haircutRx     = regexp.MustCompile(`(?i)\b(?:men's\s+)?haircut\b`)
	beardTrimRx   = regexp.MustCompile(`(?i)\bbeard\s*trim\b`)
)

// ExtractService classifies the requested service from the summary.
// Detection is a pure function of the text, so rerunning it on the same
// summary always yields the same value.
func ExtractService(summary string) string {
	for _, o := range serviceOverrides {
		if o.Pattern.MatchString(summary) {
			return o.Service
		}
	}

	hasKids := kidsHaircutRx.MatchString(summary)
	// A kid's-haircut phrase contains "haircut", so it suppresses the
	// generic detector; the two classifications are mutually exclusive.
	hasHaircut := !hasKids && haircutRx.MatchString(summary)
	hasBeard := beardTrimRx.MatchString(summary)

	var services []string
	if hasHaircut {
		services = append(services, ServiceHaircut)
	}
	if hasKids {
		services = append(services, ServiceKidsHaircut)
	}
	if hasBeard {
		services = append(services, ServiceBeardTrim)
	}

	if len(services) == 0 {
		return ServiceDefault
	}
	return strings.Join(services, " and ")
}
