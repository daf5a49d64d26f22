package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockRx = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`)

// ClockTime converts "7 PM" to "19:00:00". 12 AM is midnight, 12 PM is noon,
// and missing minutes default to 00. Input that doesn't look like an AM/PM
// clock time is returned unchanged rather than dropped, unlike ISODate;
// callers must tolerate a non-normalized value reaching storage.
func ClockTime(raw string) string {
	m := clockRx.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := m[2]
	if minutes == "" {
		minutes = "00"
	}

	period := strings.ToUpper(m[3])
	if period == "PM" && hours != 12 {
		hours += 12
	}
	if period == "AM" && hours == 12 {
		hours = 0
	}

	return fmt.Sprintf("%02d:%s:00", hours, minutes)
}
