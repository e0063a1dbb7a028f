// Package dates parses the free-text deadline expressions collectors
// capture. Deadlines are never normalized at ingestion; they are parsed
// lazily, only when ranking or closing-soon detection needs them.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDeadline attempts to parse a free-text deadline expression.
// Returns the zero time and false when the text is empty or not a
// recognizable date.
func ParseDeadline(deadline string) (time.Time, bool) {
	deadline = strings.TrimSpace(deadline)
	if deadline == "" {
		return time.Time{}, false
	}
	if strings.EqualFold(deadline, "ongoing") || strings.EqualFold(deadline, "rolling") {
		return time.Time{}, false
	}

	t, err := dateparse.ParseAny(deadline)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsExpired reports whether the deadline is parseable and in the past at
// now. Records without a parseable deadline never expire.
func IsExpired(deadline string, now time.Time) bool {
	t, ok := ParseDeadline(deadline)
	return ok && t.Before(now)
}

// ClosesWithin reports whether the deadline falls inside (now, now+window].
func ClosesWithin(deadline string, now time.Time, window time.Duration) (time.Time, bool) {
	t, ok := ParseDeadline(deadline)
	if !ok {
		return time.Time{}, false
	}
	if t.After(now) && !t.After(now.Add(window)) {
		return t, true
	}
	return time.Time{}, false
}

// Deadline phrasings seen across listing pages: "Deadline: March 1,
// 2026", "applications due June 15, 2026", "closes January 31, 2026",
// "by April 1, 2026", "March 1, 2026 deadline".
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`deadline[:\s]+(\w+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`applications?\s+due[:\s]+(\w+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`due[:\s]+(\w+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`closes?[:\s]+(\w+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`(\w+\s+\d{1,2},?\s+\d{4})\s+deadline`),
	regexp.MustCompile(`by\s+(\w+\s+\d{1,2},?\s+\d{4})`),
}

// ExtractDeadline scans free text for a deadline date expression and
// returns the first match, or "" when none is found.
func ExtractDeadline(text string) string {
	lower := strings.ToLower(text)
	for _, pattern := range deadlinePatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
