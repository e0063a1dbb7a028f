package collect

import (
	"regexp"
	"strconv"
	"strings"
)

// Amount phrasings seen on fellowship pages: "fellows receive $10,000",
// "$15,000 award", "up to $50,000", "USD 10,000", "stipend of $75,000".
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:receives?|award(?:ed)?|stipend|grant|fellowship)[^$€£]*?([$€£][\d,]+(?:\s*[-–]\s*[$€£]?[\d,]+)?)`),
	regexp.MustCompile(`(?i)([$€£][\d,]+(?:\s*[-–]\s*[$€£]?[\d,]+)?)\s*(?:fellowship|award|grant|stipend|prize)`),
	regexp.MustCompile(`(?i)(up to\s*[$€£][\d,]+)`),
	regexp.MustCompile(`(?i)((?:USD|EUR|GBP)\s*[\d,]+(?:\s*[-–]\s*[\d,]+)?)`),
	regexp.MustCompile(`(?i)(?:amount|funding|support|receive)[^$€£]{0,30}([$€£][\d,]+(?:\s*[-–]\s*[$€£]?[\d,]+)?)`),
}

var bareAmount = regexp.MustCompile(`[$€£]([\d,]+)`)

var spaceRuns = regexp.MustCompile(`\s+`)

// extractFundingAmount pulls a funding/award amount expression out of
// page text, or returns "" when nothing plausible is found.
func extractFundingAmount(text string) string {
	if text == "" {
		return ""
	}

	for _, pattern := range amountPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return spaceRuns.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		}
	}

	// Fallback: any bare amount inside the plausible individual-grant
	// range.
	for _, m := range bareAmount.FindAllStringSubmatch(text, -1) {
		value, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if value >= 1000 && value <= 500000 {
			return "$" + m[1]
		}
	}

	return ""
}
