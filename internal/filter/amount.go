package filter

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// amounts extracts every numeric amount from a free-text funding
// expression. Thousands separators are removed first, so "$750,000"
// yields 750000 and "$10,000 - $20,000" yields 10000 and 20000.
// Unparseable text simply yields nothing.
func amounts(fundingSize string) []int {
	if fundingSize == "" {
		return nil
	}

	cleaned := strings.ReplaceAll(fundingSize, ",", "")

	var out []int
	for _, run := range digitRun.FindAllString(cleaned, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			// Digit runs longer than an int are not grant amounts.
			continue
		}
		out = append(out, n)
	}
	return out
}

// anyAmountAtLeast reports whether any amount in the funding text meets
// the threshold.
func anyAmountAtLeast(fundingSize string, threshold int) bool {
	for _, n := range amounts(fundingSize) {
		if n >= threshold {
			return true
		}
	}
	return false
}
