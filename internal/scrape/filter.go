package scrape

import (
	"regexp"
	"strconv"
	"strings"
)

var seniorityKeywords = []string{"principal", "staff", "senior staff", "lead", "senior"}

var aiKeywords = []string{
	"ai", "machine learning", "ml", "data", "platform",
	"mlops", "llm", "agent", "deep learning",
}

var roleKeywords = []string{"engineer", "scientist", "architect", "researcher"}

// MatchesCriteria is the coarse pre-filter: a title must carry a
// seniority keyword and either an AI or a role keyword before scoring is
// worth doing.
func MatchesCriteria(title string) bool {
	text := strings.ToLower(title)

	if !containsAny(text, seniorityKeywords) {
		return false
	}
	return containsAny(text, aiKeywords) || containsAny(text, roleKeywords)
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

var ageRegex = regexp.MustCompile(`(\d+)\s+day`)

// TooOld reports whether free text around a posting carries an age hint
// ("3 days ago") beyond maxAgeDays. A zero maxAgeDays disables the
// check. No hint, or an unparsable one, counts as fresh: better to
// surface a posting of unknown age than to drop it. Exactly maxAgeDays
// is still fresh.
func TooOld(text string, maxAgeDays int) bool {
	if maxAgeDays == 0 {
		return false
	}

	m := ageRegex.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return false
	}

	days, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return days > maxAgeDays
}
