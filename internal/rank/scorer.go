package rank

import (
	"strings"

	"jobmonitor/internal/domain"
)

// Seniority bands, most specific first. Only the first hit counts.
var seniorityBands = []struct {
	needle string
	points int
}{
	{"principal", 30},
	{"staff", 28}, // covers "senior staff" too
	{"lead", 20},
	{"senior", 15},
}

// Domain keywords scored by the single best hit, not the sum.
var domainKeywords = map[string]int{
	"agent":                           25,
	"llm":                             20,
	"reinforcement learning":          20,
	"rl engineer":                     20,
	"copilot":                         20,
	"ml platform":                     18,
	"ai platform":                     18,
	"machine learning infrastructure": 18,
	"ml infrastructure":               18,
	"ai infrastructure":               18,
	"foundation model":                18,
	"mlops":                           15,
	"data platform":                   15,
	"generative ai":                   15,
	"compiler":                        15,
	"model training":                  12,
	"distributed systems":             10,
}

var roleBands = []struct {
	needle string
	points int
}{
	{"engineer", 20},
	{"scientist", 18},
	{"architect", 15},
	{"researcher", 12},
}

var locationBands = []struct {
	needles []string
	points  int
}{
	{[]string{"hyderabad", "chennai"}, 10},
	{[]string{"bengaluru", "bangalore"}, 7},
	{[]string{"remote", "india"}, 5},
}

// Score rates a posting title 0-100. Four independent signal groups
// (seniority, domain fit, role type, location) each contribute at most
// one band, plus a flat +5 for high-priority companies. Pure and
// case-insensitive.
func Score(title string, prio domain.Priority) int {
	text := strings.ToLower(title)
	score := 0

	for _, b := range seniorityBands {
		if strings.Contains(text, b.needle) {
			score += b.points
			break
		}
	}

	best := 0
	for kw, points := range domainKeywords {
		if points > best && strings.Contains(text, kw) {
			best = points
		}
	}
	score += best

	for _, b := range roleBands {
		if strings.Contains(text, b.needle) {
			score += b.points
			break
		}
	}

	for _, b := range locationBands {
		if containsAny(text, b.needles) {
			score += b.points
			break
		}
	}

	if prio == domain.PriorityHigh {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// TierFor maps a score into its priority tier. Band lower bounds are
// inclusive: 80 is already URGENT, 60 HIGH, 40 MEDIUM.
func TierFor(score int) domain.Tier {
	switch {
	case score >= 80:
		return domain.TierUrgent
	case score >= 60:
		return domain.TierHigh
	case score >= 40:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}
