package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmonitor/internal/domain"
)

func TestScoreRange(t *testing.T) {
	titles := []string{
		"",
		"Principal AI Engineer, Agents",
		"Principal Staff Lead Senior LLM Agent MLOps Engineer Scientist Hyderabad Remote",
		"Junior Sales Associate",
		"random words with no signal at all",
	}
	for _, title := range titles {
		s := Score(title, domain.PriorityHigh)
		assert.GreaterOrEqual(t, s, 0, "title=%q", title)
		assert.LessOrEqual(t, s, 100, "title=%q", title)
	}
}

func TestScoreBands(t *testing.T) {
	tests := []struct {
		name  string
		title string
		prio  domain.Priority
		want  int
	}{
		{
			name:  "principal agent engineer high priority",
			title: "Principal AI Engineer, Agents",
			prio:  domain.PriorityHigh,
			want:  30 + 25 + 20 + 5,
		},
		{
			name:  "seniority bands are not cumulative",
			title: "Senior Staff Lead Engineer",
			prio:  domain.PriorityMedium,
			want:  28 + 20, // staff wins over lead and senior
		},
		{
			name:  "domain takes best single keyword",
			title: "LLM MLOps Compiler Engineer",
			prio:  domain.PriorityMedium,
			want:  20 + 20, // llm at 20, not 20+15+15
		},
		{
			name:  "location bonus first band wins",
			title: "Senior ML Engineer, Hyderabad (Remote)",
			prio:  domain.PriorityMedium,
			want:  15 + 20 + 10,
		},
		{
			name:  "no signals",
			title: "Barista",
			prio:  domain.PriorityLow,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.title, tt.prio))
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	a := Score("Staff ML Platform Engineer, Bengaluru", domain.PriorityHigh)
	b := Score("Staff ML Platform Engineer, Bengaluru", domain.PriorityHigh)
	assert.Equal(t, a, b)
}

func TestScoreUrgentExample(t *testing.T) {
	assert.GreaterOrEqual(t, Score("Principal AI Engineer, Agents", domain.PriorityHigh), 80)
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  domain.Tier
	}{
		{100, domain.TierUrgent},
		{80, domain.TierUrgent},
		{79, domain.TierHigh},
		{60, domain.TierHigh},
		{59, domain.TierMedium},
		{40, domain.TierMedium},
		{39, domain.TierLow},
		{10, domain.TierLow},
		{0, domain.TierLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.score), "score=%d", tt.score)
	}
}
