package domain

import "time"

// Posting is one scraped candidate job listing. It lives for a single
// run: produced by extraction, consumed by classification.
type Posting struct {
	Company      string
	Title        string
	URL          string
	DiscoveredAt time.Time
}

// ScoredPosting is a Posting after classification.
type ScoredPosting struct {
	Posting
	Score int
	Tier  Tier
}
