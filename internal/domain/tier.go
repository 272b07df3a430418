package domain

// Tier is the priority bucket a score maps into. URGENT postings get an
// instant alert; everything else waits for the daily digest.
type Tier string

const (
	TierUrgent Tier = "URGENT"
	TierHigh   Tier = "HIGH"
	TierMedium Tier = "MEDIUM"
	TierLow    Tier = "LOW"
)

// DigestOrder lists the non-urgent tiers in the order digest sections
// are rendered.
var DigestOrder = []Tier{TierHigh, TierMedium, TierLow}

// Priority is the per-company hint from config.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)
