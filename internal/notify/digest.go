package notify

import (
	"fmt"
	"log"
	"sort"
	"time"

	"jobmonitor/internal/config"
	"jobmonitor/internal/domain"
)

// Digest accumulates non-urgent postings during a run and flushes them
// as one batch once the daily send window opens.
type Digest struct {
	startMin int // minutes since midnight, inclusive
	endMin   int // inclusive
	queue    []domain.ScoredPosting
}

func NewDigest(cfg config.Digest) (*Digest, error) {
	start, err := config.ParseClock(cfg.WindowStart)
	if err != nil {
		return nil, fmt.Errorf("digest window start: %w", err)
	}
	end, err := config.ParseClock(cfg.WindowEnd)
	if err != nil {
		return nil, fmt.Errorf("digest window end: %w", err)
	}
	return &Digest{
		startMin: start.Hour()*60 + start.Minute(),
		endMin:   end.Hour()*60 + end.Minute(),
	}, nil
}

func (d *Digest) Add(p domain.ScoredPosting) {
	d.queue = append(d.queue, p)
}

func (d *Digest) Len() int {
	return len(d.queue)
}

// ShouldFlush is true only inside the configured local-time window and
// only when there is something queued. Both window ends are inclusive.
func (d *Digest) ShouldFlush(now time.Time) bool {
	if len(d.queue) == 0 {
		return false
	}
	mins := now.Hour()*60 + now.Minute()
	return mins >= d.startMin && mins <= d.endMin
}

// Batch returns the queue ordered for dispatch: grouped by tier
// (HIGH, MEDIUM, LOW), descending score within each tier.
func (d *Digest) Batch() []domain.ScoredPosting {
	out := make([]domain.ScoredPosting, len(d.queue))
	copy(out, d.queue)

	rank := map[domain.Tier]int{}
	for i, t := range domain.DigestOrder {
		rank[t] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		if rank[out[i].Tier] != rank[out[j].Tier] {
			return rank[out[i].Tier] < rank[out[j].Tier]
		}
		return out[i].Score > out[j].Score
	})
	return out
}

// Flush dispatches the batch and clears the queue. The queue is cleared
// even when dispatch fails: digest delivery is at-most-once per
// accumulation, and a failed send drops that batch rather than replaying
// it into the next window.
func (d *Digest) Flush(sender DigestSender) {
	if len(d.queue) == 0 {
		return
	}
	batch := d.Batch()
	d.queue = nil

	if sender == nil {
		return
	}
	if err := sender.SendDigest(batch); err != nil {
		log.Printf("[digest] send failed, %d postings dropped: %v", len(batch), err)
		return
	}
	log.Printf("[digest] sent: %d postings", len(batch))
}
