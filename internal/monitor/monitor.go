// Package monitor drives one scan cycle: fetch each configured company's
// career page, pick out new senior AI postings, score them and route
// urgent ones to instant alerts while the rest accumulate for the daily
// digest.
package monitor

import (
	"context"
	"log"
	"time"

	"jobmonitor/internal/config"
	"jobmonitor/internal/dedup"
	"jobmonitor/internal/domain"
	"jobmonitor/internal/notify"
	"jobmonitor/internal/rank"
	"jobmonitor/internal/scrape"
	"jobmonitor/internal/state"
)

type Monitor struct {
	Cfg       config.Config
	Store     *state.Store
	Fetcher   scrape.Fetcher
	Extractor scrape.Extractor
	Alerter   notify.Alerter
	Sender    notify.DigestSender
	Digest    *notify.Digest

	// Now is swappable so tests can pin the clock.
	Now func() time.Time

	snap state.Snapshot
}

func New(cfg config.Config, store *state.Store, fetcher scrape.Fetcher, extractor scrape.Extractor,
	alerter notify.Alerter, sender notify.DigestSender, digest *notify.Digest) *Monitor {
	return &Monitor{
		Cfg:       cfg,
		Store:     store,
		Fetcher:   fetcher,
		Extractor: extractor,
		Alerter:   alerter,
		Sender:    sender,
		Digest:    digest,
		Now:       time.Now,
	}
}

// RunOnce processes every configured company in order, then flushes the
// digest if its window is open. Companies are handled strictly one at a
// time; a failure in one is logged and costs only that company's cycle.
func (m *Monitor) RunOnce(ctx context.Context) int {
	now := m.Now()
	log.Printf("[run] cycle start %s (state expiry: %d days)", now.Format("2006-01-02 15:04:05"), m.Cfg.StateExpiryDays)

	if m.snap == nil {
		m.snap = m.Store.Load(now, m.Cfg.StateExpiryDays)
	}

	totalNew := 0
	urgent := 0

	for i, company := range m.Cfg.Companies {
		newPostings := m.checkCompany(ctx, company)
		totalNew += len(newPostings)
		for _, p := range newPostings {
			if p.Tier == domain.TierUrgent {
				urgent++
			}
		}

		if i < len(m.Cfg.Companies)-1 {
			if !sleepCtx(ctx, time.Duration(m.Cfg.CompanyDelaySeconds)*time.Second) {
				break
			}
		}
	}

	if m.Digest.ShouldFlush(m.Now()) {
		m.Digest.Flush(m.Sender)
	}

	log.Printf("[run] summary: new=%d urgent=%d digest_queued=%d", totalNew, urgent, m.Digest.Len())
	return totalNew
}

// checkCompany runs the full pipeline for one company. Fetch or parse
// trouble degrades to zero candidates; it never stops the run.
func (m *Monitor) checkCompany(ctx context.Context, company config.Company) []domain.ScoredPosting {
	log.Printf("[run] checking %s...", company.Name)

	html, err := m.Fetcher.Fetch(ctx, company.URL)
	if err != nil {
		log.Printf("[run] %s: fetch failed: %v", company.Name, err)
		return nil
	}

	candidates := m.Extractor.Extract(html, company.URL)

	var found []domain.ScoredPosting
	now := m.Now()

	for _, cand := range candidates {
		if !scrape.MatchesCriteria(cand.Title) {
			continue
		}
		if scrape.TooOld(cand.Raw, m.Cfg.MaxAgeDays()) {
			continue
		}

		identity := dedup.Identity(company.Name, cand.Title, cand.URL)

		if m.snap.IsKnown(company.Name, identity) {
			// Still listed: refresh last_seen, first_seen stays put.
			m.snap.RecordSighting(company.Name, identity, now, cand.Title, m.Now())
			continue
		}

		posting := domain.Posting{
			Company:      company.Name,
			Title:        cand.Title,
			URL:          cand.URL,
			DiscoveredAt: now,
		}
		m.snap.RecordSighting(company.Name, identity, posting.DiscoveredAt, posting.Title, m.Now())

		scored := domain.ScoredPosting{Posting: posting}
		scored.Score = rank.Score(posting.Title, company.Priority)
		scored.Tier = rank.TierFor(scored.Score)

		log.Printf("[run]   - [%d/100 %s] %s", scored.Score, scored.Tier, scored.Title)
		m.route(scored)
		found = append(found, scored)
	}

	if len(found) > 0 {
		log.Printf("[run] %s: %d new posting(s)", company.Name, len(found))
		// Durability checkpoint: new postings survive a crash before the
		// next company is reached.
		if err := m.Store.Save(m.snap); err != nil {
			log.Printf("[run] %s: state save failed: %v", company.Name, err)
		}
	} else {
		log.Printf("[run] %s: no new postings", company.Name)
	}

	return found
}

// route dispatches a freshly classified posting. The routing decision is
// final before any later failure can occur: an alert send error never
// demotes the posting into the digest.
func (m *Monitor) route(p domain.ScoredPosting) {
	if p.Tier == domain.TierUrgent {
		if m.Alerter == nil {
			log.Printf("[run] urgent posting but no alerter configured: %s", p.Title)
			return
		}
		if err := m.Alerter.SendUrgent(p); err != nil {
			log.Printf("[alert] telegram send failed: %v", err)
		}
		return
	}
	m.Digest.Add(p)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
