// Package state tracks which posting identities have been seen per
// company, so a run only reports genuinely new listings.
package state

import (
	"encoding/json"
	"time"
)

// Entry is the metadata kept for one known posting identity.
type Entry struct {
	FirstSeen string `json:"first_seen"`
	LastSeen  string `json:"last_seen"`
	Title     string `json:"title"`
}

// Bucket holds one company's known postings. On disk it is either the
// canonical identity -> Entry mapping or, in snapshots written by old
// versions, a bare list of identity strings. Legacy buckets are
// normalized to the canonical form on load and only ever persisted
// canonically.
type Bucket struct {
	Entries map[string]Entry

	// legacyIDs is populated only when the on-disk form was a bare
	// list; Migrate moves them into Entries.
	legacyIDs []string
}

func (b *Bucket) UnmarshalJSON(data []byte) error {
	var m map[string]Entry
	if err := json.Unmarshal(data, &m); err == nil {
		b.Entries = m
		return nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	b.legacyIDs = ids
	return nil
}

func (b *Bucket) MarshalJSON() ([]byte, error) {
	if b.Entries == nil {
		return json.Marshal(map[string]Entry{})
	}
	return json.Marshal(b.Entries)
}

// IsLegacy reports whether the bucket still carries the pre-metadata
// list form.
func (b *Bucket) IsLegacy() bool {
	return b.Entries == nil && b.legacyIDs != nil
}

// Migrate converts a legacy bucket to canonical form. Old snapshots
// carried no metadata, so now stands in for both timestamps and the
// title is unknown.
func (b *Bucket) Migrate(now time.Time) {
	if !b.IsLegacy() {
		return
	}
	b.Entries = make(map[string]Entry, len(b.legacyIDs))
	stamp := now.Format(time.RFC3339)
	for _, id := range b.legacyIDs {
		b.Entries[id] = Entry{FirstSeen: stamp, LastSeen: stamp, Title: "Unknown"}
	}
	b.legacyIDs = nil
}

// Snapshot is the full persisted state: company name -> bucket.
type Snapshot map[string]*Bucket

// IsKnown reports whether the identity has been seen for the company.
func (s Snapshot) IsKnown(company, identity string) bool {
	b, ok := s[company]
	if !ok || b.Entries == nil {
		return false
	}
	_, ok = b.Entries[identity]
	return ok
}

// RecordSighting marks the identity as seen. First sighting pins
// first_seen and last_seen to when the posting was found; later
// sightings only refresh last_seen.
func (s Snapshot) RecordSighting(company, identity string, foundAt time.Time, title string, now time.Time) {
	b, ok := s[company]
	if !ok {
		b = &Bucket{Entries: make(map[string]Entry)}
		s[company] = b
	}
	if b.Entries == nil {
		b.Entries = make(map[string]Entry)
	}

	if e, ok := b.Entries[identity]; ok {
		e.LastSeen = now.Format(time.RFC3339)
		b.Entries[identity] = e
		return
	}
	stamp := foundAt.Format(time.RFC3339)
	b.Entries[identity] = Entry{FirstSeen: stamp, LastSeen: stamp, Title: title}
}

// PruneExpired drops canonical entries first seen strictly before
// now - expiryDays and returns how many were removed. Entries whose
// first_seen is missing or unparsable are kept; losing track of a
// posting is worse than remembering it too long. Legacy buckets pass
// through untouched, since they are migrated before anything persists.
func (s Snapshot) PruneExpired(now time.Time, expiryDays int) int {
	cutoff := now.AddDate(0, 0, -expiryDays)
	removed := 0

	for company, b := range s {
		if b.Entries == nil {
			continue
		}
		for id, e := range b.Entries {
			first, err := parseStamp(e.FirstSeen)
			if err != nil {
				continue
			}
			if first.Before(cutoff) {
				delete(b.Entries, id)
				removed++
			}
		}
		if len(b.Entries) == 0 {
			delete(s, company)
		}
	}
	return removed
}

// parseStamp accepts RFC3339 and the zone-less ISO form older snapshots
// were written with.
func parseStamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errEmptyStamp
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
