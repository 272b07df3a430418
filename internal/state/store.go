package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofrs/flock"
)

var errEmptyStamp = errors.New("empty timestamp")

// Store persists the snapshot as a flat JSON file. A flock sidecar
// guards against a scheduled one-shot run racing a continuous one on
// the same file.
type Store struct {
	path string
	lk   *flock.Flock
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
		lk:   flock.New(path + ".lock"),
	}
}

// Load reads the snapshot, prunes expired entries and migrates any
// legacy buckets to canonical form. A missing or corrupt file degrades
// to empty state; the monitor then simply re-learns the world.
func (st *Store) Load(now time.Time, expiryDays int) Snapshot {
	if err := st.lk.Lock(); err != nil {
		log.Printf("[state] lock failed: %v", err)
	} else {
		defer st.lk.Unlock()
	}

	data, err := os.ReadFile(st.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[state] read failed, starting empty: %v", err)
		}
		return Snapshot{}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("[state] corrupt snapshot, starting empty: %v", err)
		return Snapshot{}
	}

	if removed := snap.PruneExpired(now, expiryDays); removed > 0 {
		log.Printf("[state] pruned %d expired entries (>%d days old)", removed, expiryDays)
	}

	for company, b := range snap {
		if b.IsLegacy() {
			log.Printf("[state] migrating %s bucket to canonical form", company)
			b.Migrate(now)
		}
	}

	return snap
}

// Save writes the full canonical snapshot atomically: marshal to a temp
// file, then rename over the old one, so a kill mid-save never leaves a
// half-written file behind. Failure is logged by the caller and the
// in-memory snapshot stays authoritative for the rest of the run.
func (st *Store) Save(snap Snapshot) error {
	if err := st.lk.Lock(); err != nil {
		log.Printf("[state] lock failed: %v", err)
	} else {
		defer st.lk.Unlock()
	}

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("state marshal: %w", err)
	}

	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("state write temp: %w", err)
	}
	if err := os.Rename(tmp, st.path); err != nil {
		return fmt.Errorf("state rename: %w", err)
	}
	return nil
}
