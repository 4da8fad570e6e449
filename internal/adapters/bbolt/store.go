// Package bbolt implements the ports.RunStore interface using bbolt
// (embedded B+ tree). Full run records live in one bucket keyed by run
// ID; a second bucket keyed by start time orders summaries for
// newest-first listing without loading whole records. Writes are
// transactional, so a crash mid-write cannot corrupt previously
// committed runs.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/gromark/internal/ports"
)

// Bucket keys
var (
	bucketRuns   = []byte("runs")
	bucketByTime = []byte("by_time")
)

// Store implements ports.RunStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// timeKey orders runs by start time. Zero-padded UnixNano keeps byte
// order equal to time order; the ID suffix keeps keys unique when two
// runs share a timestamp.
func timeKey(startedAt time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%020d:%s", startedAt.UTC().UnixNano(), id))
}

// SaveRun persists one completed run. Overwrites any prior record with
// the same ID, including its time-index entry.
func (s *Store) SaveRun(run *ports.RunRecord) error {
	if run == nil {
		return fmt.Errorf("nil run")
	}
	if run.ID == "" {
		return fmt.Errorf("run has no ID")
	}

	recordJSON, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	summaryJSON, err := json.Marshal(summarize(run))
	if err != nil {
		return fmt.Errorf("marshal run summary: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		runs, err := tx.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		byTime, err := tx.CreateBucketIfNotExists(bucketByTime)
		if err != nil {
			return err
		}

		// Re-saving under the same ID must not leave a stale index entry.
		if prev := runs.Get([]byte(run.ID)); prev != nil {
			var old ports.RunRecord
			if err := json.Unmarshal(prev, &old); err == nil {
				if err := byTime.Delete(timeKey(old.StartedAt, old.ID)); err != nil {
					return err
				}
			}
		}

		if err := runs.Put([]byte(run.ID), recordJSON); err != nil {
			return err
		}
		return byTime.Put(timeKey(run.StartedAt, run.ID), summaryJSON)
	})
}

// LoadRun retrieves a run by ID.
// Returns nil, nil if no such run exists.
func (s *Store) LoadRun(id string) (*ports.RunRecord, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		runs := tx.Bucket(bucketRuns)
		if runs == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := runs.Get([]byte(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, nil
	}

	var run ports.RunRecord
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("unmarshal run: %w", err)
	}
	return &run, nil
}

// ListRuns returns summaries of every stored run, newest first.
func (s *Store) ListRuns() ([]ports.RunSummary, error) {
	var summaries []ports.RunSummary

	err := s.db.View(func(tx *bolt.Tx) error {
		byTime := tx.Bucket(bucketByTime)
		if byTime == nil {
			return nil
		}
		// Walk the time index backward: largest key = newest run.
		// Unmarshal copies what it keeps, so no byte copy is needed here.
		c := byTime.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var sum ports.RunSummary
			if err := json.Unmarshal(v, &sum); err != nil {
				return fmt.Errorf("unmarshal run summary %q: %w", k, err)
			}
			summaries = append(summaries, sum)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// DeleteRun removes a run and its time-index entry.
// Idempotent: deleting a nonexistent run is not an error.
func (s *Store) DeleteRun(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		runs := tx.Bucket(bucketRuns)
		if runs == nil {
			return nil
		}
		data := runs.Get([]byte(id))
		if data == nil {
			return nil
		}

		var run ports.RunRecord
		if err := json.Unmarshal(data, &run); err != nil {
			return fmt.Errorf("unmarshal run: %w", err)
		}
		if byTime := tx.Bucket(bucketByTime); byTime != nil {
			if err := byTime.Delete(timeKey(run.StartedAt, run.ID)); err != nil {
				return err
			}
		}
		return runs.Delete([]byte(id))
	})
}

// summarize reduces a record to its list view.
func summarize(run *ports.RunRecord) ports.RunSummary {
	sum := ports.RunSummary{
		ID:             run.ID,
		StartedAt:      run.StartedAt,
		CandidateCount: run.PrimerCount * run.PatternCount,
	}
	if len(run.Results) > 0 {
		sum.BestScore = run.Results[0].Score
		sum.BestPlaintext = run.Results[0].Plaintext
	}
	return sum
}
