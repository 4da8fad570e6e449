// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "time"

// RunStore persists completed crack runs so past searches can be listed,
// inspected and compared. The backing store (bbolt) serializes writes;
// concurrent reads are safe.
//
// Crash safety: SaveRun must be transactional. A crash mid-write must not
// corrupt previously committed runs.
type RunStore interface {
	// SaveRun persists one completed run. Overwrites any prior record
	// with the same ID.
	SaveRun(run *RunRecord) error

	// LoadRun retrieves a run by ID.
	// Returns nil, nil if no such run exists.
	LoadRun(id string) (*RunRecord, error)

	// ListRuns returns summaries of every stored run, newest first.
	ListRuns() ([]RunSummary, error)

	// DeleteRun removes a run.
	// Idempotent: deleting a nonexistent run is not an error.
	DeleteRun(id string) error

	// Close releases the underlying store.
	Close() error
}

// RunRecord is the persisted form of one brute-force crack run: the
// inputs that defined it and the ranked results it produced.
type RunRecord struct {
	ID           string         `json:"id"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   time.Time      `json:"finished_at"`
	Ciphertext   string         `json:"ciphertext"`
	Keyword      string         `json:"keyword"`
	PrimerCount  int            `json:"primer_count"`
	PatternCount int            `json:"pattern_count"`
	TopK         int            `json:"top_k"`
	Results      []StoredResult `json:"results"`
}

// StoredResult mirrors one ranked search result inside a RunRecord.
type StoredResult struct {
	Score     float64 `json:"score"`
	Primer    string  `json:"primer"`
	Pattern   []int   `json:"pattern"`
	Plaintext string  `json:"plaintext"`
}

// RunSummary is the list view of a stored run: enough to pick one out
// without loading its full result set.
type RunSummary struct {
	ID             string    `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	CandidateCount int       `json:"candidate_count"`
	BestScore      float64   `json:"best_score"`
	BestPlaintext  string    `json:"best_plaintext"`
}
