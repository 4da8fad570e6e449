package search

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/corey/gromark/internal/domain/cipher"
)

// Candidate pairs one primer with one modulus pattern. Candidates own no
// other state; everything else a worker needs is shared read-only.
type Candidate struct {
	Primer  string
	Pattern []int
}

// Result is one scored candidate decryption.
type Result struct {
	Score     float64
	Primer    string
	Pattern   []int
	Plaintext string
}

// Options bounds a search run.
type Options struct {
	// Workers caps parallel candidate evaluations. Zero or negative
	// means one per available CPU.
	Workers int
	// TopK is how many ranked results to keep. Zero or negative keeps none.
	TopK int
}

// Engine runs brute-force searches over (primer, pattern) candidates.
// The plausibility scorer is injected so ranking stays swappable in
// tests.
type Engine struct {
	score func(string) float64
}

// New builds an Engine over a plausibility scorer.
func New(score func(string) float64) *Engine {
	return &Engine{score: score}
}

// Search evaluates the Cartesian product of primers x patterns against
// ciphertext and returns the TopK results by score descending. One
// alphabet is built from keyword and shared read-only by every worker;
// each candidate independently generates its keystream, decrypts and
// scores. A candidate whose primer or pattern is invalid contributes no
// result and never aborts the batch. Ties rank in candidate order
// (primer major, pattern minor), so output is deterministic. The only
// early exit is ctx cancellation.
func (e *Engine) Search(ctx context.Context, ciphertext string, primers []string, keyword string, patterns [][]int, opts Options) ([]Result, error) {
	alphabet := cipher.BuildAlphabet(keyword)

	candidates := make([]Candidate, 0, len(primers)*len(patterns))
	for _, primer := range primers {
		for _, pattern := range patterns {
			candidates = append(candidates, Candidate{Primer: primer, Pattern: pattern})
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Every worker writes only its own slot, so the scatter needs no lock;
	// the gather below runs after Wait establishes the barrier.
	results := make([]Result, len(candidates))
	evaluated := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := e.evaluate(ciphertext, cand, alphabet)
			if err != nil {
				// Malformed candidate: skip it, keep the batch alive.
				return nil
			}
			results[i] = r
			evaluated[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]Result, 0, len(candidates))
	for i := range results {
		if evaluated[i] {
			ranked = append(ranked, results[i])
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	topK := opts.TopK
	if topK < 0 {
		topK = 0
	}
	if topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked, nil
}

// evaluate runs one candidate through keystream -> decrypt -> score.
func (e *Engine) evaluate(ciphertext string, cand Candidate, alphabet cipher.Alphabet) (Result, error) {
	stream, err := cipher.GenerateKeystream(cand.Primer, len(ciphertext), cipher.CustomPolicy(cand.Pattern))
	if err != nil {
		return Result{}, err
	}
	plaintext := cipher.Decrypt(ciphertext, stream, alphabet)
	return Result{
		Score:     e.score(plaintext),
		Primer:    cand.Primer,
		Pattern:   cand.Pattern,
		Plaintext: plaintext,
	}, nil
}
