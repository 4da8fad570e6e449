package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/corey/gromark/internal/config"
	"github.com/corey/gromark/internal/domain/search"
	"github.com/corey/gromark/internal/ports"
)

// Crack runs one brute-force search described by plan and persists the
// outcome. If the search succeeds but the save fails, the record is
// returned alongside the error so callers can still show results.
func (a *App) Crack(ctx context.Context, plan *config.Plan) (*ports.RunRecord, error) {
	primers := plan.PrimerCandidates()
	patterns := plan.PatternCandidates()
	started := time.Now().UTC()

	a.Log.Info("starting crack",
		zap.Int("primers", len(primers)),
		zap.Int("patterns", len(patterns)),
		zap.Int("candidates", len(primers)*len(patterns)),
		zap.Int("ciphertext_len", len(plan.Ciphertext)),
		zap.String("keyword", plan.Keyword),
	)

	results, err := a.Engine.Search(ctx, plan.Ciphertext, primers, plan.Keyword, patterns, search.Options{
		Workers: plan.Workers,
		TopK:    plan.TopK,
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	record := &ports.RunRecord{
		ID:           uuid.NewString(),
		StartedAt:    started,
		FinishedAt:   time.Now().UTC(),
		Ciphertext:   plan.Ciphertext,
		Keyword:      plan.Keyword,
		PrimerCount:  len(primers),
		PatternCount: len(patterns),
		TopK:         plan.TopK,
		Results:      storedResults(results),
	}

	elapsed := record.FinishedAt.Sub(record.StartedAt)
	fields := []zap.Field{
		zap.String("run_id", record.ID),
		zap.Duration("elapsed", elapsed),
		zap.Int("ranked", len(record.Results)),
	}
	if len(record.Results) > 0 {
		fields = append(fields, zap.Float64("best_score", record.Results[0].Score))
	}
	a.Log.Info("crack finished", fields...)

	if err := a.Store.SaveRun(record); err != nil {
		return record, fmt.Errorf("save run: %w", err)
	}
	return record, nil
}

func storedResults(results []search.Result) []ports.StoredResult {
	stored := make([]ports.StoredResult, len(results))
	for i, r := range results {
		stored[i] = ports.StoredResult{
			Score:     r.Score,
			Primer:    r.Primer,
			Pattern:   r.Pattern,
			Plaintext: r.Plaintext,
		}
	}
	return stored
}
