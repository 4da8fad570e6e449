package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/corey/gromark/internal/domain/search"
	"github.com/corey/gromark/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// formatStream renders a keystream as space-separated digits. Base-12
// streams carry two-digit values, so the digits can't be run together.
func formatStream(stream []int) string {
	parts := make([]string, len(stream))
	for i, d := range stream {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, " ")
}

// formatGrid chunks text into rows of width runes, the classic display
// for fixed-width ciphertext panels.
func formatGrid(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	var sb strings.Builder
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		if start > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(runes[start:end]))
	}
	return sb.String()
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// shortID returns the first UUID group, enough to pick a run out.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// formatResults renders ranked results, then the best plaintext as a
// grid when it is long enough to wrap.
func formatResults(results []ports.StoredResult, width int) string {
	if len(results) == 0 {
		return "  nothing ranked\n"
	}

	var sb strings.Builder
	for i, r := range results {
		sb.WriteString(fmt.Sprintf("  %2d. %s%9.3f%s  %s%s%s  [%s]  %s\n",
			i+1,
			colorGreen, r.Score, colorReset,
			colorCyan, r.Primer, colorReset,
			search.PatternKey(r.Pattern),
			truncate(r.Plaintext, 60)))
	}

	best := results[0]
	if width > 0 && len([]rune(best.Plaintext)) > width {
		sb.WriteString(fmt.Sprintf("\n%sbest plaintext%s (primer %s, pattern %s):\n%s\n",
			colorBold, colorReset,
			best.Primer, search.PatternKey(best.Pattern),
			formatGrid(best.Plaintext, width)))
	}
	return sb.String()
}

// formatRun is the one-run view printed after a crack.
func formatRun(r *ports.RunRecord, width int) string {
	elapsed := r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond)
	header := fmt.Sprintf("%srun %s%s │ %d candidates │ %s\n",
		colorBold, shortID(r.ID), colorReset,
		r.PrimerCount*r.PatternCount, elapsed)
	return header + formatResults(r.Results, width)
}

// formatRunDetail is the full view for history show.
func formatRunDetail(r *ports.RunRecord, width int) string {
	keyword := r.Keyword
	if keyword == "" {
		keyword = "(none)"
	}
	elapsed := r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%srun %s%s\n", colorBold, r.ID, colorReset))
	sb.WriteString(fmt.Sprintf("  started: %s\n", r.StartedAt.Local().Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("  elapsed: %s\n", elapsed))
	sb.WriteString(fmt.Sprintf("  keyword: %s\n", keyword))
	sb.WriteString(fmt.Sprintf("  space:   %d primers x %d patterns = %d candidates\n",
		r.PrimerCount, r.PatternCount, r.PrimerCount*r.PatternCount))
	sb.WriteString(fmt.Sprintf("  top_k:   %d\n", r.TopK))
	sb.WriteString(fmt.Sprintf("\n%sciphertext%s:\n%s%s%s\n\n",
		colorBold, colorReset, colorGray, formatGrid(r.Ciphertext, width), colorReset))
	sb.WriteString(formatResults(r.Results, width))
	return sb.String()
}

// formatRunList is the history table.
func formatRunList(summaries []ports.RunSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s%-10s %-19s %10s %10s  %s%s\n",
		colorBold, "ID", "STARTED", "CANDIDATES", "BEST", "PLAINTEXT", colorReset))
	for _, s := range summaries {
		sb.WriteString(fmt.Sprintf("%-10s %-19s %10d %10.3f  %s\n",
			shortID(s.ID),
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			s.CandidateCount,
			s.BestScore,
			truncate(s.BestPlaintext, 40)))
	}
	return sb.String()
}
