// Package search enumerates (primer, pattern) candidates and drives them
// through keystream generation, decryption and scoring in parallel,
// keeping the top-K most English-looking results.
package search

import (
	"strconv"
	"strings"
)

// seedPatterns are always tried first: the Berlin Clock pair and its
// doubled form, the same shifted down by one, and the two single-modulus
// schedules.
var seedPatterns = [][]int{
	{5},
	{12},
	{5, 12},
	{5, 5, 12, 12},
	{4, 11},
	{4, 4, 11, 11},
}

// GeneratePatterns returns the modulus schedules a brute-force run tries:
// the six seed patterns, then every ordered combination with repetition
// of {5, 12} for each length from 2 through maxLength. Structural
// duplicates are skipped. Order is deterministic: seeds first, then
// lengths ascending, counting with 5 before 12 at every position. A
// maxLength below 2 yields the seeds alone.
func GeneratePatterns(maxLength int) [][]int {
	patterns := make([][]int, 0, len(seedPatterns))
	seen := make(map[string]bool)
	add := func(p []int) {
		key := PatternKey(p)
		if seen[key] {
			return
		}
		seen[key] = true
		patterns = append(patterns, p)
	}

	for _, seed := range seedPatterns {
		add(append([]int(nil), seed...))
	}

	for length := 2; length <= maxLength; length++ {
		for mask := 0; mask < 1<<length; mask++ {
			p := make([]int, length)
			for pos := 0; pos < length; pos++ {
				if mask&(1<<(length-1-pos)) != 0 {
					p[pos] = 12
				} else {
					p[pos] = 5
				}
			}
			add(p)
		}
	}
	return patterns
}

// PatternKey renders a pattern as comma-joined moduli ("5,12"). Used for
// structural dedup and as the display form.
func PatternKey(pattern []int) string {
	var b strings.Builder
	for i, m := range pattern {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(m))
	}
	return b.String()
}
