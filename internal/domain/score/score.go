// Package score rates how much a text reads like natural English. The
// score is a heuristic ranking signal for brute-force candidate
// decryptions, not a statistical model: higher means more English-like,
// absolute values carry no meaning, and near-ties are expected.
package score

import (
	"strings"
	"unicode"
)

// Bonus and penalty weights. Letter frequencies (tables.go) land in
// roughly [0.07, 12.7] per letter, so a single recognized word outweighs
// about two average letters of noise.
const (
	bigramBonus      = 5
	trigramBonus     = 10
	wordBonus        = 20
	nonAlphaPenalty  = 5
	repetitionFactor = 10
	repetitionWindow = 5
)

// Score rates text by single-letter frequency, common bigram/trigram
// windows, exact common-word tokens, a penalty per character that is
// neither A-Z nor whitespace, and a steep penalty for repeated 5-grams.
// Pure and deterministic; cost is near-linear in len(text), so it is
// safe to call once per candidate in a large brute-force run.
func Score(text string) float64 {
	up := strings.ToUpper(text)
	var total float64

	for _, r := range up {
		switch {
		case r >= 'A' && r <= 'Z':
			total += letterFrequency[r-'A']
		case unicode.IsSpace(r):
		default:
			total -= nonAlphaPenalty
		}
	}

	for i := 0; i+2 <= len(up); i++ {
		if commonBigrams[up[i:i+2]] {
			total += bigramBonus
		}
	}
	for i := 0; i+3 <= len(up); i++ {
		if commonTrigrams[up[i:i+3]] {
			total += trigramBonus
		}
	}

	for _, token := range strings.Fields(up) {
		if commonWords[token] {
			total += wordBonus
		}
	}

	return total - repetitionPenalty(up)
}

// repetitionPenalty charges repetitionFactor times the total occurrence
// count of a 5-gram, once at every window position where that 5-gram
// occurs more than twice. A window repeated n times therefore costs
// 10*n at each of its n positions; the cumulative collapse for periodic
// junk text is deliberate. Counting windows up front keeps the scan
// linear without changing what is charged.
func repetitionPenalty(up string) float64 {
	if len(up) < repetitionWindow {
		return 0
	}
	counts := make(map[string]int, len(up))
	for i := 0; i+repetitionWindow <= len(up); i++ {
		counts[up[i:i+repetitionWindow]]++
	}
	var penalty float64
	for i := 0; i+repetitionWindow <= len(up); i++ {
		if c := counts[up[i:i+repetitionWindow]]; c > 2 {
			penalty += repetitionFactor * float64(c)
		}
	}
	return penalty
}
