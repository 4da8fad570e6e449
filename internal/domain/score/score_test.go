package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		// T+H+E letters, TH+HE bigrams, THE trigram, THE word.
		{"single common word", "THE", 67.852},
		// Same letters, only the TE bigram survives the scramble.
		{"scrambled word", "HTE", 32.852},
		{"empty", "", 0},
		{"phrase", "THE CLOCK IS EAST", 215.265},
		{"clue vocabulary", "EAST NORTHEAST BERLIN CLOCK", 308.686},
		// ABCDE occurs three times: 3 window positions x 10x3 penalty.
		{"periodic text", "ABCDEABCDEABCDE", 23.188},
		// AAAAA windows at 3 positions, each counted 3 times.
		{"degenerate run", "AAAAAAA", -32.831},
		// Two letters, two punctuation penalties.
		{"punctuation", "A;B?", -0.341},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Score(tc.text), 1e-9)
		})
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	assert.InDelta(t, Score("THE CLOCK IS EAST"), Score("the clock is east"), 1e-9)
	assert.InDelta(t, Score("THE CLOCK IS EAST"), Score("The Clock Is East"), 1e-9)
}

func TestScore_WordBeatsScramble(t *testing.T) {
	// A recognized word must outrank any permutation of the same letters
	// that carries no recognized sub-patterns.
	assert.Greater(t, Score("THE"), Score("HTE"))
	assert.Greater(t, Score("THE"), Score("EHT"))
	assert.Greater(t, Score("CLOCK"), Score("CKOCL"))
}

func TestScore_WhitespaceNeutral(t *testing.T) {
	assert.InDelta(t, 0, Score("   \t\n"), 1e-9)
	// AB is not a recognized bigram, so splitting it changes nothing.
	assert.InDelta(t, Score("AB"), Score("A B"), 1e-9)
}

func TestScore_NonAlphaPenalty(t *testing.T) {
	// Each symbol costs 5; whitespace costs nothing.
	assert.InDelta(t, Score("AB")-10, Score("AB;;"), 1e-9)
	assert.InDelta(t, Score("AB"), Score("AB  "), 1e-9)
}

func TestScore_RepetitionCollapse(t *testing.T) {
	// Two occurrences of ABCDE stay under the penalty threshold.
	assert.InDelta(t, 73.792, Score("ABCDEABCDE"), 1e-9)

	// The third occurrence trips the penalty at every matching window:
	// the text gains letters and bigrams yet the score drops.
	assert.Greater(t, Score("ABCDEABCDE"), Score("ABCDEABCDEABCDE"))

	// Highly periodic junk collapses far below short clean text.
	assert.Greater(t, Score("THE CLOCK"), Score("QWXJZQWXJZQWXJZQWXJZ"))
	assert.InDelta(t, -508.672, Score("QWXJZQWXJZQWXJZQWXJZ"), 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	text := "OBKRUOXOGHULBSOLIFBBWFLRVQQPRNGKSS"
	assert.Equal(t, Score(text), Score(text))
}
