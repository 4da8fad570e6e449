package cipher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAlphabet_Keyword(t *testing.T) {
	a := BuildAlphabet("KRYPTOS")
	assert.Equal(t, "KRYPTOSABCDEFGHIJLMNQUVWXZ", a.String())
}

func TestBuildAlphabet_DedupCaseAndNoise(t *testing.T) {
	cases := []struct {
		name    string
		keyword string
		want    string
	}{
		{"lowercase", "kryptos", "KRYPTOSABCDEFGHIJLMNQUVWXZ"},
		{"repeated letters", "BERLIN CLOCK", "BERLINCOKADFGHJMPQSTUVWXYZ"},
		{"mixed case with punctuation", "beRLin-clock!", "BERLINCOKADFGHJMPQSTUVWXYZ"},
		{"digits discarded", "K2R4Y", "KRYABCDEFGHIJLMNOPQSTUVWXZ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildAlphabet(tc.keyword).String())
		})
	}
}

func TestBuildAlphabet_NoneSentinel(t *testing.T) {
	standard := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, keyword := range []string{"", "none", "None", "NONE", "nOnE"} {
		assert.Equal(t, standard, BuildAlphabet(keyword).String(), "keyword %q", keyword)
	}
}

func TestBuildAlphabet_AlwaysPermutation(t *testing.T) {
	keywords := []string{"", "A", "ZZZ", "!?%42", "the quick brown fox jumps over the lazy dog", "none"}
	for _, keyword := range keywords {
		a := BuildAlphabet(keyword)
		s := a.String()
		assert.Len(t, s, 26, "keyword %q", keyword)
		for ch := byte('A'); ch <= 'Z'; ch++ {
			assert.Equal(t, 1, strings.Count(s, string(ch)), "keyword %q letter %c", keyword, ch)
		}
	}
}

func TestBuildAlphabet_IndexInvertsLetters(t *testing.T) {
	a := BuildAlphabet("KRYPTOS")
	for i, ch := range []byte(a.String()) {
		assert.Equal(t, i, int(a.index[ch-'A']))
	}
}
