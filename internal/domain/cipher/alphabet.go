// Package cipher implements a Gromark-style polyalphabetic substitution
// cipher: a keyword-mixed alphabet paired with a running digit keystream.
//
// Everything in this package is pure and allocation-light. Alphabets and
// policies are built once per run and shared read-only across workers;
// keystreams are generated fresh per candidate.
package cipher

import "strings"

const alphabetSize = 26

// Alphabet is a keyword-derived permutation of the 26 uppercase letters.
// letters holds the permutation; index maps a letter back to its position
// so decryption lookups stay O(1). Construct with BuildAlphabet: the zero
// value is the all-'A' array, not a valid permutation.
type Alphabet struct {
	letters [alphabetSize]byte
	index   [alphabetSize]int8
}

// BuildAlphabet derives a cipher alphabet from a keyword. Keyword letters
// are placed first in first-occurrence order without repetition (case
// folded, non-letters discarded), then the remaining letters A-Z in
// alphabetical order. An empty keyword or the literal placeholder "none"
// yields the identity alphabet. There is no error path: any input
// produces a valid permutation.
func BuildAlphabet(keyword string) Alphabet {
	var a Alphabet
	var seen [alphabetSize]bool
	n := 0
	if keyword != "" && !strings.EqualFold(keyword, "none") {
		for _, r := range keyword {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			if r < 'A' || r > 'Z' || seen[r-'A'] {
				continue
			}
			seen[r-'A'] = true
			a.letters[n] = byte(r)
			n++
		}
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		if !seen[ch-'A'] {
			a.letters[n] = ch
			n++
		}
	}
	for i, ch := range a.letters {
		a.index[ch-'A'] = int8(i)
	}
	return a
}

// String returns the 26-letter permutation, keyword letters first.
func (a Alphabet) String() string {
	return string(a.letters[:])
}
