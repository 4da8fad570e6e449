package cipher

import "strings"

// Encrypt enciphers text positionally: the i-th character pairs with
// keystream[i]. A letter at standard-alphabet position i becomes the
// cipher-alphabet letter at (i+digit) mod 26. Non-letters pass through
// unchanged but still consume their digit. Case is preserved per
// character. Excess keystream digits are unused; when the stream is
// shorter than the text, output stops at the last paired character.
func Encrypt(text string, keystream []int, a Alphabet) string {
	return transform(text, keystream, func(up byte, digit int) byte {
		i := int(up - 'A')
		return a.letters[(i+digit)%alphabetSize]
	})
}

// Decrypt inverts Encrypt under the same alphabet and keystream: the
// cipher-alphabet position j of a letter maps back to the standard
// letter at (j-digit) mod 26. Passthrough, case and pairing rules match
// Encrypt.
func Decrypt(text string, keystream []int, a Alphabet) string {
	return transform(text, keystream, func(up byte, digit int) byte {
		j := int(a.index[up-'A'])
		idx := ((j-digit)%alphabetSize + alphabetSize) % alphabetSize
		return 'A' + byte(idx)
	})
}

// transform walks text rune by rune, pairing each character with the
// next keystream digit and substituting A-Z letters through subst.
func transform(text string, keystream []int, subst func(up byte, digit int) byte) string {
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, r := range text {
		if pos >= len(keystream) {
			break
		}
		digit := keystream[pos]
		pos++

		up := r
		lower := false
		if r >= 'a' && r <= 'z' {
			up = r - ('a' - 'A')
			lower = true
		}
		if up < 'A' || up > 'Z' {
			b.WriteRune(r)
			continue
		}
		out := subst(byte(up), digit)
		if lower {
			out += 'a' - 'A'
		}
		b.WriteByte(out)
	}
	return b.String()
}
