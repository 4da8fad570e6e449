package cipher

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidPrimer is returned when a primer yields fewer than two digits.
	ErrInvalidPrimer = errors.New("primer must contain at least two digits")
	// ErrInvalidPattern is returned when a custom modulus pattern is empty.
	ErrInvalidPattern = errors.New("modulus pattern must not be empty")
)

// Policy selects the modulus applied at each keystream generation step.
// Policies are resolved once per run, never re-branched per digit. The
// zero value is invalid; use one of the package policies or CustomPolicy.
type Policy struct {
	name      string
	modulusOf func(step int) int
}

var (
	// PolicyStandard reduces every step modulo 10, the classic decimal
	// lagged-Fibonacci keystream.
	PolicyStandard = Policy{name: "standard", modulusOf: func(int) int { return 10 }}

	// PolicyBerlin alternates modulo 5 on even steps and 12 on odd steps,
	// mirroring the Berlin Clock's hour and five-minute rows.
	PolicyBerlin = Policy{name: "berlin", modulusOf: func(step int) int {
		if step%2 == 0 {
			return 5
		}
		return 12
	}}

	// PolicyBase5 reduces every step modulo 5.
	PolicyBase5 = Policy{name: "base5", modulusOf: func(int) int { return 5 }}

	// PolicyBase12 reduces every step modulo 12.
	PolicyBase12 = Policy{name: "base12", modulusOf: func(int) int { return 12 }}
)

// CustomPolicy applies pattern cyclically: step i uses
// pattern[i mod len(pattern)]. The pattern is copied. An empty pattern
// produces an invalid policy; GenerateKeystream reports ErrInvalidPattern.
func CustomPolicy(pattern []int) Policy {
	if len(pattern) == 0 {
		return Policy{name: "custom"}
	}
	p := make([]int, len(pattern))
	copy(p, pattern)
	return Policy{name: "custom", modulusOf: func(step int) int { return p[step%len(p)] }}
}

// PolicyNamed resolves a named generator variant. The second return is
// false for names it does not know. Custom patterns have no name; build
// them with CustomPolicy.
func PolicyNamed(name string) (Policy, bool) {
	switch strings.ToLower(name) {
	case "standard":
		return PolicyStandard, true
	case "berlin":
		return PolicyBerlin, true
	case "base5":
		return PolicyBase5, true
	case "base12":
		return PolicyBase12, true
	}
	return Policy{}, false
}

// Name returns the policy's display name: "standard", "berlin", "base5",
// "base12" or "custom".
func (p Policy) Name() string { return p.name }

// GenerateKeystream produces length key digits from a primer. Digits are
// extracted from the primer string (anything else is skipped) and seed a
// sliding queue of fixed width: each step emits the queue head, then
// appends (head+second) mod policy's modulus for that step. Deterministic
// and safe for concurrent use.
//
// Returns ErrInvalidPrimer when the primer yields fewer than two digits
// and ErrInvalidPattern for an invalid policy.
func GenerateKeystream(primer string, length int, policy Policy) ([]int, error) {
	if policy.modulusOf == nil {
		return nil, ErrInvalidPattern
	}
	queue := primerDigits(primer)
	if len(queue) < 2 {
		return nil, ErrInvalidPrimer
	}
	if length <= 0 {
		return []int{}, nil
	}
	stream := make([]int, 0, length)
	for i := 0; i < length; i++ {
		stream = append(stream, queue[0])
		next := (queue[0] + queue[1]) % policy.modulusOf(i)
		copy(queue, queue[1:])
		queue[len(queue)-1] = next
	}
	return stream, nil
}

// primerDigits extracts the decimal digits of s in order.
func primerDigits(s string) []int {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	return digits
}
