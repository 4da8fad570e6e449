package cmd

import (
	"strconv"
	"strings"

	"github.com/corey/gromark/internal/domain/cipher"
)

// parsePattern parses a comma-separated modulus pattern like "5,12".
func parsePattern(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	pattern := make([]int, 0, len(parts))
	for _, part := range parts {
		m, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, usagef("pattern %q: %q is not a number", s, strings.TrimSpace(part))
		}
		if m < 2 {
			return nil, usagef("pattern %q: modulus %d must be at least 2", s, m)
		}
		pattern = append(pattern, m)
	}
	return pattern, nil
}

// resolvePolicy picks the keystream policy. An explicit --pattern wins
// over --policy.
func resolvePolicy(policyName, patternCSV string) (cipher.Policy, error) {
	if patternCSV != "" {
		pattern, err := parsePattern(patternCSV)
		if err != nil {
			return cipher.Policy{}, err
		}
		return cipher.CustomPolicy(pattern), nil
	}
	policy, ok := cipher.PolicyNamed(policyName)
	if !ok {
		return cipher.Policy{}, usagef("unknown policy %q (want standard, berlin, base5 or base12)", policyName)
	}
	return policy, nil
}
