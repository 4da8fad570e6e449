// Package config loads crack plans: YAML documents describing one
// brute-force run (ciphertext, keyword, primer candidates, modulus
// patterns, ranking bounds). The plan layer owns input validation and
// primer-range sampling so the search engine only ever sees well-formed
// candidates.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/corey/gromark/internal/domain/search"
)

// Plan describes one brute-force crack run.
type Plan struct {
	Ciphertext string      `yaml:"ciphertext"`
	Keyword    string      `yaml:"keyword"` // empty or "none" = standard alphabet
	Primers    PrimerSpec  `yaml:"primers"`
	Patterns   PatternSpec `yaml:"patterns"`
	TopK       int         `yaml:"top_k"`
	Workers    int         `yaml:"workers"` // 0 = one per CPU
	Width      int         `yaml:"width"`   // display grid width
}

// PrimerSpec selects primer candidates: an explicit list, an inclusive
// numeric range, or both. A large range is sampled down to MaxSamples
// values with an even stride.
type PrimerSpec struct {
	List       []string `yaml:"list"`
	From       int64    `yaml:"from"`
	To         int64    `yaml:"to"` // 0 = no range
	MaxSamples int      `yaml:"max_samples"`
}

// PatternSpec selects modulus-pattern candidates: the enumerator's
// output up to MaxLength, plus any explicit extra schedules.
type PatternSpec struct {
	MaxLength int     `yaml:"max_length"`
	Extra     [][]int `yaml:"extra"`
}

// Load reads a plan from a YAML file, expands ${VAR} environment
// references, fills defaults and validates.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}

	data = expandEnvVars(data)

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}

	plan.ApplyDefaults()

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	return &plan, nil
}

// ApplyDefaults fills unset fields with default values. Explicit
// negative values are left for Validate to reject.
func (p *Plan) ApplyDefaults() {
	if p.TopK == 0 {
		p.TopK = 10
	}
	if p.Width == 0 {
		p.Width = 21
	}
	if p.Primers.MaxSamples == 0 {
		p.Primers.MaxSamples = 10000
	}
	if p.Patterns.MaxLength == 0 {
		p.Patterns.MaxLength = 4
	}
}

// Validate checks the plan for correctness. Errors name the offending
// field.
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Ciphertext) == "" {
		return fmt.Errorf("ciphertext is required")
	}
	if len(p.Primers.List) == 0 && p.Primers.To == 0 {
		return fmt.Errorf("primers: need a list or a from/to range")
	}
	for i, primer := range p.Primers.List {
		if !isDigits(primer) || len(primer) < 2 {
			return fmt.Errorf("primers.list[%d]: %q must be at least two decimal digits", i, primer)
		}
	}
	if p.Primers.To != 0 {
		if p.Primers.From < 0 || p.Primers.To < 0 {
			return fmt.Errorf("primers.from/to must not be negative")
		}
		if p.Primers.From > p.Primers.To {
			return fmt.Errorf("primers.from %d exceeds primers.to %d", p.Primers.From, p.Primers.To)
		}
	}
	if p.Primers.MaxSamples < 1 {
		return fmt.Errorf("primers.max_samples must be at least 1, got %d", p.Primers.MaxSamples)
	}
	if p.Patterns.MaxLength < 0 {
		return fmt.Errorf("patterns.max_length must not be negative, got %d", p.Patterns.MaxLength)
	}
	for i, pattern := range p.Patterns.Extra {
		if len(pattern) == 0 {
			return fmt.Errorf("patterns.extra[%d]: pattern must not be empty", i)
		}
		for _, m := range pattern {
			if m < 2 {
				return fmt.Errorf("patterns.extra[%d]: modulus %d must be at least 2", i, m)
			}
		}
	}
	if p.TopK < 1 {
		return fmt.Errorf("top_k must be at least 1, got %d", p.TopK)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", p.Workers)
	}
	if p.Width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", p.Width)
	}
	return nil
}

// PrimerCandidates expands the explicit list plus the sampled range,
// deduplicated, list entries first. Range values are decimal without
// padding; the stride is the smallest that keeps the range at or under
// MaxSamples values.
func (p *Plan) PrimerCandidates() []string {
	seen := make(map[string]bool, len(p.Primers.List))
	out := make([]string, 0, len(p.Primers.List))
	for _, primer := range p.Primers.List {
		if seen[primer] {
			continue
		}
		seen[primer] = true
		out = append(out, primer)
	}

	if p.Primers.To > 0 {
		stride := int64(1)
		span := p.Primers.To - p.Primers.From + 1
		if limit := int64(p.Primers.MaxSamples); span > limit {
			stride = (span + limit - 1) / limit
		}
		for v := p.Primers.From; v <= p.Primers.To; v += stride {
			primer := strconv.FormatInt(v, 10)
			if seen[primer] {
				continue
			}
			seen[primer] = true
			out = append(out, primer)
		}
	}
	return out
}

// PatternCandidates returns the enumerated schedules up to MaxLength
// plus the plan's extra patterns, structurally deduplicated.
func (p *Plan) PatternCandidates() [][]int {
	patterns := search.GeneratePatterns(p.Patterns.MaxLength)
	seen := make(map[string]bool, len(patterns))
	for _, pattern := range patterns {
		seen[search.PatternKey(pattern)] = true
	}
	for _, extra := range p.Patterns.Extra {
		key := search.PatternKey(extra)
		if seen[key] {
			continue
		}
		seen[key] = true
		patterns = append(patterns, append([]int(nil), extra...))
	}
	return patterns
}

// isDigits reports whether s is entirely decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
