package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad_FullPlan(t *testing.T) {
	path := writePlan(t, `
ciphertext: "OBKRUOXOGHULBSOLIFBBW"
keyword: KRYPTOS
primers:
  list: ["31415", "98800"]
  from: 10000
  to: 99999
  max_samples: 500
patterns:
  max_length: 3
  extra:
    - [10]
    - [5, 12]
top_k: 25
workers: 4
width: 10
`)

	plan, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "OBKRUOXOGHULBSOLIFBBW", plan.Ciphertext)
	assert.Equal(t, "KRYPTOS", plan.Keyword)
	assert.Equal(t, []string{"31415", "98800"}, plan.Primers.List)
	assert.Equal(t, int64(10000), plan.Primers.From)
	assert.Equal(t, int64(99999), plan.Primers.To)
	assert.Equal(t, 500, plan.Primers.MaxSamples)
	assert.Equal(t, 3, plan.Patterns.MaxLength)
	assert.Equal(t, [][]int{{10}, {5, 12}}, plan.Patterns.Extra)
	assert.Equal(t, 25, plan.TopK)
	assert.Equal(t, 4, plan.Workers)
	assert.Equal(t, 10, plan.Width)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writePlan(t, `
ciphertext: "OBKR"
primers:
  list: ["31415"]
`)

	plan, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, plan.TopK)
	assert.Equal(t, 0, plan.Workers)
	assert.Equal(t, 21, plan.Width)
	assert.Equal(t, 10000, plan.Primers.MaxSamples)
	assert.Equal(t, 4, plan.Patterns.MaxLength)
	assert.Empty(t, plan.Keyword)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("GROMARK_TEST_CIPHERTEXT", "SECRETTEXT")

	path := writePlan(t, `
ciphertext: ${GROMARK_TEST_CIPHERTEXT}
keyword: ${GROMARK_TEST_KEYWORD:-KRYPTOS}
primers:
  list: ["31415"]
`)

	plan, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "SECRETTEXT", plan.Ciphertext)
	assert.Equal(t, "KRYPTOS", plan.Keyword)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read plan")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writePlan(t, "ciphertext: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse plan")
}

func TestValidate_RejectsBadPlans(t *testing.T) {
	base := func() *Plan {
		p := &Plan{
			Ciphertext: "OBKR",
			Primers:    PrimerSpec{List: []string{"31415"}},
		}
		p.ApplyDefaults()
		return p
	}

	tests := []struct {
		name    string
		mutate  func(*Plan)
		wantErr string
	}{
		{
			name:    "empty ciphertext",
			mutate:  func(p *Plan) { p.Ciphertext = "  " },
			wantErr: "ciphertext",
		},
		{
			name: "no primers at all",
			mutate: func(p *Plan) {
				p.Primers.List = nil
				p.Primers.To = 0
			},
			wantErr: "primers",
		},
		{
			name:    "non-digit primer entry",
			mutate:  func(p *Plan) { p.Primers.List = []string{"31a15"} },
			wantErr: "primers.list[0]",
		},
		{
			name:    "one-digit primer entry",
			mutate:  func(p *Plan) { p.Primers.List = []string{"7"} },
			wantErr: "at least two decimal digits",
		},
		{
			name: "inverted range",
			mutate: func(p *Plan) {
				p.Primers.From = 500
				p.Primers.To = 100
			},
			wantErr: "exceeds",
		},
		{
			name: "negative range bound",
			mutate: func(p *Plan) {
				p.Primers.From = -5
				p.Primers.To = -1
			},
			wantErr: "negative",
		},
		{
			name:    "negative max_samples",
			mutate:  func(p *Plan) { p.Primers.MaxSamples = -1 },
			wantErr: "max_samples",
		},
		{
			name:    "empty extra pattern",
			mutate:  func(p *Plan) { p.Patterns.Extra = [][]int{{}} },
			wantErr: "patterns.extra[0]",
		},
		{
			name:    "modulus below two",
			mutate:  func(p *Plan) { p.Patterns.Extra = [][]int{{5, 1}} },
			wantErr: "at least 2",
		},
		{
			name:    "negative top_k",
			mutate:  func(p *Plan) { p.TopK = -3 },
			wantErr: "top_k",
		},
		{
			name:    "negative workers",
			mutate:  func(p *Plan) { p.Workers = -1 },
			wantErr: "workers",
		},
		{
			name:    "negative width",
			mutate:  func(p *Plan) { p.Width = -2 },
			wantErr: "width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := base()
			tt.mutate(plan)
			err := plan.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("base plan is valid", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})
}

func TestPrimerCandidates_ListOnly(t *testing.T) {
	plan := &Plan{
		Primers: PrimerSpec{
			List:       []string{"31415", "26535", "31415"},
			MaxSamples: 10000,
		},
	}

	assert.Equal(t, []string{"31415", "26535"}, plan.PrimerCandidates())
}

func TestPrimerCandidates_SmallRange(t *testing.T) {
	plan := &Plan{
		Primers: PrimerSpec{From: 100, To: 105, MaxSamples: 10000},
	}

	assert.Equal(t, []string{"100", "101", "102", "103", "104", "105"}, plan.PrimerCandidates())
}

func TestPrimerCandidates_SampledRange(t *testing.T) {
	plan := &Plan{
		Primers: PrimerSpec{From: 10000, To: 19999, MaxSamples: 100},
	}

	got := plan.PrimerCandidates()
	require.Len(t, got, 100)
	assert.Equal(t, "10000", got[0])
	assert.Equal(t, "10100", got[1])
	assert.Equal(t, "19900", got[99])

	seen := make(map[string]bool, len(got))
	for _, primer := range got {
		assert.False(t, seen[primer], "duplicate primer %s", primer)
		seen[primer] = true
	}
}

func TestPrimerCandidates_ListBeforeRangeAndDeduped(t *testing.T) {
	plan := &Plan{
		Primers: PrimerSpec{
			List:       []string{"102"},
			From:       100,
			To:         103,
			MaxSamples: 10000,
		},
	}

	assert.Equal(t, []string{"102", "100", "101", "103"}, plan.PrimerCandidates())
}

func TestPatternCandidates(t *testing.T) {
	plan := &Plan{Patterns: PatternSpec{MaxLength: 4}}
	base := plan.PatternCandidates()

	withNew := &Plan{Patterns: PatternSpec{MaxLength: 4, Extra: [][]int{{10}}}}
	got := withNew.PatternCandidates()
	require.Len(t, got, len(base)+1)
	assert.Equal(t, []int{10}, got[len(got)-1])

	// Extras already produced by the enumerator are dropped.
	withDup := &Plan{Patterns: PatternSpec{MaxLength: 4, Extra: [][]int{{5, 12}, {10}}}}
	got = withDup.PatternCandidates()
	assert.Len(t, got, len(base)+1)
}

func TestStarterPlan_Loads(t *testing.T) {
	path := writePlan(t, StarterPlan)

	plan, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, plan.Ciphertext, 97)
	assert.Equal(t, "KRYPTOS", plan.Keyword)
	assert.Equal(t, []string{"31415", "26535"}, plan.Primers.List)
	assert.Equal(t, int64(10000), plan.Primers.From)
	assert.Equal(t, int64(99999), plan.Primers.To)
	assert.Equal(t, 21, plan.Width)

	var hasBase10 bool
	for _, pattern := range plan.PatternCandidates() {
		if len(pattern) == 1 && pattern[0] == 10 {
			hasBase10 = true
		}
	}
	assert.True(t, hasBase10, "starter plan should try the base-10 schedule")
}
