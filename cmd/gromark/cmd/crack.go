package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/config"
)

var (
	crackPlanFlag       string
	crackCiphertextFlag string
	crackKeywordFlag    string
	crackPrimersFlag    []string
	crackFromFlag       int64
	crackToFlag         int64
	crackMaxSamplesFlag int
	crackMaxLengthFlag  int
	crackTopKFlag       int
	crackWorkersFlag    int
	crackWidthFlag      int
)

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Brute-force a ciphertext over primer and pattern candidates",
	Long: "Tries every (primer, pattern) pair, decrypts, scores the plaintexts and\n" +
		"keeps the top ranks. The run is saved for gromark history. Describe the\n" +
		"search in a --plan file or directly with flags.",
	Args: noArgs,
	RunE: runCrack,
}

func init() {
	crackCmd.Flags().StringVar(&crackPlanFlag, "plan", "", "YAML crack plan (input flags below are ignored)")
	crackCmd.Flags().StringVar(&crackCiphertextFlag, "ciphertext", "", "Ciphertext to attack")
	crackCmd.Flags().StringVar(&crackKeywordFlag, "keyword", "", "Alphabet keyword")
	crackCmd.Flags().StringSliceVar(&crackPrimersFlag, "primers", nil, "Explicit primer candidates")
	crackCmd.Flags().Int64Var(&crackFromFlag, "from", 0, "Primer range start")
	crackCmd.Flags().Int64Var(&crackToFlag, "to", 0, "Primer range end, inclusive (0 = no range)")
	crackCmd.Flags().IntVar(&crackMaxSamplesFlag, "max-samples", 0, "Primer range sample cap (default 10000)")
	crackCmd.Flags().IntVar(&crackMaxLengthFlag, "max-length", 0, "Longest enumerated modulus pattern (default 4)")
	crackCmd.Flags().IntVar(&crackTopKFlag, "top-k", 0, "Ranked results to keep (default 10)")
	crackCmd.Flags().IntVar(&crackWorkersFlag, "workers", 0, "Parallel workers (0 = one per CPU)")
	crackCmd.Flags().IntVar(&crackWidthFlag, "width", 0, "Grid width for the best plaintext (default 21)")
}

// crackPlan resolves the plan: a --plan file wins, otherwise one is
// assembled from the input flags.
func crackPlan() (*config.Plan, error) {
	if crackPlanFlag != "" {
		plan, err := config.Load(crackPlanFlag)
		if err != nil {
			return nil, usageError{err: err}
		}
		return plan, nil
	}

	plan := &config.Plan{
		Ciphertext: crackCiphertextFlag,
		Keyword:    crackKeywordFlag,
		Primers: config.PrimerSpec{
			List:       crackPrimersFlag,
			From:       crackFromFlag,
			To:         crackToFlag,
			MaxSamples: crackMaxSamplesFlag,
		},
		Patterns: config.PatternSpec{MaxLength: crackMaxLengthFlag},
		TopK:     crackTopKFlag,
		Workers:  crackWorkersFlag,
		Width:    crackWidthFlag,
	}
	plan.ApplyDefaults()
	if err := plan.Validate(); err != nil {
		return nil, usageError{err: err}
	}
	return plan, nil
}

func runCrack(cmd *cobra.Command, args []string) error {
	plan, err := crackPlan()
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	record, err := a.Crack(ctx, plan)
	if record != nil {
		fmt.Print(formatRun(record, plan.Width))
	}
	return err
}
