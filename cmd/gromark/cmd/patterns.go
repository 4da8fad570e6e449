package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/domain/search"
)

var patternsMaxLengthFlag int

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the modulus schedules the cracker enumerates",
	Args:  noArgs,
	RunE:  runPatterns,
}

func init() {
	patternsCmd.Flags().IntVar(&patternsMaxLengthFlag, "max-length", 4, "Longest enumerated base-5/base-12 cycle")
}

func runPatterns(cmd *cobra.Command, args []string) error {
	patterns := search.GeneratePatterns(patternsMaxLengthFlag)
	for _, p := range patterns {
		fmt.Println(search.PatternKey(p))
	}
	fmt.Printf("%d schedules\n", len(patterns))
	return nil
}
