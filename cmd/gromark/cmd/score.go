package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/domain/score"
)

var scoreCmd = &cobra.Command{
	Use:   "score [text]",
	Short: "Rate how much a text reads like English",
	Long: "Letter frequencies plus bonuses for common bigrams, trigrams and words,\n" +
		"minus penalties for stray symbols and mechanical repetition. Higher is\n" +
		"more plausible; scores only compare texts of similar length. Text comes\n" +
		"from the argument, or from stdin when omitted.",
	Args: maximumArgs(1),
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	text, err := textArg(cmd, args)
	if err != nil {
		return err
	}
	fmt.Printf("%.3f\n", score.Score(text))
	return nil
}
