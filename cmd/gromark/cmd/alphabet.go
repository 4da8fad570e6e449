package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/domain/cipher"
)

var alphabetCmd = &cobra.Command{
	Use:   "alphabet [keyword]",
	Short: "Show the cipher alphabet a keyword produces",
	Long:  "Deduplicated keyword letters first, then the unused letters in order.\nNo keyword (or \"none\") gives the standard alphabet.",
	Args:  maximumArgs(1),
	RunE:  runAlphabet,
}

func runAlphabet(cmd *cobra.Command, args []string) error {
	keyword := ""
	if len(args) > 0 {
		keyword = args[0]
	}
	fmt.Println("plain:  ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	fmt.Printf("cipher: %s\n", cipher.BuildAlphabet(keyword))
	return nil
}
