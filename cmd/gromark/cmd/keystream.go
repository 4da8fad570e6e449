package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/domain/cipher"
)

var (
	keystreamPolicyFlag  string
	keystreamPatternFlag string
)

var keystreamCmd = &cobra.Command{
	Use:   "keystream <primer> <length>",
	Short: "Expand a primer into its digit keystream",
	Args:  exactArgs(2),
	RunE:  runKeystream,
}

func init() {
	keystreamCmd.Flags().StringVar(&keystreamPolicyFlag, "policy", "standard", "Modulus policy: standard, berlin, base5, base12")
	keystreamCmd.Flags().StringVar(&keystreamPatternFlag, "pattern", "", "Cyclic modulus pattern like 5,12 (overrides --policy)")
}

func runKeystream(cmd *cobra.Command, args []string) error {
	length, err := strconv.Atoi(args[1])
	if err != nil || length < 0 {
		return usagef("length %q must be a non-negative number", args[1])
	}
	policy, err := resolvePolicy(keystreamPolicyFlag, keystreamPatternFlag)
	if err != nil {
		return err
	}
	stream, err := cipher.GenerateKeystream(args[0], length, policy)
	if err != nil {
		return usagef("primer %q: %v", args[0], err)
	}
	fmt.Println(formatStream(stream))
	return nil
}
