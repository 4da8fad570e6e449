package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter crack plan",
	Long:  "Writes a plan targeting the unsolved fourth Kryptos panel. Edit it, then\nrun gromark crack --plan or gromark watch.",
	Args:  maximumArgs(1),
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "plan.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return usagef("%s already exists, not overwriting", path)
	}
	if err := os.WriteFile(path, []byte(config.StarterPlan), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Printf("wrote %s\n", path)
	fmt.Printf("edit the plan, then: gromark crack --plan %s\n", path)
	return nil
}
