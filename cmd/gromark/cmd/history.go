package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/app"
	"github.com/corey/gromark/internal/ports"
)

var historyWidthFlag int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse stored crack runs",
	Args:  noArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one stored run in full",
	Args:  exactArgs(1),
	RunE:  runHistoryShow,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <run-id>",
	Short: "Delete a stored run",
	Args:  exactArgs(1),
	RunE:  runHistoryRm,
}

func init() {
	historyShowCmd.Flags().IntVar(&historyWidthFlag, "width", 21, "Grid width for ciphertext and best plaintext")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRmCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	summaries, err := a.Store.ListRuns()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("no runs stored")
		return nil
	}
	fmt.Print(formatRunList(summaries))
	return nil
}

// resolveRun loads a run by ID, accepting any unambiguous prefix so the
// short IDs printed by the list are usable directly.
func resolveRun(a *app.App, id string) (*ports.RunRecord, error) {
	record, err := a.Store.LoadRun(id)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	summaries, err := a.Store.ListRuns()
	if err != nil {
		return nil, err
	}
	var match string
	for _, s := range summaries {
		if !strings.HasPrefix(s.ID, id) {
			continue
		}
		if match != "" {
			return nil, usagef("run id %q is ambiguous", id)
		}
		match = s.ID
	}
	if match == "" {
		return nil, usagef("no run matching %q", id)
	}
	return a.Store.LoadRun(match)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	record, err := resolveRun(a, args[0])
	if err != nil {
		return err
	}
	fmt.Print(formatRunDetail(record, historyWidthFlag))
	return nil
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	record, err := resolveRun(a, args[0])
	if err != nil {
		return err
	}
	if err := a.Store.DeleteRun(record.ID); err != nil {
		return err
	}
	fmt.Printf("deleted run %s\n", record.ID)
	return nil
}
