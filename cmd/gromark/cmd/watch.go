package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/ports"
)

var (
	watchPlanFlag  string
	watchWidthFlag int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Crack a plan file and recrack on every save",
	Long: "Runs the plan once, then watches the file and reruns the search each\n" +
		"time it is saved. Tune the plan in an editor and watch the ranking move.",
	Args: noArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchPlanFlag, "plan", "plan.yaml", "YAML crack plan to watch")
	watchCmd.Flags().IntVar(&watchWidthFlag, "width", 21, "Grid width for the best plaintext")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("watching %s (ctrl-c to stop)\n", watchPlanFlag)
	return a.Watch(ctx, watchPlanFlag, func(r *ports.RunRecord) {
		fmt.Print(formatRun(r, watchWidthFlag))
	})
}
