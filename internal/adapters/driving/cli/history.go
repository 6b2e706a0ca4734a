package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List past swap runs",
	Long: `Lists recent swap runs, most recent first. With a run ID, shows the
inputs, outputs and per-swapper summary of that run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of runs to list (default 20)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if len(args) == 1 {
		run, err := historyService.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get run: %w", err)
		}
		printRun(cmd, run)
		return nil
	}

	runs, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	st := stylesFor(cmd)
	for _, run := range runs {
		status := st.Success.Render("ok")
		if !run.Success {
			status = st.Error.Render("failed")
		}
		cmd.Printf("%s  %s  %-6s  %3d applied  %s\n",
			run.ID, run.StartedAt.Local().Format(time.DateTime), status,
			run.Applied(), run.ActualPath)
	}
	return nil
}

func printRun(cmd *cobra.Command, run *domain.RunRecord) {
	st := stylesFor(cmd)

	cmd.Println(st.Title.Render("Run " + run.ID))
	cmd.Printf("  Started:   %s\n", run.StartedAt.Local().Format(time.DateTime))
	cmd.Printf("  Duration:  %s\n", run.Duration().Round(time.Millisecond))
	cmd.Printf("  Workflow:  %s\n", run.WorkflowPath)
	cmd.Printf("  Actual:    %s\n", run.ActualPath)
	cmd.Printf("  Reference: %s\n", run.ReferencePath)
	if run.WeatherPath != "" {
		cmd.Printf("  Weather:   %s\n", run.WeatherPath)
	}
	if run.Success {
		cmd.Printf("  Status:    %s\n", st.Success.Render("ok"))
		cmd.Printf("  Model:     %s\n", run.ModelOut)
		cmd.Printf("  Output:    %s\n", run.WorkflowOut)
	} else {
		cmd.Printf("  Status:    %s\n", st.Error.Render("failed"))
		cmd.Printf("  Error:     %s\n", run.Error)
	}
	if len(run.Steps) > 0 {
		cmd.Println()
		printSteps(cmd, st, run.Steps)
	}
}
