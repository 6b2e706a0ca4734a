package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// palette for terminal output.
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6C7086")
	colorSuccess = lipgloss.Color("#A6E3A1")
	colorError   = lipgloss.Color("#F38BA8")
)

// styles holds the lipgloss styles used by command output.
type styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// plainStyles renders text unchanged.
func plainStyles() styles {
	return styles{
		Title:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
	}
}

func colorStyles() styles {
	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Error:   lipgloss.NewStyle().Foreground(colorError),
	}
}

// stylesFor colours output only when the command writes to a terminal.
func stylesFor(cmd *cobra.Command) styles {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return plainStyles()
	}
	return colorStyles()
}

// printResult prints the output paths and per-swapper summary of a run.
func printResult(cmd *cobra.Command, result *domain.SwapResult) {
	st := stylesFor(cmd)

	cmd.Println(st.Success.Render("Swap complete"))
	cmd.Printf("  Model:    %s\n", result.ModelOut)
	cmd.Printf("  Workflow: %s\n", result.WorkflowOut)
	if result.RunID != "" {
		cmd.Println(st.Muted.Render("  Run:      " + result.RunID))
	}
	if len(result.Steps) == 0 {
		return
	}

	cmd.Println()
	cmd.Println(st.Title.Render("Steps"))
	printSteps(cmd, st, result.Steps)
}

func printSteps(cmd *cobra.Command, st styles, steps []domain.StepReport) {
	for _, step := range steps {
		cmd.Printf("  %-13s applied %d", step.Swapper, step.Applied)
		if len(step.Skipped) > 0 {
			cmd.Print(st.Muted.Render(", skipped " + strings.Join(step.Skipped, ", ")))
		}
		cmd.Println()
	}
}
