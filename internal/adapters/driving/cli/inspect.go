package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

var inspectQuery string

var inspectCmd = &cobra.Command{
	Use:   "inspect <model> <handle-or-name>",
	Short: "Show an object of a model and its parents",
	Long: `Finds an object by handle (e.g. {8a1b...}) or by name and prints its
fields followed by its parent chain.`,
	Args: cobra.ExactArgs(2),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectQuery, "query", "q", "", "only show fields whose name contains this text")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectService == nil {
		return errors.New("inspect service not configured")
	}

	inspection, err := inspectService.Describe(cmd.Context(), args[0], args[1], inspectQuery)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	st := stylesFor(cmd)
	printObject(cmd, st, inspection.Object, "")
	for i, parent := range inspection.Ancestors {
		cmd.Println()
		cmd.Println(st.Muted.Render(fmt.Sprintf("parent %d", i+1)))
		printObject(cmd, st, parent, "  ")
	}
	return nil
}

func printObject(cmd *cobra.Command, st styles, obj domain.ObjectSummary, indent string) {
	title := obj.Type
	if obj.Name != "" {
		title += " " + obj.Name
	}
	cmd.Println(indent + st.Title.Render(title))
	cmd.Printf("%s  Handle: %s\n", indent, obj.Handle)
	for _, f := range obj.Fields {
		cmd.Printf("%s  %s: %s\n", indent, f.Name, f.Value)
	}
}
