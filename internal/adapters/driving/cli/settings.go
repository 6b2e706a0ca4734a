package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage swap settings",
	Long: `View and configure the swappers, matching tolerances, lighting and EMS
tokens, the workflow rewrite and the standards catalog.

Settings are stored in ~/.osmswap/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Long: `Set a single configuration key. Values are validated before saving.

Examples:
  osmswap settings set construction.matching nearest
  osmswap settings set construction.surface_types Floor,RoofCeiling
  osmswap settings set swappers.lighting false
  osmswap settings set workflow.arguments.run_sizing true
  osmswap settings set standards.office.template "90.1-2013"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	// Values such as "-1" are positional, not shorthand flags.
	settingsSetCmd.Flags().SetInterspersed(false)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Swappers]")
	for _, name := range domain.SwapOrder() {
		cmd.Printf("  %s: %s\n", name, yesNo(settings.IsEnabled(name)))
	}
	cmd.Println()

	cmd.Println("[Construction]")
	cmd.Printf("  Surface types: %s\n", strings.Join(settings.Construction.SurfaceTypes, ", "))
	cmd.Printf("  Boundary conditions: %s\n", strings.Join(settings.Construction.BoundaryConditions, ", "))
	cmd.Printf("  Area epsilon: %g\n", settings.Construction.AreaEpsilon)
	cmd.Printf("  Matching: %s\n", settings.Construction.Matching.Description())
	cmd.Println()

	cmd.Println("[Sizing]")
	cmd.Printf("  Epsilon: %g\n", settings.Sizing.Epsilon)
	cmd.Println()

	cmd.Println("[Equipment]")
	cmd.Printf("  Token: %s\n", settings.Equipment.Token)
	cmd.Printf("  Idempotent: %s\n", yesNo(settings.Equipment.Idempotent))
	cmd.Println()

	cmd.Println("[Lighting]")
	cmd.Printf("  Schedule: %s\n", settings.Lighting.Schedule)
	cmd.Printf("  EMS sensor token: %s\n", settings.Lighting.SensorToken)
	cmd.Printf("  EMS name token: %s\n", settings.Lighting.NameToken)
	cmd.Println()

	cmd.Println("[Policy]")
	cmd.Printf("  On insertion error: %s\n", settings.Insertion.Description())
	cmd.Println()

	cmd.Println("[Workflow]")
	if settings.Workflow.MeasureDir == "" {
		cmd.Println("  Measure dir: (not set, steps kept)")
	} else {
		cmd.Printf("  Measure dir: %s\n", settings.Workflow.MeasureDir)
	}
	for _, k := range slices.Sorted(maps.Keys(settings.Workflow.Arguments)) {
		cmd.Printf("  %s = %v\n", k, settings.Workflow.Arguments[k])
	}
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.HistoryEnabled))
	cmd.Println()

	cmd.Printf("[Standards] (%d entries)\n", settings.Standards.Len())
	for _, key := range settings.Standards.Keys() {
		tag, _ := settings.Standards.Lookup(key)
		cmd.Printf("  %s: %s / %s / %s\n", key, tag.Template, tag.BuildingType, tag.SpaceType)
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
