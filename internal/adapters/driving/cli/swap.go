package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

var (
	swapToggles    = make(map[string]*toggle)
	swapMatching   string
	swapOnInsert   string
	swapMeasureDir string
)

var swapCmd = &cobra.Command{
	Use:   "swap <workflow> <actual-model> <reference-model> [weather]",
	Short: "Swap reference data into the actual model",
	Long: `Runs the enabled swappers in order (construction, sizing, designday,
airloop, equipment, lighting, spacetype) against a copy of the actual model.

The swapped model and workflow are written next to their inputs with _swap
inserted before the extension. Nothing is written if any step fails.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runSwap,
}

func init() {
	addSwapFlags(swapCmd)
	rootCmd.AddCommand(swapCmd)
}

// addSwapFlags registers the flags shared by swap and watch.
func addSwapFlags(cmd *cobra.Command) {
	for _, name := range domain.SwapOrder() {
		t, ok := swapToggles[name]
		if !ok {
			t = &toggle{}
			swapToggles[name] = t
		}
		cmd.Flags().Var(t, name, fmt.Sprintf("enable the %s swap (0 or 1)", name))
	}
	cmd.Flags().StringVar(&swapMatching, "matching", "", "surface matching: strict or nearest")
	cmd.Flags().StringVar(&swapOnInsert, "on-insert-error", "", "bulk insertion failures: fail or skip")
	cmd.Flags().StringVar(&swapMeasureDir, "measure-dir", "", "replace workflow steps with this measure")
}

// swapRequest resolves settings and applies the command-line overrides.
func swapRequest(args []string) (domain.SwapRequest, error) {
	if settingsService == nil {
		return domain.SwapRequest{}, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.SwapRequest{}, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.Enabled == nil {
		settings.Enabled = make(map[string]bool)
	}
	for name, t := range swapToggles {
		if t.set {
			settings.Enabled[name] = t.value
		}
	}
	if swapMatching != "" {
		mode := domain.MatchMode(swapMatching)
		if !mode.IsValid() {
			return domain.SwapRequest{}, fmt.Errorf("%w: --matching %q", domain.ErrInvalidInput, swapMatching)
		}
		settings.Construction.Matching = mode
	}
	if swapOnInsert != "" {
		policy := domain.InsertionPolicy(swapOnInsert)
		if !policy.IsValid() {
			return domain.SwapRequest{}, fmt.Errorf("%w: --on-insert-error %q", domain.ErrInvalidInput, swapOnInsert)
		}
		settings.Insertion = policy
	}
	if swapMeasureDir != "" {
		settings.Workflow.MeasureDir = swapMeasureDir
	}

	req := domain.SwapRequest{
		WorkflowPath:  args[0],
		ActualPath:    args[1],
		ReferencePath: args[2],
		Settings:      settings,
	}
	if len(args) == 4 {
		req.WeatherPath = args[3]
	}
	return req, nil
}

func runSwap(cmd *cobra.Command, args []string) error {
	if swapService == nil {
		return errors.New("swap service not configured")
	}

	req, err := swapRequest(args)
	if err != nil {
		return err
	}
	if len(req.Settings.EnabledSwappers()) == 0 {
		return fmt.Errorf("%w: every swapper is disabled", domain.ErrInvalidInput)
	}

	result, err := swapService.Run(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("swap failed: %w", err)
	}

	printResult(cmd, result)
	return nil
}
