package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/legisignal/internal/config"
	"github.com/fyrsmithlabs/legisignal/internal/heatmap"
)

var heatmapJSON bool

var heatmapCmd = &cobra.Command{
	Use:   "heatmap [file]",
	Short: "Build a priority heat map from a JSON input file or stdin",
	Long: `Heatmap reads a JSON object with bills, hearings, and contexts and
prints the ranked heat map as a plain-text brief (or JSON with --json).

Examples:
  # Render a brief from a tracked-records file
  legisignal heatmap records.json

  # Emit the heat map as JSON for downstream tooling
  legisignal heatmap --json records.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHeatmap,
}

func init() {
	heatmapCmd.Flags().BoolVar(&heatmapJSON, "json", false, "emit JSON instead of the plain-text brief")
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	in, closeFn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeFn()

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	var input heatmap.Input
	if err := json.Unmarshal(raw, &input); err != nil {
		return fmt.Errorf("invalid heat-map input: %w", err)
	}

	hm := heatmap.NewGenerator(cfg.Heatmap).Generate(input)

	if heatmapJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(hm)
	}
	fmt.Fprint(cmd.OutOrStdout(), hm.Render())
	return nil
}
