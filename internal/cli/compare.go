package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentalref/dentalref/internal/config"
	"github.com/dentalref/dentalref/internal/dataset"
	"github.com/dentalref/dentalref/internal/engine"
	"github.com/dentalref/dentalref/internal/output"
)

var compareCmd = &cobra.Command{
	Use:   "compare <material> <material> [material...]",
	Short: "Compare materials property by property",
	Long: `Score two or more materials across the union of their properties and
summarize each one with an average and rating.

Examples:
  dentalref compare composite-resin amalgam
  dentalref compare "Zirconia Crown" "Lithium Disilicate" pfm-crown --sort optical`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

var compareSort string

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareSort, "sort", "total",
		"Sort totals by: total, physical, biological, clinical, optical")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	materials := make([]dataset.Material, 0, len(args))
	for _, arg := range args {
		m := store.FindMaterial(arg)
		if m == nil {
			return fmt.Errorf("material not found: %s (try 'dentalref materials list')", arg)
		}
		materials = append(materials, *m)
	}

	matrix := engine.BuildComparisonMatrix(materials)
	matrix.SortTotals(compareSort)
	return output.Output(outputFmt, matrix)
}
