package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentalref/dentalref/internal/config"
	"github.com/dentalref/dentalref/internal/output"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Browse the materials dataset",
}

var materialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List materials",
	RunE:  runMaterialsList,
}

var materialsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search materials by name, category or indication",
	Args:  cobra.ExactArgs(1),
	RunE:  runMaterialsSearch,
}

var materialsShowCmd = &cobra.Command{
	Use:   "show <material>",
	Short: "Show one material in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runMaterialsShow,
}

var materialsCategory string

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.AddCommand(materialsListCmd)
	materialsCmd.AddCommand(materialsSearchCmd)
	materialsCmd.AddCommand(materialsShowCmd)

	materialsListCmd.Flags().StringVar(&materialsCategory, "category", "", "Filter by category")
}

func runMaterialsList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	materials := store.Materials()
	if materialsCategory != "" {
		materials = store.MaterialsByCategory(materialsCategory)
	}
	return output.Output(outputFmt, materials)
}

func runMaterialsSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return output.Output(outputFmt, store.SearchMaterials(args[0]))
}

func runMaterialsShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	m := store.FindMaterial(args[0])
	if m == nil {
		return fmt.Errorf("material not found: %s", args[0])
	}
	return output.Output(outputFmt, m)
}
