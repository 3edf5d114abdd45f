package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentalref/dentalref/internal/config"
	"github.com/dentalref/dentalref/internal/output"
)

var proceduresCmd = &cobra.Command{
	Use:   "procedures",
	Short: "Browse the procedures dataset",
}

var proceduresListCmd = &cobra.Command{
	Use:   "list",
	Short: "List procedures",
	RunE:  runProceduresList,
}

var proceduresSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search procedures by name, category or diagnosis",
	Args:  cobra.ExactArgs(1),
	RunE:  runProceduresSearch,
}

var proceduresShowCmd = &cobra.Command{
	Use:   "show <procedure>",
	Short: "Show one procedure in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runProceduresShow,
}

var proceduresCategory string

func init() {
	rootCmd.AddCommand(proceduresCmd)
	proceduresCmd.AddCommand(proceduresListCmd)
	proceduresCmd.AddCommand(proceduresSearchCmd)
	proceduresCmd.AddCommand(proceduresShowCmd)

	proceduresListCmd.Flags().StringVar(&proceduresCategory, "category", "", "Filter by category")
}

func runProceduresList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	procedures := store.Procedures()
	if proceduresCategory != "" {
		procedures = store.ProceduresByCategory(proceduresCategory)
	}
	return output.Output(outputFmt, procedures)
}

func runProceduresSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return output.Output(outputFmt, store.SearchProcedures(args[0]))
}

func runProceduresShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	p := store.FindProcedure(args[0])
	if p == nil {
		return fmt.Errorf("procedure not found: %s", args[0])
	}
	return output.Output(outputFmt, p)
}
