package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dentalref/dentalref/internal/config"
	"github.com/dentalref/dentalref/internal/output"
)

var drugsCmd = &cobra.Command{
	Use:   "drugs",
	Short: "Browse the drug reference",
}

var drugsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drugs",
	RunE:  runDrugsList,
}

var drugsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search drugs by name, class or indication",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrugsSearch,
}

var drugsShowCmd = &cobra.Command{
	Use:   "show <drug>",
	Short: "Show one drug in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrugsShow,
}

func init() {
	rootCmd.AddCommand(drugsCmd)
	drugsCmd.AddCommand(drugsListCmd)
	drugsCmd.AddCommand(drugsSearchCmd)
	drugsCmd.AddCommand(drugsShowCmd)
}

func runDrugsList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return output.Output(outputFmt, store.Drugs())
}

func runDrugsSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return output.Output(outputFmt, store.SearchDrugs(args[0]))
}

func runDrugsShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, d := range store.Drugs() {
		if d.ID == args[0] || strings.EqualFold(d.Name, args[0]) {
			return output.Output(outputFmt, &d)
		}
	}
	return fmt.Errorf("drug not found: %s", args[0])
}
