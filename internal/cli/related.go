package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentalref/dentalref/internal/config"
	"github.com/dentalref/dentalref/internal/engine"
	"github.com/dentalref/dentalref/internal/output"
)

var relatedCmd = &cobra.Command{
	Use:   "related <procedure>",
	Short: "Find procedures related to the given one",
	Long: `Rank every other procedure by its relevance to the selected one,
grouped by relationship for treatment planning.

Examples:
  dentalref related root-canal
  dentalref related "Tooth Extraction" --limit 3`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

var relatedLimit int

func init() {
	rootCmd.AddCommand(relatedCmd)

	relatedCmd.Flags().IntVar(&relatedLimit, "limit", 0, "Maximum number of results")
}

func runRelated(cmd *cobra.Command, args []string) error {
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

	main := store.FindProcedure(args[0])
	if main == nil {
		return fmt.Errorf("procedure not found: %s (try 'dentalref procedures list')", args[0])
	}

	related := engine.RankRelated(main, store.Procedures())
	if relatedLimit > 0 && len(related) > relatedLimit {
		related = related[:relatedLimit]
	}
	return output.Output(outputFmt, related)
}
