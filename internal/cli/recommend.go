package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentalref/dentalref/internal/config"
	"github.com/dentalref/dentalref/internal/engine"
	"github.com/dentalref/dentalref/internal/output"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend materials for a clinical case",
	Long: `Rank materials against a set of clinical criteria and explain each score.

Examples:
  dentalref recommend --procedure "Class II restoration" --location posterior --stress high
  dentalref recommend --procedure "Anterior crown" --aesthetics critical --cost premium
  dentalref recommend --from-profile molar-case -o json`,
	RunE: runRecommend,
}

var (
	recommendCriteria criteriaFlags
	recommendTop      int
	recommendFrom     string
	recommendSelected []string
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCriteria.register(recommendCmd)
	recommendCmd.Flags().IntVar(&recommendTop, "top", 0, "Number of results (default from config)")
	recommendCmd.Flags().StringVar(&recommendFrom, "from-profile", "", "Use a saved criteria profile instead of flags")
	recommendCmd.Flags().StringArrayVar(&recommendSelected, "selected", nil, "Material ID already selected for comparison (repeatable)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, db, cleanup, err := openData(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var profile *engine.CriteriaProfile
	if recommendFrom != "" {
		if db == nil {
			return fmt.Errorf("saved profiles require cache.enabled = true in the config")
		}
		saved, err := db.GetProfileByName(ctx, recommendFrom)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if saved == nil {
			return fmt.Errorf("profile not found: %s", recommendFrom)
		}
		profile = &saved.Profile
	} else {
		profile, err = recommendCriteria.profile()
		if err != nil {
			return err
		}
		if profile.ProcedureType == "" {
			return fmt.Errorf("--procedure is required (or use --from-profile)")
		}
	}

	selected := make(map[string]bool, len(recommendSelected))
	for _, id := range recommendSelected {
		selected[id] = true
	}

	topN := recommendTop
	if topN <= 0 {
		topN = cfg.Recommend.TopN
	}

	results := engine.Rank(store.Materials(), profile, selected, topN)
	return output.Output(outputFmt, results)
}
