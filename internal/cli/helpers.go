package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dentalref/dentalref/internal/config"
	"github.com/dentalref/dentalref/internal/database"
	"github.com/dentalref/dentalref/internal/dataset"
	"github.com/dentalref/dentalref/internal/engine"
)

// openData loads the datasets through the configured cache. The returned
// *database.DB is nil when the cache is disabled; callers that need saved
// profiles must check for that. cleanup is always safe to defer.
func openData(ctx context.Context, cfg *config.Config) (*dataset.Store, *database.DB, func(), error) {
	var db *database.DB
	var cache dataset.Cache

	if cfg.Cache.Enabled {
		var err error
		db, err = database.Open(cfg.Cache.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open cache database: %w", err)
		}
		cache = db
	}

	store, err := dataset.Load(ctx, dataset.Options{
		Dir:   cfg.Data.Dir,
		Cache: cache,
		TTL:   cfg.Cache.TTL(),
	})
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, nil, fmt.Errorf("failed to load datasets: %w", err)
	}

	cleanup := func() {
		if db != nil {
			db.Close()
		}
	}
	return store, db, cleanup, nil
}

// openProfileDB opens the database for saved-profile commands
func openProfileDB(cfg *config.Config) (*database.DB, error) {
	if !cfg.Cache.Enabled {
		return nil, fmt.Errorf("saved profiles require cache.enabled = true in the config")
	}
	return database.Open(cfg.Cache.Path)
}

// criteriaFlags collects the clinical criteria a command exposes as flags
type criteriaFlags struct {
	procedure         string
	location          string
	stress            string
	aesthetics        string
	age               string
	cost              string
	longevity         string
	contraindications []string
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.procedure, "procedure", "", "Procedure type to match materials against")
	cmd.Flags().StringVar(&f.location, "location", "any", "Anatomical location (anterior, posterior, any)")
	cmd.Flags().StringVar(&f.stress, "stress", "moderate", "Occlusal stress level (low, moderate, high)")
	cmd.Flags().StringVar(&f.aesthetics, "aesthetics", "important", "Aesthetic requirement (minimal, important, critical)")
	cmd.Flags().StringVar(&f.age, "age", "adult", "Patient age group (pediatric, adult, geriatric)")
	cmd.Flags().StringVar(&f.cost, "cost", "moderate", "Cost constraint (budget, moderate, premium)")
	cmd.Flags().StringVar(&f.longevity, "longevity", "medium", "Longevity expectation (short, medium, long)")
	cmd.Flags().StringArrayVar(&f.contraindications, "contraindication", nil, "Patient contraindication tag (repeatable)")
}

// profile builds and validates a CriteriaProfile from the flag values
func (f *criteriaFlags) profile() (*engine.CriteriaProfile, error) {
	p := &engine.CriteriaProfile{
		ProcedureType:     strings.TrimSpace(f.procedure),
		Location:          engine.Location(strings.ToLower(f.location)),
		StressLevel:       engine.StressLevel(strings.ToLower(f.stress)),
		Aesthetic:         engine.AestheticRequirement(strings.ToLower(f.aesthetics)),
		PatientAge:        engine.AgeGroup(strings.ToLower(f.age)),
		Cost:              engine.CostConstraint(strings.ToLower(f.cost)),
		Longevity:         engine.LongevityExpectation(strings.ToLower(f.longevity)),
		Contraindications: f.contraindications,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
