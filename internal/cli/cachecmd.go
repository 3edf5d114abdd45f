package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentalref/dentalref/internal/config"
	"github.com/dentalref/dentalref/internal/output"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the dataset cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached dataset entries",
	RunE:  runCacheClear,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove cached entries older than the configured TTL",
	RunE:  runCachePurge,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openProfileDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Health(ctx); err != nil {
		return fmt.Errorf("cache database unhealthy: %w", err)
	}

	stats, err := db.GetCacheStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cache stats: %w", err)
	}
	return output.Output(outputFmt, stats)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openProfileDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := db.CacheClear(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Printf("Removed %d cached entries\n", removed)
	return nil
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openProfileDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := db.CachePurge(cmd.Context(), cfg.Cache.TTL())
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	fmt.Printf("Removed %d stale entries\n", removed)
	return nil
}
