package cmd

import (
	"fmt"

	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/cache"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/config"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/epg"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/guide"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/tmdb"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, scanner, db, err := buildPipeline()
	if err != nil {
		return err
	}
	defer db.Close()

	hour, minRating := thresholds(cfg)

	return tui.Run(tui.RunOpts{
		Scanner:   scanner,
		StartHour: hour,
		MinRating: minRating,
	})
}

// buildPipeline loads config and wires the fetcher, metadata client and
// cache into a scanner. The caller owns the returned cache handle.
func buildPipeline() (*config.Config, *guide.Scanner, *cache.Cache, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	apiKey := cfg.TMDBKey()
	if apiKey == "" {
		return nil, nil, nil, fmt.Errorf("no TMDB API key: set tmdb.api_key in %s or the TMDB_API_KEY env var", config.DefaultConfigPath())
	}

	db, err := cache.Open(config.CachePath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening cache: %w", err)
	}

	fetcher := epg.NewClient(cfg.EPGURL)
	meta := tmdb.NewClient(apiKey, cfg.Language())
	scanner := guide.NewScanner(fetcher, meta, db)

	return cfg, scanner, db, nil
}

// thresholds resolves the start-hour and min-rating thresholds from config
// with optional flag overrides.
func thresholds(cfg *config.Config) (int, float64) {
	hour := cfg.StartHour
	if flagHour > 0 {
		hour = flagHour
	}
	minRating := cfg.MinRating
	if flagMinRating >= 0 {
		minRating = flagMinRating
	}
	return hour, minRating
}
