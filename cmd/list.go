package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/browser"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/cache"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/config"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/guide"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print tonight's movies as a plain table",
	Long:  "Scan the guide once and print the rating-sorted movie list to stdout, without the TUI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, scanner, db, err := buildPipeline()
		if err != nil {
			return err
		}
		defer db.Close()

		hour, minRating := thresholds(cfg)

		fmt.Fprintf(os.Stderr, "Skanuje program TV od %02d:00...\n", hour)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		result, err := scanner.Scan(ctx, hour)
		if err != nil {
			return fmt.Errorf("scanning guide: %w", err)
		}
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "  [warn] %v\n", e)
		}

		movies := guide.FilterRating(result.Movies, minRating)
		if len(movies) == 0 {
			fmt.Println("Brak filmow spelniajacych kryteria.")
			return nil
		}

		for _, m := range movies {
			line := fmt.Sprintf("%s  %.1f  %-30s  %s", m.TimeLabel(), m.Rating, m.Title, m.Channel)
			if m.IMDBID != "" {
				line += "  " + browser.IMDBURL(m.IMDBID)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show metadata cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.CachePath()
		db, err := cache.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer db.Close()

		count, size, err := db.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("Cache: %s\n", dbPath)
		fmt.Printf("Movies: %d\n", count)
		fmt.Printf("Size: %s\n", formatBytes(size))
		if last, err := db.LastScan(); err == nil {
			fmt.Printf("Last scan: %s\n", last.Format(time.RFC1123))
		}
		return nil
	},
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
