package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig    string
	flagHour      int
	flagMinRating float64
)

var rootCmd = &cobra.Command{
	Use:   "tvguide",
	Short: "TUI guide to tonight's best movies on TV",
	Long:  "tvguide scans a daily TV programme guide, rates tonight's movies through TMDB and shows the best ones in a gallery.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().IntVar(&flagHour, "hour", 0, "override start-hour threshold (0-23)")
	rootCmd.PersistentFlags().Float64Var(&flagMinRating, "min-rating", -1, "override minimum rating threshold (0-10)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tvguide %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
