// Package main implements the legisignal CLI: score signals, build priority
// heat maps, and serve the scoring engine over HTTP.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath is the optional config file flag shared by all commands.
	configPath string

	// Version information (set via ldflags during build)
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "legisignal",
	Short: "Score and prioritize legislative and regulatory signals",
	Long: `legisignal ranks legislative and regulatory signals (bills, rules,
hearings, oversight events) by importance, impact, and urgency, and groups
the most consequential ones onto a likelihood/impact priority heat map.`,
	Version: version + " (" + gitCommit + ")",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/legisignal/config.yaml)")
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(serveCmd)
}
