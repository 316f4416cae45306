// Package main is the entry point for the GM service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gm-api/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gm-api",
	Short: "Game master encounter and treasure service",
	Long: `gm-api rates encounters against the party, tracks XP and treasure per
campaign, and compares a campaign's loot with the expected treasure curve.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().String("library", "", "SQLite library database path")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: json or text")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
