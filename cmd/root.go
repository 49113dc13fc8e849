package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doctool/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "doctool",
	Short: "Maintenance utilities for wiki pages and CI reports",
	Long: `doctool bundles two small maintenance utilities:

  toc     regenerate the table of contents of a Markdown wiki page
  report  split an aggregated configure log into per-component reports`,
}

var configPath string

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("doctool %s\n", version.String()))
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .doctool.yaml)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
