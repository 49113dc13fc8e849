package cmd

import (
	"github.com/spf13/cobra"

	"doctool/internal/config"
	"doctool/internal/toc"
	"doctool/internal/ui"
)

var (
	tocCodebase bool
	tocAllowH1  bool
	tocMaxLevel int
)

var tocCmd = &cobra.Command{
	Use:   "toc <file>",
	Short: "Regenerate the table of contents of a Markdown wiki page",
	Long: `Rewrite the delimited TOC block at the top of a Markdown file.

The file is processed only when its first line contains the <!--TOC-->
marker; the old block ends at the next line containing the marker. Headings
are collected from the remainder of the file, skipping fenced code blocks,
and the file is rewritten in place. A file without markers, or without any
eligible heading, is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		opts := toc.Options{
			Codebase: cfg.TOC.Codebase,
			AllowH1:  cfg.TOC.AllowH1,
			MaxLevel: cfg.TOC.MaxLevel,
		}
		if cmd.Flags().Changed("codebase") {
			opts.Codebase = tocCodebase
		}
		if cmd.Flags().Changed("h1") {
			opts.AllowH1 = tocAllowH1
		}
		if cmd.Flags().Changed("max-level") {
			opts.MaxLevel = tocMaxLevel
		}

		res, err := toc.Rewrite(args[0], opts)
		if err != nil {
			return err
		}
		ui.FormatTocResult(cmd.OutOrStdout(), args[0], res)
		return nil
	},
}

func init() {
	tocCmd.Flags().BoolVar(&tocCodebase, "codebase", false, "generate anchors for a Codebase wiki instead of GitHub")
	tocCmd.Flags().BoolVar(&tocAllowH1, "h1", false, "support level one sections (h1)")
	tocCmd.Flags().IntVar(&tocMaxLevel, "max-level", toc.DefaultMaxLevel, "maximum level of sections")
	rootCmd.AddCommand(tocCmd)
}
