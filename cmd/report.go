package cmd

import (
	"github.com/spf13/cobra"

	"doctool/internal/config"
	"doctool/internal/report"
	"doctool/internal/ui"
)

var reportBranchFile string

var reportCmd = &cobra.Command{
	Use:   "report <input> <report-name> <global-report>",
	Short: "Split an aggregated configure log into per-component reports",
	Long: `Read an aggregated configure log and distribute its sections into
per-component report directories under the working directory.

Every "Configuring <name>" line opens a new section. The lines of a section
are inserted into the existing <report-name> file of its component, under a
CMake results header. A component seen for the first time gets a directory
and a report seeded with the scm branch stamp; if the log ends while such a
component is still open, "<name> r" is appended to <global-report>.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		branchFile := cfg.Report.BranchFile
		if cmd.Flags().Changed("branch-file") {
			branchFile = reportBranchFile
		}

		s := &report.Splitter{
			ReportName: args[1],
			GlobalPath: args[2],
			BranchFile: branchFile,
		}
		sum, err := s.Process(args[0])
		if err != nil {
			return err
		}
		ui.FormatReportSummary(cmd.OutOrStdout(), sum)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportBranchFile, "branch-file", report.DefaultBranchFile, "scm branch stamp copied into new component reports")
	rootCmd.AddCommand(reportCmd)
}
