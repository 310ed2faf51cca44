package cli

import (
	"github.com/shayne-snap/hwinfo/internal/display"
	"github.com/shayne-snap/hwinfo/internal/scope"

	"github.com/spf13/cobra"
)

var summaryScope string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show one table row per detected device",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryScope, "scope", "s", "all", "Hardware categories to include")
}

func runSummary(cmd *cobra.Command, args []string) error {
	rep := collect(cmd, scope.Parse(summaryScope))
	display.Summary(cmd.OutOrStdout(), rep)
	return nil
}
