package cli

import (
	"github.com/shayne-snap/hwinfo/internal/scope"
	"github.com/shayne-snap/hwinfo/internal/tui"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the hardware report interactively",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	rep := collect(cmd, scope.Everything())
	return tui.Run(rep)
}
