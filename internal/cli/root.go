package cli

import (
	"fmt"
	"os"

	"github.com/shayne-snap/hwinfo/internal/display"
	"github.com/shayne-snap/hwinfo/internal/hardware"
	"github.com/shayne-snap/hwinfo/internal/logging"
	"github.com/shayne-snap/hwinfo/internal/report"
	"github.com/shayne-snap/hwinfo/internal/scope"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set by main from ldflags or "dev". Used for --version / -v.
var Version string

var (
	outputFormat string
	scopeList    string
	prettyPrint  bool
	logLevel     string
	showVersion  bool
)

// newSource builds the hardware source queried by every command.
var newSource = func() hardware.Source {
	return hardware.NewSystem()
}

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "hwinfo",
	Short: "Hardware information inspector",
	Long: "hwinfo reports CPU, OS, GPU, memory, main board, battery, disk and network " +
		"information as a text report (default) or as JSON limited to a scope of categories.",
	Args:          cobra.ArbitraryArgs,
	RunE:          runDefault,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			if Version == "" {
				Version = "dev"
			}
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			os.Exit(0)
		}
		l, err := logging.New(cmd.ErrOrStderr(), logLevel)
		if err != nil {
			l, _ = logging.New(cmd.ErrOrStderr(), "warn")
			l.WithError(err).Warn("falling back to warn level")
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "raw", "Output format (json, raw)")
	rootCmd.Flags().StringVarP(&scopeList, "scope", "s", "all",
		"Hardware information scope (cpu, os, gpu, memory, main_board, battery, disks, network, all)")
	rootCmd.Flags().BoolVarP(&prettyPrint, "pretty_print", "p", false, "Pretty print json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Diagnostics level on stderr (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Print version and exit")

	// Malformed flags print usage instead of failing.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(cmd.OutOrStdout(), err)
		return cmd.Help()
	})

	rootCmd.AddCommand(summaryCmd, browseCmd)
}

// Execute runs the root command. Returns error for exit code handling.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func runDefault(cmd *cobra.Command, args []string) error {
	// Stray words are most likely a mistyped subcommand.
	if len(args) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "unknown command %q for %q\n", args[0], cmd.CommandPath())
		return cmd.Help()
	}
	switch outputFormat {
	case "raw":
		rep := collect(cmd, scope.Everything())
		display.Text(cmd.OutOrStdout(), rep)
	case "json":
		sc := scope.Parse(scopeList)
		rep := collect(cmd, sc)
		display.JSON(cmd.OutOrStdout(), rep, sc, prettyPrint)
	default:
		return cmd.Help()
	}
	return nil
}

func collect(cmd *cobra.Command, sc scope.Scope) *report.Report {
	log := logging.Module(logger, "report")
	log.WithField("scope", sc.String()).Debug("collecting hardware report")
	return report.Collect(cmd.Context(), newSource(), sc, log)
}
