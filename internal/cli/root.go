// Package cli provides the command-line interface for leadtime.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/tui"
)

// Command group IDs.
const (
	groupReport = "report"
	groupSetup  = "setup"
)

// Global flag names. They are read by main before the container is built
// and declared here so cobra accepts them.
const (
	FlagVerbose = "verbose"
	FlagDataDir = "data-dir"
)

// launchTUIFunc is a function variable for launching the report browser, allowing it to be mocked in tests.
var launchTUIFunc = tui.Run

// NewRootCommand creates the root command for leadtime.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "leadtime",
		Short: "Lead time and cycle time statistics from issue histories",
		Long: `leadtime reads the change history of issue-tracker items and computes
when each item started and finished, its lead time and cycle time in
business days, and how long it spent in each status category and with
each assignee.

Run "leadtime config init" to create a project configuration, then
"leadtime stats --history FILE" to compute a report.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().Bool(FlagVerbose, false, "Mirror log entries to stderr")
	root.PersistentFlags().String(FlagDataDir, "", "Directory for logs and the report database")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupReport, Title: "Report Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Report commands
	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupReport

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupReport

	daysCmd := newDaysCommand(c)
	daysCmd.GroupID = groupReport

	runsCmd := newRunsCommand(c)
	runsCmd.GroupID = groupReport

	browseCmd := newBrowseCommand(c)
	browseCmd.GroupID = groupReport

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupReport

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		statsCmd,
		showCmd,
		daysCmd,
		runsCmd,
		browseCmd,
		logsCmd,
		configCmd,
	)

	return root
}
