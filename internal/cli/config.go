package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage leadtime configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var ignoreGlobal, ignoreProject bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.
Use --ignore-global or --ignore-project to exclude specific sources for debugging.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{
				IgnoreGlobal:  ignoreGlobal,
				IgnoreProject: ignoreProject,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded files section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if !ignoreGlobal {
				writeConfigSource(w, out.GlobalConfig)
			}
			if !ignoreProject {
				writeConfigSource(w, out.ProjectConfig)
			}

			_, _ = fmt.Fprintln(w)

			// Display effective config in TOML format
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}

	cmd.Flags().BoolVar(&ignoreGlobal, "ignore-global", false, "Ignore global configuration")
	cmd.Flags().BoolVar(&ignoreProject, "ignore-project", false, "Ignore project configuration (.leadtime.toml)")

	return cmd
}

func writeConfigSource(w io.Writer, info domain.ConfigInfo) {
	switch {
	case info.Path == "":
		return
	case info.Exists:
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
	default:
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
	}
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	statuses := make(map[string]any, len(cfg.Statuses))
	for name, category := range cfg.Statuses {
		statuses[name] = string(category)
	}

	output := map[string]any{
		"calendar": map[string]any{
			"weekend":  nonNil(cfg.Calendar.Weekend),
			"holidays": nonNil(cfg.Calendar.Holidays),
		},
		"stats": map[string]any{
			"split_interval":       cfg.Stats.SplitInterval.String(),
			"resolution_tolerance": cfg.Stats.ResolutionTolerance.String(),
		},
		"statuses": statuses,
		"history":  map[string]any{"path": cfg.History.Path},
		"store":    map[string]any{"path": cfg.Store.Path},
		"log":      map[string]any{"level": cfg.Log.Level},
	}

	// Encode to TOML
	if err := toml.NewEncoder(w).Encode(output); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template to stdout.

This command is useful for:
- Piping template output for custom processing
- Comparing against existing configuration files

The template is built from the defaults only. It does not depend on
existing configuration files and will work even if they are broken.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{Template: true})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}

	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var opts struct {
		History  string
		Weekend  []string
		Holidays []string
		Global   bool
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate a configuration file template.

By default, creates the project configuration file at ./.leadtime.toml.
With --global, creates the global configuration file at ~/.config/leadtime/config.toml.
--history, --weekend and --holiday seed the file instead of the defaults.

Error conditions:
- Target file already exists: error
- Unknown weekday or malformed holiday: error, nothing is written`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{
				HistoryPath: opts.History,
				Weekend:     opts.Weekend,
				Holidays:    opts.Holidays,
				Global:      opts.Global,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Global, "global", false, "Generate global configuration")
	cmd.Flags().StringVar(&opts.History, "history", "", "Change history file to record under [history]")
	cmd.Flags().StringSliceVar(&opts.Weekend, "weekend", nil, "Non-working weekdays (e.g. friday,saturday)")
	cmd.Flags().StringSliceVar(&opts.Holidays, "holiday", nil, "Holiday date YYYY-MM-DD (repeatable)")

	return cmd
}
