package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"adviceslip/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandTUI CommandType = iota
	CommandRandom
	CommandSearch
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	Query  string
	NoUI   bool
	JSON   bool
	Force  bool
	DryRun bool
}

// Interactive reports whether the command takes over the terminal with the TUI
func (o *Options) Interactive() bool {
	return o.Type == CommandTUI && !o.NoUI
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandTUI,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRandomCommand(result),
		buildSearchCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Browse and search advice slips from the terminal",
		Long: `adviceslip shows one piece of advice at a time from the Advice Slip API.
Fetch random advice or search and page through the matching slips.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandTUI
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Print advice instead of starting the TUI")
	cmd.PersistentFlags().BoolVar(&result.JSON, "json", false, "Print advice as JSON")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRandomCommand creates the random subcommand
func buildRandomCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "random",
		Aliases: []string{"r"},
		Short:   "Print one random advice slip",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRandom
		},
	}

	return cmd
}

// buildSearchCommand creates the search subcommand
func buildSearchCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <query...>",
		Aliases: []string{"s"},
		Short:   "Print every advice slip matching the query",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandSearch
			result.Query = strings.Join(args, " ")
		},
	}

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate " + config.FileName + " template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
