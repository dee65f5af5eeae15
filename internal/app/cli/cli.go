//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/app/errors"
	"adviceslip/internal/app/generator"
	"adviceslip/internal/app/ui/wire"
	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	cfg       *config.Config
	opts      *Options
	source    advice.Source
	ui        wire.UI
	generator generator.Generator
	out       io.Writer
	log       logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	opts *Options,
	source advice.Source,
	ui wire.UI,
	gen generator.Generator,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:       cfg,
		opts:      opts,
		source:    source,
		ui:        ui,
		generator: gen,
		out:       os.Stdout,
		log:       log,
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	switch c.opts.Type {
	case CommandHelp:
		return c.handleHelp()
	case CommandVersion:
		return c.handleVersion()
	case CommandInit:
		return c.handleInit()
	case CommandRandom:
		return c.handleRandom()
	case CommandSearch:
		return c.handleSearch(c.opts.Query)
	case CommandTUI:
		if c.opts.NoUI {
			return c.handleRandom()
		}

		return c.handleTUI()
	default:
		c.log.Error().Msgf("Unknown command type: %d", c.opts.Type)
		return 1, errors.ErrUnknownCommand
	}
}

// handleTUI runs the interactive program until the user quits
func (c *cli) handleTUI() (int, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program, err := c.ui(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to create TUI")
		return 1, err
	}

	if _, err := program.Run(); err != nil {
		c.log.Error().Err(err).Msg("TUI exited with error")
		return 1, err
	}

	return 0, nil
}

// handleRandom prints one random slip
func (c *cli) handleRandom() (int, error) {
	item, err := c.source.Random(context.Background())
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to fetch advice")
		return 1, err
	}

	if err := c.printer().Item(item); err != nil {
		return 1, err
	}

	return 0, nil
}

// handleSearch prints every slip matching query
func (c *cli) handleSearch(query string) (int, error) {
	query, err := advice.NormalizeQuery(query)
	if err != nil {
		c.log.Error().Err(err).Msg("Invalid search query")
		return 1, err
	}

	results, err := c.source.Search(context.Background(), query)
	if err != nil {
		c.log.Error().Err(err).Msgf("Failed to search advice for %q", query)
		return 1, err
	}

	if err := c.printer().Results(query, results); err != nil {
		return 1, err
	}

	return 0, nil
}

// handleInit writes the configuration template
func (c *cli) handleInit() (int, error) {
	opts := generator.DefaultOptions()
	opts.Force = c.opts.Force
	opts.DryRun = c.opts.DryRun

	if err := c.generator.Generate(opts); err != nil {
		c.log.Error().Err(err).Msg("Failed to generate config")
		return 1, err
	}

	return 0, nil
}

// handleVersion prints the application version
func (c *cli) handleVersion() (int, error) {
	fmt.Fprintf(c.out, "%s v%s\n", config.AppName, config.Version)
	return 0, nil
}

// handleHelp prints the usage overview
func (c *cli) handleHelp() (int, error) {
	fmt.Fprint(c.out, renderHelp())
	return 0, nil
}

func (c *cli) printer() *printer {
	return newPrinter(c.out, c.cfg.UI.WrapWidth, c.opts.JSON)
}
