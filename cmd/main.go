package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"adviceslip/internal/app"
	"adviceslip/internal/app/cli"
	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logOutput, closeLog, err := openLogOutput(cfg, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	application := createApp(cfg, opts, logOutput)
	application.Run()
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// openLogOutput keeps logs off the terminal while the TUI owns it, nil means stderr
func openLogOutput(cfg *config.Config, opts *cli.Options) (io.Writer, func(), error) {
	if !opts.Interactive() {
		return nil, func() {}, nil
	}

	if cfg.Logging.File == "" {
		return io.Discard, func() {}, nil
	}

	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.Logging.File, err)
	}

	return f, func() { _ = f.Close() }, nil
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options, logOutput io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg, logOutput)),
		fx.Supply(cfg, opts, logger.Output{Writer: logOutput}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config, writing where the app logger writes
func createFxLogger(cfg *config.Config, out io.Writer) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			if out == nil {
				out = os.Stderr
			}

			return &fxevent.ConsoleLogger{W: out}
		}

		return fxevent.NopLogger
	}
}
