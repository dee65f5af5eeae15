//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"adviceslip/internal/app/errors"
	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

const yamlIndent = 2

// Section comments written above each top-level key
var sectionComments = map[string]string{
	"api":     "Advice Slip REST endpoint, overridable with ADVICE_API_BASE_URL",
	"ui":      "Terminal presentation, wrap_width 0 follows the terminal",
	"logging": "Log level and format, file receives logs while the TUI is open",
	"bus":     "Buffered messages per subscriber between the UI and the fetcher",
}

// Options contains the configuration for generating adviceslip.yaml
type Options struct {
	Path   string
	Force  bool
	DryRun bool
}

// DefaultOptions returns sensible defaults for generation
func DefaultOptions() Options {
	return Options{
		Path: config.FileName,
	}
}

// Generator defines the interface for generating adviceslip.yaml
type Generator interface {
	Generate(opts Options) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance that prints dry runs to stdout
func NewGenerator(log logger.Logger) Generator {
	return NewGeneratorWithOutput(os.Stdout, log)
}

// NewGeneratorWithOutput creates a generator that prints dry runs to out
func NewGeneratorWithOutput(out io.Writer, log logger.Logger) Generator {
	return &generator{
		out: out,
		log: log,
	}
}

// Generate writes the default configuration as a commented yaml file
func (g *generator) Generate(opts Options) error {
	if !opts.DryRun && !opts.Force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrConfigExists, opts.Path)
		}
	}

	content, err := Render(config.DefaultConfig())
	if err != nil {
		return err
	}

	if opts.DryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(opts.Path, content, 0600); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteConfig, err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}

// Render encodes cfg as yaml with durations spelled out and a comment above every section
func Render(cfg *config.Config) ([]byte, error) {
	var doc yaml.Node
	if err := doc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToWriteConfig, err)
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]

		if comment, ok := sectionComments[key.Value]; ok {
			key.HeadComment = comment
		}

		if key.Value == "api" {
			setScalar(value, "timeout", cfg.API.Timeout.String())
		}
	}

	doc.HeadComment = fmt.Sprintf("%s configuration, generated by %s init", config.AppName, config.AppName)

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToWriteConfig, err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToWriteConfig, err)
	}

	return buf.Bytes(), nil
}

// setScalar replaces the value of key inside a mapping node with a plain string
func setScalar(mapping *yaml.Node, key, value string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1].Kind = yaml.ScalarNode
			mapping.Content[i+1].Tag = "!!str"
			mapping.Content[i+1].Value = value

			return
		}
	}
}
