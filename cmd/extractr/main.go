package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Tylerbryy/extractr"
	"github.com/Tylerbryy/extractr/extract"
	"github.com/Tylerbryy/extractr/rod"
	xslog "github.com/Tylerbryy/extractr/slog"
	"github.com/Tylerbryy/extractr/yaml"
	"github.com/alecthomas/kong"
)

// requestsPerSecond is the per-domain politeness limit applied to
// navigation and pagination.
const requestsPerSecond = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run wires the real
	// implementations.
	Extractor extractr.Extractor
	Loader    extractr.TemplateLoader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("extractr"),
		kong.Description("Template-driven web page extraction."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'extractr --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Loader = m.Loader
	if deps.Loader == nil {
		deps.Loader = yaml.NewLoader()
	}

	deps.Extractor = m.Extractor

	// The browser is only needed for a real extraction run.
	if cmd == "extract" && !cli.Extract.Validate && deps.Extractor == nil {
		provider, err := rod.NewProvider()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer provider.Close()

		level := slog.LevelWarn
		if cli.Extract.Debug {
			level = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		deps.Extractor = xslog.NewLoggingExtractor(&extract.Extractor{
			Provider: provider,
			Limiter:  extract.NewDomainLimiter(requestsPerSecond),
			Logger:   logger,
		}, logger)
	}

	return kongCtx.Run(deps)
}
