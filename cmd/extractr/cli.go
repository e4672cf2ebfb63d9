package main

import (
	"context"
	"io"

	"github.com/Tylerbryy/extractr"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor extractr.Extractor
	Loader    extractr.TemplateLoader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract records from a page using a template"`
	List    ListCmd    `cmd:"" help:"List the built-in templates"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Page URL to extract from"`
	Template string `arg:"" help:"Built-in template name, or a YAML file path with --local"`
	Output   string `short:"o" help:"Write results to a file instead of stdout"`
	Format   string `short:"f" default:"json" enum:"json,jsonl,csv" help:"Output format (json, jsonl, csv)"`
	Validate bool   `help:"Validate the template and exit without extracting"`
	Local    bool   `short:"l" help:"Treat the template argument as a YAML file path"`
	Debug    bool   `short:"d" help:"Collect and print extraction diagnostics"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}
