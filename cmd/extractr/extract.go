package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Tylerbryy/extractr"
	"github.com/Tylerbryy/extractr/format"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	tmpl, err := deps.Loader.Load(c.Template, c.Local)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", extractr.ErrorMessage(err))
		return err
	}

	if problems := extractr.ValidateTemplate(tmpl); len(problems) > 0 {
		fmt.Fprintf(deps.Stderr, "Template %q is invalid:\n", c.Template)
		for _, p := range problems {
			fmt.Fprintf(deps.Stderr, "  - %s\n", p)
		}
		return fmt.Errorf("template %q failed validation", c.Template)
	}

	if c.Validate {
		fmt.Fprintf(deps.Stdout, "Template %q is valid.\n", tmpl.Name)
		return nil
	}

	opts := extractr.Options{
		Debug: c.Debug,
		OnPage: func(records []extractr.Record, page int) {
			fmt.Fprintf(deps.Stderr, "page %d: %d records\n", page, len(records))
		},
	}

	result, err := deps.Extractor.Extract(deps.Ctx, c.URL, tmpl, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", extractr.ErrorMessage(err))
		return err
	}

	if result.Partial {
		fmt.Fprintf(deps.Stderr, "warning: partial result, extraction stopped after %d page(s)\n", result.PagesExtracted)
	}

	if err := c.write(deps, result, tmpl); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", extractr.ErrorMessage(err))
		return err
	}

	if c.Debug && result.Debug != nil {
		printDebug(deps.Stderr, result.Debug)
	}

	return nil
}

// write renders the result to stdout or, with --output, to a file.
func (c *ExtractCmd) write(deps *Dependencies, result *extractr.ExtractionResult, tmpl *extractr.Template) error {
	if c.Output == "" {
		return format.Write(deps.Stdout, c.Format, result.Data, tmpl.FieldNames())
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	werr := format.Write(f, c.Format, result.Data, tmpl.FieldNames())
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return cerr
	}

	fmt.Fprintf(deps.Stderr, "Wrote %d record(s) to %s\n", len(result.Data), c.Output)
	return nil
}

func printDebug(w io.Writer, d *extractr.DebugInfo) {
	fmt.Fprintf(w, "debug: %d record(s) from %s in %s\n", d.Records, d.URL, d.Duration.Round(time.Millisecond))
	for _, warning := range d.Warnings {
		fmt.Fprintf(w, "debug: warning: %s\n", warning)
	}
	for _, e := range d.Errors {
		fmt.Fprintf(w, "debug: error: %s\n", e)
	}
}
