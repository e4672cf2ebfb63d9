// Package format renders extraction records as JSON, newline-delimited
// JSON, or CSV for files and terminal output.
package format

import (
	"io"
	"strings"

	"github.com/Tylerbryy/extractr"
)

// Output format names accepted by Write.
const (
	JSON  = "json"
	JSONL = "jsonl"
	CSV   = "csv"
)

// Names returns the supported output format names.
func Names() []string {
	return []string{JSON, JSONL, CSV}
}

// Write renders records to w in the named format. Columns give the CSV
// column order and are ignored by the JSON formats.
func Write(w io.Writer, name string, records []extractr.Record, columns []string) error {
	switch name {
	case JSON:
		return writeJSON(w, records)
	case JSONL:
		return writeJSONL(w, records)
	case CSV:
		return writeCSV(w, records, columns)
	default:
		return extractr.Errorf(extractr.EINTERNAL, "Unknown output format %q. Supported formats: %s.", name, strings.Join(Names(), ", "))
	}
}

// Extension returns the conventional file extension for the named
// format, without the leading dot.
func Extension(name string) string {
	if name == JSONL {
		return "jsonl"
	}
	if name == CSV {
		return "csv"
	}
	return "json"
}
