package format

import (
	"encoding/json"
	"io"

	"github.com/Tylerbryy/extractr"
)

// writeJSON renders the records as one indented JSON array.
func writeJSON(w io.Writer, records []extractr.Record) error {
	if records == nil {
		records = []extractr.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// writeJSONL renders one compact JSON object per line.
func writeJSONL(w io.Writer, records []extractr.Record) error {
	enc := json.NewEncoder(w)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return err
		}
	}
	return nil
}
