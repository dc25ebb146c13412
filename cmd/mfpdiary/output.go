package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/justyn/myfitnesspal"
	"github.com/justyn/myfitnesspal/etree"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatXML  = "xml"
)

// writeDay writes a single day. JSON output is a single object rather than
// an array.
func writeDay(w io.Writer, format string, day *myfitnesspal.Day) error {
	if format == formatJSON {
		return writeJSON(w, day)
	}
	return writeDays(w, format, []*myfitnesspal.Day{day})
}

func writeDays(w io.Writer, format string, days []*myfitnesspal.Day) error {
	switch format {
	case formatJSON:
		return writeJSON(w, days)
	case formatXML:
		return etree.WriteDays(w, days)
	case formatText, "":
		parts := make([]string, 0, len(days))
		for _, day := range days {
			parts = append(parts, myfitnesspal.FormatDay(day))
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, "\n\n"))
		return err
	default:
		return myfitnesspal.Errorf(myfitnesspal.EINVALID, "unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
