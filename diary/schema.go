package diary

import (
	"strings"

	"github.com/justyn/myfitnesspal"
)

// NameField is the field name of column 0, the item name column.
const NameField = "name"

// Abbreviations maps lower-cased header labels to canonical field names.
// Labels absent from the table are used as-is. Treat it as read-only; use
// DefaultAbbreviations for a copy that can be extended.
var Abbreviations = map[string]string{
	"carbs": "carbohydrates",
}

// DefaultAbbreviations returns a copy of Abbreviations.
func DefaultAbbreviations() map[string]string {
	m := make(map[string]string, len(Abbreviations))
	for k, v := range Abbreviations {
		m[k] = v
	}
	return m
}

// Schema maps column positions to canonical field names. It is derived from
// the first meal header row of a page and applies to every row of the page.
// Position 0 is always NameField. Positions with an empty header label,
// such as a trailing delete column, map to "".
type Schema []string

// BuildSchema derives the schema from a header row. Column 0 is named
// NameField regardless of its label; every other label is lower-cased and
// expanded through abbreviations.
func BuildSchema(header myfitnesspal.Row, abbreviations map[string]string) (Schema, error) {
	if len(header.Cells) == 0 {
		return nil, myfitnesspal.Errorf(myfitnesspal.EMISMATCH, "header row has no cells")
	}

	schema := make(Schema, len(header.Cells))
	schema[0] = NameField
	for i, cell := range header.Cells[1:] {
		schema[i+1] = canonicalField(cell.Text, abbreviations)
	}
	return schema, nil
}

func canonicalField(label string, abbreviations map[string]string) string {
	name := strings.ToLower(strings.TrimSpace(label))
	if full, ok := abbreviations[name]; ok {
		return full
	}
	return name
}

// Field returns the field name for column n. It reports false for the name
// column, for unlabeled columns and for positions past the end of the
// schema; such columns carry no nutrition data.
func (s Schema) Field(n int) (string, bool) {
	if n <= 0 || n >= len(s) || s[n] == "" {
		return "", false
	}
	return s[n], true
}
