package diary

import (
	"fmt"
	"strings"

	"github.com/justyn/myfitnesspal"
)

// Row class tokens that give a diary row its role.
const (
	MealHeaderClass = "meal_header"
	TotalClass      = "total"
)

// RowKind is the role of a diary row, derived from its class attribute.
type RowKind int

const (
	// ItemRow is a row without a class: one logged food item.
	ItemRow RowKind = iota
	// MealHeaderRow opens a meal and labels the nutrition columns.
	MealHeaderRow
	// TotalRow holds the day's totals and precedes the goals row.
	TotalRow
	// MarkedRow is any other classed row, such as a meal footer or spacer.
	MarkedRow
)

// Classify returns the role of row.
func Classify(row myfitnesspal.Row) RowKind {
	classes := strings.Fields(row.Class)
	if len(classes) == 0 {
		return ItemRow
	}
	for _, c := range classes {
		if c == MealHeaderClass {
			return MealHeaderRow
		}
	}
	for _, c := range classes {
		if c == TotalClass {
			return TotalRow
		}
	}
	return MarkedRow
}

// FindMealHeader returns the first meal header row of the table.
func FindMealHeader(table myfitnesspal.Table) (myfitnesspal.Row, error) {
	for _, row := range table.Rows {
		if Classify(row) == MealHeaderRow {
			return row, nil
		}
	}
	return myfitnesspal.Row{}, myfitnesspal.Errorf(myfitnesspal.EMISSING, "no %s row", MealHeaderClass)
}

type groupState int

const (
	scanning groupState = iota
	collecting
)

// GroupMeals walks the rows in order and groups item rows under the meal
// header that precedes them. A meal ends at the next classed row of any
// kind or at the end of the table; a meal header immediately opens the
// next meal. Item rows outside a meal are ignored. Meals without items are
// kept.
func GroupMeals(table myfitnesspal.Table, schema Schema) ([]myfitnesspal.Meal, error) {
	var (
		meals   []myfitnesspal.Meal
		current myfitnesspal.Meal
		state   = scanning
	)

	for i, row := range table.Rows {
		kind := Classify(row)

		if state == collecting {
			if kind == ItemRow {
				entry, err := parseEntry(i, row, schema)
				if err != nil {
					return nil, err
				}
				current.Entries = append(current.Entries, entry)
				continue
			}
			meals = append(meals, current)
			state = scanning
		}

		if kind == MealHeaderRow {
			name, err := mealName(i, row)
			if err != nil {
				return nil, err
			}
			current = myfitnesspal.Meal{Name: name, Entries: []myfitnesspal.Entry{}}
			state = collecting
		}
	}

	if state == collecting {
		meals = append(meals, current)
	}
	return meals, nil
}

func mealName(i int, row myfitnesspal.Row) (string, error) {
	if len(row.Cells) == 0 {
		return "", myfitnesspal.Errorf(myfitnesspal.EMISMATCH, "row %d: meal header has no cells", i)
	}
	return strings.ToLower(strings.TrimSpace(row.Cells[0].Text)), nil
}

func parseEntry(i int, row myfitnesspal.Row, schema Schema) (myfitnesspal.Entry, error) {
	if len(row.Cells) == 0 {
		return myfitnesspal.Entry{}, myfitnesspal.Errorf(myfitnesspal.EMISMATCH, "row %d: item row has no name cell", i)
	}
	nutrition, err := parseColumns(fmt.Sprintf("row %d", i), row, schema)
	if err != nil {
		return myfitnesspal.Entry{}, err
	}
	return myfitnesspal.Entry{Name: row.Cells[0].Label, Nutrition: nutrition}, nil
}

// parseColumns reads every mapped column after the name column. Columns the
// schema does not map are skipped.
func parseColumns(where string, row myfitnesspal.Row, schema Schema) (myfitnesspal.Nutrition, error) {
	nutrition := myfitnesspal.Nutrition{}
	for n := 1; n < len(row.Cells); n++ {
		field, ok := schema.Field(n)
		if !ok {
			continue
		}
		value, err := ParseNumeric(row.Cells[n].Text)
		if err != nil {
			return nil, myfitnesspal.Errorf(myfitnesspal.EMALFORMED,
				"%s column %d (%s): %s", where, n, field, myfitnesspal.ErrorMessage(err))
		}
		nutrition[field] = value
	}
	return nutrition, nil
}

// LocateGoalsRow returns the goals row, which is the row directly after the
// first totals row whatever its own class. This relies on the fixed layout
// of the diary page rather than on any markup linking the two rows.
func LocateGoalsRow(table myfitnesspal.Table) (myfitnesspal.Row, error) {
	for i, row := range table.Rows {
		if Classify(row) != TotalRow {
			continue
		}
		if i+1 >= len(table.Rows) {
			return myfitnesspal.Row{}, myfitnesspal.Errorf(myfitnesspal.EMISSING, "%s row is the last row, no goals row follows", TotalClass)
		}
		return table.Rows[i+1], nil
	}
	return myfitnesspal.Row{}, myfitnesspal.Errorf(myfitnesspal.EMISSING, "no %s row", TotalClass)
}

// ParseGoals parses the goals row like an item row and discards its name
// column.
func ParseGoals(row myfitnesspal.Row, schema Schema) (myfitnesspal.Nutrition, error) {
	if len(row.Cells) == 0 {
		return nil, myfitnesspal.Errorf(myfitnesspal.EMISMATCH, "goals row has no cells")
	}
	return parseColumns("goals row", row, schema)
}
