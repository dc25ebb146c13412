// Package diary turns the flat rows of a diary page into a Day.
//
// A page has no nesting markup. Meals, their items, the totals row and the
// goals row are siblings, told apart by row class and position:
//
//	tr.meal_header   Breakfast | Calories | Carbs | ...   <- also the column schema
//	tr               Oatmeal   | 150      | 27g   | ...
//	tr.meal_header   Lunch     | ...
//	tr.bottom        ...                                   <- closes the meal
//	tr.total         Totals    | 150      | 27g   | ...
//	tr               ...       | 2000     | 250g  | ...   <- goals, by position
//
// Extraction is pure: it reads a myfitnesspal.Table and performs no I/O, so
// independent tables may be extracted concurrently.
package diary

import (
	"time"

	"github.com/justyn/myfitnesspal"
)

// Extract builds the Day for date from table using the default
// abbreviation table.
func Extract(date time.Time, table myfitnesspal.Table) (*myfitnesspal.Day, error) {
	return ExtractWith(date, table, Abbreviations)
}

// ExtractWith is like Extract but expands header labels through the given
// abbreviation table. Any failure aborts extraction; no partial Day is
// returned.
func ExtractWith(date time.Time, table myfitnesspal.Table, abbreviations map[string]string) (*myfitnesspal.Day, error) {
	header, err := FindMealHeader(table)
	if err != nil {
		return nil, err
	}
	schema, err := BuildSchema(header, abbreviations)
	if err != nil {
		return nil, err
	}

	meals, err := GroupMeals(table, schema)
	if err != nil {
		return nil, err
	}

	goalsRow, err := LocateGoalsRow(table)
	if err != nil {
		return nil, err
	}
	goals, err := ParseGoals(goalsRow, schema)
	if err != nil {
		return nil, err
	}

	return Assemble(date, meals, goals), nil
}
