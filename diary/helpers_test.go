package diary_test

import (
	"time"

	"github.com/justyn/myfitnesspal"
)

var testDate = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

// row builds a row whose cells use the same string for text and label.
func row(class string, texts ...string) myfitnesspal.Row {
	cells := make([]myfitnesspal.Cell, len(texts))
	for i, t := range texts {
		cells[i] = myfitnesspal.Cell{Text: t, Label: t}
	}
	return myfitnesspal.Row{Class: class, Cells: cells}
}

func header(name string) myfitnesspal.Row {
	return row("meal_header", name, "Calories", "Carbs", "Fat", "Protein", "")
}

func item(name, calories, carbs, fat, protein string) myfitnesspal.Row {
	return row("", name, calories, carbs, fat, protein, "Delete")
}

// breakfastTable is a page with one breakfast item, an empty lunch, the
// meal footer, totals, goals and remaining rows.
func breakfastTable() myfitnesspal.Table {
	return myfitnesspal.Table{Rows: []myfitnesspal.Row{
		header("Breakfast"),
		item("Oatmeal", "150", "27g", "3g", "5g"),
		header("Lunch"),
		row("bottom", "Add Food", "150", "27g", "3g", "5g"),
		row("spacer"),
		row("total", "Totals", "150", "27g", "3g", "5g", ""),
		row("", "", "2000", "250g", "65g", "150g", "Delete"),
		row("total remaining", "Remaining", "1850", "223g", "62g", "145g", ""),
	}}
}
