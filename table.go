package myfitnesspal

// Cell is one cell of a diary table row.
type Cell struct {
	// Text is the cell's trimmed text content.
	Text string

	// Label is the trimmed text of the first link inside the cell, or Text
	// when the cell contains no link. Item rows carry the food name here.
	Label string
}

// Row is one row of a diary table.
type Row struct {
	// Class is the row's raw class attribute. Plain item rows have none.
	Class string

	Cells []Cell
}

// Table is the flat, document-ordered sequence of rows of one diary page.
type Table struct {
	Rows []Row
}
