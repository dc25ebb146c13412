// Package goquery reads diary pages into myfitnesspal tables using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/justyn/myfitnesspal"
	"github.com/justyn/myfitnesspal/diary"
	"golang.org/x/net/html"
)

// ParseHTML parses a diary page into a goquery document.
func ParseHTML(r io.Reader) (*goquery.Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, myfitnesspal.Errorf(myfitnesspal.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(node), nil
}

// ReadTable reads the diary table of doc. The diary table is the table
// holding the first meal header row; every row of that table, in document
// order, becomes a Row. Rows of nested tables are not included.
// Returns EMISSING if the document has no meal header row.
func ReadTable(doc *goquery.Document) (myfitnesspal.Table, error) {
	header := doc.Find("tr." + diary.MealHeaderClass).First()
	if header.Length() == 0 {
		return myfitnesspal.Table{}, myfitnesspal.Errorf(myfitnesspal.EMISSING, "no tr.%s in document", diary.MealHeaderClass)
	}

	rows := doc.Find("tr")
	if table := header.Closest("table"); table.Length() > 0 {
		rows = table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
			return tr.Closest("table").IsSelection(table)
		})
	}

	var t myfitnesspal.Table
	rows.Each(func(_ int, tr *goquery.Selection) {
		t.Rows = append(t.Rows, readRow(tr))
	})
	return t, nil
}

func readRow(tr *goquery.Selection) myfitnesspal.Row {
	class, _ := tr.Attr("class")
	row := myfitnesspal.Row{Class: class}
	tr.ChildrenFiltered("td, th").Each(func(_ int, td *goquery.Selection) {
		row.Cells = append(row.Cells, readCell(td))
	})
	return row
}

func readCell(td *goquery.Selection) myfitnesspal.Cell {
	cell := myfitnesspal.Cell{Text: normalizeSpace(td.Text())}
	cell.Label = cell.Text
	if link := td.Find("a").First(); link.Length() > 0 {
		cell.Label = normalizeSpace(link.Text())
	}
	return cell
}

// normalizeSpace trims s and collapses internal whitespace runs to a single
// space.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
