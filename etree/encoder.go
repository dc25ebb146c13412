// Package etree renders diaries as XML using github.com/beevik/etree.
package etree

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/justyn/myfitnesspal"
)

// WriteDays writes days as an indented XML document:
//
//	<diary>
//	  <day date="2024-01-02">
//	    <meal name="breakfast">
//	      <entry name="Oatmeal">
//	        <nutrient name="calories">150</nutrient>
//	      </entry>
//	    </meal>
//	    <goals>
//	      <nutrient name="calories">2000</nutrient>
//	    </goals>
//	  </day>
//	</diary>
//
// Nutrients are written in field name order.
func WriteDays(w io.Writer, days []*myfitnesspal.Day) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("diary")
	for _, day := range days {
		appendDay(root, day)
	}
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func appendDay(parent *etree.Element, day *myfitnesspal.Day) {
	el := parent.CreateElement("day")
	el.CreateAttr("date", day.Date.Format(myfitnesspal.DateLayout))
	for _, m := range day.Meals {
		meal := el.CreateElement("meal")
		meal.CreateAttr("name", m.Name)
		for _, e := range m.Entries {
			entry := meal.CreateElement("entry")
			entry.CreateAttr("name", e.Name)
			appendNutrition(entry, e.Nutrition)
		}
	}
	appendNutrition(el.CreateElement("goals"), day.Goals)
}

func appendNutrition(parent *etree.Element, n myfitnesspal.Nutrition) {
	for _, f := range n.Fields() {
		nutrient := parent.CreateElement("nutrient")
		nutrient.CreateAttr("name", f)
		nutrient.SetText(strconv.Itoa(n[f]))
	}
}
