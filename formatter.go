package myfitnesspal

import (
	"strconv"
	"strings"
)

// FormatDay formats a day as a plain-text report.
// Meals are listed in page order with their entries and a per-meal total,
// followed by the day's totals, goals and remaining values.
func FormatDay(day *Day) string {
	var b strings.Builder
	b.WriteString(day.Date.Format(DateLayout))
	b.WriteString("\n")

	for _, m := range day.Meals {
		b.WriteString("\n")
		b.WriteString(m.Name)
		b.WriteString("\n")
		if len(m.Entries) == 0 {
			b.WriteString("  (no entries)\n")
			continue
		}
		for _, e := range m.Entries {
			b.WriteString("  " + e.Name + ": " + FormatNutrition(e.Nutrition) + "\n")
		}
		b.WriteString("  total: " + FormatNutrition(m.Totals()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("totals: " + FormatNutrition(day.Totals()) + "\n")
	b.WriteString("goals: " + FormatNutrition(day.Goals) + "\n")
	b.WriteString("remaining: " + FormatNutrition(day.Remaining()))
	return b.String()
}

// FormatNutrition formats values as space-separated field=value pairs in
// field order. An empty mapping formats as "-".
func FormatNutrition(n Nutrition) string {
	if len(n) == 0 {
		return "-"
	}
	fields := n.Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+"="+strconv.Itoa(n[f]))
	}
	return strings.Join(parts, " ")
}
