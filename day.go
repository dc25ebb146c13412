package myfitnesspal

import (
	"sort"
	"strings"
	"time"
)

// Nutrition maps a canonical field name (e.g. "calories", "carbohydrates")
// to a whole-number value.
type Nutrition map[string]int

// Fields returns the field names in sorted order.
func (n Nutrition) Fields() []string {
	fields := make([]string, 0, len(n))
	for f := range n {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Add returns a new Nutrition holding the per-field sum of n and other.
// Neither operand is modified.
func (n Nutrition) Add(other Nutrition) Nutrition {
	sum := make(Nutrition, len(n))
	for f, v := range n {
		sum[f] = v
	}
	for f, v := range other {
		sum[f] += v
	}
	return sum
}

// Entry represents one logged food item.
type Entry struct {
	Name      string    `json:"name"`
	Nutrition Nutrition `json:"nutrition"`
}

// Meal represents a named group of entries in logged order.
// Name is lower-cased, e.g. "breakfast".
type Meal struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Totals returns the summed nutrition of the meal's entries.
func (m Meal) Totals() Nutrition {
	totals := Nutrition{}
	for _, e := range m.Entries {
		totals = totals.Add(e.Nutrition)
	}
	return totals
}

// Day is the diary for a single date: its meals in page order and the
// user's daily goals. A Day is built once per extraction and is not
// modified afterwards.
type Day struct {
	Date  time.Time `json:"date"`
	Meals []Meal    `json:"meals"`
	Goals Nutrition `json:"goals"`
}

// Meal returns the meal with the given name, compared case-insensitively.
func (d *Day) Meal(name string) (Meal, bool) {
	for _, m := range d.Meals {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Meal{}, false
}

// Entries returns every entry of the day in page order.
func (d *Day) Entries() []Entry {
	var entries []Entry
	for _, m := range d.Meals {
		entries = append(entries, m.Entries...)
	}
	return entries
}

// Totals returns the summed nutrition across all meals.
func (d *Day) Totals() Nutrition {
	totals := Nutrition{}
	for _, m := range d.Meals {
		totals = totals.Add(m.Totals())
	}
	return totals
}

// Remaining returns goals minus totals for every field present in goals.
// Values go negative once a goal is exceeded.
func (d *Day) Remaining() Nutrition {
	totals := d.Totals()
	remaining := make(Nutrition, len(d.Goals))
	for f, goal := range d.Goals {
		remaining[f] = goal - totals[f]
	}
	return remaining
}
