package diary

import (
	"time"

	"github.com/justyn/myfitnesspal"
)

// Assemble wraps meals and goals into a Day for date. Inputs are copied so
// that later changes by the caller do not reach the Day. A nil meals slice
// or goals mapping becomes an empty one.
func Assemble(date time.Time, meals []myfitnesspal.Meal, goals myfitnesspal.Nutrition) *myfitnesspal.Day {
	day := &myfitnesspal.Day{
		Date:  date,
		Meals: make([]myfitnesspal.Meal, 0, len(meals)),
		Goals: copyNutrition(goals),
	}
	for _, m := range meals {
		entries := make([]myfitnesspal.Entry, 0, len(m.Entries))
		for _, e := range m.Entries {
			entries = append(entries, myfitnesspal.Entry{Name: e.Name, Nutrition: copyNutrition(e.Nutrition)})
		}
		day.Meals = append(day.Meals, myfitnesspal.Meal{Name: m.Name, Entries: entries})
	}
	return day
}

func copyNutrition(n myfitnesspal.Nutrition) myfitnesspal.Nutrition {
	c := make(myfitnesspal.Nutrition, len(n))
	for k, v := range n {
		c[k] = v
	}
	return c
}
