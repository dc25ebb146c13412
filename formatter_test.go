package myfitnesspal_test

import (
	"testing"
	"time"

	"github.com/justyn/myfitnesspal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNutrition(t *testing.T) {
	t.Parallel()

	t.Run("formats fields in sorted order", func(t *testing.T) {
		t.Parallel()

		result := myfitnesspal.FormatNutrition(myfitnesspal.Nutrition{"protein": 5, "calories": 150})

		assert.Equal(t, "calories=150 protein=5", result)
	})

	t.Run("formats empty mapping as dash", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "-", myfitnesspal.FormatNutrition(nil))
	})
}

func TestFormatDay(t *testing.T) {
	t.Parallel()

	t.Run("formats meals entries and summary", func(t *testing.T) {
		t.Parallel()

		day := &myfitnesspal.Day{
			Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Meals: []myfitnesspal.Meal{
				{Name: "breakfast", Entries: []myfitnesspal.Entry{
					{Name: "Oatmeal", Nutrition: myfitnesspal.Nutrition{"calories": 150}},
				}},
				{Name: "lunch"},
			},
			Goals: myfitnesspal.Nutrition{"calories": 2000},
		}

		result := myfitnesspal.FormatDay(day)

		expected := "2024-01-02\n" +
			"\nbreakfast\n" +
			"  Oatmeal: calories=150\n" +
			"  total: calories=150\n" +
			"\nlunch\n" +
			"  (no entries)\n" +
			"\ntotals: calories=150\n" +
			"goals: calories=2000\n" +
			"remaining: calories=1850"
		assert.Equal(t, expected, result)
	})

	t.Run("formats day without meals", func(t *testing.T) {
		t.Parallel()

		day := &myfitnesspal.Day{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}

		result := myfitnesspal.FormatDay(day)

		assert.Equal(t, "2024-01-02\n\ntotals: -\ngoals: -\nremaining: -", result)
	})
}
