package slog_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/justyn/myfitnesspal"
	"github.com/justyn/myfitnesspal/mock"
	mfpslog "github.com/justyn/myfitnesspal/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDiaryReader_ReadDiary(t *testing.T) {
	t.Parallel()

	t.Run("logs meal and entry counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &myfitnesspal.Day{
			Date: testDate,
			Meals: []myfitnesspal.Meal{
				{Name: "breakfast", Entries: []myfitnesspal.Entry{{Name: "Oatmeal"}, {Name: "Coffee"}}},
				{Name: "lunch"},
			},
			Goals: myfitnesspal.Nutrition{"calories": 2000},
		}
		inner := &mock.DiaryReader{
			ReadDiaryFn: func(date time.Time, html string) (*myfitnesspal.Day, error) {
				return want, nil
			},
		}

		reader := mfpslog.NewLoggingDiaryReader(inner, logger)
		day, err := reader.ReadDiary(testDate, "<html></html>")

		require.NoError(t, err)
		assert.Same(t, want, day)
		output := buf.String()
		assert.Contains(t, output, `msg="read diary"`)
		assert.Contains(t, output, "date=2024-01-02")
		assert.Contains(t, output, "meals=2")
		assert.Contains(t, output, "entries=2")
		assert.Contains(t, output, "goals=1")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DiaryReader{
			ReadDiaryFn: func(date time.Time, html string) (*myfitnesspal.Day, error) {
				return nil, myfitnesspal.Errorf(myfitnesspal.EMISSING, "no total row")
			},
		}

		reader := mfpslog.NewLoggingDiaryReader(inner, logger)
		day, err := reader.ReadDiary(testDate, "<html></html>")

		require.Error(t, err)
		assert.Nil(t, day)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "code=missing_marker")
	})
}
