package slog

import (
	"log/slog"
	"time"

	"github.com/justyn/myfitnesspal"
)

// Ensure LoggingDiaryReader implements myfitnesspal.DiaryReader.
var _ myfitnesspal.DiaryReader = (*LoggingDiaryReader)(nil)

// LoggingDiaryReader wraps a DiaryReader with logging of what was
// extracted.
type LoggingDiaryReader struct {
	next   myfitnesspal.DiaryReader
	logger *slog.Logger
}

// NewLoggingDiaryReader creates a new LoggingDiaryReader.
func NewLoggingDiaryReader(next myfitnesspal.DiaryReader, logger *slog.Logger) *LoggingDiaryReader {
	return &LoggingDiaryReader{next: next, logger: logger}
}

// ReadDiary delegates to the wrapped reader and logs meal and entry counts.
func (r *LoggingDiaryReader) ReadDiary(date time.Time, html string) (day *myfitnesspal.Day, err error) {
	defer func(begin time.Time) {
		if err != nil {
			r.logger.Error("read diary",
				"date", date.Format(myfitnesspal.DateLayout),
				"code", myfitnesspal.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		r.logger.Info("read diary",
			"date", date.Format(myfitnesspal.DateLayout),
			"meals", len(day.Meals),
			"entries", len(day.Entries()),
			"goals", len(day.Goals),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.ReadDiary(date, html)
}
