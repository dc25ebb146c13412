package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/justyn/myfitnesspal"
)

// Ensure LoggingPageSource implements myfitnesspal.PageSource.
var _ myfitnesspal.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging.
type LoggingPageSource struct {
	next   myfitnesspal.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next myfitnesspal.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// Page delegates to the wrapped source and logs the page size.
func (s *LoggingPageSource) Page(ctx context.Context, date time.Time) (html string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "page",
			"date", date.Format(myfitnesspal.DateLayout),
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Page(ctx, date)
}
