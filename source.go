package myfitnesspal

import (
	"context"
	"time"
)

// PageSource retrieves the rendered diary page for a date.
// Implementations own transport, authentication and caching; extraction
// only ever sees the returned HTML.
type PageSource interface {
	// Page returns the diary page HTML for the given date.
	// Returns ENOTFOUND if no page exists for the date.
	Page(ctx context.Context, date time.Time) (html string, err error)
}

// DiaryReader extracts a Day from a diary page.
type DiaryReader interface {
	// ReadDiary parses html and extracts the diary for date.
	// It performs no I/O and never returns a partial Day.
	ReadDiary(date time.Time, html string) (*Day, error)
}

// DateLayout is the layout used for diary dates on the command line, in
// file names and in rendered output.
const DateLayout = "2006-01-02"
