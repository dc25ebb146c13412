package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/justyn/myfitnesspal"
	"github.com/justyn/myfitnesspal/diary"
)

// Ensure DiaryReader implements myfitnesspal.DiaryReader at compile time.
var _ myfitnesspal.DiaryReader = (*DiaryReader)(nil)

// DiaryReader extracts diaries from HTML diary pages.
type DiaryReader struct {
	abbreviations map[string]string
}

// Option configures a DiaryReader.
type Option func(*DiaryReader)

// WithAbbreviations sets the table used to expand column header labels.
// Defaults to diary.Abbreviations.
func WithAbbreviations(abbreviations map[string]string) Option {
	return func(r *DiaryReader) {
		r.abbreviations = abbreviations
	}
}

// NewDiaryReader creates a new DiaryReader.
func NewDiaryReader(opts ...Option) *DiaryReader {
	r := &DiaryReader{
		abbreviations: diary.Abbreviations,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadDiary parses html and extracts the diary for date.
func (r *DiaryReader) ReadDiary(date time.Time, html string) (*myfitnesspal.Day, error) {
	doc, err := ParseHTML(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return r.ReadDocument(date, doc)
}

// ReadDocument extracts the diary for date from an already parsed page.
// The document is not modified.
func (r *DiaryReader) ReadDocument(date time.Time, doc *goquery.Document) (*myfitnesspal.Day, error) {
	table, err := ReadTable(doc)
	if err != nil {
		return nil, err
	}
	return diary.ExtractWith(date, table, r.abbreviations)
}
