package diary

import (
	"context"
	"time"

	"github.com/justyn/myfitnesspal"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of dates Days processes at once when
// Service.Concurrency is not set.
const DefaultConcurrency = 4

// Service extracts diaries for dates by reading pages from a PageSource.
type Service struct {
	Pages  myfitnesspal.PageSource
	Reader myfitnesspal.DiaryReader

	// Concurrency limits how many dates Days processes at once.
	Concurrency int
}

// Day returns the diary for a single date.
func (s *Service) Day(ctx context.Context, date time.Time) (*myfitnesspal.Day, error) {
	html, err := s.Pages.Page(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.Reader.ReadDiary(date, html)
}

// Days returns the diaries for every date from from to to inclusive, in
// date order. The first failure cancels the remaining dates and is
// returned.
func (s *Service) Days(ctx context.Context, from, to time.Time) ([]*myfitnesspal.Day, error) {
	dates, err := DateRange(from, to)
	if err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	days := make([]*myfitnesspal.Day, len(dates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, date := range dates {
		g.Go(func() error {
			day, err := s.Day(gctx, date)
			if err != nil {
				return err
			}
			days[i] = day
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return days, nil
}

// DateRange returns every calendar date from from to to inclusive.
// Returns EINVALID if to is before from.
func DateRange(from, to time.Time) ([]time.Time, error) {
	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil, myfitnesspal.Errorf(myfitnesspal.EINVALID, "end date %s is before start date %s",
			to.Format(myfitnesspal.DateLayout), from.Format(myfitnesspal.DateLayout))
	}

	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
