package mock

import (
	"context"
	"time"

	"github.com/justyn/myfitnesspal"
)

var _ myfitnesspal.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of myfitnesspal.PageSource.
type PageSource struct {
	PageFn func(ctx context.Context, date time.Time) (string, error)
}

func (s *PageSource) Page(ctx context.Context, date time.Time) (string, error) {
	return s.PageFn(ctx, date)
}
