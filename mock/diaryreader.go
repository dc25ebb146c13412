package mock

import (
	"time"

	"github.com/justyn/myfitnesspal"
)

var _ myfitnesspal.DiaryReader = (*DiaryReader)(nil)

// DiaryReader is a mock implementation of myfitnesspal.DiaryReader.
type DiaryReader struct {
	ReadDiaryFn func(date time.Time, html string) (*myfitnesspal.Day, error)
}

func (r *DiaryReader) ReadDiary(date time.Time, html string) (*myfitnesspal.Day, error) {
	return r.ReadDiaryFn(date, html)
}
