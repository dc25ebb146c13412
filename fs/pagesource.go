// Package fs provides file-based access to saved diary pages.
package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/justyn/myfitnesspal"
	"golang.org/x/net/html/charset"
)

// Ensure PageSource implements myfitnesspal.PageSource at compile time.
var _ myfitnesspal.PageSource = (*PageSource)(nil)

// PageSource reads diary pages saved in a directory, one file per date.
type PageSource struct {
	dir string
}

// NewPageSource creates a PageSource reading from dir.
func NewPageSource(dir string) *PageSource {
	return &PageSource{dir: dir}
}

// DateToPath converts a diary date to the page's file name.
// Example: 2024-01-02 → 2024-01-02.html
func DateToPath(date time.Time) string {
	return date.Format(myfitnesspal.DateLayout) + ".html"
}

// Page returns the saved page for date decoded to UTF-8. The encoding is
// taken from a byte order mark or the page's meta charset declaration.
// Returns ENOTFOUND if no page is saved for the date.
func (s *PageSource) Page(ctx context.Context, date time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, DateToPath(date))
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", myfitnesspal.Errorf(myfitnesspal.ENOTFOUND, "no diary page for %s in %s", date.Format(myfitnesspal.DateLayout), s.dir)
	} else if err != nil {
		return "", err
	}
	defer f.Close()

	r, err := charset.NewReader(f, "text/html")
	if err != nil {
		return "", myfitnesspal.Errorf(myfitnesspal.EINVALID, "cannot decode %s: %v", path, err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
