package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/justyn/myfitnesspal"
	"github.com/justyn/myfitnesspal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func TestDateToPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-01-02.html", fs.DateToPath(testDate))
}

func TestPageSource_Page(t *testing.T) {
	t.Parallel()

	t.Run("reads the page saved for the date", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		html := `<html><head><meta charset="utf-8"></head><body>Crème brûlée</body></html>`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-01-02.html"), []byte(html), 0644))

		got, err := fs.NewPageSource(dir).Page(context.Background(), testDate)

		require.NoError(t, err)
		assert.Equal(t, html, got)
	})

	t.Run("decodes the declared charset", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := []byte(`<html><head><meta charset="iso-8859-1"></head><body>Cr` + "\xe8" + `me</body></html>`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-01-02.html"), page, 0644))

		got, err := fs.NewPageSource(dir).Page(context.Background(), testDate)

		require.NoError(t, err)
		assert.Contains(t, got, "Crème")
	})

	t.Run("returns not found for a missing date", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewPageSource(t.TempDir()).Page(context.Background(), testDate)

		require.Error(t, err)
		assert.Equal(t, myfitnesspal.ENOTFOUND, myfitnesspal.ErrorCode(err))
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewPageSource(t.TempDir()).Page(ctx, testDate)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
