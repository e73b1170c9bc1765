package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/htmlkit"
	"github.com/fwojciec/htmlkit/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageService_CreatePage(t *testing.T) {
	t.Parallel()

	t.Run("creates page with generated ID, hash, and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		page := &htmlkit.CachedPage{
			URL:      "https://example.com/docs",
			Renderer: htmlkit.RendererStatic,
			Content:  "<html><body>docs</body></html>",
		}

		err := svc.CreatePage(ctx, page)
		require.NoError(t, err)

		assert.NotEmpty(t, page.ID, "ID should be generated")
		assert.Regexp(t, "^[0-9a-f]{16}$", page.ContentHash, "content hash should be set")
		assert.False(t, page.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("returns error for invalid page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		page := &htmlkit.CachedPage{} // missing required fields

		err := svc.CreatePage(ctx, page)
		require.Error(t, err)
		assert.Equal(t, htmlkit.EINVALID, htmlkit.ErrorCode(err))
	})

	t.Run("replaces existing page with same URL and renderer", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		first := &htmlkit.CachedPage{
			URL:      "https://example.com/docs",
			Renderer: htmlkit.RendererStatic,
			Content:  "<html>old</html>",
		}
		require.NoError(t, svc.CreatePage(ctx, first))

		second := &htmlkit.CachedPage{
			URL:      "https://example.com/docs",
			Renderer: htmlkit.RendererStatic,
			Content:  "<html>new</html>",
		}
		require.NoError(t, svc.CreatePage(ctx, second))

		found, err := svc.FindPage(ctx, "https://example.com/docs", htmlkit.RendererStatic)
		require.NoError(t, err)
		assert.Equal(t, "<html>new</html>", found.Content)
		assert.Equal(t, second.ID, found.ID)

		var count int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "replacement should not add a row")
	})

	t.Run("caches renderers independently for the same URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		static := &htmlkit.CachedPage{
			URL:      "https://example.com/app",
			Renderer: htmlkit.RendererStatic,
			Content:  "<html>static</html>",
		}
		require.NoError(t, svc.CreatePage(ctx, static))

		rendered := &htmlkit.CachedPage{
			URL:      "https://example.com/app",
			Renderer: htmlkit.RendererBrowser,
			Content:  "<html>rendered</html>",
		}
		require.NoError(t, svc.CreatePage(ctx, rendered))

		found, err := svc.FindPage(ctx, "https://example.com/app", htmlkit.RendererStatic)
		require.NoError(t, err)
		assert.Equal(t, "<html>static</html>", found.Content)

		found, err = svc.FindPage(ctx, "https://example.com/app", htmlkit.RendererBrowser)
		require.NoError(t, err)
		assert.Equal(t, "<html>rendered</html>", found.Content)
	})
}

func TestPageService_FindPage(t *testing.T) {
	t.Parallel()

	t.Run("returns page when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		page := &htmlkit.CachedPage{
			URL:      "https://example.com/docs",
			Renderer: htmlkit.RendererBrowser,
			Content:  "<html>rendered</html>",
		}
		require.NoError(t, svc.CreatePage(ctx, page))

		found, err := svc.FindPage(ctx, "https://example.com/docs", htmlkit.RendererBrowser)
		require.NoError(t, err)
		assert.Equal(t, page.ID, found.ID)
		assert.Equal(t, page.URL, found.URL)
		assert.Equal(t, page.Renderer, found.Renderer)
		assert.Equal(t, page.Content, found.Content)
		assert.Equal(t, page.ContentHash, found.ContentHash)
		assert.WithinDuration(t, page.FetchedAt, found.FetchedAt, time.Second)
	})

	t.Run("returns ENOTFOUND when not cached", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)

		_, err := svc.FindPage(context.Background(), "https://example.com/missing", htmlkit.RendererStatic)
		require.Error(t, err)
		assert.Equal(t, htmlkit.ENOTFOUND, htmlkit.ErrorCode(err))
	})
}

func TestPageService_DeletePagesBefore(t *testing.T) {
	t.Parallel()

	t.Run("removes only pages older than the cutoff", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		old := &htmlkit.CachedPage{
			URL:      "https://example.com/old",
			Renderer: htmlkit.RendererStatic,
			Content:  "<html>old</html>",
		}
		require.NoError(t, svc.CreatePage(ctx, old))

		// Backdate the first page past the cutoff
		stale := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
		_, err := db.ExecContext(ctx, "UPDATE pages SET fetched_at = ? WHERE id = ?", stale, old.ID)
		require.NoError(t, err)

		fresh := &htmlkit.CachedPage{
			URL:      "https://example.com/fresh",
			Renderer: htmlkit.RendererStatic,
			Content:  "<html>fresh</html>",
		}
		require.NoError(t, svc.CreatePage(ctx, fresh))

		removed, err := svc.DeletePagesBefore(ctx, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		_, err = svc.FindPage(ctx, "https://example.com/old", htmlkit.RendererStatic)
		assert.Equal(t, htmlkit.ENOTFOUND, htmlkit.ErrorCode(err))

		_, err = svc.FindPage(ctx, "https://example.com/fresh", htmlkit.RendererStatic)
		assert.NoError(t, err)
	})

	t.Run("returns zero when nothing matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)

		removed, err := svc.DeletePagesBefore(context.Background(), time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}
