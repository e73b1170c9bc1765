package htmlkit_test

import (
	"testing"

	"github.com/fwojciec/htmlkit"
	"github.com/stretchr/testify/assert"
)

func TestCachedPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		page := &htmlkit.CachedPage{URL: "https://example.com", Renderer: htmlkit.RendererStatic}
		assert.NoError(t, page.Validate())
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		page := &htmlkit.CachedPage{Renderer: htmlkit.RendererBrowser}
		err := page.Validate()
		assert.Equal(t, htmlkit.EINVALID, htmlkit.ErrorCode(err))
	})

	t.Run("unknown renderer", func(t *testing.T) {
		t.Parallel()

		page := &htmlkit.CachedPage{URL: "https://example.com", Renderer: "screenshot"}
		err := page.Validate()
		assert.Equal(t, htmlkit.EINVALID, htmlkit.ErrorCode(err))
	})
}
