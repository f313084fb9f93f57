package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestFormatFileResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		line := FormatFileResult(3, 120, "src/app.js", nil)
		assert.Contains(t, line, "[  3/120]")
		assert.Contains(t, line, "src/app.js")
		assert.Contains(t, line, "✓")
	})

	t.Run("failure", func(t *testing.T) {
		line := FormatFileResult(4, 120, "src/bad.js", errors.New("status 500"))
		assert.Contains(t, line, "src/bad.js")
		assert.Contains(t, line, "✗")
	})
}

func TestFormatSummary(t *testing.T) {
	t.Run("all_succeeded", func(t *testing.T) {
		out := FormatSummary(2, 2, nil)
		assert.Contains(t, out, "Pushed: 2/2 files")
		assert.NotContains(t, out, "Failed")
	})

	t.Run("with_failures", func(t *testing.T) {
		out := FormatSummary(1, 2, []string{"src/app.js"})
		assert.Contains(t, out, "Pushed: 1/2 files")
		assert.Contains(t, out, "Failed: 1 files")
		assert.Contains(t, out, "- src/app.js")
	})
}
