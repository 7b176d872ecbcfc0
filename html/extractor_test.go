package html_test

import (
	"testing"

	"github.com/fwojciec/planscrape"
	planhtml "github.com/fwojciec/planscrape/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func TestTableExtractor_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ planscrape.Extractor = planhtml.NewTableExtractor()
}

func TestTableExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts text of the first table body", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
<table><tbody><tr><td>BLG 101</td><td>Intro to Computing</td></tr></tbody></table>
</body></html>`

		got, err := planhtml.NewTableExtractor().Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "BLG 101Intro to Computing", got.Text)
	})

	t.Run("excludes script content inside cells", func(t *testing.T) {
		t.Parallel()

		page := `<table><tbody><tr><td>Course A<script>alert(1)</script></td><td> — 3 credits</td></tr></tbody></table>`

		got, err := planhtml.NewTableExtractor().Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Course A — 3 credits", got.Text)
	})

	t.Run("returns ENOTFOUND when the page has no table", func(t *testing.T) {
		t.Parallel()

		got, err := planhtml.NewTableExtractor().Extract(`<div>no tables here</div>`)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, planscrape.ENOTFOUND, planscrape.ErrorCode(err))
	})

	t.Run("empty table body is success, not ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		got, err := planhtml.NewTableExtractor().Extract(`<table><tbody></tbody></table>`)

		require.NoError(t, err)
		assert.Empty(t, got.Text)
	})

	t.Run("uses the first table body when several exist", func(t *testing.T) {
		t.Parallel()

		page := `<table><tbody><tr><td>first</td></tr></tbody></table>
<table><tbody><tr><td>second</td></tr></tbody></table>`

		got, err := planhtml.NewTableExtractor().Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "first", got.Text)
	})

	t.Run("renders the located subtree as HTML", func(t *testing.T) {
		t.Parallel()

		page := `<table><tbody><tr><td>cell</td></tr></tbody></table>`

		got, err := planhtml.NewTableExtractor().Extract(page)

		require.NoError(t, err)
		assert.Contains(t, got.TableHTML, "<tbody>")
		assert.Contains(t, got.TableHTML, "<td>cell</td>")
	})

	t.Run("locates a custom target tag", func(t *testing.T) {
		t.Parallel()

		page := `<table><thead><tr><th>Code</th></tr></thead><tbody><tr><td>x</td></tr></tbody></table>`

		e := planhtml.NewTableExtractor(planhtml.WithTarget(atom.Thead))
		got, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Code", got.Text)
	})
}
