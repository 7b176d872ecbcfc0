package goquery_test

import (
	"testing"

	"github.com/fwojciec/planscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlanRefs(t *testing.T) {
	t.Parallel()

	t.Run("extracts plan IDs and labels from detail links", func(t *testing.T) {
		t.Parallel()

		html := `<table><tbody>
<tr>
  <td><a href="/public/DersPlan/DersPlanDetay/1234">Görüntüle</a></td>
  <td>2021-2022   Güz ile
      2025-2026 Yaz arası</td>
</tr>
<tr>
  <td><a href="/public/DersPlan/DersPlanDetay/987">Görüntüle</a></td>
  <td>2025-2026 Güz sonrası</td>
</tr>
</tbody></table>`

		refs, err := goquery.ParsePlanRefs(html)

		require.NoError(t, err)
		require.Len(t, refs, 2)

		assert.Equal(t, "1234", refs[0].ID)
		assert.Equal(t, "Görüntüle 2021-2022 Güz ile 2025-2026 Yaz arası", refs[0].Label)

		assert.Equal(t, "987", refs[1].ID)
		assert.Equal(t, "Görüntüle 2025-2026 Güz sonrası", refs[1].Label)
	})

	t.Run("skips rows without a detail link", func(t *testing.T) {
		t.Parallel()

		html := `<table><tbody>
<tr><td>No link here</td></tr>
<tr><td><a href="/public/Other/Page/5">elsewhere</a></td></tr>
<tr><td><a href="/public/DersPlan/DersPlanDetay/42">plan</a></td></tr>
</tbody></table>`

		refs, err := goquery.ParsePlanRefs(html)

		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "42", refs[0].ID)
	})

	t.Run("returns empty result when no plans are listed", func(t *testing.T) {
		t.Parallel()

		refs, err := goquery.ParsePlanRefs(`<table><tbody></tbody></table>`)

		require.NoError(t, err)
		assert.Empty(t, refs)
	})
}
