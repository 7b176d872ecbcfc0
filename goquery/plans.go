package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/planscrape"
)

// planDetailRE captures the numeric plan ID from a detail page href.
var planDetailRE = regexp.MustCompile(`/public/DersPlan/DersPlanDetay/(\d+)`)

// ParsePlanRefs parses the plan-list page into plan references.
//
// Each row containing a link to a plan detail page yields one reference;
// the reference label is the full row text collapsed to single spaces,
// which typically describes when the plan version is effective.
func ParsePlanRefs(html string) ([]*planscrape.PlanRef, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, planscrape.Errorf(planscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	var refs []*planscrape.PlanRef

	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		a := row.Find(`a[href*="/public/DersPlan/DersPlanDetay/"]`).First()
		href, exists := a.Attr("href")
		if !exists {
			return
		}

		m := planDetailRE.FindStringSubmatch(href)
		if m == nil {
			return
		}

		refs = append(refs, &planscrape.PlanRef{
			ID:    m[1],
			Label: collapseWhitespace(row.Text()),
		})
	})

	return refs, nil
}

// collapseWhitespace reduces all whitespace runs to single spaces and trims
// the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
