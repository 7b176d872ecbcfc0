// Package goquery parses course catalog pages using CSS selectors.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/planscrape"
)

// programCodeRE matches catalog program codes (e.g. "BLGE_LS").
var programCodeRE = regexp.MustCompile(`^[A-ZÇĞİÖŞÜ0-9_]+$`)

// ParsePrograms parses the program-codes page into programs.
//
// The page lists each faculty as an <h5> heading followed by a table of
// that faculty's programs; rows are walked in document order so each
// program is attributed to the most recent faculty heading.
func ParsePrograms(html string) ([]*planscrape.Program, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, planscrape.Errorf(planscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	var programs []*planscrape.Program
	var faculty string

	doc.Find("h5, table tbody tr").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "h5" {
			faculty = strings.TrimSpace(sel.Text())
			return
		}

		cells := sel.Find("td").Map(func(_ int, td *goquery.Selection) string {
			return strings.TrimSpace(td.Text())
		})
		if len(cells) < 2 || !programCodeRE.MatchString(cells[0]) {
			return
		}

		programs = append(programs, &planscrape.Program{
			Faculty: faculty,
			Code:    cells[0],
			Name:    cells[1],
		})
	})

	return programs, nil
}
