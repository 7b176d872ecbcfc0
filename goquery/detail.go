package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/planscrape"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// ParsePlanDetail parses a plan detail page into semesters.
//
// The page lists each semester as an <h4> or <h5> heading containing
// "Yarıyıl" (or "Semester" on the English pages) followed by a table of
// that semester's courses. The first cell of each body row is the course
// code; internal whitespace is stripped ("FIZ 101E" -> "FIZ101E").
//
// The returned plan's Header is empty; callers compose it from the
// PlanRef label.
func ParsePlanDetail(html string) (*planscrape.Plan, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, planscrape.Errorf(planscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	plan := &planscrape.Plan{}
	var pendingTitle string
	var havePending bool

	// Headings and tables are interleaved in document order, so a single
	// pass attributes each table to the heading right before it.
	doc.Find("h4, h5, table").Each(func(_ int, sel *goquery.Selection) {
		name := goquery.NodeName(sel)
		if name == "h4" || name == "h5" {
			title := strings.TrimSpace(sel.Text())
			if isSemesterTitle(title) {
				pendingTitle = title
				havePending = true
			}
			return
		}

		if !havePending {
			return
		}

		sem := planscrape.Semester{Title: pendingTitle}
		sel.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			code := strings.TrimSpace(row.Find("td").First().Text())
			if code == "" {
				return
			}
			sem.Courses = append(sem.Courses, whitespaceRE.ReplaceAllString(code, ""))
		})

		plan.Semesters = append(plan.Semesters, sem)
		havePending = false
	})

	return plan, nil
}

func isSemesterTitle(s string) bool {
	return strings.Contains(s, "Yarıyıl") || strings.Contains(s, "Semester")
}
