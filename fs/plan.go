// Package fs provides file-based storage for scraped plans and extractions.
package fs

import (
	"regexp"
	"strings"

	"github.com/fwojciec/planscrape"
)

var unsafeFilenameRE = regexp.MustCompile(`[^\w\-.()çğıöşüÇĞİÖŞÜ]`)

// SanitizeFilename makes a catalog-derived string safe to use as a file name.
// Spaces become underscores, slashes become dashes, and anything outside a
// conservative allowlist (which keeps Turkish letters) is removed.
func SanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	return unsafeFilenameRE.ReplaceAllString(s, "")
}

// PlanFileName returns the output file name for a program's plans.
// Example: ("BLGE_LS", "lisans") -> "BLGE_LS_lisans.txt".
func PlanFileName(programCode, planType string) string {
	return SanitizeFilename(programCode + "_" + planType + ".txt")
}

// FormatProgramPlans renders a program's plans in the plan TXT format:
// FACULTY/TYPE/MAJOR header lines, then per plan version a PLAN header
// line followed by one semicolon-joined line of course codes per
// non-empty semester.
func FormatProgramPlans(pp *planscrape.ProgramPlans) string {
	var b strings.Builder
	b.WriteString("FACULTY\n")
	b.WriteString(pp.Program.Faculty)
	b.WriteString("\nTYPE\n")
	b.WriteString(pp.PlanTypeLabel)
	b.WriteString("\nMAJOR\n")
	b.WriteString(pp.Program.Name)
	b.WriteString("\n")
	for _, plan := range pp.Plans {
		b.WriteString("PLAN\n")
		b.WriteString(plan.Header)
		b.WriteString("\n")
		for _, sem := range plan.Semesters {
			if len(sem.Courses) == 0 {
				continue
			}
			b.WriteString(strings.Join(sem.Courses, ";"))
			b.WriteString("\n")
		}
	}
	return b.String()
}
