package planscrape

import "context"

// Program identifies a degree program in the catalog.
type Program struct {
	// Faculty is the faculty heading the program was listed under.
	Faculty string `json:"faculty"`

	// Name is the program's display name.
	Name string `json:"name"`

	// Code is the short program code (e.g. "BLGE_LS").
	Code string `json:"code"`
}

// Validate returns an error if the program contains invalid fields.
func (p *Program) Validate() error {
	if p.Code == "" {
		return Errorf(EINVALID, "program code required")
	}
	if p.Name == "" {
		return Errorf(EINVALID, "program name required")
	}
	return nil
}

// PlanRef points at one version of a program's course plan.
type PlanRef struct {
	// ID is the numeric plan identifier from the detail page URL.
	ID string `json:"id"`

	// Label is the catalog row text describing when the plan is effective,
	// collapsed to single spaces.
	Label string `json:"label"`
}

// Semester holds the course codes of a single semester within a plan.
type Semester struct {
	// Title is the semester heading as it appears on the detail page.
	Title string `json:"title"`

	// Courses are the normalized course codes in row order.
	// Codes have internal whitespace removed ("FIZ 101E" -> "FIZ101E").
	Courses []string `json:"courses"`
}

// Plan is one fully-fetched course plan version.
type Plan struct {
	// Header describes the plan version, typically the program name
	// followed by its effective date range.
	Header string `json:"header"`

	// Semesters are in document order from the detail page.
	Semesters []Semester `json:"semesters"`
}

// ProgramPlans bundles everything needed to persist one program's plans.
type ProgramPlans struct {
	Program Program `json:"program"`

	// PlanType is the catalog plan type code (e.g. "lisans").
	PlanType string `json:"planType"`

	// PlanTypeLabel is the human-readable plan type (e.g. "Lisans").
	PlanTypeLabel string `json:"planTypeLabel"`

	Plans []*Plan `json:"plans"`
}

// Validate returns an error if the bundle contains invalid fields.
func (pp *ProgramPlans) Validate() error {
	if err := pp.Program.Validate(); err != nil {
		return err
	}
	if pp.PlanType == "" {
		return Errorf(EINVALID, "program plans plan type required")
	}
	return nil
}

// CatalogService fetches and parses the course catalog pages.
type CatalogService interface {
	// FetchPrograms returns all programs listed at the given level
	// (e.g. 2 for undergraduate).
	FetchPrograms(ctx context.Context, level int) ([]*Program, error)

	// FetchPlans returns references to all plan versions for a program
	// and plan type (e.g. "lisans").
	FetchPlans(ctx context.Context, planType, programCode string) ([]*PlanRef, error)

	// FetchPlanDetail fetches one plan's semesters. The returned plan's
	// Header is left empty; callers compose it from the PlanRef label.
	FetchPlanDetail(ctx context.Context, planID string) (*Plan, error)
}

// PlanStore persists program plans with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PlanStore interface {
	Save(ctx context.Context, pp *ProgramPlans) error
	Commit() error
	Abort() error
}
