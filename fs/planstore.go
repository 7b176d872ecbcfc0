package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/planscrape"
)

// Ensure PlanStore implements planscrape.PlanStore at compile time.
var _ planscrape.PlanStore = (*PlanStore)(nil)

// PlanStore implements planscrape.PlanStore with atomic update semantics.
// Plan files are saved to a temporary directory, then moved atomically on
// Commit, so a failed scrape never leaves a half-written output directory.
type PlanStore struct {
	baseDir string
	name    string
}

// NewPlanStore creates a new PlanStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewPlanStore(baseDir, name string) *PlanStore {
	return &PlanStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *PlanStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *PlanStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one program's plan TXT file into the pending directory.
func (s *PlanStore) Save(ctx context.Context, pp *planscrape.ProgramPlans) error {
	if err := pp.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), PlanFileName(pp.Program.Code, pp.PlanType))
	return os.WriteFile(fullPath, []byte(FormatProgramPlans(pp)), 0644)
}

// Commit atomically replaces the final directory with the pending one.
func (s *PlanStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the pending directory.
func (s *PlanStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
