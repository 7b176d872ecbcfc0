package main

import (
	"fmt"

	"github.com/fwojciec/planscrape"
)

// Run executes the programs command.
func (c *ProgramsCmd) Run(deps *Dependencies) error {
	programs, err := deps.Catalog.FetchPrograms(deps.Ctx, c.Level)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", planscrape.ErrorMessage(err))
		return err
	}

	if len(programs) == 0 {
		fmt.Fprintf(deps.Stdout, "No programs found at level %d.\n", c.Level)
		return nil
	}

	for _, p := range programs {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", p.Code, p.Name, p.Faculty)
	}

	return nil
}
