package main

import (
	"fmt"

	"github.com/fwojciec/planscrape"
)

// Run executes the grab command: fetch one page, locate its first table
// body, extract the text, and write the result.
func (c *GrabCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching %s: %s\n", c.URL, planscrape.ErrorMessage(err))
		return err
	}

	result, err := deps.Extractor.Extract(html)
	if err != nil {
		// Nothing is written when the page has no table; an empty
		// table would have extracted successfully.
		fmt.Fprintf(deps.Stderr, "error: %s\n", planscrape.ErrorMessage(err))
		return err
	}

	content := result.Text
	format := c.Format
	if format == planscrape.FormatMarkdown {
		content, err = deps.Converter.Convert(result.TableHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error converting to markdown: %s\n", planscrape.ErrorMessage(err))
			return err
		}
	}

	extraction := &planscrape.Extraction{
		SourceURL: c.URL,
		Format:    format,
		Content:   content,
	}

	if deps.Extractions != nil {
		if err := deps.Extractions.CreateExtraction(deps.Ctx, extraction); err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving: %s\n", planscrape.ErrorMessage(err))
			return err
		}
	}

	if deps.Writer == nil {
		fmt.Fprint(deps.Stdout, content)
		return nil
	}

	if err := deps.Writer.WriteExtraction(deps.Ctx, extraction); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %s\n", c.Out, planscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s\n", c.Out)
	return nil
}
