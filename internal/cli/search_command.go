package cli

import (
	"context"
	"fmt"

	"worklog/internal/api"
	"worklog/internal/prompt"
)

// SearchCommand collects the criterion for one search mode and reviews
// the matches
type SearchCommand struct {
	app  *App
	mode api.SearchMode
}

// NewSearchCommand creates a new search command handler
func NewSearchCommand(app *App, mode api.SearchMode) *SearchCommand {
	return &SearchCommand{app: app, mode: mode}
}

// Execute runs the search. An empty pick-list skips straight to the
// empty review.
func (c *SearchCommand) Execute(ctx context.Context) error {
	req, header, ok, err := c.readRequest(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return NewReviewSession(c.app, "", nil).Run(ctx)
	}

	result, err := c.app.businessAPI.Search(ctx, req)
	if err != nil {
		return err
	}
	return NewReviewSession(c.app, header, result.Entries).Run(ctx)
}

func (c *SearchCommand) readRequest(ctx context.Context) (api.SearchRequest, string, bool, error) {
	a := c.app
	p := a.prompter
	req := api.SearchRequest{Mode: c.mode}

	switch c.mode {
	case api.SearchByEmployee:
		names, err := a.businessAPI.ListEmployees(ctx)
		if err != nil || names.Len() == 0 {
			return req, "", false, err
		}
		choice, err := c.pick("Employees", "an employee", names.Items())
		if err != nil {
			return req, "", false, err
		}
		req.Employee, _ = names.At(choice)
		return req, fmt.Sprintf("The following task(s) were logged by %s :", req.Employee), true, nil

	case api.SearchByDate:
		dates, err := a.businessAPI.ListStartDates(ctx)
		if err != nil || dates.Len() == 0 {
			return req, "", false, err
		}
		labels := make([]string, 0, dates.Len())
		for _, d := range dates.Items() {
			labels = append(labels, a.displayDate(d))
		}
		choice, err := c.pick("Start dates", "a date", labels)
		if err != nil {
			return req, "", false, err
		}
		req.Started, _ = dates.At(choice)
		return req, fmt.Sprintf("The following task(s) started on %s :", labels[choice-1]), true, nil

	case api.SearchByDuration:
		query, err := prompt.Ask(p, "\nEnter the time spent in minutes, a number (30) or a range (20-50) : ", a.searches.ValidateDuration)
		if err != nil {
			return req, "", false, err
		}
		req.Duration = query
		return req, fmt.Sprintf("The following task(s) took %s :", query), true, nil

	case api.SearchByLookup:
		text, err := prompt.Ask(p, "\nEnter a word or phrase to find in tasks and notes : ", a.searches.ValidateSearchText)
		if err != nil {
			return req, "", false, err
		}
		req.Text = text
		return req, fmt.Sprintf("The following task(s) matched %q :", text), true, nil

	default:
		return req, "All work log entries :", true, nil
	}
}

// pick prints a numbered list and returns the 1-based choice
func (c *SearchCommand) pick(title, noun string, labels []string) (int, error) {
	p := c.app.prompter
	p.ClearScreen()
	p.Printf("\n%s\n", title)
	for i, label := range labels {
		p.Printf("%d. %s\n", i+1, label)
	}

	question := fmt.Sprintf("\nPlease select %s from the list [1-%d] : ", noun, len(labels))
	return prompt.Ask(p, question, func(s string) (int, error) {
		return c.app.searches.ValidateChoice(s, len(labels))
	})
}
