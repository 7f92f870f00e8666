package cli

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"worklog/internal/domain"
)

// ReviewSession pages through search results one entry at a time
type ReviewSession struct {
	app     *App
	header  string
	entries []domain.Entry
}

// NewReviewSession creates a review over a private copy of entries
func NewReviewSession(app *App, header string, entries []domain.Entry) *ReviewSession {
	working := make([]domain.Entry, len(entries))
	copy(working, entries)
	return &ReviewSession{app: app, header: header, entries: working}
}

// Remaining returns the entries not deleted during the review
func (r *ReviewSession) Remaining() []domain.Entry {
	return r.entries
}

// Run shows each entry and acts on next, delete or quit. Anything
// other than d or q moves to the next entry.
func (r *ReviewSession) Run(ctx context.Context) error {
	p := r.app.prompter

	if r.header != "" {
		p.Printf("\n%s\n", r.header)
	}
	if len(r.entries) == 0 {
		p.Printf("\n%s\n", msgNoMatches)
		return p.Pause(msgPressEnter)
	}

	for i := 0; i < len(r.entries); {
		entry := r.entries[i]
		p.Printf("\n%s\nEntry %d of %d\n%s", separator, i+1, len(r.entries), r.app.formatEntry(entry))

		action, err := p.ReadLine("\n[N]ext, [d]elete, [q]uit [Ndq] : ")
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(action)) {
		case "q":
			return nil
		case "d":
			deleted, err := r.delete(ctx, entry)
			if err != nil {
				return err
			}
			if !deleted {
				i++
			}
		default:
			i++
		}
	}

	p.Println("\nEnd of results.")
	return nil
}

// delete removes entry from the store and the working list once confirmed
func (r *ReviewSession) delete(ctx context.Context, entry domain.Entry) (bool, error) {
	p := r.app.prompter

	sure, err := p.Confirm("Are you sure? [yN] ", false)
	if err != nil || !sure {
		return false, err
	}

	err = r.app.businessAPI.DeleteEntry(ctx, entry.UID)
	switch {
	case err == nil:
		p.Println("\nEntry deleted!")
	case r.app.errors.IsNotFoundError(err):
		r.app.logger.Debug("entry already gone", zap.String("uid", entry.UID))
		p.Println("\nEntry no longer exists.")
	default:
		return false, err
	}
	r.entries = removeByUID(r.entries, entry.UID)
	return true, nil
}

func removeByUID(entries []domain.Entry, uid string) []domain.Entry {
	kept := entries[:0]
	for _, e := range entries {
		if e.UID != uid {
			kept = append(kept, e)
		}
	}
	return kept
}
