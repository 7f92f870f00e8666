package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"worklog/internal/domain"
	"worklog/internal/prompt"
)

// AddEntryCommand walks the user through a new entry
type AddEntryCommand struct {
	app *App
}

// NewAddEntryCommand creates a new add entry command handler
func NewAddEntryCommand(app *App) *AddEntryCommand {
	return &AddEntryCommand{app: app}
}

// Execute asks for every field, previews the draft and saves it once
// the user confirms
func (c *AddEntryCommand) Execute(ctx context.Context) error {
	draft, err := c.readDraft()
	if err != nil {
		return err
	}

	p := c.app.prompter
	p.Printf("\nPlease review your entry:\n%s\n%s", separator, c.app.formatEntry(draft))

	save, err := p.Confirm("\nSave this entry? [Yn] ", true)
	if err != nil {
		return err
	}
	if !save {
		c.app.logger.Debug("entry discarded", zap.String("employee", draft.EmployeeName))
		p.Println("\nWork log entry has not been saved!")
		return p.Pause(msgPressEnter)
	}

	if _, err := c.app.businessAPI.SaveEntry(ctx, draft); err != nil {
		if !c.app.errors.IsValidationError(err) {
			return err
		}
		c.app.logger.Debug("entry rejected", zap.String("code", c.app.errors.GetErrorCode(err)))
		p.Printf("\n%s\n", c.app.errors.Message(err))
		p.Println("\nWork log entry has not been saved!")
		return p.Pause(msgPressEnter)
	}
	p.Println("\nWork log entry saved!")
	return nil
}

func (c *AddEntryCommand) readDraft() (domain.Entry, error) {
	a := c.app
	p := a.prompter
	p.ClearScreen()

	name, err := prompt.Ask(p, "Please enter your full name i.e. Stuart McIntosh : ", a.entries.ValidateEmployeeName)
	if err != nil {
		return domain.Entry{}, err
	}

	taskPrompt := fmt.Sprintf("Enter the task performed, no more than %d characters : ", a.config.Validation.TaskMaxLength)
	task, err := prompt.Ask(p, taskPrompt, a.entries.ValidateTask)
	if err != nil {
		return domain.Entry{}, err
	}

	started, err := prompt.Ask(p, "Enter the date and time you started, dd/mm/yy hh:mm : ", a.entries.ValidateDateStarted)
	if err != nil {
		return domain.Entry{}, err
	}

	completed, err := prompt.Ask(p, "Enter the date and time you finished, dd/mm/yy hh:mm : ", func(s string) (time.Time, error) {
		return a.entries.ValidateDateCompleted(s, started)
	})
	if err != nil {
		return domain.Entry{}, err
	}

	notes, err := p.ReadNotes("Enter your task notes - press Ctrl+D when finished")
	if err != nil {
		return domain.Entry{}, err
	}

	return domain.NewEntry(name, task, started, completed, notes), nil
}

// ModifyEntryCommand stands in for entry editing, which is not offered
type ModifyEntryCommand struct {
	app *App
}

// NewModifyEntryCommand creates a new modify entry command handler
func NewModifyEntryCommand(app *App) *ModifyEntryCommand {
	return &ModifyEntryCommand{app: app}
}

// Execute reports that entries cannot be modified
func (c *ModifyEntryCommand) Execute(ctx context.Context) error {
	c.app.prompter.Println("\nModifying entries is not available yet.")
	return nil
}
