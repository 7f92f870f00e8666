package cli

import (
	"context"
	"fmt"

	"worklog/internal/prompt"
)

// MenuItem is one numbered line of a menu. An item without a command
// leaves the menu.
type MenuItem struct {
	Label   string
	Command string
}

// Menu prints numbered actions and runs the chosen one until an exit
// item is picked
type Menu struct {
	app   *App
	title string
	items []MenuItem
}

// NewMenu creates a menu over the app's command registry
func NewMenu(app *App, title string, items ...MenuItem) *Menu {
	return &Menu{app: app, title: title, items: items}
}

// Run loops until an exit item is chosen or a command fails
func (m *Menu) Run(ctx context.Context) error {
	p := m.app.prompter
	for {
		m.render()

		choice, err := prompt.Ask(p, fmt.Sprintf("\nChoose an option [1-%d] : ", len(m.items)), func(s string) (int, error) {
			return m.app.searches.ValidateChoice(s, len(m.items))
		})
		if err != nil {
			return err
		}

		item := m.items[choice-1]
		if item.Command == "" {
			return nil
		}
		if err := m.app.registry.Execute(ctx, item.Command); err != nil {
			return err
		}
	}
}

func (m *Menu) render() {
	p := m.app.prompter
	p.Printf("\n%s\n", m.title)
	for i, item := range m.items {
		p.Printf("%d. %s\n", i+1, item.Label)
	}
}
