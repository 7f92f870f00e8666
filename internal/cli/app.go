package cli

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"worklog/internal/api"
	"worklog/internal/config"
	"worklog/internal/prompt"
	"worklog/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the interactive work log
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	prompter    *prompt.Prompter
	entries     *validation.EntryValidator
	searches    *validation.SearchValidator
	logger      *zap.Logger
	errors      *ErrorHandler
	registry    *CommandRegistry
}

// NewApp creates a new CLI application reading answers from in and
// printing to out
func NewApp(businessAPI api.BusinessAPI, cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	v := validation.NewValidatorWithConfig(cfg).WithClock(func() time.Time { return timeNow() })

	app := &App{
		businessAPI: businessAPI,
		config:      cfg,
		prompter:    prompt.New(in, out).WithClearScreen(cfg.Display.ClearScreen),
		entries:     validation.NewEntryValidator(v),
		searches:    validation.NewSearchValidator(v),
		logger:      logger,
		errors:      NewErrorHandler(logger),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run shows the main menu until the user quits. Only storage and
// input failures end it early.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("work log started")
	if err := a.mainMenu().Run(ctx); err != nil {
		return err
	}
	a.prompter.Println("\nGoodbye!")
	return nil
}

func (a *App) mainMenu() *Menu {
	return NewMenu(a, "WORK LOG\nWhat would you like to do?",
		MenuItem{Label: "Add new entry", Command: cmdAddEntry},
		MenuItem{Label: "Search existing entries", Command: cmdSearch},
		MenuItem{Label: "Modify an entry", Command: cmdModifyEntry},
		MenuItem{Label: "Quit"},
	)
}

func (a *App) searchMenu() *Menu {
	return NewMenu(a, "Do you want to search by:",
		MenuItem{Label: "Employee", Command: cmdSearchEmployee},
		MenuItem{Label: "Date", Command: cmdSearchDate},
		MenuItem{Label: "Time spent", Command: cmdSearchDuration},
		MenuItem{Label: "Search term", Command: cmdSearchLookup},
		MenuItem{Label: "Browse all entries", Command: cmdBrowseAll},
		MenuItem{Label: "Return to main menu"},
	)
}
