package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"worklog/internal/api"
	"worklog/internal/config"
	"worklog/internal/logging"
	"worklog/internal/repository/sqlite"
)

const longHelp = `Work log (worklog) is an interactive journal of the tasks you complete.

FEATURES:
  • Record who did a task, when it started and finished, and free-form notes
  • Search entries by employee, start date, time spent or a word in the task or notes
  • Page through results one entry at a time and delete entries on the way
  • Export every entry as CSV or JSON

EXAMPLES:
  worklog                                  # Open the interactive menu
  worklog --db-dir ./data                  # Keep the journal in ./data
  worklog export --format csv > log.csv    # Export to a CSV file
  worklog export --format json             # Export as JSON

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults
`

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	configFile string

	config *config.Config
	logger *zap.Logger
	repo   sqlite.Repository
	api    api.BusinessAPI

	errors *ErrorHandler
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{errors: NewErrorHandler(nil)}

	long := longHelp
	if desc, err := config.Description(); err == nil {
		long += "\n" + desc
	}

	root.cmd = &cobra.Command{
		Use:           "worklog",
		Short:         "A command-line work journal",
		Long:          long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := NewApp(root.api, root.config, cmd.InOrStdin(), cmd.OutOrStdout(), root.logger)
			return app.Run(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command, logs a fatal error and releases the
// store afterwards
func (r *RootCommand) Execute(ctx context.Context) error {
	defer r.close()

	err := r.cmd.ExecuteContext(ctx)
	r.errors.Log(err)
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.configFile, "config", "", "YAML config file read before the environment")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides WORKLOG_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WORKLOG_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WORKLOG_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides WORKLOG_DB_WRITE_TIMEOUT)")

	// Display configuration
	flags.String("date-format", "", "Date display layout (overrides WORKLOG_DISPLAY_DATE_FORMAT)")
	flags.Bool("clear-screen", true, "Clear the terminal before forms and lists (overrides WORKLOG_CLEAR_SCREEN)")

	// Log configuration
	flags.String("log-level", "", "Log level (overrides WORKLOG_LOG_LEVEL)")
	flags.String("log-file", "", "Log file (overrides WORKLOG_LOG_FILE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var format string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all entries",
		Long: `Export every work log entry, ordered by employee name descending.

Supported formats:
  csv  - Comma-separated values with a header row
  json - An indented JSON array

Example:
  worklog export --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutputCommand(r.api, cmd.OutOrStdout())
			if err := output.Execute(cmd.Context(), strings.ToLower(format)); err != nil {
				return r.errors.Handle("export entries", err)
			}
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", FormatCSV, "Output format: csv or json")

	r.cmd.AddCommand(exportCmd)
}

// setup loads configuration and opens the store before any command runs
func (r *RootCommand) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if r.configFile != "" {
		loader.WithFile(r.configFile)
	}

	cfg, err := loader.LoadWithOverrides(r.overridesFromFlags(cmd))
	if err != nil {
		return r.errors.Handle("load configuration", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return r.errors.Handle("create logger", err)
	}
	r.logger = logger
	r.errors = NewErrorHandler(logger)

	repo, err := config.CreateRepository(cmd.Context(), cfg, logger)
	if err != nil {
		return r.errors.Handle("open work log", err)
	}

	r.config = cfg
	r.repo = repo
	r.api = api.NewBusinessAPI(repo, logger)

	logger.Debug("configuration loaded", zap.String("database", cfg.GetDatabasePath()))
	return nil
}

// overridesFromFlags collects the flags set on the command line
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	dur := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetDuration(name)
		return &v
	}

	overrides := &config.ConfigOverrides{
		DBDir:          str("db-dir"),
		DBFilename:     str("db-filename"),
		DBQueryTimeout: dur("db-query-timeout"),
		DBWriteTimeout: dur("db-write-timeout"),
		DateFormat:     str("date-format"),
		LogLevel:       str("log-level"),
		LogFile:        str("log-file"),
	}
	if flags.Changed("clear-screen") {
		v, _ := flags.GetBool("clear-screen")
		overrides.ClearScreen = &v
	}
	return overrides
}

func (r *RootCommand) close() {
	if r.repo != nil {
		if err := r.repo.Close(); err != nil {
			r.logger.Warn("failed to close database", zap.Error(err))
		}
		r.repo = nil
	}
	if r.logger != nil {
		_ = r.logger.Sync()
	}
}
