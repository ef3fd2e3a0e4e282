package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"spendtrack/internal/backend"
	"spendtrack/internal/config"
	"spendtrack/internal/core"
	"spendtrack/internal/log"
	"spendtrack/internal/store"
)

const usageText = `spendtrack - personal expense tracker

Usage:
  spendtrack <command> [flags] [args]

Commands:
  add         Add a new expense: add [--date YYYY-MM-DD] <amount> <category> <description>
  list        List expenses: list [--category C] [--start-date D] [--end-date D] [--limit N]
  summary     Spending summary by category: summary [--month YYYY-MM]
  delete      Delete an expense by id: delete [--force] <id>
  export      Export all expenses to CSV: export <destination>
  categories  List all known categories
  help        Show this help

Every command accepts --storage <path> to override the expenses file.
Configuration comes from the environment (STORAGE_PATH, DATA_BACKEND,
SQLITE_DB_PATH, LOG_LEVEL), optionally via a .env file.
`

// App runs one CLI invocation. The out/err/in streams and the id generator
// are injectable for tests.
type App struct {
	Config *config.Config
	Logger *log.Logger

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	NewID store.IDFunc
}

func NewApp(cfg *config.Config, logger *log.Logger) *App {
	return &App{
		Config: cfg,
		Logger: logger.WithComponent(log.ComponentCLI),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		NewID:  store.ShortID,
	}
}

// Run dispatches the command and returns the process exit code.
func (a *App) Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.Stderr, usageText)
		return 2
	}

	ctx := context.Background()
	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "add":
		err = a.runAdd(ctx, rest)
	case "list":
		err = a.runList(ctx, rest)
	case "summary":
		err = a.runSummary(ctx, rest)
	case "delete":
		err = a.runDelete(ctx, rest)
	case "export":
		err = a.runExport(ctx, rest)
	case "categories":
		err = a.runCategories(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.Stdout, usageText)
		return 0
	default:
		fmt.Fprintf(a.Stderr, "unknown command %q\n\n", cmd)
		fmt.Fprint(a.Stderr, usageText)
		return 2
	}

	if err != nil {
		fmt.Fprintln(a.Stderr, "Error:", err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps the error taxonomy to process exit codes: 2 invalid input,
// 3 not found, 4 corrupt data, 1 everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, core.ErrInvalidInput):
		return 2
	case errors.Is(err, core.ErrNotFound):
		return 3
	case errors.Is(err, core.ErrCorruptData):
		return 4
	default:
		return 1
	}
}

// openStore builds the configured backend. A non-empty storage override
// (the --storage flag) forces the JSON file backend on that path.
func (a *App) openStore(storageOverride string) (store.Store, error) {
	bcfg := backend.FromAppConfig(a.Config)
	if storageOverride != "" {
		bcfg.Type = backend.JSONBackend
		bcfg.StoragePath = storageOverride
	}
	s, err := backend.Open(bcfg, a.Logger.Logger)
	if err != nil {
		return nil, err
	}
	a.Logger.Debug("Opened store", log.FieldBackend, bcfg.Type.String())
	return s, nil
}
