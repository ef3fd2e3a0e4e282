package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/config"
	"spendtrack/internal/log"
)

// newTestApp returns an app bound to a fresh temp storage file with a
// deterministic id sequence (id-1, id-2, ...) and captured streams.
func newTestApp(t *testing.T) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{
		StoragePath: filepath.Join(t.TempDir(), "expenses.json"),
		DataBackend: "json",
		LogLevel:    "error",
	}
	logger := log.New(log.Config{Level: slog.LevelError, Component: log.ComponentApp})

	var stdout, stderr bytes.Buffer
	app := NewApp(cfg, logger)
	app.Stdout = &stdout
	app.Stderr = &stderr
	app.Stdin = strings.NewReader("")

	seq := 0
	app.NewID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return app, &stdout, &stderr
}

func TestAddThenList(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	require.Zero(t, app.Run([]string{"add", "--date", "2025-03-09", "50.00", "food", "Lunch"}))
	require.Zero(t, app.Run([]string{"add", "--date", "2025-03-01", "1500", "rent", "Monthly"}))

	stdout.Reset()
	require.Zero(t, app.Run([]string{"list"}))

	out := stdout.String()
	assert.Contains(t, out, "id-1")
	assert.Contains(t, out, "id-2")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "1500.00")
	assert.Contains(t, out, "Total: 1550.00 (2 expenses)")
}

func TestListFilters(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	require.Zero(t, app.Run([]string{"add", "--date", "2025-03-09", "50", "food", "Lunch"}))
	require.Zero(t, app.Run([]string{"add", "--date", "2025-03-01", "1500", "rent", "Monthly"}))
	require.Zero(t, app.Run([]string{"add", "--date", "2025-02-20", "7", "food", "Coffee"}))

	stdout.Reset()
	require.Zero(t, app.Run([]string{"list", "--category", "Food", "--start-date", "2025-03-01"}))

	out := stdout.String()
	assert.Contains(t, out, "id-1")
	assert.NotContains(t, out, "id-2")
	assert.NotContains(t, out, "id-3")
}

func TestSummaryScenario(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	require.Zero(t, app.Run([]string{"add", "50.00", "food", "Lunch"}))
	require.Zero(t, app.Run([]string{"add", "1500", "rent", "Monthly"}))

	stdout.Reset()
	require.Zero(t, app.Run([]string{"summary"}))

	out := stdout.String()
	assert.Contains(t, out, "food")
	assert.Contains(t, out, "rent")
	assert.Contains(t, out, "Grand total: 1550.00")
}

func TestSummaryMonth(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	require.Zero(t, app.Run([]string{"add", "--date", "2025-03-09", "50", "food", "Lunch"}))
	require.Zero(t, app.Run([]string{"add", "--date", "2025-02-20", "7", "food", "Coffee"}))

	stdout.Reset()
	require.Zero(t, app.Run([]string{"summary", "--month", "2025-03"}))

	out := stdout.String()
	assert.Contains(t, out, "Spending summary (2025-03)")
	assert.Contains(t, out, "Grand total: 50.00")
}

func TestAddNegativeAmount(t *testing.T) {
	app, _, stderr := newTestApp(t)

	code := app.Run([]string{"add", "-5", "food", "Lunch"})
	assert.Equal(t, 2, code, "invalid input exit code")
	assert.Contains(t, stderr.String(), "Error:")

	// collection unchanged
	var stdout bytes.Buffer
	app.Stdout = &stdout
	require.Zero(t, app.Run([]string{"list"}))
	assert.Contains(t, stdout.String(), "No expenses found.")
}

func TestDeleteForce(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	require.Zero(t, app.Run([]string{"add", "50", "food", "Lunch"}))

	stdout.Reset()
	require.Zero(t, app.Run([]string{"delete", "--force", "id-1"}))
	assert.Contains(t, stdout.String(), "Deleted expense id-1")

	stdout.Reset()
	require.Zero(t, app.Run([]string{"list"}))
	assert.Contains(t, stdout.String(), "No expenses found.")
}

func TestDeleteConfirmation(t *testing.T) {
	app, stdout, _ := newTestApp(t)
	require.Zero(t, app.Run([]string{"add", "50", "food", "Lunch"}))

	// decline
	app.Stdin = strings.NewReader("n\n")
	stdout.Reset()
	require.Zero(t, app.Run([]string{"delete", "id-1"}))
	assert.Contains(t, stdout.String(), "Cancelled.")

	// accept
	app.Stdin = strings.NewReader("y\n")
	stdout.Reset()
	require.Zero(t, app.Run([]string{"delete", "id-1"}))
	assert.Contains(t, stdout.String(), "Deleted expense id-1")
}

func TestDeleteUnknownID(t *testing.T) {
	app, _, stderr := newTestApp(t)

	code := app.Run([]string{"delete", "--force", "never-issued"})
	assert.Equal(t, 3, code, "not found exit code")
	assert.Contains(t, stderr.String(), "never-issued")
}

func TestExport(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	require.Zero(t, app.Run([]string{"add", "--date", "2025-03-09", "50", "food", "Lunch"}))

	dest := filepath.Join(t.TempDir(), "out.csv")
	stdout.Reset()
	require.Zero(t, app.Run([]string{"export", dest}))
	assert.Contains(t, stdout.String(), "Exported 1 expenses")
}

func TestExportUnwritableDestination(t *testing.T) {
	app, _, _ := newTestApp(t)

	code := app.Run([]string{"export", filepath.Join(t.TempDir(), "missing", "out.csv")})
	assert.Equal(t, 1, code)
}

func TestCategories(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	require.Zero(t, app.Run([]string{"add", "50", "Food", "Lunch"}))
	require.Zero(t, app.Run([]string{"add", "1500", "rent", "Monthly"}))

	stdout.Reset()
	require.Zero(t, app.Run([]string{"categories"}))
	assert.Equal(t, "food\nrent\n", stdout.String())
}

func TestCorruptStorage(t *testing.T) {
	app, _, stderr := newTestApp(t)

	require.NoError(t, os.WriteFile(app.Config.StoragePath, []byte("not json"), 0644))

	code := app.Run([]string{"list"})
	assert.Equal(t, 4, code, "corrupt data exit code")
	assert.Contains(t, stderr.String(), "Error:")
}

func TestUnknownCommand(t *testing.T) {
	app, _, stderr := newTestApp(t)

	code := app.Run([]string{"frobnicate"})
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "unknown command")
}

func TestStorageOverrideFlag(t *testing.T) {
	app, stdout, _ := newTestApp(t)
	other := filepath.Join(t.TempDir(), "other.json")

	require.Zero(t, app.Run([]string{"add", "--storage", other, "50", "food", "Lunch"}))

	stdout.Reset()
	require.Zero(t, app.Run([]string{"list"}))
	assert.Contains(t, stdout.String(), "No expenses found.", "default storage untouched")

	stdout.Reset()
	require.Zero(t, app.Run([]string{"list", "--storage", other}))
	assert.Contains(t, stdout.String(), "id-1")
}
