package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"spendtrack/internal/core"
	"spendtrack/internal/log"
	"spendtrack/internal/report"
	"spendtrack/internal/store"
)

// newFlagSet builds a subcommand flag set with the shared --storage flag.
func (a *App) newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	storage := fs.String("storage", "", "path to the expenses file (overrides STORAGE_PATH)")
	return fs, storage
}

func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}
	return nil
}

func (a *App) runAdd(ctx context.Context, args []string) error {
	fs, storage := a.newFlagSet("add")
	dateStr := fs.String("date", "", "expense date (YYYY-MM-DD, defaults to today)")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 3 {
		return fmt.Errorf("%w: add needs <amount> <category> <description>", core.ErrInvalidInput)
	}

	amount, err := core.ParseMoney(rest[0])
	if err != nil {
		return err
	}
	var date core.Date
	if *dateStr != "" {
		if date, err = core.ParseDate(*dateStr); err != nil {
			return err
		}
	}

	s, err := a.openStore(*storage)
	if err != nil {
		return err
	}
	defer s.Close()

	col, err := s.Load(ctx)
	if err != nil {
		return err
	}
	col, created, err := store.Add(col, store.AddInput{
		Amount:      amount,
		Category:    rest[1],
		Description: rest[2],
		Date:        date,
	}, a.NewID)
	if err != nil {
		return err
	}
	if err := s.Save(ctx, col); err != nil {
		return err
	}

	a.Logger.Info("Expense added",
		log.FieldOperation, log.OpAdd,
		log.FieldExpenseID, created.ID,
		log.FieldCategory, created.Category,
		log.FieldAmountCents, created.Amount.Cents)
	fmt.Fprintf(a.Stdout, "Added expense %s: %s %s on %s (%s)\n",
		created.ID, created.Amount, created.Category, created.Date, created.Description)
	return nil
}

func (a *App) runList(ctx context.Context, args []string) error {
	fs, storage := a.newFlagSet("list")
	category := fs.String("category", "", "filter by category")
	startDate := fs.String("start-date", "", "filter from date (YYYY-MM-DD)")
	endDate := fs.String("end-date", "", "filter to date (YYYY-MM-DD)")
	limit := fs.Int("limit", 0, "maximum number of expenses to show")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if len(fs.Args()) != 0 {
		return fmt.Errorf("%w: list takes no arguments", core.ErrInvalidInput)
	}

	q := report.Query{Category: *category, Limit: *limit}
	var err error
	if *startDate != "" {
		if q.From, err = core.ParseDate(*startDate); err != nil {
			return err
		}
	}
	if *endDate != "" {
		if q.To, err = core.ParseDate(*endDate); err != nil {
			return err
		}
	}

	s, err := a.openStore(*storage)
	if err != nil {
		return err
	}
	defer s.Close()

	col, err := s.Load(ctx)
	if err != nil {
		return err
	}
	matched := report.Filter(col, q)
	if len(matched) == 0 {
		fmt.Fprintln(a.Stdout, "No expenses found.")
		return nil
	}

	w := tabwriter.NewWriter(a.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	var total core.Money
	for _, e := range matched {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Category, e.Amount, e.Description)
		total = total.Add(e.Amount)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.Stdout, "\nTotal: %s (%d expenses)\n", total, len(matched))
	return nil
}

func (a *App) runSummary(ctx context.Context, args []string) error {
	fs, storage := a.newFlagSet("summary")
	monthStr := fs.String("month", "", "restrict to a month (YYYY-MM)")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if len(fs.Args()) != 0 {
		return fmt.Errorf("%w: summary takes no arguments", core.ErrInvalidInput)
	}

	var month *core.Month
	if *monthStr != "" {
		m, err := core.ParseMonth(*monthStr)
		if err != nil {
			return err
		}
		month = &m
	}

	s, err := a.openStore(*storage)
	if err != nil {
		return err
	}
	defer s.Close()

	col, err := s.Load(ctx)
	if err != nil {
		return err
	}
	summary := report.Summarize(col, month)
	if summary.Empty() {
		fmt.Fprintln(a.Stdout, "No expenses found for the specified period.")
		return nil
	}

	title := "Spending summary"
	if month != nil {
		title += " (" + month.String() + ")"
	}
	fmt.Fprintln(a.Stdout, title)

	w := tabwriter.NewWriter(a.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL\tCOUNT\tAVERAGE")
	for _, ct := range summary.ByCategory {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", ct.Category, ct.Total, ct.Count, ct.Average)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.Stdout, "\nGrand total: %s\n", summary.Total)
	return nil
}

func (a *App) runDelete(ctx context.Context, args []string) error {
	fs, storage := a.newFlagSet("delete")
	force := fs.Bool("force", false, "skip confirmation prompt")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("%w: delete needs <id>", core.ErrInvalidInput)
	}
	id := rest[0]

	s, err := a.openStore(*storage)
	if err != nil {
		return err
	}
	defer s.Close()

	col, err := s.Load(ctx)
	if err != nil {
		return err
	}
	target, ok := store.Find(col, id)
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}

	if !*force {
		fmt.Fprintf(a.Stdout, "Delete expense %s: %s %s on %s (%s)? [y/N]: ",
			target.ID, target.Amount, target.Category, target.Date, target.Description)
		if !a.confirm() {
			fmt.Fprintln(a.Stdout, "Cancelled.")
			return nil
		}
	}

	col, err = store.Delete(col, id)
	if err != nil {
		return err
	}
	if err := s.Save(ctx, col); err != nil {
		return err
	}

	a.Logger.Info("Expense deleted", log.FieldOperation, log.OpDelete, log.FieldExpenseID, id)
	fmt.Fprintf(a.Stdout, "Deleted expense %s\n", id)
	return nil
}

func (a *App) confirm() bool {
	sc := bufio.NewScanner(a.Stdin)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "y" || answer == "yes"
}

func (a *App) runExport(ctx context.Context, args []string) error {
	fs, storage := a.newFlagSet("export")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("%w: export needs <destination>", core.ErrInvalidInput)
	}
	dest := rest[0]

	s, err := a.openStore(*storage)
	if err != nil {
		return err
	}
	defer s.Close()

	col, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := report.ExportFile(col, dest); err != nil {
		return err
	}

	a.Logger.Info("Expenses exported",
		log.FieldOperation, log.OpExport,
		log.FieldCount, len(col),
		log.FieldPath, dest)
	fmt.Fprintf(a.Stdout, "Exported %d expenses to %s\n", len(col), dest)
	return nil
}

func (a *App) runCategories(ctx context.Context, args []string) error {
	fs, storage := a.newFlagSet("categories")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if len(fs.Args()) != 0 {
		return fmt.Errorf("%w: categories takes no arguments", core.ErrInvalidInput)
	}

	s, err := a.openStore(*storage)
	if err != nil {
		return err
	}
	defer s.Close()

	col, err := s.Load(ctx)
	if err != nil {
		return err
	}
	cats := report.Categories(col)
	if len(cats) == 0 {
		fmt.Fprintln(a.Stdout, "No categories found. Add some expenses first.")
		return nil
	}
	for _, c := range cats {
		fmt.Fprintln(a.Stdout, c)
	}
	return nil
}
