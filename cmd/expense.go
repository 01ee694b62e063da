package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
)

// expenseCmd is the top-level command for expense tracking.
type expenseCmd struct{}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "track expenses and summarize them by category" }
func (*expenseCmd) Usage() string {
	return `expense <subcommand> <options>

Expense tracking commands.
`
}
func (c *expenseCmd) SetFlags(f *flag.FlagSet) {}

func (c *expenseCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "expense")
	commander.Register(&expenseAddCmd{}, "")
	commander.Register(&expenseSummaryCmd{}, "")
	return commander.Execute(ctx, args...)
}

// expenseAddCmd implements the "expense add" command.
type expenseAddCmd struct {
	date     string
	category string
	amount   float64
}

func (*expenseAddCmd) Name() string     { return "add" }
func (*expenseAddCmd) Synopsis() string { return "validate and record one expense" }
func (*expenseAddCmd) Usage() string {
	return `fab expense add -c <category> -a <amount> [-d <date>]

  Validates and records a single expense. The CLI process is its own
  session, so the entry lives only for this invocation; use 'fab serve' to
  keep a ledger alive across requests, or 'fab expense summary' to
  summarize a batch of entries.
`
}

func (p *expenseAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "0d", "Date of the expense (defaults to today).")
	f.StringVar(&p.category, "c", "", "Category of the expense.")
	f.Float64Var(&p.amount, "a", 0, "Amount of the expense.")
}

func (p *expenseAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := advisor.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger := advisor.NewLedger()
	amount := money(p.amount)
	if err := ledger.Add(day, p.category, amount); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added: %s - %s on %s\n", p.category, amount, day)
	return subcommands.ExitSuccess
}

// expenseSummaryCmd implements the "expense summary" command.
type expenseSummaryCmd struct {
	file string
}

func (*expenseSummaryCmd) Name() string     { return "summary" }
func (*expenseSummaryCmd) Synopsis() string { return "summarize a batch of expenses by category" }
func (*expenseSummaryCmd) Usage() string {
	return `fab expense summary [-f <file>]

  Reads expenses as CSV lines "date,category,amount" from stdin (or from a
  file) and displays the per-category totals.

Usage Example:
$ echo "2024-01-01,Groceries,50.00
2024-01-02,Groceries,30.00
2024-01-03,Rent,1200.00" | fab expense summary

`
}

func (p *expenseSummaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "CSV file to read expenses from (defaults to stdin).")
}

func (p *expenseSummaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := io.Reader(os.Stdin)
	if p.file != "" {
		file, err := os.Open(p.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening expense file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	ledger, err := readExpenses(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Println("No expenses recorded yet.")
		return subcommands.ExitSuccess
	}

	printMarkdown(summaryMarkdown(ledger))
	return subcommands.ExitSuccess
}

// readExpenses parses "date,category,amount" CSV records into a ledger.
func readExpenses(in io.Reader) (*advisor.Ledger, error) {
	reader := csv.NewReader(in)
	reader.TrimLeadingSpace = true

	ledger := advisor.NewLedger()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return ledger, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		if len(record) != 3 {
			return nil, fmt.Errorf("invalid expense record %q: want date,category,amount", strings.Join(record, ","))
		}
		day, err := advisor.ParseDate(record[0])
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", record[2], err)
		}
		if err := ledger.Add(day, record[1], money(amount)); err != nil {
			return nil, err
		}
	}
}

// summaryMarkdown renders the per-category totals as a markdown table.
func summaryMarkdown(ledger *advisor.Ledger) string {
	summary := ledger.Summary()
	categories := make([]string, 0, len(summary))
	for category := range summary {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("# Expense Summary\n\n")
	b.WriteString("| Category | Total |\n|---|---|\n")
	for _, category := range categories {
		fmt.Fprintf(&b, "| %s | %s |\n", category, summary[category])
	}
	fmt.Fprintf(&b, "\nGrand total: %s over %d expenses.\n", ledger.Total(), ledger.Len())
	return b.String()
}
