package advisor

import (
	"fmt"
	"strings"
)

// Expense is a single dated, categorized spending record. It is immutable
// once added to a ledger.
type Expense struct {
	Day      Date
	Category string
	Amount   Money
}

// Ledger is the in-memory record of the session's expenses.
//
// Expenses are kept in insertion order. The order is preserved for display
// but is irrelevant for the summary, which groups by category.
type Ledger struct {
	expenses []Expense
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{expenses: make([]Expense, 0)}
}

// Add appends a new expense to the ledger.
//
// It rejects negative amounts, zero dates and blank categories with
// ErrInvalidInput rather than corrupting the ledger.
func (l *Ledger) Add(day Date, category string, amount Money) error {
	if day.IsZero() {
		return fmt.Errorf("%w: expense date is not set", ErrInvalidInput)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: expense category is empty", ErrInvalidInput)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: expense amount %s is negative", ErrInvalidInput, amount)
	}
	l.expenses = append(l.expenses, Expense{Day: day, Category: category, Amount: amount})
	return nil
}

// Len returns the number of recorded expenses.
func (l *Ledger) Len() int { return len(l.expenses) }

// Expenses returns the recorded expenses in insertion order.
func (l *Ledger) Expenses() []Expense {
	out := make([]Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Summary returns the total amount spent per category.
//
// An empty ledger yields an empty map. Iteration order over the map is
// unspecified; callers that display it should sort the keys.
func (l *Ledger) Summary() map[string]Money {
	summary := make(map[string]Money)
	for _, e := range l.expenses {
		summary[e.Category] = summary[e.Category].Add(e.Amount)
	}
	return summary
}

// Total returns the grand total over all expenses.
func (l *Ledger) Total() Money {
	var total Money
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}
