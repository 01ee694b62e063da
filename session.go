package advisor

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// persona is the system message establishing the advisor's role.
const persona = "You are a financial advisor bot."

// Session is the in-memory state behind one user session: the expense
// ledger, the retirement plan, and handles to the external gateways.
//
// A session is owned by exactly one serving surface and is not safe for
// concurrent use; the HTTP server serializes access at its boundary. It is
// constructed explicitly and passed into each handler rather than living as
// a process-wide global.
type Session struct {
	ID uuid.UUID

	ledger    *Ledger
	planner   *Planner
	suggester *Suggester

	inflation InflationProvider
	advisor   Completer
}

// NewSession creates a fresh session over the given gateways. Any gateway
// may be nil; the corresponding operations then degrade (inflation) or fail
// (advice, suggestions) as documented on each method.
func NewSession(inflation InflationProvider, quotes QuoteProvider, advisor Completer) *Session {
	return &Session{
		ID:        uuid.New(),
		ledger:    NewLedger(),
		planner:   NewPlanner(),
		suggester: NewSuggester(quotes),
		inflation: inflation,
		advisor:   advisor,
	}
}

// Suggester exposes the suggestion settings (allocation method, watchlist).
func (s *Session) Suggester() *Suggester { return s.suggester }

// AddExpense records an expense in the session ledger.
func (s *Session) AddExpense(day Date, category string, amount Money) error {
	return s.ledger.Add(day, category, amount)
}

// Expenses returns the recorded expenses in insertion order.
func (s *Session) Expenses() []Expense { return s.ledger.Expenses() }

// ExpenseSummary returns the per-category expense totals.
func (s *Session) ExpenseSummary() map[string]Money { return s.ledger.Summary() }

// ExpenseTotal returns the grand total over all expenses.
func (s *Session) ExpenseTotal() Money { return s.ledger.Total() }

// SetPlan replaces the session's retirement plan.
func (s *Session) SetPlan(plan Plan) error { return s.planner.SetPlan(plan) }

// Plan returns the current retirement plan and whether one has been set.
func (s *Session) Plan() (Plan, bool) { return s.planner.Plan() }

// Projection fetches the current inflation rate and projects the retirement
// savings goal under it.
//
// When the inflation gateway is unavailable the rate degrades to 0 and the
// returned Projection carries RateDefaulted=true, so the caller can surface
// a non-fatal notice instead of mistaking the result for a real 0% world.
func (s *Session) Projection(ctx context.Context) (Projection, error) {
	rate, defaulted := s.inflationRate(ctx)
	projection, err := s.planner.Project(rate)
	if err != nil {
		return Projection{}, err
	}
	projection.RateDefaulted = defaulted
	return projection, nil
}

// Suggest allocates amount evenly across the session watchlist, backed by
// live quotes. See Suggester.Suggest.
func (s *Session) Suggest(ctx context.Context, amount Money) ([]Suggestion, error) {
	return s.suggester.Suggest(ctx, amount, nil)
}

// Ask answers a free-form financial question through the language model,
// with the current inflation rate injected as context.
//
// The prompt is a fixed three-part exchange: the advisor persona, the
// inflation context, and the user's question. No conversation state is kept
// between calls. A gateway failure wraps ErrAdvisorUnavailable and leaves
// the session state untouched.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", fmt.Errorf("%w: question is empty", ErrInvalidInput)
	}
	if s.advisor == nil {
		return "", fmt.Errorf("%w: no language model configured", ErrAdvisorUnavailable)
	}

	reply, err := s.advisor.Complete(ctx, []Message{
		{Role: RoleSystem, Content: persona},
		{Role: RoleAssistant, Content: s.inflationContext(ctx)},
		{Role: RoleUser, Content: question},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAdvisorUnavailable, err)
	}
	return reply, nil
}

// inflationRate fetches the current inflation rate, substituting 0 when the
// gateway is unavailable. The second return value is true when the default
// was used.
func (s *Session) inflationRate(ctx context.Context) (rate Percent, defaulted bool) {
	if s.inflation == nil {
		return 0, true
	}
	rate, err := s.inflation.Rate(ctx)
	if err != nil {
		log.Printf("warning: unable to fetch inflation rate, assuming 0%%: %v", err)
		return 0, true
	}
	return rate, false
}

// inflationContext describes the current inflation rate for the model, or
// tells it to proceed without adjustment when the rate is unavailable.
func (s *Session) inflationContext(ctx context.Context) string {
	rate, defaulted := s.inflationRate(ctx)
	if defaulted {
		return "I couldn't retrieve the current inflation rate. Proceed without inflation adjustment."
	}
	return fmt.Sprintf("The current annual inflation rate is %s. Please consider this in your calculations.", rate)
}
