package advisor

import (
	"context"
	"fmt"
	"log"
)

// DefaultWatchlist is the fixed set of large-cap symbols suggested for
// long-term investment.
var DefaultWatchlist = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}

// Allocation defines the divisor used to split an investment across tickers.
type Allocation int

const (
	// ByRequested divides by the number of tickers requested, even when some
	// quotes failed to resolve. The sum of allocations is then short of the
	// investment amount. This mirrors the historical behavior.
	ByRequested Allocation = iota
	// ByFetched divides by the number of quotes actually retrieved, so the
	// full amount is always allocated.
	ByFetched
)

func (a Allocation) String() string {
	switch a {
	case ByRequested:
		return "requested"
	case ByFetched:
		return "fetched"
	default:
		return "unknown"
	}
}

// ParseAllocation parses a string into an Allocation.
func ParseAllocation(s string) (Allocation, error) {
	switch s {
	case "requested":
		return ByRequested, nil
	case "fetched":
		return ByFetched, nil
	default:
		return 0, fmt.Errorf("unknown allocation method: %q", s)
	}
}

// Suggestion is one row of a stock suggestion: a live quote and the slice of
// the investment allocated to it.
type Suggestion struct {
	Quote
	Amount Money
}

// Suggester turns an investment amount into an evenly allocated list of
// stock suggestions backed by live quotes.
type Suggester struct {
	// Allocation selects the divisor used to split the investment.
	// Defaults to ByRequested.
	Allocation Allocation
	// Watchlist is the ticker list used when the caller passes none.
	// Defaults to DefaultWatchlist.
	Watchlist []string

	quotes QuoteProvider
}

// NewSuggester creates a suggester over the given quote provider.
func NewSuggester(quotes QuoteProvider) *Suggester {
	return &Suggester{Watchlist: DefaultWatchlist, quotes: quotes}
}

// Suggest queries a live quote for each ticker (the watchlist when tickers
// is empty) and allocates amount evenly across them.
//
// Tickers whose quote cannot be retrieved are dropped from the result; the
// caller only sees a shorter list. When every fetch fails, Suggest returns
// ErrNoQuotes.
func (s *Suggester) Suggest(ctx context.Context, amount Money, tickers []string) ([]Suggestion, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: investment amount %s is negative", ErrInvalidInput, amount)
	}
	if s.quotes == nil {
		return nil, fmt.Errorf("%w: no market data gateway configured", ErrNoQuotes)
	}
	if len(tickers) == 0 {
		tickers = s.Watchlist
	}

	quotes := make([]Quote, 0, len(tickers))
	for _, ticker := range tickers {
		q, err := s.quotes.Quote(ctx, ticker)
		if err != nil {
			log.Printf("warning: dropping %s from suggestions: %v", ticker, err)
			continue
		}
		quotes = append(quotes, q)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("%w: all %d tickers failed", ErrNoQuotes, len(tickers))
	}

	divisor := len(tickers)
	if s.Allocation == ByFetched {
		divisor = len(quotes)
	}
	slice := amount.Div(int64(divisor))

	suggestions := make([]Suggestion, 0, len(quotes))
	for _, q := range quotes {
		suggestions = append(suggestions, Suggestion{Quote: q, Amount: slice})
	}
	return suggestions, nil
}
