package advisor

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeQuotes resolves every ticker at a fixed price, except the ones listed
// as missing.
type fakeQuotes struct {
	missing map[string]bool
	calls   []string
}

func (f *fakeQuotes) Quote(_ context.Context, ticker string) (Quote, error) {
	f.calls = append(f.calls, ticker)
	if f.missing[ticker] {
		return Quote{}, fmt.Errorf("%w: %s", ErrQuoteNotFound, ticker)
	}
	return Quote{
		Ticker:    ticker,
		Name:      ticker + " Inc.",
		Price:     M(100.0, "USD"),
		MarketCap: 1_000_000_000,
		High52:    M(120.0, "USD"),
		Low52:     M(80.0, "USD"),
	}, nil
}

func TestSuggester_Suggest(t *testing.T) {
	quotes := &fakeQuotes{}
	suggester := NewSuggester(quotes)

	amount := M(10000.0, "USD")
	suggestions, err := suggester.Suggest(context.Background(), amount, nil)
	if err != nil {
		t.Fatalf("Suggest() unexpected error: %v", err)
	}
	if len(suggestions) != len(DefaultWatchlist) {
		t.Fatalf("Suggest() returned %d rows, want %d", len(suggestions), len(DefaultWatchlist))
	}

	// Every allocation is amount/len(watchlist), and they sum back to amount.
	want := amount.Div(int64(len(DefaultWatchlist)))
	var total Money
	for i, s := range suggestions {
		if s.Ticker != DefaultWatchlist[i] {
			t.Errorf("suggestion %d is %s, want %s (watchlist order)", i, s.Ticker, DefaultWatchlist[i])
		}
		if !s.Amount.Equal(want) {
			t.Errorf("suggestion %s allocation = %s, want %s", s.Ticker, s.Amount, want)
		}
		total = total.Add(s.Amount)
	}
	if !total.Equal(amount) {
		t.Errorf("allocations sum to %s, want %s", total, amount)
	}
}

func TestSuggester_Suggest_DropsMissing(t *testing.T) {
	quotes := &fakeQuotes{missing: map[string]bool{"AMZN": true}}
	suggester := NewSuggester(quotes)

	amount := M(10000.0, "USD")
	suggestions, err := suggester.Suggest(context.Background(), amount, nil)
	if err != nil {
		t.Fatalf("Suggest() unexpected error: %v", err)
	}
	if len(suggestions) != 4 {
		t.Fatalf("Suggest() returned %d rows, want 4 (AMZN dropped)", len(suggestions))
	}
	for _, s := range suggestions {
		if s.Ticker == "AMZN" {
			t.Error("AMZN should have been dropped from the suggestions")
		}
		// The divisor stays the requested count, not the fetched count.
		if want := amount.Div(5); !s.Amount.Equal(want) {
			t.Errorf("suggestion %s allocation = %s, want %s", s.Ticker, s.Amount, want)
		}
	}
}

func TestSuggester_Suggest_RebalanceByFetched(t *testing.T) {
	quotes := &fakeQuotes{missing: map[string]bool{"AMZN": true}}
	suggester := NewSuggester(quotes)
	suggester.Allocation = ByFetched

	amount := M(10000.0, "USD")
	suggestions, err := suggester.Suggest(context.Background(), amount, nil)
	if err != nil {
		t.Fatalf("Suggest() unexpected error: %v", err)
	}

	var total Money
	for _, s := range suggestions {
		if want := amount.Div(4); !s.Amount.Equal(want) {
			t.Errorf("suggestion %s allocation = %s, want %s", s.Ticker, s.Amount, want)
		}
		total = total.Add(s.Amount)
	}
	if !total.Equal(amount) {
		t.Errorf("rebalanced allocations sum to %s, want %s", total, amount)
	}
}

func TestSuggester_Suggest_AllMissing(t *testing.T) {
	quotes := &fakeQuotes{missing: map[string]bool{
		"AAPL": true, "MSFT": true, "GOOGL": true, "AMZN": true, "TSLA": true,
	}}
	suggester := NewSuggester(quotes)

	_, err := suggester.Suggest(context.Background(), M(10000.0, "USD"), nil)
	if !errors.Is(err, ErrNoQuotes) {
		t.Errorf("Suggest() error = %v, want ErrNoQuotes", err)
	}
}

func TestSuggester_Suggest_NegativeAmount(t *testing.T) {
	suggester := NewSuggester(&fakeQuotes{})
	_, err := suggester.Suggest(context.Background(), M(-1.0, "USD"), nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Suggest() error = %v, want ErrInvalidInput", err)
	}
}

func TestSuggester_Suggest_CustomTickers(t *testing.T) {
	quotes := &fakeQuotes{}
	suggester := NewSuggester(quotes)

	_, err := suggester.Suggest(context.Background(), M(100.0, "USD"), []string{"NVDA"})
	if err != nil {
		t.Fatalf("Suggest() unexpected error: %v", err)
	}
	if len(quotes.calls) != 1 || quotes.calls[0] != "NVDA" {
		t.Errorf("provider was queried for %v, want [NVDA]", quotes.calls)
	}
}

func TestParseAllocation(t *testing.T) {
	testCases := []struct {
		in      string
		want    Allocation
		wantErr bool
	}{
		{in: "requested", want: ByRequested},
		{in: "fetched", want: ByFetched},
		{in: "even", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseAllocation(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAllocation(%q) expected an error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseAllocation(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
	}
}
