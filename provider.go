package advisor

import "context"

// This file declares the gateway contracts the session calls through. The
// concrete clients live in the alphavantage, yahoo and agent subpackages.

// Quote holds the live market data for a single security.
type Quote struct {
	Ticker    string
	Name      string
	Price     Money
	MarketCap int64
	High52    Money // 52-week high
	Low52     Money // 52-week low
}

// InflationProvider returns the latest published annual inflation rate.
type InflationProvider interface {
	Rate(ctx context.Context) (Percent, error)
}

// QuoteProvider returns a live quote for a ticker, or ErrQuoteNotFound.
type QuoteProvider interface {
	Quote(ctx context.Context, ticker string) (Quote, error)
}

// Role identifies the author of a message sent to the language model.
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Message is one element of the prompt sent to the language model.
type Message struct {
	Role    Role
	Content string
}

// Completer answers a prompt with free-text advice. Each call is a complete
// exchange: no conversation state is carried between calls.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
