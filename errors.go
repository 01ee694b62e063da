package advisor

import "errors"

// Sentinel errors shared by the session operations. Callers are expected to
// test them with errors.Is and map them to a user-facing notice.
var (
	// ErrInvalidInput rejects values the input widgets should have prevented,
	// such as negative amounts or malformed dates.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPlanIncomplete is returned when a projection is requested before a
	// retirement plan has been set.
	ErrPlanIncomplete = errors.New("retirement plan is not set")

	// ErrNoQuotes is returned when every ticker of a suggestion request
	// failed to resolve to a live quote.
	ErrNoQuotes = errors.New("no quotes available")

	// ErrQuoteNotFound is returned by a QuoteProvider when a ticker has no
	// usable price. The suggester drops such tickers from its result.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrAdvisorUnavailable is returned when the language model cannot be
	// reached. It is fatal for the request, the user may retry.
	ErrAdvisorUnavailable = errors.New("advisor unavailable")
)
