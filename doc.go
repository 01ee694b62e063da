// Package advisor implements the core of a single-user financial assistant:
// an in-memory session that tracks expenses, holds a retirement plan, shapes
// long-term stock suggestions, and answers free-form financial questions
// through a language model.
//
// The package deliberately stays a thin orchestration layer. External
// knowledge comes from three narrow gateways (inflation statistics, market
// quotes, and a language model) declared in provider.go; the concrete
// clients live in the alphavantage, yahoo and agent subpackages. The cmd
// and server packages expose the session as a CLI and a JSON API.
//
// Nothing is persisted: a Session and everything it owns lives and dies
// with the process that created it.
package advisor
