// Package cmd implements the CLI application behind the fab binary.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/advisor"
	"github.com/etnz/advisor/alphavantage"
	"github.com/etnz/advisor/yahoo"
	"github.com/google/subcommands"
)

// Environment variables carrying the gateway credentials. The keys are
// opaque tokens handed to the gateway constructors, never logged.
const (
	EnvAlphaVantageKey = "ALPHAVANTAGE_API_KEY"
	EnvGeminiKey       = "GEMINI_API_KEY"
)

// Register the subcommands.
// A main package calls Register() to declare subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&expenseCmd{}, "expenses")
	c.Register(&planCmd{}, "retirement")
	c.Register(&suggestCmd{}, "stocks")
	c.Register(&assistCmd{}, "advice")
	c.Register(&serveCmd{}, "serving")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaultCurrency = flag.String("currency", "USD", "Currency code amounts are denominated in")

// money denominates a plain amount in the app currency.
func money(amount float64) advisor.Money {
	return advisor.M(amount, *defaultCurrency)
}

// newInflation returns the inflation gateway, or nil when no API key is
// configured (the session then degrades to a 0% rate with a notice).
func newInflation() advisor.InflationProvider {
	key := os.Getenv(EnvAlphaVantageKey)
	if key == "" {
		return nil
	}
	return alphavantage.New(key)
}

// newQuotes returns the market data gateway. Yahoo needs no credentials.
func newQuotes() advisor.QuoteProvider {
	return yahoo.New()
}

// printMarkdown renders a markdown string to the terminal, falling back to
// the raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
