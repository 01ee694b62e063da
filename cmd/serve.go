package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/agent"
	"github.com/etnz/advisor/server"
	"github.com/google/subcommands"
)

// serveCmd implements the "serve" command.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the assistant as a JSON API" }
func (*serveCmd) Usage() string {
	return `fab serve [-addr :8080]

  Serves the assistant as a JSON API backed by a single in-memory session.
  The ledger and the retirement plan live as long as the server process.
`
}

func (p *serveCmd) SetFlags(f *flag.FlagSet) {
	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	f.StringVar(&p.addr, "addr", addr, "Address to listen on.")
}

func (p *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The advisor gateway is optional: without credentials the advice
	// endpoint reports the advisor unavailable, everything else works.
	var llm advisor.Completer
	if gemini, err := agent.New(ctx); err != nil {
		log.Printf("warning: advice disabled, cannot initialize Gemini client: %v", err)
	} else {
		llm = gemini
	}

	session := advisor.NewSession(newInflation(), newQuotes(), llm)
	srv := server.New(session)
	srv.Currency = *defaultCurrency

	log.Printf("session %s listening on %s", session.ID, p.addr)
	if err := http.ListenAndServe(p.addr, srv.Handler()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
