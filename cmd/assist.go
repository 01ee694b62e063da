package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/advisor"
	"github.com/etnz/advisor/agent"
	"github.com/google/subcommands"
)

// assistCmd implements the "assist" command.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI financial advisor" }
func (*assistCmd) Usage() string {
	return `fab assist [question]

  Starts an interactive session with the AI financial advisor. With a
  question argument, answers it first. The current inflation rate is
  injected as context for every question.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	llm, err := agent.New(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	session := advisor.NewSession(newInflation(), newQuotes(), llm)
	repl := agent.NewREPL(os.Stdout, os.Stdin, session)
	repl.Render = func(md string) string {
		out, err := glamour.Render(md, "auto")
		if err != nil {
			return md
		}
		return out
	}

	if err := repl.Run(ctx, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assist failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
