package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/advisor"
)

const prompt = "assist> "

// REPL is the interactive loop behind the assist subcommand. Each line is
// answered independently through the session; no conversation memory is
// carried between questions.
type REPL struct {
	// Render formats the model's markdown reply for the terminal. Defaults
	// to identity.
	Render func(string) string

	w       io.Writer
	r       *bufio.Reader
	session *advisor.Session
}

// NewREPL creates a REPL over the session, reading questions from r and
// writing replies to w (typically os.Stdin and os.Stdout).
func NewREPL(w io.Writer, r io.Reader, session *advisor.Session) *REPL {
	return &REPL{w: w, r: bufio.NewReader(r), session: session}
}

// Run starts the interactive session. Initial prompts are answered first,
// then questions are read line by line until "bye" or EOF.
//
// A failed advice call is reported inline and the loop continues, so the
// user can retry; only I/O errors end the session.
func (a *REPL) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to fab financial assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		advice, err := a.session.Ask(ctx, input)
		if err != nil {
			if errors.Is(err, advisor.ErrAdvisorUnavailable) {
				fmt.Fprintf(a.w, "Advice failed, you may retry: %v\n", err)
				continue
			}
			return err
		}
		fmt.Fprintln(a.w, a.render(advice))
	}
}

func (a *REPL) render(s string) string {
	if a.Render == nil {
		return s
	}
	return a.Render(s)
}
