package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/advisor/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion: this returns immediately unless the shell is asking
	// for completions.
	completion().Complete("fab")

	// Gateway credentials can live in a .env file next to the binary.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, using process environment: %v", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the command tree for shell completion.
func completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"expense": {Sub: map[string]*complete.Command{
				"add":     {},
				"summary": {},
			}},
			"plan": {Sub: map[string]*complete.Command{
				"set":     {},
				"project": {},
			}},
			"suggest": {},
			"assist":  {},
			"serve":   {},
			"topic":   {},
		},
	}
}
