package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Ghiles-CTO/fundfees/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this returns immediately unless invoked by the shell.
	completer().Complete("ffc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completer() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		flags := make(map[string]complete.Predictor)
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		fs.VisitAll(func(fl *flag.Flag) {
			switch fl.Name {
			case "c":
				flags[fl.Name] = predict.Set{"USD", "EUR", "GBP", "CHF"}
			case "f", "plan":
				flags[fl.Name] = predict.Files("*")
			default:
				flags[fl.Name] = predict.Something
			}
		})
		sub[c.Name()] = &complete.Command{Flags: flags}
	}
	return &complete.Command{Sub: sub}
}
