package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/Ghiles-CTO/fundfees/docs"
	"github.com/google/subcommands"
)

// topicCmd holds the flags for the 'topic' subcommand.
type topicCmd struct {
	raw bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a documentation topic" }
func (*topicCmd) Usage() string {
	return `ffc topic [-raw] <name>|*

  Prints a documentation topic rendered for the terminal. '*' prints all
  topics; with no argument, lists the available ones.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print plain markdown instead of rendering for the terminal")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		topics, err := docs.AllTopics()
		if err != nil {
			return fail("Error listing topics: %v", err)
		}
		for _, t := range topics {
			fmt.Println(t)
		}
		return subcommands.ExitSuccess
	}

	content, err := docs.Topics(f.Args()...)
	if err != nil {
		return fail("Error loading topic: %v", err)
	}
	if c.raw {
		fmt.Print(content)
	} else {
		fmt.Print(renderMarkdown(content))
	}
	return subcommands.ExitSuccess
}
