package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/Ghiles-CTO/fundfees/renderer"
	"github.com/google/subcommands"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	planFile string
	raw      bool
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "show a fee plan's schedule" }
func (*planCmd) Usage() string {
	return `ffc plan [-plan <feeplan.yaml>] [-raw]

  Renders the fee plan's rates and performance tiers as a schedule.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.planFile, "plan", "feeplan.yaml", "Fee plan file")
	f.BoolVar(&c.raw, "raw", false, "Print plain markdown instead of rendering for the terminal")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := loadPlan(c.planFile)
	if err != nil {
		return fail("Error loading fee plan: %v", err)
	}
	md := renderer.RenderFeePlan(plan)
	if c.raw {
		fmt.Print(md)
	} else {
		fmt.Print(renderMarkdown(md))
	}
	return subcommands.ExitSuccess
}
