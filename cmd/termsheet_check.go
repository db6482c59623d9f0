package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ghiles-CTO/fundfees"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

// termsheetCheckCmd holds the flags for the 'termsheet-check' subcommand.
type termsheetCheckCmd struct {
	file string
}

// termsheetCheckFile is the YAML shape the subcommand reads: the configured
// fee components next to the term sheet's caps.
type termsheetCheckFile struct {
	Components []fundfees.FeeComponent `yaml:"components"`
	Caps       fundfees.TermSheetCaps  `yaml:"caps"`
}

func (*termsheetCheckCmd) Name() string     { return "termsheet-check" }
func (*termsheetCheckCmd) Synopsis() string { return "check fee components against term sheet caps" }
func (*termsheetCheckCmd) Usage() string {
	return `ffc termsheet-check -f <check.yaml>

  Compares each fee component's term-sheet-scale rate against the term
  sheet's percentage cap for its kind and prints one line per violation.
  The exit status is non-zero when any component exceeds its cap.
`
}

func (c *termsheetCheckCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "YAML file with fee components and term sheet caps")
}

func (c *termsheetCheckCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := os.ReadFile(c.file)
	if err != nil {
		return fail("Error reading check file: %v", err)
	}
	var check termsheetCheckFile
	if err := yaml.Unmarshal(data, &check); err != nil {
		return fail("Error parsing check file: %v", err)
	}

	violations := fundfees.ValidateFeeComponentsAgainstTermSheet(check.Components, check.Caps)
	if len(violations) == 0 {
		fmt.Println("all fee components fit the term sheet caps")
		return subcommands.ExitSuccess
	}
	for _, v := range violations {
		fmt.Println(v)
	}
	return subcommands.ExitFailure
}
