package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/rendalab/rendafixa"
	"github.com/rendalab/rendafixa/renderer"
)

type projectCmd struct {
	name      string
	days      int
	principal float64
	indexFlags
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the return of an instrument over time" }
func (*projectCmd) Usage() string {
	return `rfx project -name <name> [-days <days>] [-principal <amount>]

  Project the gross and net return of an instrument day by day, under the
  regressive income tax table. Defaults to the instrument's maturity, or
  720 days when it has none. Use -cdi, -selic or -ipca to simulate other
  index scenarios.

Usage Examples:
$ rfx project -name "CDB 110" -days 720 -principal 10000
$ rfx project -name "CDB 110" -cdi 9.5
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Instrument to project")
	f.IntVar(&c.days, "days", 0, "Projection horizon in days, 0 for the instrument's maturity")
	f.Float64Var(&c.principal, "principal", 1000, "Invested amount in BRL")
	c.indexFlags.SetFlags(f)
}

func (c *projectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	wallet, err := DecodeWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not load wallet:", err)
		return subcommands.ExitFailure
	}
	inst, ok := wallet.Get(c.name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no instrument named %q in the wallet\n", c.name)
		return subcommands.ExitFailure
	}

	totalDays := c.days
	if totalDays <= 0 {
		totalDays = inst.Horizon(rendafixa.HorizonTwoYears)
	}

	indices := c.indexFlags.Resolve()
	series, err := rendafixa.GenerateSeries(inst, indices, totalDays)
	if err != nil {
		// The series is still computed, at a zero rate.
		log.Println("warning:", err)
	}
	points := rendafixa.Sample(series, totalDays)

	md := renderer.ProjectionMarkdown(inst, indices, points, rendafixa.BRL(c.principal), totalDays)
	printMarkdown(md)
	return subcommands.ExitSuccess
}
