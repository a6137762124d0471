package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rendalab/rendafixa"
	"github.com/rendalab/rendafixa/renderer"
)

type compareCmd struct {
	taxed   string
	exempt  string
	maxDays int
	indexFlags
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare a taxed instrument against an exempt one" }
func (*compareCmd) Usage() string {
	return `rfx compare -taxed <name> -exempt <name> [-max-days <days>]

  Compare the net return of a taxed instrument (CDB, Tesouro) against an
  exempt one (LCI, LCA), showing equivalent rates at common horizons and
  the first day, if any, where the taxed instrument catches up.

Usage Examples:
$ rfx compare -taxed "CDB 110" -exempt "LCI 95"
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.taxed, "taxed", "", "Name of the taxed instrument")
	f.StringVar(&c.exempt, "exempt", "", "Name of the exempt instrument")
	f.IntVar(&c.maxDays, "max-days", rendafixa.DefaultBreakEvenHorizon, "Horizon for the break-even scan, in days")
	c.indexFlags.SetFlags(f)
}

func (c *compareCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.taxed == "" || c.exempt == "" {
		fmt.Fprintln(os.Stderr, "Error: -taxed and -exempt are required")
		return subcommands.ExitUsageError
	}
	wallet, err := DecodeWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not load wallet:", err)
		return subcommands.ExitFailure
	}
	taxed, ok := wallet.Get(c.taxed)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no instrument named %q in the wallet\n", c.taxed)
		return subcommands.ExitFailure
	}
	exempt, ok := wallet.Get(c.exempt)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no instrument named %q in the wallet\n", c.exempt)
		return subcommands.ExitFailure
	}

	indices := c.indexFlags.Resolve()
	md := renderer.CompareMarkdown(taxed, exempt, indices, c.maxDays)
	printMarkdown(md)
	return subcommands.ExitSuccess
}
