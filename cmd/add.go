package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rendalab/rendafixa"
)

type addCmd struct {
	name    string
	rate    string
	taxable bool
	horizon int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add or replace an instrument in the wallet" }
func (*addCmd) Usage() string {
	return `rfx add -name <name> -rate <rate> [-ir] [-horizon <days>]

  Add an instrument to the wallet, replacing any instrument with the same
  name. The rate uses the compact market notation, e.g. "110%cdi",
  "ipca+6", "cdi+1.5" or "12" for a fixed 12% per year. Pass -ir for
  taxable instruments (CDB, Tesouro); omit it for exempt ones (LCI, LCA).

Usage Examples:
$ rfx add -name "CDB 110" -rate "110%cdi" -ir -horizon 720
$ rfx add -name "LCI 95" -rate "95%cdi"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Instrument name, unique in the wallet")
	f.StringVar(&c.rate, "rate", "", "Rate in compact notation, e.g. 110%cdi, ipca+6, 12")
	f.BoolVar(&c.taxable, "ir", false, "Instrument gains are subject to income tax")
	f.IntVar(&c.horizon, "horizon", 0, "Maturity in days, 0 for no maturity")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.rate == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -rate are required")
		return subcommands.ExitUsageError
	}
	spec, err := rendafixa.ParseRateSpec(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid rate %q: %v\n", c.rate, err)
		return subcommands.ExitUsageError
	}
	inst, err := rendafixa.NewInstrument(c.name, spec, c.taxable, c.horizon)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	wallet, err := DecodeWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not load wallet:", err)
		return subcommands.ExitFailure
	}
	replaced := wallet.Append(inst)
	if err := SaveWallet(wallet); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if replaced {
		fmt.Printf("Replaced %s in %s\n", inst, *walletFile)
	} else {
		fmt.Printf("Added %s to %s\n", inst, *walletFile)
	}
	return subcommands.ExitSuccess
}
