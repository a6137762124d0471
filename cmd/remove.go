package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct {
	name string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an instrument from the wallet" }
func (*removeCmd) Usage() string {
	return `rfx remove -name <name>

  Remove the named instrument from the wallet.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the instrument to remove")
}

func (c *removeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	wallet, err := DecodeWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not load wallet:", err)
		return subcommands.ExitFailure
	}
	if !wallet.Remove(c.name) {
		fmt.Fprintf(os.Stderr, "Error: no instrument named %q in the wallet\n", c.name)
		return subcommands.ExitFailure
	}
	if err := SaveWallet(wallet); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %q from %s\n", c.name, *walletFile)
	return subcommands.ExitSuccess
}
