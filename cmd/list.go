package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rendalab/rendafixa/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the instruments in the wallet" }
func (*listCmd) Usage() string {
	return `rfx list

  List the instruments in the wallet.
`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wallet, err := DecodeWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not load wallet:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.WalletMarkdown(wallet))
	return subcommands.ExitSuccess
}
