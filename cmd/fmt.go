package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the wallet file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `rfx fmt

  Validates and formats the wallet file. This command reads all
  instruments, validates them, sorts them by name, and writes them back in
  a canonical JSONL format, so the file diffs cleanly under version
  control.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wallet, err := DecodeWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load wallet: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveWallet(wallet); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted wallet: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d instruments in %s\n", wallet.Len(), *walletFile)
	return subcommands.ExitSuccess
}
