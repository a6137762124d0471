// Package cmd implements the CLI application to project and compare
// fixed-income investments.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/rendalab/rendafixa"
	"github.com/rendalab/rendafixa/bcb"
)

// Commands lists the subcommands of the application.
// A main package registers them on a Commander and Execute()s the
// user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&removeCmd{},
	&fmtCmd{},
	&projectCmd{},
	&compareCmd{},
	&ratesCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var walletFile = flag.String("wallet-file", "carteira.jsonl", "Path to the wallet file containing instruments (JSONL format)")

// DecodeWallet reads the app wallet file. A missing file yields an empty
// wallet, so first-run commands just work.
func DecodeWallet() (w *rendafixa.Wallet, err error) {
	f, err := os.Open(*walletFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, wallet file does not exist, starting with an empty wallet")
		return rendafixa.NewWallet(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rendafixa.DecodeWallet(f)
}

// SaveWallet writes the wallet back to the app wallet file in canonical form.
func SaveWallet(w *rendafixa.Wallet) error {
	f, err := os.Create(*walletFile)
	if err != nil {
		return fmt.Errorf("cannot write wallet file %q: %w", *walletFile, err)
	}
	defer f.Close()
	return rendafixa.EncodeWallet(f, w)
}

// indexFlags holds the -cdi, -selic and -ipca scenario overrides shared by
// the commands that resolve rates. Values are annual percentages; zero
// means "use the fetched index".
type indexFlags struct {
	cdi, selic, ipca float64
}

func (o *indexFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&o.cdi, "cdi", 0, "Override the CDI index, in % per year")
	f.Float64Var(&o.selic, "selic", 0, "Override the SELIC index, in % per year")
	f.Float64Var(&o.ipca, "ipca", 0, "Override the IPCA index, in % per year")
}

// Resolve fetches the current indices and applies the overrides. A fetch
// failure is logged and the packaged defaults are used instead.
func (o *indexFlags) Resolve() rendafixa.Indices {
	indices, err := bcb.Fetch()
	if err != nil {
		log.Println("warning, could not fetch all indices:", err)
	}
	if o.cdi > 0 {
		indices.CDI = o.cdi / 100
	}
	if o.selic > 0 {
		indices.SELIC = o.selic / 100
	}
	if o.ipca > 0 {
		indices.IPCA = o.ipca / 100
	}
	return indices
}
