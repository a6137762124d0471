package cmd

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"
	"github.com/rendalab/rendafixa/bcb"
	"github.com/rendalab/rendafixa/renderer"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show the current reference indices" }
func (*ratesCmd) Usage() string {
	return `rfx rates

  Show the current CDI, SELIC and IPCA reference indices, fetched from the
  Banco Central once a day.
`
}

func (*ratesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *ratesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	note := ""
	indices, err := bcb.Fetch()
	if err != nil {
		log.Println("warning, could not fetch all indices:", err)
		note = "Alguns índices não puderam ser atualizados; valores de referência em uso."
	}
	printMarkdown(renderer.RatesMarkdown(indices, note))
	return subcommands.ExitSuccess
}
