package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rendalab/rendafixa"
	"github.com/rendalab/rendafixa/advisor"
	"github.com/rendalab/rendafixa/renderer"
	"google.golang.org/genai"
)

type assistCmd struct {
	indexFlags
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI consultant" }
func (*assistCmd) Usage() string {
	return `rfx assist [<question>]

  Start an interactive session with the AI consultant, grounded on the
  projections of the instruments in the wallet. Requires Gemini
  credentials in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) { c.indexFlags.SetFlags(f) }

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	wallet, err := DecodeWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not load wallet:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	indices := c.indexFlags.Resolve()
	a := advisor.New(os.Stdout, os.Stdin, groundingReport(wallet, indices))

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Consultant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// groundingReport renders the wallet and a projection per instrument into
// one markdown document for the consultant to reason on.
func groundingReport(wallet *rendafixa.Wallet, indices rendafixa.Indices) string {
	var b strings.Builder
	b.WriteString(renderer.RatesMarkdown(indices, ""))
	b.WriteString("\n")
	b.WriteString(renderer.WalletMarkdown(wallet))
	for inst := range wallet.Instruments() {
		totalDays := inst.Horizon(rendafixa.HorizonTwoYears)
		series, err := rendafixa.GenerateSeries(inst, indices, totalDays)
		if err != nil {
			log.Println("warning:", err)
		}
		points := rendafixa.Sample(series, totalDays)
		b.WriteString("\n")
		b.WriteString(renderer.ProjectionMarkdown(inst, indices, points, rendafixa.BRL(1000), totalDays))
	}
	return b.String()
}
