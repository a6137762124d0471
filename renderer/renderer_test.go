package renderer

import (
	"strings"
	"testing"

	"github.com/rendalab/rendafixa"
)

var testIndices = rendafixa.Indices{CDI: 0.1065, IPCA: 0.045, SELIC: 0.1075}

func testCDB() rendafixa.Instrument {
	return rendafixa.Instrument{
		Name:    "CDB 110% CDI",
		Spec:    rendafixa.RateSpec{Kind: rendafixa.PercentOfIndex, Magnitude: 110},
		Taxable: true,
	}
}

func TestProjectionMarkdown(t *testing.T) {
	const totalDays = 730
	series, err := rendafixa.GenerateSeries(testCDB(), testIndices, totalDays)
	if err != nil {
		t.Fatalf("GenerateSeries() error = %v", err)
	}
	points := rendafixa.Sample(series, totalDays)

	md := ProjectionMarkdown(testCDB(), testIndices, points, rendafixa.BRL(10000), totalDays)

	for _, want := range []string{
		"# Projeção: CDB 110% CDI",
		"110% CDI",
		"| Dia | Bruto | Líquido | IR | Valor |",
		"| 0 |",     // day 0 always plotted
		"| 180 ⭣ |", // bracket boundary annotated
		"| 360 ⭣ |",
		"| 720 ⭣ |",
		"R$",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ProjectionMarkdown missing %q\n%s", want, md)
		}
	}
}

func TestProjectionMarkdown_Exempt(t *testing.T) {
	lci := rendafixa.Instrument{
		Name: "LCI 95% CDI",
		Spec: rendafixa.RateSpec{Kind: rendafixa.PercentOfIndex, Magnitude: 95},
	}
	series, _ := rendafixa.GenerateSeries(lci, testIndices, 90)
	md := ProjectionMarkdown(lci, testIndices, rendafixa.Sample(series, 90), rendafixa.BRL(1000), 90)
	if strings.Contains(md, "salto") {
		t.Error("exempt projection should not carry the bracket-jump footnote")
	}
}

func TestCompareMarkdown(t *testing.T) {
	taxed := testCDB()
	taxed.Spec.Magnitude = 118
	exempt := rendafixa.Instrument{
		Name: "LCI 100% CDI",
		Spec: rendafixa.RateSpec{Kind: rendafixa.PercentOfIndex, Magnitude: 100},
	}

	md := CompareMarkdown(taxed, exempt, testIndices, rendafixa.DefaultBreakEvenHorizon)
	if !strings.Contains(md, "empata") || !strings.Contains(md, "no dia") {
		t.Errorf("expected a break-even verdict, got:\n%s", md)
	}

	taxed.Spec.Magnitude = 105
	md = CompareMarkdown(taxed, exempt, testIndices, rendafixa.DefaultBreakEvenHorizon)
	if !strings.Contains(md, "Sem empate") {
		t.Errorf("expected a no-crossing verdict, got:\n%s", md)
	}
}

func TestRatesMarkdown(t *testing.T) {
	md := RatesMarkdown(testIndices, "valores padrão")
	for _, want := range []string{"CDI", "SELIC", "IPCA", "10.65%", "valores padrão"} {
		if !strings.Contains(md, want) {
			t.Errorf("RatesMarkdown missing %q\n%s", want, md)
		}
	}
}

func TestWalletMarkdown(t *testing.T) {
	w := rendafixa.NewWallet()
	if md := WalletMarkdown(w); !strings.Contains(md, "Nenhum instrumento") {
		t.Errorf("empty wallet rendering = %s", md)
	}
	w.Append(testCDB())
	md := WalletMarkdown(w)
	if !strings.Contains(md, "CDB 110% CDI") || !strings.Contains(md, "tabela regressiva") {
		t.Errorf("WalletMarkdown = %s", md)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Errorf("Sparkline(nil) = %q, want empty", got)
	}
	if got := Sparkline([]float64{1}); got != "" {
		t.Errorf("Sparkline(one point) = %q, want empty", got)
	}
	got := Sparkline([]float64{0, 0.5, 1})
	if runes := []rune(got); len(runes) != 3 || runes[0] != '▁' || runes[2] != '█' {
		t.Errorf("Sparkline(0,0.5,1) = %q, want ▁..█", got)
	}
	// flat series renders at the floor, not a division by zero
	if got := Sparkline([]float64{2, 2, 2}); got != "▁▁▁" {
		t.Errorf("Sparkline(flat) = %q, want ▁▁▁", got)
	}
}
