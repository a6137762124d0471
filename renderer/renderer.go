// Package renderer turns engine values into markdown reports for the rfx
// command line. It only formats: every number it prints was computed by the
// rendafixa engine beforehand.
package renderer

import (
	"fmt"
	"strings"

	"github.com/rendalab/rendafixa"
)

// ProjectionMarkdown renders the sampled projection of one instrument: a
// net-return sparkline, the point table, and the bracket-transition
// annotations.
//
// points is expected to be the Sample output for the horizon; principal is
// only used to display projected values alongside the returns.
func ProjectionMarkdown(inst rendafixa.Instrument, indices rendafixa.Indices, points []rendafixa.ReturnPoint, principal rendafixa.Money, totalDays int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Projeção: %s\n\n", inst.Name)
	rate, warn := rendafixa.EffectiveAnnualRate(inst.Spec, indices)
	fmt.Fprintf(&b, "Taxa: %s ⇒ %s a.a. efetiva, horizonte %d dias\n\n", inst.Spec, rendafixa.AsPercent(rate), totalDays)
	if warn != nil {
		fmt.Fprintf(&b, "> ⚠ %s\n\n", warn)
	}

	if line := Sparkline(netValues(points)); line != "" {
		fmt.Fprintf(&b, "```\n%s\n```\n\n", line)
	}

	fmt.Fprintln(&b, "| Dia | Bruto | Líquido | IR | Valor |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|")
	transitions := transitionSet(totalDays)
	for _, p := range points {
		marker := ""
		if transitions[p.Day] {
			marker = " ⭣" // the tax bracket drops past this day
		}
		fmt.Fprintf(&b, "| %d%s | %s | %s | %s | %s |\n",
			p.Day, marker,
			rendafixa.AsPercent(p.Gross),
			rendafixa.AsPercent(p.Net),
			rendafixa.AsPercent(rendafixa.TaxAmount(p.Gross, p.Day, inst.Taxable)),
			principal.Grow(p.Net),
		)
	}

	if inst.Taxable {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "⭣ marca o último dia de uma faixa do IR: no dia seguinte a alíquota cai e o retorno líquido dá um salto.")
	}
	return b.String()
}

// CompareMarkdown renders the equivalent rates of two instruments side by
// side and the break-even verdict between them.
func CompareMarkdown(taxed, untaxed rendafixa.Instrument, indices rendafixa.Indices, maxDays int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Comparação: %s × %s\n\n", taxed.Name, untaxed.Name)

	st := rendafixa.EquivalentRates(taxed, indices)
	su := rendafixa.EquivalentRates(untaxed, indices)

	fmt.Fprintln(&b, "| Horizonte | | "+taxed.Name+" | "+untaxed.Name+" |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	rows := []struct {
		label string
		t, u  rendafixa.RatePair
	}{
		{"30 dias", st.Month, su.Month},
		{"1 ano", st.Year, su.Year},
		{"2 anos", st.TwoYears, su.TwoYears},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | bruto | %s | %s |\n", r.label, rendafixa.AsPercent(r.t.Gross), rendafixa.AsPercent(r.u.Gross))
		fmt.Fprintf(&b, "| | líquido | %s | %s |\n", rendafixa.AsPercent(r.t.Net), rendafixa.AsPercent(r.u.Net))
	}
	fmt.Fprintln(&b)

	if day, ok := rendafixa.FindBreakEvenDay(taxed, untaxed, indices, maxDays); ok {
		fmt.Fprintf(&b, "**%s empata com %s no dia %d** e segue na frente a partir daí.\n", taxed.Name, untaxed.Name, day)
	} else {
		fmt.Fprintf(&b, "**Sem empate em até %d dias**: %s permanece atrás de %s em todo o horizonte analisado.\n", maxDays, taxed.Name, untaxed.Name)
	}
	return b.String()
}

// RatesMarkdown renders the reference indices currently in use.
func RatesMarkdown(indices rendafixa.Indices, note string) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Índices de referência\n\n")
	fmt.Fprintln(&b, "| Índice | Taxa (a.a.) |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| CDI | %s |\n", rendafixa.AsPercent(indices.CDI))
	fmt.Fprintf(&b, "| SELIC | %s |\n", rendafixa.AsPercent(indices.SELIC))
	fmt.Fprintf(&b, "| IPCA (12m) | %s |\n", rendafixa.AsPercent(indices.IPCA))
	if note != "" {
		fmt.Fprintf(&b, "\n> %s\n", note)
	}
	return b.String()
}

// WalletMarkdown renders the wallet listing.
func WalletMarkdown(w *rendafixa.Wallet) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Carteira\n\n")
	if w.Len() == 0 {
		fmt.Fprintln(&b, "Nenhum instrumento cadastrado. Use `rfx add` para começar.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Nome | Taxa | IR | Vencimento |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|")
	for inst := range w.Instruments() {
		tax := "isento"
		if inst.Taxable {
			tax = "tabela regressiva"
		}
		horizon := "—"
		if inst.HorizonDays > 0 {
			horizon = fmt.Sprintf("%d dias", inst.HorizonDays)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", inst.Name, inst.Spec, tax, horizon)
	}
	return b.String()
}

// netValues projects the net returns out of a point series.
func netValues(points []rendafixa.ReturnPoint) []float64 {
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.Net
	}
	return vals
}

// transitionSet returns the in-range bracket transition days as a set.
func transitionSet(totalDays int) map[int]bool {
	set := make(map[int]bool)
	for _, t := range rendafixa.TransitionDays() {
		if t <= totalDays {
			set[t] = true
		}
	}
	return set
}
