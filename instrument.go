package rendafixa

import (
	"fmt"
	"strconv"
)

// Instrument is a fixed-income investment to project. A HorizonDays of zero
// or less means the instrument has no fixed maturity, and evaluations use
// whatever horizon the caller supplies.
type Instrument struct {
	Name        string
	Spec        RateSpec
	Taxable     bool
	HorizonDays int
}

// NewInstrument builds a validated instrument.
func NewInstrument(name string, spec RateSpec, taxable bool, horizonDays int) (Instrument, error) {
	i := Instrument{Name: name, Spec: spec, Taxable: taxable, HorizonDays: horizonDays}
	return i, i.Validate()
}

// Validate rejects instruments that must not reach the engine: the engine
// itself assumes well-formed inputs, so the wallet boundary checks here.
func (i Instrument) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("instrument has no name")
	}
	switch i.Spec.Kind {
	case PercentOfIndex, IndexPlusSpread, Fixed:
	default:
		return fmt.Errorf("instrument %q has unknown rate kind %q", i.Name, i.Spec.Kind)
	}
	if i.Spec.Kind == IndexPlusSpread {
		if _, ok := (Indices{}).rate(i.Spec.Index); !ok {
			return fmt.Errorf("instrument %q references unknown index %q", i.Name, i.Spec.Index)
		}
	}
	return nil
}

// Horizon returns the instrument's own maturity in days, or the fallback
// when it has none.
func (i Instrument) Horizon(fallback int) int {
	if i.HorizonDays > 0 {
		return i.HorizonDays
	}
	return fallback
}

// GrossReturnAt is the composite evaluation of the instrument's pre-tax
// return after the given number of days: effective annual rate, then
// compounding. A spec the engine does not understand contributes a zero
// rate, per EffectiveAnnualRate.
func (i Instrument) GrossReturnAt(indices Indices, days float64) float64 {
	rate, _ := EffectiveAnnualRate(i.Spec, indices)
	return GrossReturn(rate, days)
}

// NetReturnAt is the composite after-tax counterpart of GrossReturnAt.
func (i Instrument) NetReturnAt(indices Indices, days int) float64 {
	return NetReturn(i.GrossReturnAt(indices, float64(days)), days, i.Taxable)
}

// String renders the instrument the way `rfx list` abbreviates it.
func (i Instrument) String() string {
	tax := "isento"
	if i.Taxable {
		tax = "IR"
	}
	horizon := "sem vencimento"
	if i.HorizonDays > 0 {
		horizon = strconv.Itoa(i.HorizonDays) + "d"
	}
	return fmt.Sprintf("%s (%s, %s, %s)", i.Name, i.Spec, tax, horizon)
}
