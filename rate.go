package rendafixa

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RateKind selects the formula that turns a RateSpec into an effective
// annual rate.
type RateKind string

const (
	// PercentOfIndex pays a percentage of the primary floating index (CDI),
	// e.g. "110% CDI".
	PercentOfIndex RateKind = "percent-of-index"
	// IndexPlusSpread pays a reference index plus a fixed spread,
	// e.g. "IPCA+6".
	IndexPlusSpread RateKind = "index-plus-spread"
	// Fixed pays a flat annual rate, e.g. a 12% a.a. prefixado.
	Fixed RateKind = "fixed"
)

// IndexRef names a reference index an IndexPlusSpread instrument follows.
type IndexRef string

const (
	CDI   IndexRef = "cdi"   // primary floating rate
	IPCA  IndexRef = "ipca"  // inflation
	SELIC IndexRef = "selic" // policy rate
)

// RateSpec describes how an instrument pays. Magnitude is on the percentage
// scale, and its meaning depends on Kind: 110 means "110% of CDI" under
// PercentOfIndex, a 6 percentage-point spread under IndexPlusSpread, and a
// flat 12% a.a. under Fixed. Index is only meaningful for IndexPlusSpread.
type RateSpec struct {
	Kind      RateKind `json:"kind"`
	Index     IndexRef `json:"index,omitempty"`
	Magnitude float64  `json:"magnitude"`
}

// Indices carries the current annualized reference rates, as decimals
// (0.1065 for 10.65% a.a.). They are supplied per evaluation, typically by
// the bcb fetcher or by command-line overrides; the engine never caches
// them.
type Indices struct {
	CDI   float64
	IPCA  float64
	SELIC float64
}

// rate returns the annualized decimal rate of the given reference index.
func (x Indices) rate(ref IndexRef) (float64, bool) {
	switch ref {
	case CDI:
		return x.CDI, true
	case IPCA:
		return x.IPCA, true
	case SELIC:
		return x.SELIC, true
	}
	return 0, false
}

// ConfigurationWarning reports a RateSpec the engine does not understand.
// It is non-fatal: the evaluation proceeds with a zero rate, and the caller
// may log the warning and carry on.
type ConfigurationWarning struct {
	Spec RateSpec
}

func (w *ConfigurationWarning) Error() string {
	return fmt.Sprintf("unrecognized rate specification %q (index %q): using a 0%% annual rate", w.Spec.Kind, w.Spec.Index)
}

// EffectiveAnnualRate converts a rate specification plus the reference
// indices into an annualized decimal rate.
//
// An unrecognized kind (or an unrecognized index under IndexPlusSpread)
// yields a zero rate and a *ConfigurationWarning; it never fails hard, so a
// wallet with one malformed entry still projects the others.
func EffectiveAnnualRate(spec RateSpec, indices Indices) (float64, error) {
	switch spec.Kind {
	case PercentOfIndex:
		return indices.CDI * spec.Magnitude / 100, nil
	case IndexPlusSpread:
		base, ok := indices.rate(spec.Index)
		if !ok {
			return 0, &ConfigurationWarning{Spec: spec}
		}
		return base + spec.Magnitude/100, nil
	case Fixed:
		return spec.Magnitude / 100, nil
	}
	return 0, &ConfigurationWarning{Spec: spec}
}

// GrossReturn compounds an annual rate over the given number of days and
// returns the accumulated pre-tax return as a decimal.
//
// Days may be fractional; compounding is continuous exponentiation over
// days/365, not integer-day stepping. Non-positive durations return exactly
// 0, and a rate at or below -100% is floored at a total loss of -1 so that
// the power never produces NaN or complex results.
func GrossReturn(annualRate, days float64) float64 {
	if days <= 0 {
		return 0
	}
	if annualRate <= -1 {
		return -1
	}
	return math.Pow(1+annualRate, days/365) - 1
}

// NetReturn applies the holding-period tax to an accumulated gross return.
// Tax-exempt instruments and non-positive gross returns pass through
// unchanged: losses are never taxed, and tax never inverts the sign of a
// return.
func NetReturn(gross float64, holdingDays int, taxable bool) float64 {
	if !taxable || gross <= 0 {
		return gross
	}
	return gross * (1 - TaxRate(holdingDays))
}

// TaxAmount returns the fraction of the accumulated return paid as tax,
// under the same guards as NetReturn. Tax is levied on the gain only, never
// on principal.
func TaxAmount(gross float64, holdingDays int, taxable bool) float64 {
	if !taxable || gross <= 0 {
		return 0
	}
	return gross * TaxRate(holdingDays)
}

// ParseRateSpec parses the compact rate notations used on the command line
// and in the wallet file:
//
//	110%cdi      percentage of CDI
//	ipca+6       IPCA plus a 6 percentage-point spread
//	cdi+1.5      CDI plus spread
//	selic+0.2    SELIC plus spread
//	12 or 12%    fixed 12% a.a.
func ParseRateSpec(s string) (RateSpec, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if norm == "" {
		return RateSpec{}, fmt.Errorf("empty rate specification")
	}

	// percentage of index: "110%cdi"
	if i := strings.Index(norm, "%"); i >= 0 && i < len(norm)-1 {
		mag, err := strconv.ParseFloat(norm[:i], 64)
		if err != nil {
			return RateSpec{}, fmt.Errorf("invalid magnitude in rate %q: %w", s, err)
		}
		if ref := IndexRef(norm[i+1:]); ref != CDI {
			return RateSpec{}, fmt.Errorf("percentage-of-index rates follow CDI, got %q in %q", ref, s)
		}
		return RateSpec{Kind: PercentOfIndex, Magnitude: mag}, nil
	}

	// index plus spread: "ipca+6"
	if i := strings.Index(norm, "+"); i > 0 {
		ref := IndexRef(norm[:i])
		if _, ok := (Indices{}).rate(ref); !ok {
			return RateSpec{}, fmt.Errorf("unknown reference index %q in rate %q", ref, s)
		}
		mag, err := strconv.ParseFloat(norm[i+1:], 64)
		if err != nil {
			return RateSpec{}, fmt.Errorf("invalid spread in rate %q: %w", s, err)
		}
		return RateSpec{Kind: IndexPlusSpread, Index: ref, Magnitude: mag}, nil
	}

	// fixed: "12" or "12%"
	mag, err := strconv.ParseFloat(strings.TrimSuffix(norm, "%"), 64)
	if err != nil {
		return RateSpec{}, fmt.Errorf("invalid rate specification %q", s)
	}
	return RateSpec{Kind: Fixed, Magnitude: mag}, nil
}

// String formats the spec back into its compact notation.
func (spec RateSpec) String() string {
	mag := strconv.FormatFloat(spec.Magnitude, 'f', -1, 64)
	switch spec.Kind {
	case PercentOfIndex:
		return mag + "% CDI"
	case IndexPlusSpread:
		return strings.ToUpper(string(spec.Index)) + "+" + mag
	case Fixed:
		return mag + "% a.a."
	}
	return fmt.Sprintf("?%s(%s)", spec.Kind, mag)
}
