package rendafixa

import "math"

// openEnd marks the MaxDays of the terminal tax bracket, which has no upper
// bound.
const openEnd = math.MaxInt

// TaxBracket is one band of the regressive income-tax table for fixed-income
// gains. A holding period of MinDays to MaxDays (both included) is taxed at
// Rate on the accumulated gain.
type TaxBracket struct {
	MinDays int
	MaxDays int // openEnd on the last bracket
	Rate    float64
}

// irTable is the regressive table applied to taxable fixed-income gains.
// The brackets partition [0, ∞) with no gaps or overlaps, and only the last
// one is open-ended. Rates only ever drop as the holding period grows.
var irTable = []TaxBracket{
	{MinDays: 0, MaxDays: 180, Rate: 0.225},
	{MinDays: 181, MaxDays: 360, Rate: 0.20},
	{MinDays: 361, MaxDays: 720, Rate: 0.175},
	{MinDays: 721, MaxDays: openEnd, Rate: 0.15},
}

// ResolveBracket returns the tax bracket applicable to a holding period of
// the given number of days. Zero or negative holding periods resolve to the
// first bracket.
//
// The table covers every non-negative day, so the scan cannot miss; should
// the table ever be edited into an inconsistent state, the last (open)
// bracket is returned instead of failing. That fallback picks the lowest
// rate and is deliberate: a projection with a slightly wrong tax rate beats
// no projection at all.
func ResolveBracket(holdingDays int) TaxBracket {
	if holdingDays < 0 {
		holdingDays = 0
	}
	for _, b := range irTable {
		if holdingDays >= b.MinDays && holdingDays <= b.MaxDays {
			return b
		}
	}
	return irTable[len(irTable)-1]
}

// TaxRate returns the income-tax rate applicable to a holding period of the
// given number of days.
func TaxRate(holdingDays int) float64 { return ResolveBracket(holdingDays).Rate }

// TransitionDays returns, in ascending order, the last day of every closed
// bracket: the days after which the applicable rate drops. Series generation
// and chart sampling use them to keep the rate discontinuity visible.
func TransitionDays() []int {
	days := make([]int, 0, len(irTable)-1)
	for _, b := range irTable {
		if b.MaxDays != openEnd {
			days = append(days, b.MaxDays)
		}
	}
	return days
}
