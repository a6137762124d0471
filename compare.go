package rendafixa

// Standard horizons, in days, of the equivalent-rates snapshot.
const (
	HorizonMonth    = 30
	HorizonYear     = 365
	HorizonTwoYears = 720
)

// DefaultBreakEvenHorizon bounds the break-even scan when the caller has no
// better limit. Past the last bracket transition at 720 days the tax rate
// never changes again, so three years covers every crossing worth reporting.
const DefaultBreakEvenHorizon = 1080

// RatePair is a gross/net accumulated return at one horizon.
type RatePair struct {
	Gross float64
	Net   float64
}

// EquivalentRatesSummary is a read-only snapshot of an instrument's returns
// at the standard comparison horizons.
type EquivalentRatesSummary struct {
	Month    RatePair // 30 days
	Year     RatePair // 365 days
	TwoYears RatePair // 720 days
}

// EquivalentRates evaluates the instrument at the standard horizons using
// the composite accessors. Pure, no iteration.
func EquivalentRates(inst Instrument, indices Indices) EquivalentRatesSummary {
	at := func(days int) RatePair {
		return RatePair{
			Gross: inst.GrossReturnAt(indices, float64(days)),
			Net:   inst.NetReturnAt(indices, days),
		}
	}
	return EquivalentRatesSummary{
		Month:    at(HorizonMonth),
		Year:     at(HorizonYear),
		TwoYears: at(HorizonTwoYears),
	}
}

// FindBreakEvenDay returns the first day in 1..maxDays on which the taxed
// instrument's net return meets or exceeds the untaxed one's, and whether
// such a day exists. No crossing within maxDays is a valid outcome, not an
// error.
//
// Ties go to the taxed instrument (>=, not >) for deterministic
// first-crossing semantics. The scan is deliberately linear over every day:
// the tax rate only drops with time, but the gross-rate ordering of two
// differently-indexed instruments is not guaranteed monotonic, so a binary
// search could miss the first crossing.
func FindBreakEvenDay(taxed, untaxed Instrument, indices Indices, maxDays int) (int, bool) {
	for day := 1; day <= maxDays; day++ {
		if taxed.NetReturnAt(indices, day) >= untaxed.NetReturnAt(indices, day) {
			return day, true
		}
	}
	return 0, false
}
