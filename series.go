package rendafixa

import "slices"

// ReturnPoint is one day of a projected return series. Gross and Net are
// accumulated decimal returns since day 0.
type ReturnPoint struct {
	Day   int
	Gross float64
	Net   float64
}

// GenerateSeries evaluates the instrument's gross and net return for every
// integer day 0..totalDays inclusive.
//
// The effective annual rate is resolved once and each day is evaluated in
// closed form, so there is no rounding drift across days. The net return is
// re-taxed per day because the bracket depends on the day offset: crossing a
// bracket boundary re-prices the tax on the entire accumulated gain, which
// shows as an upward jump at days 181, 361 and 721. That jump is correct
// economics and must survive all downstream processing.
//
// The returned error is at worst a *ConfigurationWarning; the series is
// fully computed (with a zero rate) even then.
func GenerateSeries(inst Instrument, indices Indices, totalDays int) ([]ReturnPoint, error) {
	if totalDays < 0 {
		totalDays = 0
	}
	rate, warn := EffectiveAnnualRate(inst.Spec, indices)
	points := make([]ReturnPoint, 0, totalDays+1)
	for day := 0; day <= totalDays; day++ {
		gross := GrossReturn(rate, float64(day))
		points = append(points, ReturnPoint{
			Day:   day,
			Gross: gross,
			Net:   NetReturn(gross, day, inst.Taxable),
		})
	}
	return points, warn
}

// strideFor returns the interior sampling stride for a horizon, growing with
// its length so the plotted point count stays roughly flat.
func strideFor(totalDays int) int {
	switch {
	case totalDays <= 90:
		return 1
	case totalDays <= 365:
		return 3
	case totalDays <= 730:
		return 7
	case totalDays <= 1825:
		return 14
	default:
		return 30
	}
}

// sampleDays returns the ascending, duplicate-free set of day offsets kept
// by Sample for a horizon. It depends on totalDays alone, never on the
// series values, so two instruments sampled over the same horizon always
// align point-for-point.
func sampleDays(totalDays int) []int {
	if totalDays <= 0 {
		return []int{0}
	}
	stride := strideFor(totalDays)
	days := make([]int, 0, totalDays/stride+8)
	for day := 0; day <= totalDays; day += stride {
		days = append(days, day)
	}
	// Day 0 and every stride multiple are in; force the endpoint and both
	// sides of each bracket transition so the net-return jump is never
	// smoothed away.
	days = append(days, totalDays)
	for _, t := range TransitionDays() {
		if t <= totalDays {
			days = append(days, t)
		}
		if t+1 <= totalDays {
			days = append(days, t+1)
		}
	}
	slices.Sort(days)
	return slices.Compact(days)
}

// Sample reduces a full daily series to a bounded set of charting points.
// Day 0 and the final day are always kept, as are the days on either side of
// every tax-bracket transition within range. The choice of kept days is a
// function of totalDays only, keeping index-based alignment valid across
// instruments plotted together.
//
// The series is expected to be the GenerateSeries output for totalDays
// (point i at day i); days beyond len(series)-1 are simply skipped.
func Sample(series []ReturnPoint, totalDays int) []ReturnPoint {
	kept := make([]ReturnPoint, 0, 64)
	for _, day := range sampleDays(totalDays) {
		if day < len(series) {
			kept = append(kept, series[day])
		}
	}
	return kept
}
