package rendafixa

import (
	"slices"
	"testing"
)

func cdb110(horizon int) Instrument {
	return Instrument{
		Name:        "CDB 110% CDI",
		Spec:        RateSpec{Kind: PercentOfIndex, Magnitude: 110},
		Taxable:     true,
		HorizonDays: horizon,
	}
}

func lci95(horizon int) Instrument {
	return Instrument{
		Name:        "LCI 95% CDI",
		Spec:        RateSpec{Kind: PercentOfIndex, Magnitude: 95},
		Taxable:     false,
		HorizonDays: horizon,
	}
}

func TestGenerateSeries_Shape(t *testing.T) {
	series, err := GenerateSeries(cdb110(0), testIndices, 730)
	if err != nil {
		t.Fatalf("GenerateSeries() error = %v", err)
	}
	if len(series) != 731 {
		t.Fatalf("len(series) = %d, want 731 (days 0..730 inclusive)", len(series))
	}
	for i, p := range series {
		if p.Day != i {
			t.Fatalf("series[%d].Day = %d, want %d", i, p.Day, i)
		}
	}
	if series[0].Gross != 0 || series[0].Net != 0 {
		t.Errorf("day 0 = %+v, want zero returns", series[0])
	}
}

func TestGenerateSeries_BracketDiscontinuity(t *testing.T) {
	series, err := GenerateSeries(cdb110(0), testIndices, 800)
	if err != nil {
		t.Fatalf("GenerateSeries() error = %v", err)
	}

	// The net series must jump up when a bracket drops: the lower rate
	// re-prices the tax on the entire accumulated gain. The gross series
	// stays continuous, moving only by the daily compounding increment.
	for _, boundary := range TransitionDays() {
		before, after := series[boundary], series[boundary+1]
		if after.Net <= before.Net {
			t.Errorf("net[%d]=%v should exceed net[%d]=%v (bracket drop)", boundary+1, after.Net, boundary, before.Net)
		}
		dailyStep := series[boundary].Gross - series[boundary-1].Gross
		if diff := after.Gross - before.Gross; diff <= 0 || diff > 2*dailyStep {
			t.Errorf("gross[%d]-gross[%d] = %v, want a normal daily increment (~%v)", boundary+1, boundary, diff, dailyStep)
		}
		// the jump size is exactly the bracket-rate delta on the gross gain
		wantJump := after.Gross*(1-TaxRate(boundary+1)) - before.Gross*(1-TaxRate(boundary))
		if gotJump := after.Net - before.Net; !almost(gotJump, wantJump, 1e-12) {
			t.Errorf("net jump at %d = %v, want %v", boundary, gotJump, wantJump)
		}
	}
}

func TestGenerateSeries_ExemptHasNoJump(t *testing.T) {
	series, err := GenerateSeries(lci95(0), testIndices, 800)
	if err != nil {
		t.Fatalf("GenerateSeries() error = %v", err)
	}
	for _, p := range series {
		if p.Net != p.Gross {
			t.Fatalf("exempt instrument: net[%d]=%v differs from gross %v", p.Day, p.Net, p.Gross)
		}
	}
}

func TestGenerateSeries_WarnsButStillComputes(t *testing.T) {
	bad := Instrument{Name: "???", Spec: RateSpec{Kind: "mystery"}, Taxable: true}
	series, err := GenerateSeries(bad, testIndices, 10)
	if err == nil {
		t.Fatal("expected a ConfigurationWarning")
	}
	if len(series) != 11 {
		t.Fatalf("len(series) = %d, want 11 despite the warning", len(series))
	}
	for _, p := range series {
		if p.Gross != 0 || p.Net != 0 {
			t.Fatalf("unknown-kind series should be flat zero, got %+v", p)
		}
	}
}

func TestStrideFor(t *testing.T) {
	cases := []struct{ days, want int }{
		{30, 1}, {90, 1},
		{91, 3}, {365, 3},
		{366, 7}, {730, 7},
		{731, 14}, {1825, 14},
		{1826, 30}, {3650, 30},
	}
	for _, c := range cases {
		if got := strideFor(c.days); got != c.want {
			t.Errorf("strideFor(%d) = %d, want %d", c.days, got, c.want)
		}
	}
}

func TestSample_Coverage(t *testing.T) {
	for _, totalDays := range []int{0, 1, 90, 180, 181, 365, 721, 730, 1080, 2000} {
		series, _ := GenerateSeries(cdb110(0), testIndices, totalDays)
		sampled := Sample(series, totalDays)

		count := map[int]int{}
		for _, p := range sampled {
			count[p.Day]++
		}
		if count[0] != 1 {
			t.Errorf("totalDays=%d: day 0 present %d times, want exactly once", totalDays, count[0])
		}
		if count[totalDays] != 1 {
			t.Errorf("totalDays=%d: final day present %d times, want exactly once", totalDays, count[totalDays])
		}
		for _, b := range TransitionDays() {
			for _, d := range []int{b, b + 1} {
				if d > totalDays {
					continue
				}
				if count[d] != 1 {
					t.Errorf("totalDays=%d: transition day %d present %d times, want exactly once", totalDays, d, count[d])
				}
			}
		}
		if !slices.IsSortedFunc(sampled, func(a, b ReturnPoint) int { return a.Day - b.Day }) {
			t.Errorf("totalDays=%d: sampled days not ascending", totalDays)
		}
		for day, n := range count {
			if n > 1 {
				t.Errorf("totalDays=%d: day %d sampled %d times", totalDays, day, n)
			}
		}
	}
}

func TestSample_AlignsAcrossInstruments(t *testing.T) {
	// Sampling decisions depend only on the horizon, so two different
	// instruments plotted together share the same day-offset set and
	// index-based tooltip alignment holds.
	const totalDays = 730
	a, _ := GenerateSeries(cdb110(0), testIndices, totalDays)
	b, _ := GenerateSeries(lci95(0), testIndices, totalDays)

	sa, sb := Sample(a, totalDays), Sample(b, totalDays)
	if len(sa) != len(sb) {
		t.Fatalf("sampled lengths differ: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i].Day != sb[i].Day {
			t.Fatalf("sampled day sets diverge at index %d: %d vs %d", i, sa[i].Day, sb[i].Day)
		}
	}
}

func TestSample_ShortSeriesTolerated(t *testing.T) {
	series, _ := GenerateSeries(cdb110(0), testIndices, 10)
	sampled := Sample(series, 400) // horizon beyond the series: extra days skipped
	for _, p := range sampled {
		if p.Day > 10 {
			t.Fatalf("sampled day %d beyond series length", p.Day)
		}
	}
}
