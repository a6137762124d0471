package rendafixa

import "fmt"

// Percent is a display value on the percentage scale (11.7 for 11.7%).
type Percent float64

// AsPercent lifts a decimal return or rate (0.117) onto the percentage
// scale.
func AsPercent(decimal float64) Percent { return Percent(100 * decimal) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
