package rendafixa

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value in a single currency, kept exact for report
// arithmetic. Projections only ever display money; the engine itself works
// on decimal returns.
type Money struct {
	value decimal.Decimal // major units
	cur   string
}

// BRL builds a Money value in Brazilian reais.
func BRL(amount float64) Money {
	return Money{value: decimal.NewFromFloat(amount), cur: money.BRL}
}

// M builds a Money value in an arbitrary currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency resolves the full currency metadata, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with its currency's grapheme and fraction
// rules, e.g. "R$10.500,00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: m.cur} }

// Grow returns the amount after applying an accumulated decimal return:
// principal × (1 + r). This is where engine returns meet report money.
func (m Money) Grow(r float64) Money {
	factor := decimal.NewFromFloat(1 + r)
	return Money{value: m.value.Mul(factor), cur: m.cur}
}

// Gain returns the absolute gain of applying a return: Grow(r) - principal.
func (m Money) Gain(r float64) Money {
	return m.Grow(r).Sub(m)
}

// AsFloat is for display-adjacent math only; report values stay decimal.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
