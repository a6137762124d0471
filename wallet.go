package rendafixa

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"sort"
)

// Wallet is the collection of instruments a user tracks. It is the
// repository boundary around the engine: it validates on the way in,
// persists as JSONL, and never reaches into evaluation.
type Wallet struct {
	instruments []Instrument
}

// NewWallet returns an empty wallet.
func NewWallet() *Wallet { return &Wallet{} }

// Len returns the number of instruments in the wallet.
func (w *Wallet) Len() int { return len(w.instruments) }

// Append adds instruments to the wallet. An instrument with an already-known
// name replaces the previous entry, so re-adding is an edit. It reports
// whether any existing entry was replaced.
func (w *Wallet) Append(instruments ...Instrument) (replaced bool) {
	for _, inst := range instruments {
		if i := w.index(inst.Name); i >= 0 {
			w.instruments[i] = inst
			replaced = true
			continue
		}
		w.instruments = append(w.instruments, inst)
	}
	return replaced
}

// Remove deletes the named instrument, reporting whether it existed.
func (w *Wallet) Remove(name string) bool {
	i := w.index(name)
	if i < 0 {
		return false
	}
	w.instruments = append(w.instruments[:i], w.instruments[i+1:]...)
	return true
}

// Get returns the named instrument.
func (w *Wallet) Get(name string) (Instrument, bool) {
	if i := w.index(name); i >= 0 {
		return w.instruments[i], true
	}
	return Instrument{}, false
}

func (w *Wallet) index(name string) int {
	for i, inst := range w.instruments {
		if inst.Name == name {
			return i
		}
	}
	return -1
}

// Instruments iterates over the wallet in name order.
func (w *Wallet) Instruments() iter.Seq[Instrument] {
	sorted := make([]Instrument, len(w.instruments))
	copy(sorted, w.instruments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return func(yield func(Instrument) bool) {
		for _, inst := range sorted {
			if !yield(inst) {
				return
			}
		}
	}
}

// MarshalJSON writes the instrument with a canonical field order.
func (i Instrument) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", i.Name)
	w.Append("kind", i.Spec.Kind)
	w.Optional("index", i.Spec.Index)
	w.Append("magnitude", i.Spec.Magnitude)
	w.Append("taxable", i.Taxable)
	w.Optional("horizonDays", i.HorizonDays)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the wallet-file representation of an instrument.
func (i *Instrument) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name        string   `json:"name"`
		Kind        RateKind `json:"kind"`
		Index       IndexRef `json:"index"`
		Magnitude   float64  `json:"magnitude"`
		Taxable     bool     `json:"taxable"`
		HorizonDays int      `json:"horizonDays"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*i = Instrument{
		Name:        temp.Name,
		Spec:        RateSpec{Kind: temp.Kind, Index: temp.Index, Magnitude: temp.Magnitude},
		Taxable:     temp.Taxable,
		HorizonDays: temp.HorizonDays,
	}
	return nil
}

// DecodeWallet reads instruments from a JSONL stream, one instrument per
// line, validating each. Empty lines are skipped.
func DecodeWallet(r io.Reader) (*Wallet, error) {
	w := NewWallet()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var inst Instrument
		if err := json.Unmarshal(raw, &inst); err != nil {
			return nil, fmt.Errorf("wallet line %d: %w", line, err)
		}
		if err := inst.Validate(); err != nil {
			return nil, fmt.Errorf("wallet line %d: %w", line, err)
		}
		w.Append(inst)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading wallet: %w", err)
	}
	return w, nil
}

// EncodeInstrument writes a single instrument as one JSONL line.
func EncodeInstrument(w io.Writer, inst Instrument) error {
	data, err := json.Marshal(inst)
	if err != nil {
		return fmt.Errorf("failed to marshal instrument %q: %w", inst.Name, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write instrument %q: %w", inst.Name, err)
	}
	return nil
}

// EncodeWallet persists the wallet in canonical form: one instrument per
// line, sorted by name, fields in a fixed order.
func EncodeWallet(w io.Writer, wallet *Wallet) error {
	for inst := range wallet.Instruments() {
		if err := EncodeInstrument(w, inst); err != nil {
			return err
		}
	}
	return nil
}
