package rendafixa

import (
	"bytes"
	"strings"
	"testing"
)

func TestWallet_AppendReplacesByName(t *testing.T) {
	w := NewWallet()
	if replaced := w.Append(cdb110(720)); replaced {
		t.Error("first Append should not report a replacement")
	}
	edited := cdb110(720)
	edited.Spec.Magnitude = 115
	if replaced := w.Append(edited); !replaced {
		t.Error("Append with a known name should report a replacement")
	}
	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}
	got, ok := w.Get(edited.Name)
	if !ok || got.Spec.Magnitude != 115 {
		t.Errorf("Get() = (%+v, %v), want the edited instrument", got, ok)
	}
}

func TestWallet_Remove(t *testing.T) {
	w := NewWallet()
	w.Append(cdb110(0), lci95(0))
	if !w.Remove("CDB 110% CDI") {
		t.Error("Remove of a known name should succeed")
	}
	if w.Remove("CDB 110% CDI") {
		t.Error("second Remove should report absence")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, want 1", w.Len())
	}
}

func TestEncodeWallet_Canonical(t *testing.T) {
	w := NewWallet()
	// inserted out of name order on purpose
	w.Append(
		Instrument{Name: "Tesouro IPCA", Spec: RateSpec{Kind: IndexPlusSpread, Index: IPCA, Magnitude: 6}, Taxable: true, HorizonDays: 1800},
		Instrument{Name: "CDB Banco X", Spec: RateSpec{Kind: PercentOfIndex, Magnitude: 110}, Taxable: true},
		Instrument{Name: "LCI Banco Y", Spec: RateSpec{Kind: PercentOfIndex, Magnitude: 95}},
	)

	var buf bytes.Buffer
	if err := EncodeWallet(&buf, w); err != nil {
		t.Fatalf("EncodeWallet() error = %v", err)
	}
	want := strings.Join([]string{
		`{"name":"CDB Banco X","kind":"percent-of-index","magnitude":110,"taxable":true}`,
		`{"name":"LCI Banco Y","kind":"percent-of-index","magnitude":95,"taxable":false}`,
		`{"name":"Tesouro IPCA","kind":"index-plus-spread","index":"ipca","magnitude":6,"taxable":true,"horizonDays":1800}`,
		``,
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("EncodeWallet() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDecodeWallet_RoundTrip(t *testing.T) {
	w := NewWallet()
	w.Append(cdb110(720), lci95(0))

	var buf bytes.Buffer
	if err := EncodeWallet(&buf, w); err != nil {
		t.Fatalf("EncodeWallet() error = %v", err)
	}
	got, err := DecodeWallet(&buf)
	if err != nil {
		t.Fatalf("DecodeWallet() error = %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("decoded Len() = %d, want 2", got.Len())
	}
	inst, ok := got.Get("CDB 110% CDI")
	if !ok {
		t.Fatal("decoded wallet misses the CDB")
	}
	if inst != cdb110(720) {
		t.Errorf("decoded instrument = %+v, want %+v", inst, cdb110(720))
	}
}

func TestDecodeWallet_Invalid(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"not json", `not json`},
		{"empty name", `{"name":"","kind":"fixed","magnitude":12}`},
		{"unknown kind", `{"name":"x","kind":"mystery","magnitude":12}`},
		{"unknown index", `{"name":"x","kind":"index-plus-spread","index":"tr","magnitude":1}`},
	}
	for _, c := range cases {
		if _, err := DecodeWallet(strings.NewReader(c.line + "\n")); err == nil {
			t.Errorf("DecodeWallet(%q) should fail: %s", c.line, c.name)
		}
	}
	// empty lines are fine
	w, err := DecodeWallet(strings.NewReader("\n\n"))
	if err != nil || w.Len() != 0 {
		t.Errorf("DecodeWallet(blank) = (%d, %v), want empty wallet", w.Len(), err)
	}
}
