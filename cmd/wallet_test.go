package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// Helper function to create a temporary wallet file
func createTempWallet(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	name := filepath.Join(tmp, "test_wallet.jsonl")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return name
}

func overrideWalletFile(t *testing.T, name string) {
	t.Helper()
	old := walletFile
	walletFile = &name
	t.Cleanup(func() { walletFile = old })
}

func TestAddCmd_CreatesAndReplaces(t *testing.T) {
	file := filepath.Join(t.TempDir(), "carteira.jsonl")
	overrideWalletFile(t, file)

	run := func(args ...string) subcommands.ExitStatus {
		cmd := &addCmd{}
		f := flag.NewFlagSet("test", flag.ContinueOnError)
		cmd.SetFlags(f)
		if err := f.Parse(args); err != nil {
			t.Fatal(err)
		}
		return cmd.Execute(context.Background(), f)
	}

	if got := run("-name", "CDB 110", "-rate", "110%cdi", "-ir"); got != subcommands.ExitSuccess {
		t.Fatalf("add failed with status %v", got)
	}
	// Same name again replaces, never duplicates.
	if got := run("-name", "CDB 110", "-rate", "112%cdi", "-ir"); got != subcommands.ExitSuccess {
		t.Fatalf("replace failed with status %v", got)
	}

	wallet, err := DecodeWallet()
	if err != nil {
		t.Fatal(err)
	}
	if wallet.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", wallet.Len())
	}
	inst, ok := wallet.Get("CDB 110")
	if !ok {
		t.Fatal("instrument not found after add")
	}
	if inst.Spec.Magnitude != 112 {
		t.Errorf("Magnitude = %v, want 112 after replace", inst.Spec.Magnitude)
	}
}

func TestFmtCmd_CanonicalOutput(t *testing.T) {
	// Unsorted, with fields out of canonical order.
	original := `{"taxable":false,"name":"LCI 95","kind":"percent-of-index","index":"cdi","magnitude":95}
{"name":"CDB 110","kind":"percent-of-index","index":"cdi","magnitude":110,"taxable":true,"horizonDays":720}
`
	want := `{"name":"CDB 110","kind":"percent-of-index","index":"cdi","magnitude":110,"taxable":true,"horizonDays":720}
{"name":"LCI 95","kind":"percent-of-index","index":"cdi","magnitude":95,"taxable":false}
`
	file := createTempWallet(t, original)
	overrideWalletFile(t, file)

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if got := cmd.Execute(context.Background(), f); got != subcommands.ExitSuccess {
		t.Fatalf("fmt failed with status %v", got)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != want {
		t.Errorf("canonical output mismatch\ngot:\n%s\nwant:\n%s", content, want)
	}
}

func TestDecodeWallet_MissingFileIsEmpty(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.jsonl")
	overrideWalletFile(t, missing)

	wallet, err := DecodeWallet()
	if err != nil {
		t.Fatal(err)
	}
	if wallet.Len() != 0 {
		t.Errorf("Len() = %d, want 0", wallet.Len())
	}
}
