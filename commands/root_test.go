package commands

import (
	"bytes"
	"strings"
	"testing"
)

// runCmd executes the root command with args and returns stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	out, err := runCmd(t, "eval", "3 * kg")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if strings.TrimSpace(out) != "3 kg" {
		t.Errorf("eval output = %q, want 3 kg", out)
	}
}

func TestEvalCommandASCII(t *testing.T) {
	out, err := runCmd(t, "--ascii", "eval", "2*m * 2*m")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if strings.TrimSpace(out) != "4 m^2" {
		t.Errorf("eval output = %q, want 4 m^2", out)
	}
}

func TestEvalCommandMismatch(t *testing.T) {
	_, err := runCmd(t, "eval", "6*m + 2*s")
	if err == nil {
		t.Fatal("expected unit mismatch error")
	}
	if !strings.Contains(err.Error(), "<L>") || !strings.Contains(err.Error(), "<T>") {
		t.Errorf("error should carry both dimension strings: %v", err)
	}
}

func TestConvertCommand(t *testing.T) {
	out, err := runCmd(t, "convert", "1.32e-5", "m", "1e-6*m")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "13.2") {
		t.Errorf("convert output = %q, want 13.2", out)
	}
}

func TestDimCommand(t *testing.T) {
	out, err := runCmd(t, "dim", "LM/TT")
	if err != nil {
		t.Fatalf("dim failed: %v", err)
	}
	if !strings.Contains(out, "canonical: LM/TT") {
		t.Errorf("missing canonical form: %q", out)
	}
	if !strings.Contains(out, "derived:   N") {
		t.Errorf("missing derived symbol: %q", out)
	}
}

func TestUnitsCommand(t *testing.T) {
	out, err := runCmd(t, "units")
	if err != nil {
		t.Fatalf("units failed: %v", err)
	}
	for _, sym := range []string{"kg", "mol", "Pa", "Da"} {
		if !strings.Contains(out, sym) {
			t.Errorf("units output missing %q", sym)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("version output = %q", out)
	}
}
