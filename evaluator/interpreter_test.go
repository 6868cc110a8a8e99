package evaluator_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/lpi/evaluator"
	"github.com/npillmayer/lpi/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gopkg.in/yaml.v3"
)

type programFixture struct {
	Name     string               `yaml:"name"`
	Source   string               `yaml:"source"`
	Output   string               `yaml:"output"`
	Scalars  map[string]float64   `yaml:"scalars"`
	Arrays   map[string][]float64 `yaml:"arrays"`
	Warnings int                  `yaml:"warnings"`
	Error    string               `yaml:"error"`
}

func loadFixtures(t *testing.T) []programFixture {
	f, err := os.Open("testdata/programs.yml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var fixtures []programFixture
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fixtures); err != nil {
		t.Fatalf("cannot read fixtures: %v", err)
	}
	return fixtures
}

func TestPrograms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.evaluator")
	defer teardown()
	//
	for _, fx := range loadFixtures(t) {
		out := &bytes.Buffer{}
		intp := evaluator.NewInterpreter(out)
		warnings := intp.Load(fx.Source)
		if len(warnings) != fx.Warnings {
			t.Errorf("%s: expected %d warnings, got %v", fx.Name, fx.Warnings, warnings)
		}
		err := intp.Run()
		if fx.Error == "" && err != nil {
			t.Errorf("%s: unexpected error: %v", fx.Name, err)
		} else if fx.Error != "" && (err == nil || !strings.Contains(err.Error(), fx.Error)) {
			t.Errorf("%s: expected error %q, got %v", fx.Name, fx.Error, err)
		}
		if out.String() != fx.Output {
			t.Errorf("%s: expected output %q, got %q", fx.Name, fx.Output, out.String())
		}
		vars := intp.Variables()
		for name, v := range fx.Scalars {
			if vars.Scalar(name) != v {
				t.Errorf("%s: expected %s = %g, is %g", fx.Name, name, v, vars.Scalar(name))
			}
		}
		for name, expected := range fx.Arrays {
			a, ok := vars.Array(name)
			if !ok || len(a) != len(expected) {
				t.Errorf("%s: expected array %s of size %d, have %v", fx.Name, name, len(expected), a)
				continue
			}
			for i := range a {
				if a[i] != expected[i] {
					t.Errorf("%s: expected %s(%d) = %g, is %g", fx.Name, name, i, expected[i], a[i])
				}
			}
		}
	}
}

func TestEmptyProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.evaluator")
	defer teardown()
	//
	intp := evaluator.NewInterpreter(nil)
	if err := intp.Run(); err != evaluator.ErrNoProgramToExecute {
		t.Errorf("expected empty-input-error, but got %v", err)
	}
}

func TestImmediateMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.evaluator")
	defer teardown()
	//
	out := &bytes.Buffer{}
	intp := evaluator.NewInterpreter(out)
	for _, line := range []string{"A = 1 + 2", "AL(0) = 10", "PRINT A ; AL", ""} {
		if err := intp.Enter(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if intp.Len() != 0 {
		t.Errorf("expected immediate lines not to be stored")
	}
	if v := intp.Variables().Scalar("A"); v != 3.0 {
		t.Errorf("expected A = 3, is %g", v)
	}
	a, ok := intp.Variables().Array("AL")
	if !ok || len(a) != 10 || a[0] != 10.0 {
		t.Errorf("expected AL to be auto-created with AL(0) = 10, have %v", a)
	}
	if out.String() != "3 0\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestNumericLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.evaluator")
	defer teardown()
	//
	intp := evaluator.NewInterpreter(nil)
	if err := intp.Enter("A = 1E400"); err != nil {
		t.Errorf("expected overflowing literal to be accepted, got %v", err)
	}
	if v := intp.Variables().Scalar("A"); !math.IsInf(v, 1) {
		t.Errorf("expected A = +Inf, is %g", v)
	}
	if err := intp.Enter("C = 0x1p3"); !errors.Is(err, evaluator.ErrMalformedNumericLiteral) {
		t.Errorf("expected hex literal to be malformed, got %v", err)
	}
	if v := intp.Variables().Scalar("C"); v != 0 {
		t.Errorf("expected C to stay unset, is %g", v)
	}
}

func TestRuntimeError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.evaluator")
	defer teardown()
	//
	intp := evaluator.NewInterpreter(nil)
	_ = intp.Enter("10 A = 1")
	_ = intp.Enter("20 AL(10) = 1")
	err := intp.Run()
	var rterr *evaluator.RuntimeError
	if !errors.As(err, &rterr) || rterr.Line != 20 {
		t.Fatalf("expected runtime error in line 20, got %v", err)
	}
	var oob *variables.IndexOutOfBoundsError
	if !errors.As(err, &oob) || oob.Name != "AL" || oob.Index != 10 {
		t.Errorf("expected out of bounds error for AL(10), got %v", err)
	}
}

func TestLineNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.evaluator")
	defer teardown()
	//
	intp := evaluator.NewInterpreter(nil)
	err := intp.Enter("70000 A = 1")
	if !errors.Is(err, evaluator.ErrLineNumber) {
		t.Errorf("expected line number error, got %v", err)
	}
	if n, err := evaluator.ParseLineNumber("65535"); err != nil || n != 65535 {
		t.Errorf("expected 65535 to be a valid line number, got %d, %v", n, err)
	}
	_ = intp.Enter("10 A = 1")
	_ = intp.Enter("20 B = 2")
	_ = intp.Enter("10")
	if intp.Len() != 1 {
		t.Errorf("expected bare line number to remove the line, have %d lines", intp.Len())
	}
}

func TestListAndClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.evaluator")
	defer teardown()
	//
	intp := evaluator.NewInterpreter(nil, variables.WithArraySize(4))
	_ = intp.Load("20 PRINT  \"A\" ; A\n10 LET A = (1+2)*3\n")
	listing := &bytes.Buffer{}
	if err := intp.List(listing); err != nil {
		t.Fatal(err)
	}
	expected := "10 LET A = ( 1 + 2 ) * 3\n20 PRINT \"A\" ; A\n"
	if listing.String() != expected {
		t.Errorf("expected listing\n%q\ngot\n%q", expected, listing.String())
	}
	_ = intp.Run()
	intp.Clear()
	if intp.Len() != 0 || intp.Variables().Scalar("A") != 0 {
		t.Errorf("expected program and variables to be cleared")
	}
	if intp.Variables().ArraySize() != 4 {
		t.Errorf("expected array size option to survive Clear")
	}
}
