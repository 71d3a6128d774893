package cli

import (
	"testing"

	"github.com/ajroetker/go-mathfn/mathfn/bridge"
)

func TestParseValueScalars(t *testing.T) {
	v, err := parseValue(bridge.Int, "-42")
	if err != nil {
		t.Fatalf("parse int: %v", err)
	}
	if v.Int() != -42 {
		t.Errorf("parsed int = %d, want -42", v.Int())
	}

	v, err = parseValue(bridge.Float, "2.5")
	if err != nil {
		t.Fatalf("parse float: %v", err)
	}
	if v.Float() != 2.5 {
		t.Errorf("parsed float = %v, want 2.5", v.Float())
	}

	v, err = parseValue(bridge.Bool, "true")
	if err != nil {
		t.Fatalf("parse bool: %v", err)
	}
	if !v.Bool() {
		t.Errorf("parsed bool = false, want true")
	}
}

func TestParseValueSequences(t *testing.T) {
	v, err := parseValue(bridge.IntSlice, "1, 2,3")
	if err != nil {
		t.Fatalf("parse int slice: %v", err)
	}
	want := []int64{1, 2, 3}
	for i, n := range v.Ints() {
		if n != want[i] {
			t.Errorf("parsed ints[%d] = %d, want %d", i, n, want[i])
		}
	}

	v, err = parseValue(bridge.FloatSlice, "0.5,1.5")
	if err != nil {
		t.Fatalf("parse float slice: %v", err)
	}
	if len(v.Floats()) != 2 || v.Floats()[1] != 1.5 {
		t.Errorf("parsed floats = %v, want [0.5 1.5]", v.Floats())
	}

	// Empty string parses as an empty sequence.
	v, err = parseValue(bridge.FloatSlice, "")
	if err != nil {
		t.Fatalf("parse empty slice: %v", err)
	}
	if len(v.Floats()) != 0 {
		t.Errorf("parsed empty = %v, want empty", v.Floats())
	}
}

func TestParseValueErrors(t *testing.T) {
	cases := []struct {
		kind  bridge.Kind
		input string
	}{
		{bridge.Int, "1.5"},
		{bridge.Int, "abc"},
		{bridge.Float, "x"},
		{bridge.Bool, "maybe"},
		{bridge.IntSlice, "1,x,3"},
		{bridge.FloatSlice, "1.0,,3.0"},
	}
	for _, c := range cases {
		if _, err := parseValue(c.kind, c.input); err == nil {
			t.Errorf("parseValue(%v, %q) succeeded, want error", c.kind, c.input)
		}
	}
}
