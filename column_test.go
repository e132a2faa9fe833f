package geom

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestReadColumns(t *testing.T) {
	tests := []Atom{
		{"C", [3]float64{0, 0, 0}},
		{"Cl", [3]float64{-12.25, 1.5, 0.1193731512}},
		{"h", [3]float64{1234.5678901234, -0.0000000001, -99.9}},
		{"Na", [3]float64{-0.7618717473, 3, 7}},
	}
	for _, want := range tests {
		got, err := ReadColumns(formatColumns(want))
		if err != nil {
			t.Fatalf("unexpected error %v\n", err)
		}
		if !compAtoms([]Atom{got}, []Atom{want}, 1e-12) {
			t.Errorf("got %v, wanted %v\n", got, want)
		}
	}
}

func TestReadColumnsTrailing(t *testing.T) {
	line := formatColumns(water[1]) + "   extra text"
	got, err := ReadColumns(line)
	if err != nil {
		t.Fatalf("unexpected error %v\n", err)
	}
	if !compAtoms([]Atom{got}, water[1:2], 1e-12) {
		t.Errorf("got %v, wanted %v\n", got, water[1])
	}
}

func TestReadColumnsErrors(t *testing.T) {
	long := formatColumns(water[0])
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{"empty", "", ""},
		{"short", long[:46], ""},
		{"bad x", long[:5] + "abc" + long[8:], "x"},
		{"bad z", long[:40] + "1.2.3" + long[45:], "z"},
		{"blank y", long[:18] + strings.Repeat(" ", 14) + long[32:], "y"},
	}
	for _, test := range tests {
		_, err := ReadColumns(test.line)
		if !errors.Is(err, ErrMalformedLine) {
			t.Errorf("%s: got %v, wanted %v\n",
				test.name, err, ErrMalformedLine)
			continue
		}
		var mle *MalformedLineError
		if !errors.As(err, &mle) {
			t.Fatalf("%s: %T is not a *MalformedLineError\n",
				test.name, err)
		}
		if mle.Field != test.field {
			t.Errorf("%s: got field %q, wanted %q\n",
				test.name, mle.Field, test.field)
		}
		if test.field != "" {
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) {
				t.Errorf("%s: got %v, wanted a *strconv.NumError\n",
					test.name, err)
			}
		}
	}
}

// misaligned columns are read as they fall, not rejected
func TestReadColumnsOverflow(t *testing.T) {
	line := "C " + "123456789012345" + "6" + "7.5           " + " " + "          -1.0"
	got, err := ReadColumns(line)
	if err != nil {
		t.Fatalf("unexpected error %v\n", err)
	}
	want := Atom{"C", [3]float64{123456789012345, 7.5, -1}}
	if !compAtoms([]Atom{got}, []Atom{want}, 0) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}
