package geom

import (
	"fmt"
	"math"
)

// formatColumns lays out a in the column format read by ReadColumns
func formatColumns(a Atom) string {
	return fmt.Sprintf("%-2s%15.10f %14.10f %14.10f",
		a.Symbol, a.Pos[0], a.Pos[1], a.Pos[2])
}

func compFloat(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func compAtoms(a, b []Atom, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Symbol != b[i].Symbol {
			fmt.Printf("symbol %d: %q vs %q\n", i, a[i].Symbol, b[i].Symbol)
			return false
		}
		if !compFloat(a[i].Pos[:], b[i].Pos[:], eps) {
			fmt.Printf("position %d: %v vs %v\n", i, a[i].Pos, b[i].Pos)
			return false
		}
	}
	return true
}

var water = []Atom{
	{"O", [3]float64{0, 0, 0.1193731512}},
	{"H", [3]float64{0, 0.7618717473, -0.4774926049}},
	{"H", [3]float64{0, -0.7618717473, -0.4774926049}},
}
