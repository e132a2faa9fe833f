package main

import (
	"fmt"
	"io"

	"bwestbro.com/geom"
	"gonum.org/v1/gonum/mat"
)

// WriteMat writes the rows of m to w, labeling each row with the
// corresponding entry of labels
func WriteMat(w io.Writer, labels []string, m mat.Matrix) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		fmt.Fprintf(w, "%5d%4s", i+1, labels[i])
		for j := 0; j < c; j++ {
			fmt.Fprintf(w, "%16.8f", m.At(i, j))
		}
		fmt.Fprint(w, "\n")
	}
}

// Report writes a summary of res to w. It returns false if the file
// failed, or if it had skipped records and strict is set.
func Report(w io.Writer, res geom.Result, strict, verbose bool) bool {
	if res.Err != nil {
		fmt.Fprintf(w, "%s: %v\n", res.Filename, res.Err)
		return false
	}
	mol := res.Molecule
	fmt.Fprintf(w, "%s: %d atoms", mol.Name, mol.Len())
	if n := len(res.Skips); n > 0 {
		fmt.Fprintf(w, ", %d skipped", n)
	}
	fmt.Fprint(w, "\n")
	if verbose {
		for _, s := range res.Skips {
			fmt.Fprintf(w, "\twarning: %v\n", s)
		}
	}
	if coords := mol.Coords(); coords != nil {
		WriteMat(w, mol.Symbols(), coords)
		c := mol.Centroid()
		fmt.Fprintf(w, "%9s%16.8f%16.8f%16.8f\n", "centroid",
			c[0], c[1], c[2])
	}
	return !(strict && len(res.Skips) > 0)
}
