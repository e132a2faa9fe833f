package geom

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Atom is an element symbol and its cartesian position, in whatever
// units the source file used
type Atom struct {
	Symbol string
	Pos    [3]float64
}

func (a Atom) String() string {
	return fmt.Sprintf("%-2s%20.12f%20.12f%20.12f",
		a.Symbol, a.Pos[0], a.Pos[1], a.Pos[2])
}

// Molecule is a named, ordered list of atoms. The order is the order of
// appearance in the source file and is never changed.
type Molecule struct {
	Name  string
	atoms []Atom
}

// NewMolecule copies atoms into a new Molecule
func NewMolecule(name string, atoms []Atom) *Molecule {
	cp := make([]Atom, len(atoms))
	copy(cp, atoms)
	return &Molecule{Name: name, atoms: cp}
}

func (m *Molecule) Len() int { return len(m.atoms) }

func (m *Molecule) At(i int) Atom { return m.atoms[i] }

// Atoms returns a copy of the atoms in m
func (m *Molecule) Atoms() []Atom {
	ret := make([]Atom, len(m.atoms))
	copy(ret, m.atoms)
	return ret
}

func (m *Molecule) Symbols() []string {
	ret := make([]string, len(m.atoms))
	for i, a := range m.atoms {
		ret[i] = a.Symbol
	}
	return ret
}

// Coords returns the positions in m as an Nx3 matrix, one row per atom.
// It returns nil for a molecule with no atoms since gonum does not
// allow empty matrices.
func (m *Molecule) Coords() *mat.Dense {
	if len(m.atoms) == 0 {
		return nil
	}
	data := make([]float64, 0, 3*len(m.atoms))
	for _, a := range m.atoms {
		data = append(data, a.Pos[:]...)
	}
	return mat.NewDense(len(m.atoms), 3, data)
}

// Centroid returns the unweighted mean position of the atoms in m
func (m *Molecule) Centroid() (ret [3]float64) {
	coords := m.Coords()
	if coords == nil {
		return
	}
	for j := range ret {
		ret[j] = stat.Mean(mat.Col(nil, j, coords), nil)
	}
	return
}

// Equal reports whether m and o have the same symbols in the same order
// and coordinates that agree to within eps
func (m *Molecule) Equal(o *Molecule, eps float64) bool {
	if len(m.atoms) != len(o.atoms) {
		return false
	}
	for i, a := range m.atoms {
		b := o.atoms[i]
		if a.Symbol != b.Symbol {
			return false
		}
		for j := range a.Pos {
			if math.Abs(a.Pos[j]-b.Pos[j]) > eps {
				return false
			}
		}
	}
	return true
}

func (m *Molecule) String() string {
	var buf strings.Builder
	for _, a := range m.atoms {
		fmt.Fprintln(&buf, a)
	}
	return buf.String()
}
