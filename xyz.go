package geom

import (
	"errors"
	"io"
	"os"
	"strings"
)

// ReadXYZ reads the atoms of an XYZ file from r. The atom count and
// comment lines are skipped without checking the count, and every
// following non-blank line must be in the ReadColumns layout. The first
// bad line aborts the read.
func ReadXYZ(r io.Reader) (atoms []Atom, err error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	for l, line := range lines {
		i := l + 1
		switch {
		case i <= 2:
			continue
		// whitespace-only lines count as empty, not as bad atom lines
		case strings.TrimSpace(line) == "":
			continue
		}
		atom, err := ReadColumns(line)
		if err != nil {
			var mle *MalformedLineError
			if errors.As(err, &mle) {
				mle.Line = i
			}
			return nil, err
		}
		atoms = append(atoms, atom)
	}
	return atoms, nil
}

// ParseXYZ is ReadXYZ on the file named filename
func ParseXYZ(filename string) ([]Atom, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadXYZ(f)
}
