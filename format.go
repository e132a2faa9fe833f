package geom

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a supported geometry file format
type Format int

const (
	Log Format = iota
	XYZ
	Com
	NumFormats
)

// String returns the file extension for f, without the dot
func (f Format) String() string {
	if f < 0 || f >= NumFormats {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return []string{
		"log",
		"xyz",
		"com",
	}[f]
}

// Extensions returns the supported file extensions in dispatch order
func Extensions() []string {
	ret := make([]string, 0, NumFormats)
	for f := Format(0); f < NumFormats; f++ {
		ret = append(ret, f.String())
	}
	return ret
}

// FormatOf returns the Format matching the extension of filename.
// Extensions are compared without regard to case.
func FormatOf(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for f := Format(0); f < NumFormats; f++ {
		if ext == f.String() {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
}

// Read parses the file named filename as format f. Formats read
// strictly never return skips.
func (f Format) Read(filename string) (atoms []Atom, skips []Skip, err error) {
	switch f {
	case Log:
		return ParseLog(filename)
	case XYZ:
		atoms, err = ParseXYZ(filename)
		return
	case Com:
		return ParseCom(filename)
	default:
		return nil, nil, fmt.Errorf("%w: format %d", ErrUnsupportedFormat, int(f))
	}
}

// Parse reads the molecule in filename using the parser for its
// extension. The molecule is named after the base name of the file.
func Parse(filename string) (*Molecule, []Skip, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, nil, err
	}
	atoms, skips, err := f.Read(filename)
	if err != nil {
		return nil, nil, err
	}
	return NewMolecule(filepath.Base(filename), atoms), skips, nil
}
