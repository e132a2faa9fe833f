package geom

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

const (
	archiveSep = `\\`
	fieldSep   = `\`

	// index of the charge/multiplicity and geometry section
	geomChunk = 3
)

// Archive is the machine-readable summary block that Gaussian appends
// to the end of a .log file
type Archive struct {
	Route  string
	Title  string
	Charge int
	Mult   int
	// one entry per atom record, "symbol,x,y,z"
	Records []string
}

// readLines reads all of r and splits it into lines without their
// line endings. There is no limit on line length.
func readLines(r io.Reader) ([]string, error) {
	byts, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(byts) == 0 {
		return nil, nil
	}
	lines := strings.Split(string(byts), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// stripSpace removes every whitespace character from s
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ReadArchive collects the lines of r containing a backslash, joins
// them with all whitespace removed, and splits the result into the
// sections of the archive block. Fewer than four sections is reported
// as ErrUnrecognizedArchive.
func ReadArchive(r io.Reader) (*Archive, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	var buf strings.Builder
	for _, line := range lines {
		if strings.Contains(line, fieldSep) {
			buf.WriteString(stripSpace(line))
		}
	}
	chunks := strings.Split(buf.String(), archiveSep)
	if len(chunks) <= geomChunk {
		return nil, fmt.Errorf("%w: found %d sections, need %d",
			ErrUnrecognizedArchive, len(chunks), geomChunk+1)
	}
	geom := strings.Split(chunks[geomChunk], fieldSep)
	arch := &Archive{
		Route:   chunks[1],
		Title:   chunks[2],
		Records: geom[1:],
	}
	// charge and multiplicity are informational, leave them zero if
	// they don't parse
	if cm := strings.Split(geom[0], ","); len(cm) == 2 {
		c, errc := strconv.Atoi(cm[0])
		m, errm := strconv.Atoi(cm[1])
		if errc == nil && errm == nil {
			arch.Charge, arch.Mult = c, m
		}
	}
	return arch, nil
}

// Atoms converts the records in a into atoms. Records with fewer than
// four comma-separated fields or with unparsable coordinates are
// skipped and reported rather than aborting, since the last record of
// an archive is often empty.
func (a *Archive) Atoms() (atoms []Atom, skips []Skip) {
	for i, rec := range a.Records {
		atom, err := readRecord(rec)
		if err != nil {
			skips = append(skips, Skip{Index: i, Text: rec, Err: err})
			continue
		}
		atoms = append(atoms, atom)
	}
	return
}

func readRecord(rec string) (atom Atom, err error) {
	fields := strings.Split(rec, ",")
	if len(fields) < 4 {
		return atom, &MalformedLineError{
			Text: rec,
			Err:  fmt.Errorf("need 4 fields, have %d", len(fields)),
		}
	}
	atom.Symbol = fields[0]
	for i, name := range []string{"x", "y", "z"} {
		atom.Pos[i], err = strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Atom{}, &MalformedLineError{
				Text:  rec,
				Field: name,
				Err:   err,
			}
		}
	}
	return atom, nil
}

// ReadLog extracts the optimized geometry from the archive block of a
// Gaussian output file
func ReadLog(r io.Reader) ([]Atom, []Skip, error) {
	arch, err := ReadArchive(r)
	if err != nil {
		return nil, nil, err
	}
	atoms, skips := arch.Atoms()
	return atoms, skips, nil
}

// ParseLog is ReadLog on the file named filename
func ParseLog(filename string) ([]Atom, []Skip, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadLog(f)
}
