package geom

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// atomLine locates atom lines among the directives of an input file:
// one or two letters, at least one space, then a run of digits, dots,
// minus signs and spaces
var atomLine = regexp.MustCompile(`[A-Za-z]{1,2} +[-.\d ]+`)

// ReadCom extracts the atoms from a Gaussian input file. Candidate lines
// are found with a permissive pattern and then read by column, so a
// match that does not turn out to be an atom is skipped and reported
// instead of failing the read.
func ReadCom(r io.Reader) (atoms []Atom, skips []Skip, err error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, nil, err
	}
	matches := atomLine.FindAllString(strings.Join(lines, "\n"), -1)
	for i, match := range matches {
		atom, err := ReadColumns(match)
		if err != nil {
			var ok bool
			if atom, ok = readFields(match); !ok {
				skips = append(skips,
					Skip{Index: i, Text: match, Err: err})
				continue
			}
		}
		atoms = append(atoms, atom)
	}
	return atoms, skips, nil
}

// elementSymbol is the shape of an element symbol in an atom line
var elementSymbol = regexp.MustCompile(`^[A-Z][a-z]?$`)

// readFields is the fallback for hand-edited atom lines that are not
// column aligned: exactly an element symbol and three decimal numbers
// separated by spaces. Integers are rejected so that Z-matrix lines,
// ModRedundant constraints and route options stay skips.
func readFields(match string) (atom Atom, ok bool) {
	fields := strings.Fields(match)
	if len(fields) != 4 || !elementSymbol.MatchString(fields[0]) {
		return atom, false
	}
	atom.Symbol = fields[0]
	var err error
	for i, f := range fields[1:] {
		if !strings.Contains(f, ".") {
			return Atom{}, false
		}
		atom.Pos[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return Atom{}, false
		}
	}
	return atom, true
}

// ParseCom is ReadCom on the file named filename
func ParseCom(filename string) ([]Atom, []Skip, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadCom(f)
}
