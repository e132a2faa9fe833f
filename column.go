package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Column boundaries of the fixed-width atom line: a two character
// symbol followed by three right-justified coordinates with a one
// character gap before y and z
const (
	symEnd = 2
	xEnd   = 17
	yBeg   = 18
	yEnd   = 32
	zBeg   = 33
	zEnd   = 47
)

// ReadColumns reads an atom from line using the fixed column layout
//
//	[0,2) symbol  [2,17) x  [18,32) y  [33,47) z
//
// Fields are taken by offset, not by token, so coordinates that spill
// over their columns are misread rather than rejected.
func ReadColumns(line string) (atom Atom, err error) {
	if len(line) < zEnd {
		return atom, &MalformedLineError{
			Text: line,
			Err: fmt.Errorf("need %d columns, have %d",
				zEnd, len(line)),
		}
	}
	atom.Symbol = strings.TrimSpace(line[:symEnd])
	fields := []struct {
		name     string
		beg, end int
	}{
		{"x", symEnd, xEnd},
		{"y", yBeg, yEnd},
		{"z", zBeg, zEnd},
	}
	for i, f := range fields {
		atom.Pos[i], err = strconv.ParseFloat(
			strings.TrimSpace(line[f.beg:f.end]), 64,
		)
		if err != nil {
			return Atom{}, &MalformedLineError{
				Text:  line,
				Field: f.name,
				Err:   err,
			}
		}
	}
	return atom, nil
}
