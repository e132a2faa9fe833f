package geom

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat   = errors.New("geom: unsupported file format")
	ErrUnrecognizedArchive = errors.New("geom: no archive block found")
	ErrMalformedLine       = errors.New("geom: malformed coordinate line")
)

// MalformedLineError describes a line that does not fit the fixed-column
// layout. Line is 1-based and zero when the text did not come from a
// numbered line, such as a pattern match in a .com file.
type MalformedLineError struct {
	Line  int
	Text  string
	Field string
	Err   error
}

func (e *MalformedLineError) Error() string {
	var where string
	if e.Line > 0 {
		where = fmt.Sprintf(" on line %d", e.Line)
	}
	if e.Field != "" {
		return fmt.Sprintf("%v%s: field %s in %q: %v",
			ErrMalformedLine, where, e.Field, e.Text, e.Err)
	}
	return fmt.Sprintf("%v%s: %q: %v", ErrMalformedLine, where, e.Text, e.Err)
}

func (e *MalformedLineError) Unwrap() error { return e.Err }

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// Skip records one atom record that was dropped during a tolerant parse.
// Index counts candidate records from zero in order of appearance.
type Skip struct {
	Index int
	Text  string
	Err   error
}

func (s Skip) String() string {
	return fmt.Sprintf("skipped record %d %q: %v", s.Index, s.Text, s.Err)
}
