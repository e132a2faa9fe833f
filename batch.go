package geom

import (
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of parsing one file in a batch
type Result struct {
	Filename string
	Molecule *Molecule
	Skips    []Skip
	Err      error
}

// ParseAll parses each of filenames and returns the results in the same
// order. The files are independent, so with workers > 1 up to workers
// of them are parsed at once; otherwise they are parsed one after the
// other. A failure in one file does not stop the others.
func ParseAll(filenames []string, workers int) []Result {
	ret := make([]Result, len(filenames))
	parse := func(i int) {
		mol, skips, err := Parse(filenames[i])
		ret[i] = Result{
			Filename: filenames[i],
			Molecule: mol,
			Skips:    skips,
			Err:      err,
		}
	}
	if workers <= 1 {
		for i := range filenames {
			parse(i)
		}
		return ret
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range filenames {
		i := i
		g.Go(func() error {
			parse(i)
			return nil
		})
	}
	g.Wait()
	return ret
}

// FindFiles returns every file in dir with a supported extension,
// shortest path first. Paths of equal length keep the order of
// Extensions and then of the directory listing.
func FindFiles(dir string) ([]string, error) {
	var files []string
	for _, ext := range Extensions() {
		matches, err := filepath.Glob(filepath.Join(dir, "*."+ext))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.SliceStable(files, func(i, j int) bool {
		return len(files[i]) < len(files[j])
	})
	return files, nil
}
