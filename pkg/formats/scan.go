package formats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// lineScanner yields the whitespace-separated fields of each meaningful line,
// skipping blank lines and '#' comments.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineScanner{sc: sc}
}

// next returns the fields of the next non-empty line, or false at the end of
// input or on a read error (see err).
func (s *lineScanner) next() ([]string, bool) {
	for s.sc.Scan() {
		s.line++
		text := s.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if fields := strings.Fields(text); len(fields) > 0 {
			return fields, true
		}
	}
	return nil, false
}

func (s *lineScanner) err() error {
	return s.sc.Err()
}

// parseFloats parses every field as a float64.
func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// fan splits a polygon into triangles sharing its first corner.
func fan[T any](poly []T) [][3]T {
	tris := make([][3]T, 0, len(poly)-2)
	for i := 1; i+1 < len(poly); i++ {
		tris = append(tris, [3]T{poly[0], poly[i], poly[i+1]})
	}
	return tris
}

// recordErr reports a malformed record on the current line.
func (s *lineScanner) recordErr(sentinel error, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", s.line, sentinel, fmt.Sprintf(format, args...))
}
