package pointsrc

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
)

// Load reads one site per non-comment, non-blank line of r. A line is
// split on commas or semicolons, each field is whitespace-trimmed, and
// the first two fields are parsed as float64. Lines starting with '#'
// (after trimming leading whitespace) or empty after trimming are
// ignored entirely. Any line that fails to yield two parseable fields
// is silently skipped, per §6 — the loader never returns an error for
// bad input, only for a failure to read r itself.
func Load(r io.Reader) ([]geom.Point, error) {
	var pts []geom.Point

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(strings.ReplaceAll(line, ";", ","), ",")
		if len(fields) < 2 {
			continue
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if errX != nil || errY != nil {
			continue
		}

		pts = append(pts, geom.Pt(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return pts, nil
}
