package vector

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/geokit-cli/internal/check"
)

// segment is a canonical boundary edge: endpoints ordered lexicographically
// by (x, y) so that the same edge traversed in either direction compares
// equal.
type segment struct {
	ax, ay, bx, by float64
}

func canonicalSegment(ax, ay, bx, by float64) segment {
	if bx < ax || (bx == ax && by < ay) {
		ax, ay, bx, by = bx, by, ax, ay
	}
	return segment{ax, ay, bx, by}
}

// SharedLines extracts the boundary edges shared by two or more polygons in
// the collection. Each shared edge is reported exactly once as a two-point
// line, endpoints in lexicographic order, and the result is sorted by start
// then end point. Adjacent polygons must share boundary vertices for their
// common border to be detected.
func SharedLines(fc *FeatureCollection) (*FeatureCollection, error) {
	if fc.Empty() {
		return nil, eris.Wrap(check.ErrEmptyInput, "vector: input collection is empty")
	}
	if len(fc.Features) < 2 {
		return nil, eris.Wrap(check.ErrInvalidParameterValue,
			"vector: shared-line extraction needs at least 2 polygons")
	}

	// Count, per canonical edge, how many distinct polygons contain it.
	owners := make(map[segment]int)
	for _, f := range fc.Features {
		edges := make(map[segment]bool)
		collectBoundaryEdges(f.Geometry, edges)
		if len(edges) == 0 {
			return nil, eris.Wrap(check.ErrInvalidParameterValue,
				"vector: shared-line extraction requires polygon geometries")
		}
		for e := range edges {
			owners[e]++
		}
	}

	var shared []segment
	for e, n := range owners {
		if n >= 2 {
			shared = append(shared, e)
		}
	}
	sort.Slice(shared, func(i, j int) bool {
		a, b := shared[i], shared[j]
		if a.ax != b.ax {
			return a.ax < b.ax
		}
		if a.ay != b.ay {
			return a.ay < b.ay
		}
		if a.bx != b.bx {
			return a.bx < b.bx
		}
		return a.by < b.by
	})

	out := &FeatureCollection{}
	for _, s := range shared {
		line := geom.NewLineStringFlat(geom.XY, []float64{s.ax, s.ay, s.bx, s.by})
		out.Features = append(out.Features, Feature{Geometry: line, Properties: map[string]any{}})
	}
	return out, nil
}

// collectBoundaryEdges records the canonical edges of every polygon ring in
// g.
func collectBoundaryEdges(g geom.T, edges map[segment]bool) {
	switch p := g.(type) {
	case *geom.Polygon:
		for i := 0; i < p.NumLinearRings(); i++ {
			ringEdges(p.LinearRing(i), edges)
		}
	case *geom.MultiPolygon:
		for i := 0; i < p.NumPolygons(); i++ {
			collectBoundaryEdges(p.Polygon(i), edges)
		}
	}
}

func ringEdges(ring *geom.LinearRing, edges map[segment]bool) {
	coords := ring.Coords()
	if len(coords) < 2 {
		return
	}
	// Close the ring if the source didn't repeat the first vertex.
	first, last := coords[0], coords[len(coords)-1]
	if first[0] != last[0] || first[1] != last[1] {
		coords = append(coords, first)
	}
	for i := 0; i+1 < len(coords); i++ {
		a, b := coords[i], coords[i+1]
		if a[0] == b[0] && a[1] == b[1] {
			continue
		}
		edges[canonicalSegment(a[0], a[1], b[0], b[1])] = true
	}
}
