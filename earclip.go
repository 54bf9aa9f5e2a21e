// An ear-clipping triangulation package for Go.
//
// This package converts simple polygons (possibly with holes, possibly
// degenerate or self-intersecting) into a flat list of triangles referencing
// the original vertex indices, suitable for handing straight to a GPU. It
// favors always producing some valid triangulation over failing: pathological
// input degrades to a best-effort result rather than an error.
package earclip

import "github.com/osuushi/earclip/internal"

// Triangulate a polygon given as a flat, dim-interleaved coordinate buffer.
//
// holeIndices lists the vertex numbers at which hole rings begin, in
// ascending order; nil or empty means the whole buffer is one outer ring.
// dim is the number of coordinates per vertex (at least 2); only the first
// two are used geometrically, the rest are carried by the buffer.
//
// The result is a flat sequence of indices into the vertex buffer (in vertex
// numbers, not components), three per triangle, winding consistently with the
// input. A fully degenerate outer ring yields no triangles.
//
// Errors are reserved for malformed calls (bad dim, ragged buffer, hole
// indices out of order). Geometrically broken input never errors; see
// Deviation for detecting incomplete results.
func Triangulate(vertices []float64, holeIndices []int, dim int) (result []int, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Earcut(vertices, holeIndices, dim), nil
}

// Flatten converts a list of rings of dim-dimensional points, the first ring
// the outer boundary and the rest holes, into the buffer and hole-index forms
// that Triangulate takes.
func Flatten(rings [][][]float64, dim int) (vertices []float64, holeIndices []int, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			vertices = nil
			holeIndices = nil
			err = recoveredErr
		}
	}()
	vertices, holeIndices = internal.Flatten(rings, dim)
	return vertices, holeIndices, nil
}

// Deviation returns the relative difference between the input polygon's area
// and the total area of the triangles produced by Triangulate. A return of 0
// means the triangulation is complete; used to check whether unmergeable
// holes or untriangulable remainders were dropped.
func Deviation(vertices []float64, holeIndices []int, dim int, triangles []int) float64 {
	return internal.Deviation(vertices, holeIndices, dim, triangles)
}
