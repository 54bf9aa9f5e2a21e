package internal

import "math"

// Ear-clipping triangulation over a flat, dim-interleaved coordinate buffer.
//
// The engine never fails on bad geometry. Real-world polygon data is full of
// duplicate vertices, collinear runs, and outright self-intersections, so
// instead of validating, the clipping loop escalates through fallback passes
// until it has produced some valid (possibly incomplete) triangulation:
//
//	pass 0: plain ear clipping, z-order indexed on large inputs
//	pass 1: retry after filtering collinear/duplicate vertices
//	pass 2: cure small local self-intersections, then as a last resort
//	        split the remainder along a valid diagonal and start both
//	        halves over at pass 0
//
// If the split pass cannot find any valid diagonal, the remainder is dropped.
// Callers that need to detect that can compare areas with Deviation.

// Rings with at most this many vertices are cheaper to clip with the plain
// O(n) blocker scan than with a z-order index.
const indexThreshold = 80

type triangulator struct {
	data  []float64
	dim   int
	arena *nodeArena

	triangles []int

	// Bounding box and quantization scale for morton codes. invSize is zero
	// while the z-order index is inactive.
	minX, minY float64
	invSize    float64

	// Sub-rings produced by the split fallback, each restarted from pass 0.
	// An explicit stack rather than recursion: adversarial input can need a
	// long chain of splits, and the stack bounds that at O(1) goroutine
	// stack instead of O(splits).
	pending []ringJob
}

type ringJob struct {
	ring *node
	pass int
}

// Earcut triangulates the polygon in data and returns triangle vertex
// indices, three per triangle. holeIndices lists the vertex numbers at which
// hole rings begin, ascending; dim is the number of components per vertex,
// of which the first two are used geometrically.
func Earcut(data []float64, holeIndices []int, dim int) []int {
	if dim < 2 {
		fatalf("dimension must be at least 2, got %d", dim)
	}
	if len(data)%dim != 0 {
		fatalf("vertex buffer length %d is not a multiple of dimension %d", len(data), dim)
	}
	for i, h := range holeIndices {
		if h*dim >= len(data) || h < 0 {
			fatalf("hole index %d out of range for %d vertices", h, len(data)/dim)
		}
		if i > 0 && h <= holeIndices[i-1] {
			fatalf("hole indices must be ascending, got %d after %d", h, holeIndices[i-1])
		}
	}

	hasHoles := len(holeIndices) > 0
	outerLen := len(data)
	if hasHoles {
		outerLen = holeIndices[0] * dim
	}

	t := &triangulator{
		data:      data,
		dim:       dim,
		arena:     newNodeArena(len(data) / dim),
		triangles: make([]int, 0, len(data)/dim*3),
	}

	outer := t.linkedList(0, outerLen, true)
	if outer == nil || outer.next == outer.prev {
		return t.triangles
	}

	if hasHoles {
		outer = t.eliminateHoles(holeIndices, outer)
	}

	// On large inputs, set up morton quantization over the outer ring's
	// bounding box. Calculated from the buffer rather than the ring so that
	// it doesn't shift as vertices are clipped away.
	if len(data) > indexThreshold*dim {
		t.minX, t.minY = data[0], data[1]
		maxX, maxY := data[0], data[1]
		for i := dim; i < outerLen; i += dim {
			t.minX = math.Min(t.minX, data[i])
			t.minY = math.Min(t.minY, data[i+1])
			maxX = math.Max(maxX, data[i])
			maxY = math.Max(maxY, data[i+1])
		}

		// Quantize into a 15-bit non-negative range
		size := math.Max(maxX-t.minX, maxY-t.minY)
		if size != 0 {
			t.invSize = 32767 / size
		}
	}

	t.pending = append(t.pending, ringJob{outer, 0})
	for len(t.pending) > 0 {
		job := t.pending[len(t.pending)-1]
		t.pending = t.pending[:len(t.pending)-1]
		t.clipEars(job.ring, job.pass)
	}
	return t.triangles
}

// The main clipping loop for one ring, escalating through the fallback
// passes in place. A full lap without finding an ear means the ring is
// stalled; each stall filters or repairs and moves to the next pass. The
// split fallback does not run here: it pushes its two halves onto the
// pending stack and the driver loop in Earcut picks them up.
func (t *triangulator) clipEars(ear *node, pass int) {
	for ear != nil {
		if pass == 0 && t.invSize > 0 {
			t.indexCurve(ear)
		}

		stop := ear
		stalled := false
		for ear.prev != ear.next {
			prev, next := ear.prev, ear.next

			var valid bool
			if pass == 0 && t.invSize > 0 {
				valid = t.isEarHashed(ear)
			} else {
				valid = t.isEar(ear)
			}
			if valid {
				t.emit(prev, ear, next)
				removeNode(ear)

				// Skipping to next.next avoids re-testing next, whose
				// neighborhood just changed
				ear = next.next
				stop = next.next
				continue
			}

			ear = next
			if ear == stop {
				stalled = true
				break
			}
		}
		if !stalled {
			return
		}

		switch pass {
		case 0:
			ear = filterPoints(ear, nil)
			pass = 1
		case 1:
			ear = t.cureLocalIntersections(filterPoints(ear, nil))
			pass = 2
		default:
			t.splitEarcut(ear)
			return
		}
	}
}

func (t *triangulator) emit(a, b, c *node) {
	t.triangles = append(t.triangles, a.i/t.dim, b.i/t.dim, c.i/t.dim)
}

// Check whether ear forms a valid ear with its two neighbors: the corner must
// be convex, and no other remaining vertex may sit inside the candidate
// triangle while being reflex itself (a reflex vertex inside the triangle is
// locked there; convex interlopers coinciding with a corner are tolerated by
// pointInTriangleExceptFirst).
func (t *triangulator) isEar(ear *node) bool {
	a, b, c := ear.prev, ear, ear.next

	if area(a, b, c) >= 0 {
		return false // reflex, can't be an ear
	}

	ax, ay, bx, by, cx, cy := a.x, a.y, b.x, b.y, c.x, c.y

	// Triangle bounding box
	x0 := math.Min(ax, math.Min(bx, cx))
	y0 := math.Min(ay, math.Min(by, cy))
	x1 := math.Max(ax, math.Max(bx, cx))
	y1 := math.Max(ay, math.Max(by, cy))

	p := c.next
	for p != a {
		if p.x >= x0 && p.x <= x1 && p.y >= y0 && p.y <= y1 &&
			pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, p.x, p.y) &&
			area(p.prev, p, p.next) >= 0 {
			return false
		}
		p = p.next
	}
	return true
}

// The indexed variant of the ear test. Instead of walking the whole ring, it
// scans outward from the ear along the z-order list, in both directions,
// stopping once the morton codes leave the range spanned by the triangle's
// bounding box. The morton range always contains the true bounding box, so
// this prune can only skip vertices that were never candidates.
func (t *triangulator) isEarHashed(ear *node) bool {
	a, b, c := ear.prev, ear, ear.next

	if area(a, b, c) >= 0 {
		return false // reflex, can't be an ear
	}

	ax, ay, bx, by, cx, cy := a.x, a.y, b.x, b.y, c.x, c.y

	// Triangle bounding box
	x0 := math.Min(ax, math.Min(bx, cx))
	y0 := math.Min(ay, math.Min(by, cy))
	x1 := math.Max(ax, math.Max(bx, cx))
	y1 := math.Max(ay, math.Max(by, cy))

	// Z-range of the bounding box
	minZ := t.zOrder(x0, y0)
	maxZ := t.zOrder(x1, y1)

	p := ear.prevZ
	n := ear.nextZ

	// Look for points inside the triangle in both directions
	for p != nil && p.z >= minZ && n != nil && n.z <= maxZ {
		if p.x >= x0 && p.x <= x1 && p.y >= y0 && p.y <= y1 && p != a && p != c &&
			pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, p.x, p.y) &&
			area(p.prev, p, p.next) >= 0 {
			return false
		}
		p = p.prevZ

		if n.x >= x0 && n.x <= x1 && n.y >= y0 && n.y <= y1 && n != a && n != c &&
			pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, n.x, n.y) &&
			area(n.prev, n, n.next) >= 0 {
			return false
		}
		n = n.nextZ
	}

	// Look for remaining points in decreasing z-order
	for p != nil && p.z >= minZ {
		if p.x >= x0 && p.x <= x1 && p.y >= y0 && p.y <= y1 && p != a && p != c &&
			pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, p.x, p.y) &&
			area(p.prev, p, p.next) >= 0 {
			return false
		}
		p = p.prevZ
	}

	// Look for remaining points in increasing z-order
	for n != nil && n.z <= maxZ {
		if n.x >= x0 && n.x <= x1 && n.y >= y0 && n.y <= y1 && n != a && n != c &&
			pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, n.x, n.y) &&
			area(n.prev, n, n.next) >= 0 {
			return false
		}
		n = n.nextZ
	}
	return true
}

// Repair small local self-intersections. When the diagonal (p.prev,
// p.next.next) crosses the edge (p, p.next) and stays locally inside at both
// ends, p and p.next form a tiny bowtie: emit the triangle spanning it and
// drop both vertices.
func (t *triangulator) cureLocalIntersections(start *node) *node {
	if start == nil {
		return nil
	}
	p := start
	for {
		a := p.prev
		b := p.next.next

		if !equals(a, b) && intersects(a, p, p.next, b) &&
			locallyInside(a, b) && locallyInside(b, a) {
			t.emit(a, p, b)

			removeNode(p)
			removeNode(p.next)

			p = b
			start = b
		}
		p = p.next
		if p == start {
			break
		}
	}
	return filterPoints(p, nil)
}

// Last resort: find any valid diagonal, cut the ring along it, and queue both
// halves to start over from the first pass. If no pair of vertices admits a
// valid diagonal, the remainder is untriangulable under this algorithm and is
// dropped.
func (t *triangulator) splitEarcut(start *node) {
	if start == nil {
		return
	}
	a := start
	for {
		b := a.next.next
		for b != a.prev {
			if a.i != b.i && isValidDiagonal(a, b) {
				// Split the polygon in two by the diagonal
				c := t.arena.splitPolygon(a, b)

				// Filter collinear points around the cuts
				an := filterPoints(a, a.next)
				cn := filterPoints(c, c.next)

				// LIFO: an pops first, so the halves are clipped in the
				// same depth-first order direct recursion would visit them
				t.pending = append(t.pending, ringJob{cn, 0}, ringJob{an, 0})
				return
			}
			b = b.next
		}
		a = a.next
		if a == start {
			return
		}
	}
}

// A diagonal ab is valid when it connects non-adjacent vertices, crosses no
// ring edge, runs through the polygon interior (midpoint test), and leaves
// through the interior wedge at both endpoints.
func isValidDiagonal(a, b *node) bool {
	return a.next.i != b.i && a.prev.i != b.i && !intersectsPolygon(a, b) && // doesn't intersect other edges
		(locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b) && // locally visible
			(area(a.prev, a, b.prev) != 0 || area(a, b.prev, b) != 0) || // does not create opposite-facing sectors
			equals(a, b) && area(a.prev, a, a.next) > 0 && area(b.prev, b, b.next) > 0) // special zero-length case
}

// Check if the diagonal ab crosses any edge of the ring containing a.
func intersectsPolygon(a, b *node) bool {
	p := a
	for {
		if p.i != a.i && p.next.i != a.i && p.i != b.i && p.next.i != b.i &&
			intersects(p, p.next, a, b) {
			return true
		}
		p = p.next
		if p == a {
			return false
		}
	}
}

// Deviation measures how incomplete a triangulation is: the relative
// difference between the polygon's area (outer ring minus holes) and the
// summed area of the emitted triangles. Zero means complete.
func Deviation(data []float64, holeIndices []int, dim int, triangles []int) float64 {
	hasHoles := len(holeIndices) > 0
	outerLen := len(data)
	if hasHoles {
		outerLen = holeIndices[0] * dim
	}

	polygonArea := math.Abs(signedArea(data, 0, outerLen, dim))
	if hasHoles {
		for i, h := range holeIndices {
			start := h * dim
			end := len(data)
			if i < len(holeIndices)-1 {
				end = holeIndices[i+1] * dim
			}
			polygonArea -= math.Abs(signedArea(data, start, end, dim))
		}
	}

	var trianglesArea float64
	for i := 0; i+2 < len(triangles); i += 3 {
		a := triangles[i] * dim
		b := triangles[i+1] * dim
		c := triangles[i+2] * dim
		trianglesArea += math.Abs(
			(data[a]-data[c])*(data[b+1]-data[a+1]) -
				(data[a]-data[b])*(data[c+1]-data[a+1]))
	}

	if polygonArea == 0 && trianglesArea == 0 {
		return 0
	}
	return math.Abs((trianglesArea - polygonArea) / polygonArea)
}
