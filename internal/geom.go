package internal

import "math"

// The geometric predicates underneath the clipping engine. All of them are
// exact in the sense that they make no epsilon adjustments: the engine's
// robustness comes from its escalating fallback passes, not from fuzzing the
// arithmetic. Every test here reduces to one or more signed areas.

// Twice the signed area of the triangle pqr. Zero when the points are
// collinear; the sign encodes orientation, with a negative value meaning a
// convex turn in normalized ring order.
func area(p, q, r *node) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

// Twice the signed area of the ring covering data[start:end), taken dim
// components at a time.
func signedArea(data []float64, start, end, dim int) float64 {
	var sum float64
	for i, j := start, end-dim; i < end; i += dim {
		sum += (data[j] - data[i]) * (data[i+1] + data[j+1])
		j = i
	}
	return sum
}

func equals(p1, p2 *node) bool {
	return p1.x == p2.x && p1.y == p2.y
}

// Check if the point p lies inside (or on the boundary of) the triangle abc,
// with abc in normalized ring order.
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

// Like pointInTriangle, but excludes points coinciding with the first triangle
// vertex. The ear test walks candidate blockers starting from the vertex after
// the ear, and a candidate sitting exactly on the ear's first corner is the
// corner itself showing up again through a bridge duplicate, not a blocker.
func pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return !(ax == px && ay == py) && pointInTriangle(ax, ay, bx, by, cx, cy, px, py)
}

// Check if the segments p1q1 and p2q2 intersect, counting collinear overlap
// and shared endpoints as intersections.
func intersects(p1, q1, p2, q2 *node) bool {
	o1 := sign(area(p1, q1, p2))
	o2 := sign(area(p1, q1, q2))
	o3 := sign(area(p2, q2, p1))
	o4 := sign(area(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true // general case
	}

	// Collinear cases: intersection iff the third point lands on the segment
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// For collinear points p, q, r, check if q lies on the segment pr.
func onSegment(p, q, r *node) bool {
	return q.x <= math.Max(p.x, r.x) && q.x >= math.Min(p.x, r.x) &&
		q.y <= math.Max(p.y, r.y) && q.y >= math.Min(p.y, r.y)
}

func sign(num float64) int {
	if num > 0 {
		return 1
	}
	if num < 0 {
		return -1
	}
	return 0
}

// Check if the diagonal from a toward b stays inside the polygon in the
// immediate neighborhood of a. This is the "interior wedge" test: b must fall
// inside the angular sector swept between a's two ring neighbors.
func locallyInside(a, b *node) bool {
	if area(a.prev, a, a.next) < 0 {
		return area(a, b, a.next) >= 0 && area(a, a.prev, b) >= 0
	}
	return area(a, b, a.prev) < 0 || area(a, a.next, b) < 0
}

// Check whether the angular sector at vertex m contains the sector at vertex
// p, where m and p share coordinates. Used to break ties between coincident
// bridge candidates.
func sectorContainsSector(m, p *node) bool {
	return area(m.prev, m, p.prev) < 0 && area(p.next, m, m.next) < 0
}

// Check if the midpoint of the diagonal ab is inside the polygon, by casting
// a ray and counting edge crossings.
func middleInside(a, b *node) bool {
	p := a
	inside := false
	px := (a.x + b.x) / 2
	py := (a.y + b.y) / 2
	for {
		if ((p.y > py) != (p.next.y > py)) && p.next.y != p.y &&
			(px < (p.next.x-p.x)*(py-p.y)/(p.next.y-p.y)+p.x) {
			inside = !inside
		}
		p = p.next
		if p == a {
			break
		}
	}
	return inside
}
