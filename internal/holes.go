package internal

import (
	"math"
	"sort"
)

// Hole elimination: every hole ring is spliced into the outer ring through a
// bridge edge, leaving one simple polygon for the clipping loop. Holes are
// wound opposite to the outer ring (linkedList with clockwise=false), which
// is what makes the interior tests in the bridge search come out right.

func (t *triangulator) eliminateHoles(holeIndices []int, outer *node) *node {
	queue := make([]*node, 0, len(holeIndices))

	for i, h := range holeIndices {
		start := h * t.dim
		end := len(t.data)
		if i < len(holeIndices)-1 {
			end = holeIndices[i+1] * t.dim
		}
		list := t.linkedList(start, end, false)
		if list == nil {
			continue
		}
		if list == list.next {
			// A hole collapsed to a single point still constrains the
			// triangulation; mark it so the degenerate filter keeps it.
			list.steiner = true
		}
		queue = append(queue, getLeftmost(list))
	}

	// Merge left to right, so that a merge can never wander back into a
	// region an earlier bridge already cut through.
	sort.SliceStable(queue, func(i, j int) bool {
		return compareXYSlope(queue[i], queue[j]) < 0
	})

	for _, hole := range queue {
		outer = t.eliminateHole(hole, outer)
	}
	return outer
}

// Splice one hole into the outer ring, or leave the ring untouched when no
// bridge exists. An unbridgeable hole is silently dropped; it will not appear
// as a cut-out in the output.
func (t *triangulator) eliminateHole(hole, outer *node) *node {
	if outer == nil {
		// A previous merge filtered the ring away entirely; nothing left to
		// bridge into
		return nil
	}
	bridge := findHoleBridge(hole, outer)
	if bridge == nil {
		return outer
	}

	bridgeReverse := t.arena.splitPolygon(bridge, hole)

	// Filter collinear points around both cuts so the merged ring stays
	// well-formed for the next hole's bridge search
	filterPoints(bridgeReverse, bridgeReverse.next)
	return filterPoints(bridge, bridge.next)
}

// David Eberly's algorithm for finding a bridge between a hole and the outer
// polygon: cast a horizontal ray leftward from the hole's leftmost vertex,
// take the hit edge's endpoint with lesser x as the candidate, then fix up
// the candidate if any reflex vertex blocks the straight connection.
func findHoleBridge(hole, outer *node) *node {
	p := outer
	hx, hy := hole.x, hole.y
	qx := math.Inf(-1)
	var m *node

	// Find a segment intersected by the ray; its endpoint with lesser x is a
	// potential connection point. If the ray hits a vertex of the outer ring
	// exactly, that vertex is the bridge.
	if equals(hole, p) {
		return p
	}
	for {
		if equals(hole, p.next) {
			return p.next
		}
		if hy <= p.y && hy >= p.next.y && p.next.y != p.y {
			x := p.x + (hy-p.y)*(p.next.x-p.x)/(p.next.y-p.y)
			if x <= hx && x > qx {
				qx = x
				if p.x < p.next.x {
					m = p
				} else {
					m = p.next
				}
				if x == hx {
					// Hole touches outer segment; pick leftmost endpoint
					return m
				}
			}
		}
		p = p.next
		if p == outer {
			break
		}
	}

	if m == nil {
		return nil
	}

	// Look for points inside the triangle of (hole point, ray intersection,
	// candidate endpoint). If there are none, the connection is already
	// unobstructed. Otherwise the bridge must go to the blocking vertex that
	// minimizes the angle with the ray (taking the one with larger x on
	// ties), which is guaranteed not to cross anything.
	stop := m
	mx, my := m.x, m.y
	tanMin := math.Inf(1)

	p = m
	for {
		var t0x, t2x float64
		if hy < my {
			t0x, t2x = hx, qx
		} else {
			t0x, t2x = qx, hx
		}
		if hx >= p.x && p.x >= mx && hx != p.x &&
			pointInTriangle(t0x, hy, mx, my, t2x, hy, p.x, p.y) {
			tan := math.Abs(hy-p.y) / (hx - p.x)

			if locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (p.x > m.x || (p.x == m.x && sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = p.next
		if p == stop {
			break
		}
	}
	return m
}

// Find the leftmost node of a ring, preferring the lower one on ties.
func getLeftmost(start *node) *node {
	p := start
	leftmost := start
	for {
		if p.x < leftmost.x || (p.x == leftmost.x && p.y < leftmost.y) {
			leftmost = p
		}
		p = p.next
		if p == start {
			return leftmost
		}
	}
}

// Ordering for the hole merge queue: x, then y, then the slope of the
// outgoing edge. The slope term matters when the leftmost points of two holes
// coincide: sorting by slope visits them counterclockwise, so each finds its
// bridge at the shared vertex without crossing the other.
func compareXYSlope(a, b *node) float64 {
	result := a.x - b.x
	if result == 0 {
		result = a.y - b.y
		if result == 0 {
			aSlope := (a.next.y - a.y) / (a.next.x - a.x)
			bSlope := (b.next.y - b.y) / (b.next.x - b.x)
			result = aSlope - bSlope
		}
	}
	return result
}
