package internal

// The z-order spatial index. Each vertex gets a morton code from its
// quantized coordinates, and the ring is threaded onto a second linked list
// (prevZ/nextZ) sorted by that code. Nearby codes mean nearby points, so the
// ear test can scan a short z-range instead of the whole ring.

// Interleave the lower 15 bits of the quantized x and y coordinates.
func (t *triangulator) zOrder(x, y float64) uint32 {
	// Coords are transformed into non-negative 15-bit integer range
	ix := uint32((x - t.minX) * t.invSize)
	iy := uint32((y - t.minY) * t.invSize)

	ix = (ix | ix<<8) & 0x00FF00FF
	ix = (ix | ix<<4) & 0x0F0F0F0F
	ix = (ix | ix<<2) & 0x33333333
	ix = (ix | ix<<1) & 0x55555555

	iy = (iy | iy<<8) & 0x00FF00FF
	iy = (iy | iy<<4) & 0x0F0F0F0F
	iy = (iy | iy<<2) & 0x33333333
	iy = (iy | iy<<1) & 0x55555555

	return ix | iy<<1
}

// Thread the ring onto the z-order list and sort it. Morton codes are
// computed once per node and kept across re-indexing (the coordinates never
// change), but the links are rebuilt from the current ring each time, since
// splits hand us rings that are subsets of what was indexed before.
func (t *triangulator) indexCurve(start *node) {
	p := start
	for {
		if !p.hasZ {
			p.z = t.zOrder(p.x, p.y)
			p.hasZ = true
		}
		p.prevZ = p.prev
		p.nextZ = p.next
		p = p.next
		if p == start {
			break
		}
	}

	// Sever the circle into a simple list before sorting
	p.prevZ.nextZ = nil
	p.prevZ = nil

	sortLinked(p)
}

// Simon Tatham's linked-list merge sort: bottom-up, merging runs whose size
// doubles each pass. A merge sort is the natural choice here because the
// nodes are already linked and there is no random access to exploit. Stable,
// O(n log n).
func sortLinked(list *node) *node {
	inSize := 1

	for {
		p := list
		list = nil
		var tail *node
		numMerges := 0

		for p != nil {
			numMerges++
			q := p
			pSize := 0
			for i := 0; i < inSize; i++ {
				pSize++
				q = q.nextZ
				if q == nil {
					break
				}
			}
			qSize := inSize

			for pSize > 0 || (qSize > 0 && q != nil) {
				var e *node
				if pSize != 0 && (qSize == 0 || q == nil || p.z <= q.z) {
					e = p
					p = p.nextZ
					pSize--
				} else {
					e = q
					q = q.nextZ
					qSize--
				}

				if tail != nil {
					tail.nextZ = e
				} else {
					list = e
				}
				e.prevZ = tail
				tail = e
			}

			p = q
		}

		tail.nextZ = nil
		inSize *= 2

		if numMerges <= 1 {
			return list
		}
	}
}
