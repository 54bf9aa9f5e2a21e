package internal

// A node is one polygon vertex inside a circular doubly-linked ring. Every
// node carries two independent link pairs: prev/next are the ring itself, and
// prevZ/nextZ are the secondary z-order list, which only means anything while
// the spatial index is active. The two orderings coexist on the same node so
// that removing a vertex from the polygon can unlink it from both in O(1).
type node struct {
	// Offset of this vertex's first component in the flat coordinate buffer.
	// Divide by dim to get the vertex number that triangle emission uses.
	i int

	// Only the first two components of a vertex participate in geometry; any
	// higher dimensions ride along in the flat buffer untouched.
	x, y float64

	// Morton code for the z-order index. z is only meaningful when hasZ is
	// set; a plain zero is a legitimate code for the bottom-left corner, so
	// there is no sentinel value.
	z    uint32
	hasZ bool

	prev, next   *node
	prevZ, nextZ *node

	// A steiner node is a hole that degenerated to a single point. The
	// degenerate filter must never remove one, or the point would silently
	// vanish from the triangulation.
	steiner bool
}

// Nodes are never freed individually. Bridging and splitting duplicate nodes
// and rewire the rings continuously, so per-node lifetime tracking would be
// both useless and error-prone. Instead each triangulation call owns one
// arena; every node lives until the call's results have been copied out, and
// then the whole arena is garbage at once.
//
// Allocation appends into fixed-capacity slabs. A slab is never grown in
// place, so pointers into it stay valid; when one fills up we just start
// another, and the old slab stays reachable through the ring links.
type nodeArena struct {
	slab []node
}

// Slabs after the first are sized for the bridging and splitting duplicates,
// which in practice are few relative to the input.
const arenaSlabSize = 128

func newNodeArena(vertexCount int) *nodeArena {
	return &nodeArena{slab: make([]node, 0, vertexCount+8)}
}

func (a *nodeArena) newNode(i int, x, y float64) *node {
	if len(a.slab) == cap(a.slab) {
		a.slab = make([]node, 0, arenaSlabSize)
	}
	a.slab = append(a.slab, node{i: i, x: x, y: y})
	return &a.slab[len(a.slab)-1]
}

// Create a node and insert it into the ring after last. A nil last starts a
// new single-node ring.
func (a *nodeArena) insertNode(i int, x, y float64, last *node) *node {
	p := a.newNode(i, x, y)
	if last == nil {
		p.prev = p
		p.next = p
	} else {
		p.next = last.next
		p.prev = last
		last.next.prev = p
		last.next = p
	}
	return p
}

// Unlink p from its ring, and from the z-order list if it is in one. The node
// itself is not reclaimed; see the arena comment above.
func removeNode(p *node) {
	p.next.prev = p.prev
	p.prev.next = p.next

	if p.prevZ != nil {
		p.prevZ.nextZ = p.nextZ
	}
	if p.nextZ != nil {
		p.nextZ.prevZ = p.prevZ
	}
}

// Link two polygon vertices with a bridge. If a and b belong to the same
// ring, this splits it into two rings sharing the edge a-b; if one belongs to
// the outer ring and the other to a hole, it merges the hole into a single
// ring. Both new rings keep emitting the original vertex indices, because the
// duplicates a2 and b2 copy them.
//
// Returns b2, a vertex of the ring that does not contain a.
func (ar *nodeArena) splitPolygon(a, b *node) *node {
	dupA := ar.newNode(a.i, a.x, a.y)
	dupB := ar.newNode(b.i, b.x, b.y)
	an := a.next
	bp := b.prev

	a.next = b
	b.prev = a

	dupA.next = an
	an.prev = dupA

	dupB.next = dupA
	dupA.prev = dupB

	bp.next = dupB
	dupB.prev = bp

	return dupB
}
