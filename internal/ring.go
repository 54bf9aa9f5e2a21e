package internal

// Build a circular doubly-linked ring from the vertex range [start, end) of
// the flat buffer, in component offsets. The ring comes out wound in the
// requested sense: rather than reversing after the fact, we compare the
// range's signed area against the request and simply insert in the opposite
// order when they disagree.
//
// Closed-ring input formats usually repeat the first vertex at the end; if
// the first and last inserted nodes coincide, one of them is unlinked.
//
// An empty range produces no ring (nil).
func (t *triangulator) linkedList(start, end int, clockwise bool) *node {
	var last *node

	if clockwise == (signedArea(t.data, start, end, t.dim) > 0) {
		for i := start; i < end; i += t.dim {
			last = t.arena.insertNode(i, t.data[i], t.data[i+1], last)
		}
	} else {
		for i := end - t.dim; i >= start; i -= t.dim {
			last = t.arena.insertNode(i, t.data[i], t.data[i+1], last)
		}
	}

	if last != nil && equals(last, last.next) {
		removeNode(last)
		last = last.next
	}
	return last
}

// Walk the ring removing vertices that coordinate-duplicate a neighbor or are
// exactly collinear with both neighbors. Steiner points are exempt. Removal
// can expose new degeneracies at the previous vertex, so the walk backs up
// after each removal and only terminates on a clean pass.
//
// Returns a surviving node, or nil if the ring collapsed below three vertices
// (fully degenerate).
func filterPoints(start, end *node) *node {
	if start == nil {
		return nil
	}
	if end == nil {
		end = start
	}

	p := start
	again := true
	for again || p != end {
		again = false
		if !p.steiner && (equals(p, p.next) || area(p.prev, p, p.next) == 0) {
			removeNode(p)
			p = p.prev
			end = p
			if p == p.next {
				return nil
			}
			again = true
		} else {
			p = p.next
		}
	}
	return end
}
