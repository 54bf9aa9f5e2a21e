package internal

// Flatten converts a ring set (ring 0 the outer boundary, the rest holes)
// into the flat interleaved buffer and hole-index list that Earcut consumes.
// Each point contributes its first dim components. No validation of ring
// simplicity or winding happens here; that is the ring builder's problem
// downstream.
func Flatten(rings [][][]float64, dim int) ([]float64, []int) {
	if dim < 2 {
		fatalf("dimension must be at least 2, got %d", dim)
	}

	total := 0
	for _, ring := range rings {
		total += len(ring)
	}

	vertices := make([]float64, 0, total*dim)
	var holeIndices []int

	prevLen := 0
	holeIndex := 0
	for _, ring := range rings {
		for _, p := range ring {
			if len(p) < dim {
				fatalf("point has %d components, need at least %d", len(p), dim)
			}
			vertices = append(vertices, p[:dim]...)
		}
		if prevLen > 0 {
			holeIndex += prevLen
			holeIndices = append(holeIndices, holeIndex)
		}
		prevLen = len(ring)
	}
	return vertices, holeIndices
}
