package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarcut_Quad(t *testing.T) {
	data := []float64{10, 0, 0, 50, 60, 60, 70, 10}
	triangles := Earcut(data, nil, 2)
	assert.Equal(t, []int{1, 0, 3, 3, 2, 1}, triangles)
	AssertFullSimpleTriangulation(t, data, 2, triangles)
}

// The third dimension rides along in the buffer but must not affect the
// result.
func TestEarcut_QuadDim3(t *testing.T) {
	data := []float64{10, 0, 7, 0, 50, 7, 60, 60, 7, 70, 10, 7}
	triangles := Earcut(data, nil, 3)
	assert.Equal(t, []int{1, 0, 3, 3, 2, 1}, triangles)
}

func TestEarcut_Star(t *testing.T) {
	data := flatRing(SimpleStar())
	triangles := Earcut(data, nil, 2)
	AssertFullSimpleTriangulation(t, data, 2, triangles)
}

// Both fixtures have more than 80 vertices, so these cover the z-order
// indexed ear scan.
func TestEarcut_Comb(t *testing.T) {
	data := flatRing(LoadFixture("comb"))
	triangles := Earcut(data, nil, 2)
	AssertFullSimpleTriangulation(t, data, 2, triangles)
}

func TestEarcut_Spiral(t *testing.T) {
	data := flatRing(LoadFixture("spiral"))
	triangles := Earcut(data, nil, 2)
	AssertFullSimpleTriangulation(t, data, 2, triangles)
}

func TestEarcut_SquareWithHole(t *testing.T) {
	data, holeIndices := Flatten(SquareWithHole(), 2)
	require.Equal(t, []int{4}, holeIndices)

	triangles := Earcut(data, holeIndices, 2)
	AssertCompleteTriangulation(t, data, holeIndices, 2, triangles)
	// 10 ring nodes after bridging (4 outer + 4 hole + 2 bridge duplicates)
	assert.Len(t, triangles, 8*3)
}

// A hole that degenerates to a single point still constrains the
// triangulation: the point must show up as a vertex of the output.
func TestEarcut_SteinerPoint(t *testing.T) {
	data := []float64{0, 0, 10, 0, 10, 10, 0, 10, 4, 5}
	holeIndices := []int{4}

	triangles := Earcut(data, holeIndices, 2)
	AssertCompleteTriangulation(t, data, holeIndices, 2, triangles)

	found := false
	for _, index := range triangles {
		if index == 4 {
			found = true
		}
	}
	assert.True(t, found, "steiner point must appear in the triangulation")
}

// A hole whose anchor can see no outer edge to its left is silently left
// unmerged: the output covers the outer ring as if the hole weren't there.
func TestEarcut_UnbridgeableHole(t *testing.T) {
	data := []float64{
		0, 0, 10, 0, 10, 10, 0, 10, // outer square, area 100
		-30, 4, -30, 6, -28, 6, -28, 4, // "hole" entirely off to the left
	}
	holeIndices := []int{4}

	triangles := Earcut(data, holeIndices, 2)
	AssertValidTriangulation(t, data, holeIndices, 2, triangles)
	assert.Len(t, triangles, 2*3, "outer ring triangulated as if the hole weren't there")
	assert.Greater(t, Deviation(data, holeIndices, 2, triangles), 0.0,
		"deviation reports the dropped hole")
}

func TestEarcut_Degenerate(t *testing.T) {
	// Fewer than 3 distinct points can't produce triangles
	assert.Empty(t, Earcut(nil, nil, 2))
	assert.Empty(t, Earcut([]float64{1, 1}, nil, 2))
	assert.Empty(t, Earcut([]float64{1, 1, 2, 2}, nil, 2))
	assert.Empty(t, Earcut([]float64{1, 1, 2, 2, 1, 1, 2, 2}, nil, 2))

	// All collinear
	assert.Empty(t, Earcut([]float64{0, 0, 2, 0, 4, 0, 6, 0}, nil, 2))
}

func TestEarcut_ClosingDuplicateVertex(t *testing.T) {
	// Closed-ring formats repeat the first vertex; the duplicate collapses
	data := []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}
	triangles := Earcut(data, nil, 2)
	AssertValidTriangulation(t, data, nil, 2, triangles)
	assert.Len(t, triangles, 2*3)
	assert.InDelta(t, 0, Deviation(data, nil, 2, triangles), areaTolerance)
}

// Interior collinear vertices stall the first pass; the filtered retry must
// still produce the full area.
func TestEarcut_CollinearEdgeVertices(t *testing.T) {
	data := []float64{0, 0, 5, 0, 10, 0, 10, 10, 0, 10}
	triangles := Earcut(data, nil, 2)
	AssertCompleteTriangulation(t, data, nil, 2, triangles)
}

// A bowtie quad has exactly one clippable ear. What remains is an inverted
// triangle that no repair pass can fix and that admits no valid diagonal, so
// it is dropped; the output stays structurally valid and the loss is visible
// only through the deviation.
func TestEarcut_SelfIntersecting(t *testing.T) {
	data := []float64{0, 0, 10, 10, 10, 0, 0, 10}
	triangles := Earcut(data, nil, 2)
	AssertValidTriangulation(t, data, nil, 2, triangles)
	assert.Len(t, triangles, 1*3)
	assert.Greater(t, Deviation(data, nil, 2, triangles), 0.0,
		"deviation reports the dropped remainder")
}

// A figure eight pinched at a repeated vertex. The coincident pair makes
// most corners look blocked, and both lobes still have to come out fully
// triangulated.
func TestEarcut_PinchedPolygon(t *testing.T) {
	data := []float64{
		0, 0, 4, 0, 4, 4, 0, 4, // right lobe
		0, 0, -4, 0, -4, -4, 0, -4, // left lobe, joined at the origin
	}
	triangles := Earcut(data, nil, 2)
	AssertValidTriangulation(t, data, nil, 2, triangles)
	assert.Len(t, triangles, 4*3)
	assert.InDelta(t, 0, Deviation(data, nil, 2, triangles), areaTolerance)
}

// The split fallback cuts along a valid diagonal and queues both halves for
// a fresh start at the first pass instead of clipping them itself. Draining
// the queue the way the driver loop does must then cover the whole polygon.
func TestSplitEarcut_QueuesBothHalves(t *testing.T) {
	data := []float64{
		0, 0, 4, 0, 4, 4, 0, 4,
		0, 0, -4, 0, -4, -4, 0, -4,
	}
	tr := newTestTriangulator(data)
	ring := tr.linkedList(0, len(data), true)
	require.NotNil(t, ring)

	tr.splitEarcut(ring)
	require.Len(t, tr.pending, 2)
	assert.Empty(t, tr.triangles, "splitting emits no triangles itself")

	seen := map[[2]float64]bool{}
	for _, job := range tr.pending {
		require.NotNil(t, job.ring)
		assert.Zero(t, job.pass, "each half restarts from the first pass")
		assert.GreaterOrEqual(t, len(ringIndices(job.ring)), 3)
		for _, pos := range ringPositions(job.ring) {
			seen[pos] = true
		}
	}
	assert.Len(t, seen, 7, "every distinct vertex survives the cut")

	for len(tr.pending) > 0 {
		job := tr.pending[len(tr.pending)-1]
		tr.pending = tr.pending[:len(tr.pending)-1]
		tr.clipEars(job.ring, job.pass)
	}
	AssertValidTriangulation(t, data, nil, 2, tr.triangles)
	assert.Len(t, tr.triangles, 4*3)
	assert.InDelta(t, 0, Deviation(data, nil, 2, tr.triangles), areaTolerance)
}

func TestEarcut_InputValidation(t *testing.T) {
	assert.Panics(t, func() { Earcut([]float64{0, 0, 1, 1, 2, 2}, nil, 1) })
	assert.Panics(t, func() { Earcut([]float64{0, 0, 1}, nil, 2) })
	assert.Panics(t, func() { Earcut([]float64{0, 0, 1, 0, 1, 1, 5, 5}, []int{3, 2}, 2) })
	assert.Panics(t, func() { Earcut([]float64{0, 0, 1, 0, 1, 1}, []int{7}, 2) })
}

func TestDeviation_EmptyOnEmpty(t *testing.T) {
	assert.Zero(t, Deviation(nil, nil, 2, nil))
}

func BenchmarkEarcut_Comb(b *testing.B) {
	data := flatRing(LoadFixture("comb"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Earcut(data, nil, 2)
	}
}

func BenchmarkEarcut_SquareWithHole(b *testing.B) {
	data, holeIndices := Flatten(SquareWithHole(), 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Earcut(data, holeIndices, 2)
	}
}
