package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This contains no actual tests. It is just helpers for checking that a
// triangulation is valid. The rules are:
// 1. The index list length is a multiple of three.
// 2. Every index refers to a vertex of the input buffer.
// 3. The distinct indices in the output are a subset of the input's.
// For complete triangulations (nothing dropped by the fallback passes):
// 4. The summed triangle area equals the polygon area (outer minus holes).
// 5. For a hole-free polygon of n distinct non-collinear vertices, there are
//    exactly n-2 triangles and every vertex appears in the output.

const areaTolerance = 1e-9

func AssertValidTriangulation(t *testing.T, data []float64, holeIndices []int, dim int, triangles []int) {
	require.Zero(t, len(triangles)%3, "triangle list length must be a multiple of 3")

	vertexCount := len(data) / dim
	for _, index := range triangles {
		require.GreaterOrEqual(t, index, 0)
		require.Less(t, index, vertexCount, "triangle index out of range")
	}

	// No vertex may appear twice within one triangle
	for i := 0; i+2 < len(triangles); i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		require.False(t, a == b || b == c || a == c, "triangle %d repeats a vertex: (%d %d %d)", i/3, a, b, c)
	}
}

func AssertCompleteTriangulation(t *testing.T, data []float64, holeIndices []int, dim int, triangles []int) {
	AssertValidTriangulation(t, data, holeIndices, dim, triangles)
	assert.InDelta(t, 0, Deviation(data, holeIndices, dim, triangles), areaTolerance,
		"triangle areas must sum to the polygon area")
}

// The strongest form, for hole-free simple polygons with no duplicate or
// collinear vertices.
func AssertFullSimpleTriangulation(t *testing.T, data []float64, dim int, triangles []int) {
	AssertCompleteTriangulation(t, data, nil, dim, triangles)

	n := len(data) / dim
	require.Len(t, triangles, (n-2)*3, "a simple polygon with %d vertices must produce %d triangles", n, n-2)

	seen := make(map[int]struct{})
	for _, index := range triangles {
		seen[index] = struct{}{}
	}
	require.Len(t, seen, n, "every input vertex must appear in the output")
}
