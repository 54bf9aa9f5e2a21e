package internal

import "github.com/pkg/errors"

// Threading errors through every pass of the clipping loop would add a ton of
// complexity for conditions that amount to "the caller handed us garbage."
// Instead we panic with a tagged error, and the public API recovers and
// converts it into a returned error.
//
// Note that geometric degeneracy is never an error. Unbridgeable holes and
// unsplittable remainders are absorbed silently; the output is simply missing
// those triangles.

// TriangulateError is a concrete wrapper rather than an interface alias so
// that the recover boundary only converts panics raised by fatalf. A runtime
// panic that happens to carry an error value still crashes.
type TriangulateError struct {
	error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
