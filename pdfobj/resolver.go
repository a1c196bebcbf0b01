package pdfobj

import "errors"

// ErrMissingData is the sentinel a Resolver returns when the referenced
// object has not been loaded yet (e.g. a linearized PDF still streaming
// in). It must propagate out of a cache-lookup path; every other
// resolver error is swallowed there.
var ErrMissingData = errors.New("pdfobj: referenced data not yet available")

// Resolver resolves indirect references against an xref table, trimmed
// to the two operations the color package needs.
type Resolver interface {
	// Fetch resolves an indirect reference to the object it points to.
	Fetch(ref ObjectRef) (Object, error)

	// FetchIfRef resolves obj if it is a Reference, and is a no-op
	// otherwise.
	FetchIfRef(obj Object) (Object, error)
}
