// Package recovery captures the fail-vs-continue policy used by the color
// package's cache-probe path: a pdfobj.ErrMissingData must abort the
// parse, while any other resolver error during a cache lookup is
// swallowed: the parser logs it and reports a FormatError of its own
// instead of the resolver's error.
//
// Trimmed from a larger toolkit's recovery package: that package's
// Location carries a byte offset and object generation because it
// drives a byte-stream scanner's error recovery; this subsystem never
// touches a byte stream directly, so a single Component name is all a
// color-space constructor or the parser needs to report.
package recovery

// Strategy decides what to do with an error encountered at Location.
type Strategy interface {
	OnError(err error, location Location) Action
}

// Location identifies where in the color-space pipeline an error
// occurred.
type Location struct {
	Component string // e.g. "CalRGB", "cache probe", "Indexed lookup"
}

// Action is the decision a Strategy makes for a given error.
type Action int

const (
	// ActionFail aborts the current operation, propagating err.
	ActionFail Action = iota
	// ActionWarn continues, having logged err as an advisory warning.
	ActionWarn
)

// Default implements a propagate-through rule: the one sentinel that
// must always abort is injected at construction, every other error is
// swallowed.
type Default struct {
	// MustPropagate reports whether err must abort the operation
	// (e.g. errors.Is(err, pdfobj.ErrMissingData)).
	MustPropagate func(err error) bool
}

func (d Default) OnError(err error, _ Location) Action {
	if d.MustPropagate != nil && d.MustPropagate(err) {
		return ActionFail
	}
	return ActionWarn
}
