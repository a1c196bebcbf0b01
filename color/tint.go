package color

// TintFunction maps Separation/DeviceN input components to the base
// space's components, both living in roughly [0,1]. Evaluation is the
// caller's responsibility (a PDF Function object, typically); this
// package only invokes it.
type TintFunction func(src []float32, dst []float32)

// TintFactory builds a TintFunction from an opaque, parser-supplied
// handle (typically a PDF function dictionary or stream). Alternate
// spaces treat the function itself as an external collaborator.
type TintFactory interface {
	Build(fn interface{}) (TintFunction, error)
}
