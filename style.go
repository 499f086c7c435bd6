package aamesh

// Style is the fill style a mesh is built with. It is one of SolidStyle or
// GradientStyle. Style payloads are opaque to the geometry code and are
// copied into every vertex unchanged.
type Style interface {
	isStyle()
}

// SolidStyle fills with a single packed color.
type SolidStyle struct {
	Color uint32
}

func (SolidStyle) isStyle() {}

// GradientStyle carries an opaque gradient payload for the consumer's
// shader.
type GradientStyle struct {
	Payload [8]float32
}

func (GradientStyle) isStyle() {}

// Solid returns a SolidStyle for a packed color.
func Solid(color uint32) SolidStyle {
	return SolidStyle{Color: color}
}
