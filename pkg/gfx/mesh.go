package gfx

import "github.com/kjkrol/gokg/pkg/geom"

// Mesh is an ordered sequence of 2D vertex positions in normalized device
// coordinates. The positions are fixed after construction; the renderer
// uploads them once and draws them every frame.
type Mesh struct {
	positions []geom.Vec[float32]
}

func NewMesh(positions ...geom.Vec[float32]) Mesh {
	out := make([]geom.Vec[float32], len(positions))
	copy(out, positions)
	return Mesh{positions: out}
}

func NewTriangle(a, b, c geom.Vec[float32]) Mesh {
	return NewMesh(a, b, c)
}

// DefaultTriangle returns the canonical demo geometry.
func DefaultTriangle() Mesh {
	return NewTriangle(
		geom.NewVec[float32](-0.5, -0.5),
		geom.NewVec[float32](0, 0.5),
		geom.NewVec[float32](0.5, -0.5),
	)
}

func (m Mesh) VertexCount() int {
	return len(m.positions)
}

// Floats flattens the positions into interleaved x,y pairs, two floats per
// vertex.
func (m Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.positions)*2)
	for _, p := range m.positions {
		out = append(out, p.X, p.Y)
	}
	return out
}
