package model

import (
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single interleaved vertex record. The field order
// matches the attribute locations the shaders declare.
type Vertex struct {
	Pos      glm.Vec3
	Color    glm.Vec3
	TexCoord glm.Vec2
}

// Stride is the size of one Vertex record in bytes.
func Stride() int32 {
	return int32(unsafe.Sizeof(Vertex{}))
}

// AttributeDescription describes one vertex attribute channel
// for glVertexAttribPointer.
type AttributeDescription struct {
	Location   uint32
	Components int32
	Offset     uintptr
}

// VertexAttributeDescriptions return the attribute channels of Vertex.
// Offsets are derived from the struct itself so they cannot drift
// from the layout the buffer is uploaded with.
func VertexAttributeDescriptions() []AttributeDescription {
	return []AttributeDescription{
		{
			Location:   0,
			Components: 3,
			Offset:     unsafe.Offsetof(Vertex{}.Pos),
		},
		{
			Location:   1,
			Components: 3,
			Offset:     unsafe.Offsetof(Vertex{}.Color),
		},
		{
			Location:   2,
			Components: 2,
			Offset:     unsafe.Offsetof(Vertex{}.TexCoord),
		},
	}
}

// Mesh is indexed geometry held in memory, ready for upload.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
}

// NewQuad builds the tutorial quad: four corner vertices around the
// screen center and two triangles over them. Texture coordinates span
// the full image, colors tag the corners.
func NewQuad() *Mesh {
	return &Mesh{
		vertices: []Vertex{
			{Pos: glm.Vec3{0.5, 0.5, 0.0}, Color: glm.Vec3{1.0, 0.0, 0.0}, TexCoord: glm.Vec2{1.0, 1.0}},
			{Pos: glm.Vec3{0.5, -0.5, 0.0}, Color: glm.Vec3{0.0, 1.0, 0.0}, TexCoord: glm.Vec2{1.0, 0.0}},
			{Pos: glm.Vec3{-0.5, -0.5, 0.0}, Color: glm.Vec3{0.0, 0.0, 1.0}, TexCoord: glm.Vec2{0.0, 0.0}},
			{Pos: glm.Vec3{-0.5, 0.5, 0.0}, Color: glm.Vec3{1.0, 1.0, 0.0}, TexCoord: glm.Vec2{0.0, 1.0}},
		},
		indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
	}
}

// Vertices returns the vertex records of the mesh.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Indices returns the element indices of the mesh.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// Interleaved flattens the vertices into the float array that is
// uploaded to the vertex buffer, eight floats per vertex.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.vertices)*8)
	for _, v := range m.vertices {
		out = append(out, v.Pos[0], v.Pos[1], v.Pos[2])
		out = append(out, v.Color[0], v.Color[1], v.Color[2])
		out = append(out, v.TexCoord[0], v.TexCoord[1])
	}
	return out
}
