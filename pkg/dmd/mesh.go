// Package dmd provides a decoder, encoder and combiner for the DMD
// line-oriented 3D mesh interchange format.
package dmd

// DefaultName is the object name used when the input carries none.
const DefaultName = "TriMesh"

// CombinedName is the object name given to a mesh produced by Combine.
const CombinedName = "Combined_Scene"

// Mesh is the in-memory representation of one DMD mesh.
//
// Face and UV-face indices are zero-based in memory; the textual format
// stores them one-based. Vertices and UVVertices are independent index
// spaces. No stage of this package validates that indices are in range:
// out-of-range indices are passed through untouched and are a consumer
// concern.
type Mesh struct {
	Name       string
	Vertices   [][3]float64
	Faces      [][3]int
	UVVertices [][2]float64
	UVFaces    [][3]int
}

// NewMesh returns an empty mesh with the default object name.
func NewMesh() *Mesh {
	return &Mesh{Name: DefaultName}
}

// HasUV returns true if the mesh carries texture-coordinate data.
func (m *Mesh) HasUV() bool {
	return len(m.UVVertices) > 0
}

// VertexCount returns the number of geometric vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of triangle faces.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// UVVertexCount returns the number of texture vertices.
func (m *Mesh) UVVertexCount() int { return len(m.UVVertices) }

// UVFaceCount returns the number of texture faces.
func (m *Mesh) UVFaceCount() int { return len(m.UVFaces) }
