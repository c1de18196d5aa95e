package dmd

import "testing"

func TestCombine_OffsetLaw(t *testing.T) {
	first := &Mesh{
		Name:     "First",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	second := &Mesh{
		Name:     "Second",
		Vertices: [][3]float64{{5, 5, 5}, {6, 5, 5}, {5, 6, 5}},
		Faces:    [][3]int{{0, 1, 2}},
	}

	combined := Combine([]*Mesh{first, second})

	if combined.Name != CombinedName {
		t.Errorf("expected name %q, got %q", CombinedName, combined.Name)
	}
	if len(combined.Vertices) != 6 {
		t.Fatalf("expected 6 vertices, got %d", len(combined.Vertices))
	}
	if len(combined.Faces) != 2 {
		t.Fatalf("expected 2 faces, got %d", len(combined.Faces))
	}
	if combined.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("first mesh face shifted: %v", combined.Faces[0])
	}
	// Indices from the second mesh shift by the first mesh's vertex count
	if combined.Faces[1] != [3]int{3, 4, 5} {
		t.Errorf("expected face (3,4,5), got %v", combined.Faces[1])
	}
}

func TestCombine_UVOffsetsIndependent(t *testing.T) {
	withUV := &Mesh{
		Vertices:   [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:      [][3]int{{0, 1, 2}},
		UVVertices: [][2]float64{{0, 0}, {1, 0}, {0, 1}},
		UVFaces:    [][3]int{{0, 1, 2}},
	}
	withoutUV := &Mesh{
		Vertices: [][3]float64{{2, 0, 0}, {3, 0, 0}, {2, 1, 0}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	another := &Mesh{
		Vertices:   [][3]float64{{4, 0, 0}, {5, 0, 0}, {4, 1, 0}},
		Faces:      [][3]int{{0, 1, 2}},
		UVVertices: [][2]float64{{0.5, 0.5}},
		UVFaces:    [][3]int{{0, 0, 0}},
	}

	combined := Combine([]*Mesh{withUV, withoutUV, another})

	if len(combined.UVVertices) != 4 {
		t.Fatalf("expected 4 UV vertices, got %d", len(combined.UVVertices))
	}
	// The UV offset advances only with UV vertex counts: the middle mesh
	// without UV data contributes nothing, so the third mesh's UV face
	// shifts by 3, not by any vertex count.
	if combined.UVFaces[1] != [3]int{3, 3, 3} {
		t.Errorf("expected UV face (3,3,3), got %v", combined.UVFaces[1])
	}
	// The third mesh's geometric face still shifts by all six prior vertices
	if combined.Faces[2] != [3]int{6, 7, 8} {
		t.Errorf("expected face (6,7,8), got %v", combined.Faces[2])
	}
}

func TestCombine_NilInputsSkipped(t *testing.T) {
	mesh := &Mesh{
		Vertices: [][3]float64{{0, 0, 0}},
		Faces:    [][3]int{{0, 0, 0}},
	}

	combined := Combine([]*Mesh{nil, mesh, nil})

	if len(combined.Vertices) != 1 || len(combined.Faces) != 1 {
		t.Errorf("expected 1 vertex and 1 face, got %d/%d",
			len(combined.Vertices), len(combined.Faces))
	}
	if combined.Faces[0] != [3]int{0, 0, 0} {
		t.Errorf("nil inputs must not advance offsets, got %v", combined.Faces[0])
	}
}

func TestCombine_Empty(t *testing.T) {
	combined := Combine(nil)

	if combined.Name != CombinedName {
		t.Errorf("expected name %q, got %q", CombinedName, combined.Name)
	}
	if len(combined.Vertices) != 0 || len(combined.Faces) != 0 {
		t.Error("expected an empty mesh")
	}
}
