package dmd

// Combine merges an ordered list of meshes into one, preserving the
// geometric union. Face indices are shifted by the running vertex count and
// UV-face indices by the running UV-vertex count; the two offsets advance
// independently, so a mesh without UV data never perturbs UV indexing.
// Nil entries are skipped and do not advance either offset, which lets
// callers drop failed inputs without disturbing the rest.
func Combine(meshes []*Mesh) *Mesh {
	combined := &Mesh{Name: CombinedName}

	vertexOffset := 0
	uvOffset := 0
	for _, m := range meshes {
		if m == nil {
			continue
		}

		combined.Vertices = append(combined.Vertices, m.Vertices...)
		for _, f := range m.Faces {
			combined.Faces = append(combined.Faces, [3]int{
				f[0] + vertexOffset,
				f[1] + vertexOffset,
				f[2] + vertexOffset,
			})
		}

		if m.HasUV() {
			combined.UVVertices = append(combined.UVVertices, m.UVVertices...)
			for _, f := range m.UVFaces {
				combined.UVFaces = append(combined.UVFaces, [3]int{
					f[0] + uvOffset,
					f[1] + uvOffset,
					f[2] + uvOffset,
				})
			}
			uvOffset += len(m.UVVertices)
		}

		vertexOffset += len(m.Vertices)
	}

	return combined
}
