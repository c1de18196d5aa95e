// Package convert translates between host-application mesh data and the DMD
// mesh model. The host side samples texture coordinates per triangle corner
// and uses a Y-down V origin; the DMD side indexes a deduplicated UV vertex
// list and stores V inverted.
package convert

import (
	"errors"
	"fmt"
	"math"

	"github.com/zdtools/dmdkit/pkg/dmd"
)

// ErrNoTriangles means the source mesh carries no triangle data to export.
var ErrNoTriangles = errors.New("mesh has no triangle data")

// HostMesh is the mesh shape exchanged with the host application: positions
// indexed by triangles, with texture coordinates sampled per triangle corner.
type HostMesh struct {
	Name      string
	Positions [][3]float64
	Triangles [][3]int
	// CornerUVs holds one UV per triangle corner. Empty when the mesh has
	// no texture coordinates; otherwise len(CornerUVs) == len(Triangles).
	CornerUVs [][3][2]float64
}

// Options controls the axis and winding transform applied during conversion.
// The same options invert themselves: converting with the options used to
// produce a mesh restores the original data.
type Options struct {
	FlipY       bool
	FlipZ       bool
	FlipWinding bool
}

// UV coordinates equal at six fractional digits collapse to one UV vertex.
const uvQuantum = 1e6

type uvKey struct {
	u, v int64
}

func quantize(uv [2]float64) uvKey {
	return uvKey{
		u: int64(math.Round(uv[0] * uvQuantum)),
		v: int64(math.Round(uv[1] * uvQuantum)),
	}
}

func applyFlips(p [3]float64, opts Options) [3]float64 {
	if opts.FlipY {
		p[1] = -p[1]
	}
	if opts.FlipZ {
		p[2] = -p[2]
	}
	return p
}

func reverse(t [3]int) [3]int {
	return [3]int{t[2], t[1], t[0]}
}

// ToDMD converts a host mesh to the DMD model. Per-corner UVs are reduced to
// an indexed list: coordinates equal at six decimals share one UV vertex,
// assigned in first-seen order, while per-corner discontinuities stay
// distinct. Returns ErrNoTriangles when the host mesh has no faces.
func ToDMD(h HostMesh, opts Options) (*dmd.Mesh, error) {
	if len(h.Triangles) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoTriangles, h.Name)
	}

	mesh := dmd.NewMesh()
	if h.Name != "" {
		mesh.Name = h.Name
	}

	mesh.Vertices = make([][3]float64, len(h.Positions))
	for i, p := range h.Positions {
		mesh.Vertices[i] = applyFlips(p, opts)
	}

	mesh.Faces = make([][3]int, len(h.Triangles))
	for i, t := range h.Triangles {
		if opts.FlipWinding {
			t = reverse(t)
		}
		mesh.Faces[i] = t
	}

	if len(h.CornerUVs) == len(h.Triangles) && len(h.CornerUVs) > 0 {
		seen := make(map[uvKey]int)
		for _, corners := range h.CornerUVs {
			var face [3]int
			for c, uv := range corners {
				coord := [2]float64{uv[0], 1 - uv[1]}
				key := quantize(coord)
				idx, ok := seen[key]
				if !ok {
					idx = len(mesh.UVVertices)
					seen[key] = idx
					mesh.UVVertices = append(mesh.UVVertices, coord)
				}
				face[c] = idx
			}
			if opts.FlipWinding {
				face = reverse(face)
			}
			mesh.UVFaces = append(mesh.UVFaces, face)
		}
	}

	return mesh, nil
}

// FromDMD converts a decoded DMD mesh into host-shaped arrays, applying the
// axis and winding transform. UV data is resolved per-face when the UV face
// count matches the face count, else one-to-one per vertex when the UV
// vertex count matches the vertex count, else dropped. Out-of-range UV
// indices leave the affected corner at the zero UV; face indices themselves
// are never validated here.
func FromDMD(m *dmd.Mesh, opts Options) HostMesh {
	h := HostMesh{Name: m.Name}

	h.Positions = make([][3]float64, len(m.Vertices))
	for i, v := range m.Vertices {
		h.Positions[i] = applyFlips(v, opts)
	}

	h.Triangles = make([][3]int, len(m.Faces))
	for i, f := range m.Faces {
		if opts.FlipWinding {
			f = reverse(f)
		}
		h.Triangles[i] = f
	}

	switch {
	case len(m.UVFaces) > 0 && len(m.UVFaces) == len(m.Faces):
		h.CornerUVs = make([][3][2]float64, len(m.Faces))
		for i, tf := range m.UVFaces {
			if opts.FlipWinding {
				tf = reverse(tf)
			}
			for c, uvIdx := range tf {
				if uvIdx >= 0 && uvIdx < len(m.UVVertices) {
					uv := m.UVVertices[uvIdx]
					h.CornerUVs[i][c] = [2]float64{uv[0], 1 - uv[1]}
				}
			}
		}
	case len(m.UVVertices) > 0 && len(m.UVVertices) == len(m.Vertices):
		h.CornerUVs = make([][3][2]float64, len(h.Triangles))
		for i, t := range h.Triangles {
			for c, vertIdx := range t {
				if vertIdx >= 0 && vertIdx < len(m.UVVertices) {
					uv := m.UVVertices[vertIdx]
					h.CornerUVs[i][c] = [2]float64{uv[0], 1 - uv[1]}
				}
			}
		}
	}

	return h
}
