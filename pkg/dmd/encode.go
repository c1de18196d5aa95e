package dmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Encode writes the mesh in the fixed DMD textual layout: object header with
// counts, tab-indented vertex lines at six decimals, fixed-width face lines
// rebased to 1-based indices, and a texture block if and only if the mesh
// has UV vertices. Index values are written without range validation.
// Encode fails only on a sink write error.
func Encode(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "New object\n")
	fmt.Fprintf(bw, "%s()\n", m.Name)
	fmt.Fprintf(bw, "numverts numfaces\n")
	fmt.Fprintf(bw, "   %8d   %8d\n", len(m.Vertices), len(m.Faces))

	fmt.Fprintf(bw, "Mesh vertices:\n")
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "\t%.6f %.6f %.6f\n", v[0], v[1], v[2])
	}
	fmt.Fprintf(bw, "end vertices\n")

	fmt.Fprintf(bw, "Mesh faces:\n")
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "\t%6d %6d %6d\n", f[0]+1, f[1]+1, f[2]+1)
	}
	fmt.Fprintf(bw, "end faces\n")
	fmt.Fprintf(bw, "end mesh\n")

	if m.HasUV() {
		fmt.Fprintf(bw, "New Texture:\n")
		fmt.Fprintf(bw, "numtverts numtvfaces\n")
		fmt.Fprintf(bw, "   %8d   %8d\n", len(m.UVVertices), len(m.UVFaces))

		fmt.Fprintf(bw, "Texture vertices:\n")
		for _, uv := range m.UVVertices {
			// The format always carries three UV components; the third is
			// meaningless and written as a constant.
			fmt.Fprintf(bw, "\t%.6f %.6f 0.000000\n", uv[0], uv[1])
		}
		fmt.Fprintf(bw, "end texture vertices\n")

		fmt.Fprintf(bw, "Texture faces:\n")
		for _, f := range m.UVFaces {
			fmt.Fprintf(bw, "\t%6d %6d %6d\n", f[0]+1, f[1]+1, f[2]+1)
		}
		fmt.Fprintf(bw, "end texture faces\n")
		fmt.Fprintf(bw, "end of texture\n")
	}

	fmt.Fprintf(bw, "end of file\n")
	return bw.Flush()
}

// WriteFile encodes the mesh to a file.
func WriteFile(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating DMD file: %w", err)
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
