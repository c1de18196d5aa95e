package dmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/zdtools/dmdkit/pkg/textenc"
)

// section tracks which data block the decoder is currently inside.
type section int

const (
	sectionNone section = iota
	sectionVertices
	sectionFaces
	sectionUVVertices
	sectionUVFaces
)

var sectionHeaders = map[string]section{
	"Mesh vertices:":    sectionVertices,
	"Mesh faces:":       sectionFaces,
	"Texture vertices:": sectionUVVertices,
	"Texture faces:":    sectionUVFaces,
}

// Parse decodes DMD text into a Mesh.
//
// Parsing is deliberately tolerant: data lines with too few tokens are
// skipped without being partially recorded, unknown lines outside a section
// are inert, and face indices are rebased from the format's 1-based
// convention to 0-based. Parse never fails.
func Parse(content string) *Mesh {
	mesh := NewMesh()

	var lines []string
	for _, raw := range strings.Split(content, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}

	current := sectionNone
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if strings.HasPrefix(line, "New object") {
			if i+1 < len(lines) {
				i++
				mesh.Name = strings.TrimSpace(strings.ReplaceAll(lines[i], "()", ""))
			}
			current = sectionNone
			continue
		}

		if s, ok := sectionHeaders[line]; ok {
			current = s
			continue
		}

		// Any closing or opening marker ends the current section, not just
		// the exact header strings ("end vertices", "end of file",
		// "New Texture:"...). Files in the wild rely on this.
		lower := strings.ToLower(line)
		if strings.Contains(lower, "end") || strings.Contains(lower, "new") {
			current = sectionNone
			continue
		}

		switch current {
		case sectionVertices:
			if f := ScanFloats(line); len(f) >= 3 {
				mesh.Vertices = append(mesh.Vertices, [3]float64{f[0], f[1], f[2]})
			}
		case sectionFaces:
			if n := ScanInts(line); len(n) >= 3 {
				mesh.Faces = append(mesh.Faces, [3]int{n[0] - 1, n[1] - 1, n[2] - 1})
			}
		case sectionUVVertices:
			if f := ScanFloats(line); len(f) >= 2 {
				mesh.UVVertices = append(mesh.UVVertices, [2]float64{f[0], f[1]})
			}
		case sectionUVFaces:
			if n := ScanInts(line); len(n) >= 3 {
				mesh.UVFaces = append(mesh.UVFaces, [3]int{n[0] - 1, n[1] - 1, n[2] - 1})
			}
		}
	}

	return mesh
}

// Decode decodes raw file bytes into a Mesh, trying each candidate text
// encoding in order. It fails only when no encoding can decode the bytes.
func Decode(data []byte) (*Mesh, error) {
	text, _, err := textenc.Decode(data)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// ParseFile reads and decodes a DMD file.
func ParseFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading DMD file: %w", err)
	}
	mesh, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return mesh, nil
}
