// Package export writes DMD files from an ordered list of mesh sources, in
// single, per-object or combined form. Source extraction runs on a worker
// pool; a failing source is reported and skipped, never aborting the run.
package export

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/zdtools/dmdkit/internal/logger"
	"github.com/zdtools/dmdkit/pkg/dmd"
)

// Mode selects how sources map to output files.
type Mode int

const (
	// ModeSingle writes only the first source to the output path; nothing
	// is written when the first source fails.
	ModeSingle Mode = iota
	// ModePerObject writes each source to its own file derived from the
	// output path ("<base>_<name>.dmd").
	ModePerObject
	// ModeCombined merges all sources into one mesh at the output path.
	ModeCombined
)

// String returns the mode's config spelling.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModePerObject:
		return "per-object"
	case ModeCombined:
		return "combined"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMode converts a config/CLI spelling to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "single", "":
		return ModeSingle, nil
	case "per-object":
		return ModePerObject, nil
	case "combined":
		return ModeCombined, nil
	default:
		return ModeSingle, fmt.Errorf("unknown export mode %q", s)
	}
}

// Source produces one mesh for export.
type Source interface {
	Name() string
	Mesh() (*dmd.Mesh, error)
}

type fileSource string

func (s fileSource) Name() string {
	base := filepath.Base(string(s))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s fileSource) Mesh() (*dmd.Mesh, error) {
	return dmd.ParseFile(string(s))
}

// FileSource adapts a DMD file on disk as an export source.
func FileSource(path string) Source {
	return fileSource(path)
}

type meshSource struct {
	mesh *dmd.Mesh
}

func (s meshSource) Name() string             { return s.mesh.Name }
func (s meshSource) Mesh() (*dmd.Mesh, error) { return s.mesh, nil }

// MeshSource adapts an already-built mesh as an export source.
func MeshSource(m *dmd.Mesh) Source {
	return meshSource{mesh: m}
}

// Config holds the settings for one export run.
type Config struct {
	Mode    Mode
	Output  string
	Workers int // 0 = one worker per CPU
}

// Result is the outcome of extracting and writing one source.
type Result struct {
	Name string
	Err  error
}

// Summary aggregates per-source results for a run.
type Summary struct {
	Completed int
	Failed    int
	Results   []Result
}

// Err returns nil when every item completed, an aggregate error otherwise.
func (s Summary) Err() error {
	if s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d items failed", s.Failed, s.Completed+s.Failed)
}

// Run extracts every source on a worker pool and writes output according to
// cfg.Mode. Extraction order does not affect the output: combined offsets
// are applied in source order over the completed results. The returned error
// reports a write failure on the common output file; per-source extraction
// failures land in the Summary only.
func Run(cfg Config, sources []Source) (Summary, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	meshes := make([]*dmd.Mesh, len(sources))
	summary := Summary{Results: make([]Result, len(sources))}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				mesh, err := sources[i].Mesh()
				summary.Results[i] = Result{Name: sources[i].Name(), Err: err}
				if err == nil {
					meshes[i] = mesh
				}
			}
		}()
	}
	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, r := range summary.Results {
		if r.Err != nil {
			summary.Failed++
			logger.Warn("source skipped", zap.String("name", r.Name), zap.Error(r.Err))
		} else {
			summary.Completed++
			logger.Debug("source extracted", zap.String("name", r.Name))
		}
	}

	if summary.Completed == 0 {
		return summary, nil
	}

	switch cfg.Mode {
	case ModePerObject:
		base := strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output))
		for i, mesh := range meshes {
			if mesh == nil {
				continue
			}
			path := fmt.Sprintf("%s_%s.dmd", base, summary.Results[i].Name)
			if err := dmd.WriteFile(path, mesh); err != nil {
				summary.Results[i].Err = err
				summary.Completed--
				summary.Failed++
				logger.Warn("write failed", zap.String("name", summary.Results[i].Name), zap.Error(err))
			}
		}
		return summary, nil

	case ModeCombined:
		combined := dmd.Combine(meshes)
		if err := dmd.WriteFile(cfg.Output, combined); err != nil {
			return summary, err
		}
		logger.Info("combined mesh written",
			zap.String("path", cfg.Output),
			zap.Int("vertices", combined.VertexCount()),
			zap.Int("faces", combined.FaceCount()),
		)
		return summary, nil

	default: // ModeSingle
		// Only the first source qualifies. If it failed, its error is
		// already in the summary and a later mesh must not silently take
		// its place.
		if meshes[0] == nil {
			return summary, nil
		}
		return summary, dmd.WriteFile(cfg.Output, meshes[0])
	}
}
