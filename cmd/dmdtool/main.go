// dmdtool is a CLI utility for working with DMD mesh files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zdtools/dmdkit/internal/config"
	"github.com/zdtools/dmdkit/internal/convert"
	"github.com/zdtools/dmdkit/internal/export"
	"github.com/zdtools/dmdkit/internal/logger"
	"github.com/zdtools/dmdkit/pkg/dmd"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "fmt":
		cmdFmt(cfg, args)
	case "merge":
		cmdMerge(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`dmdtool - DMD mesh file utility

Usage:
  dmdtool [flags] <command> [options]

Commands:
  info <file.dmd>                 Show mesh information
  fmt <in.dmd> [out.dmd]          Re-encode a file into canonical layout
  merge -o <out.dmd> <in.dmd>...  Merge meshes into one file

Flags (before the command):
  -config <path>   Config file
  -debug           Debug logging
  -flip-y          Negate Y during fmt
  -flip-z          Negate Z during fmt
  -flip-winding    Reverse face winding during fmt
  -workers <n>     Extraction workers for merge

Examples:
  dmdtool info cab_el2m.dmd
  dmdtool -flip-z fmt cab_el2m.dmd cab_el2m_fixed.dmd
  dmdtool merge -o scene.dmd body.dmd bogie.dmd pantograph.dmd`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dmdtool info <file.dmd>")
		os.Exit(1)
	}

	mesh, err := dmd.ParseFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File:        %s\n", args[0])
	fmt.Printf("Object:      %s\n", mesh.Name)
	fmt.Printf("Vertices:    %d\n", mesh.VertexCount())
	fmt.Printf("Faces:       %d\n", mesh.FaceCount())
	if mesh.HasUV() {
		fmt.Printf("UV vertices: %d\n", mesh.UVVertexCount())
		fmt.Printf("UV faces:    %d\n", mesh.UVFaceCount())
	} else {
		fmt.Println("UV:          none")
	}
}

func cmdFmt(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dmdtool fmt <in.dmd> [out.dmd]")
		os.Exit(1)
	}

	in := args[0]
	out := in
	if len(args) > 1 {
		out = args[1]
	}

	mesh, err := dmd.ParseFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := convert.Options{
		FlipY:       cfg.Export.FlipY,
		FlipZ:       cfg.Export.FlipZ,
		FlipWinding: cfg.Export.FlipWinding,
	}
	if opts != (convert.Options{}) && mesh.FaceCount() > 0 {
		host := convert.FromDMD(mesh, opts)
		mesh, err = convert.ToDMD(host, convert.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := dmd.WriteFile(out, mesh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s: %d vertices, %d faces\n", out, mesh.VertexCount(), mesh.FaceCount())
}

func cmdMerge(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	output := fs.String("o", "combined.dmd", "Output file")
	workers := fs.Int("workers", cfg.Export.Workers, "Extraction workers (0 = one per CPU)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dmdtool merge -o <out.dmd> <in.dmd>...")
		os.Exit(1)
	}

	sources := make([]export.Source, 0, fs.NArg())
	for _, path := range fs.Args() {
		sources = append(sources, export.FileSource(path))
	}

	summary, err := export.Run(export.Config{
		Mode:    export.ModeCombined,
		Output:  *output,
		Workers: *workers,
	}, sources)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Skipped %s: %v\n", r.Name, r.Err)
		}
	}

	if summary.Completed == 0 {
		fmt.Fprintln(os.Stderr, "Error: no meshes could be read")
		os.Exit(1)
	}

	fmt.Printf("Merged %d of %d meshes into %s\n", summary.Completed, len(sources), *output)
}
