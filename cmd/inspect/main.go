package main

import (
	"flag"
	"fmt"
	"os"

	"tri-viewer/internal/los"
	"tri-viewer/internal/tri"
)

func main() {
	losPath := flag.String("los", "", "LOS test CSV to summarize alongside the meshes")
	flag.Parse()

	if flag.NArg() < 1 && *losPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect [-los <csv>] <tri-file>...")
		os.Exit(2)
	}

	exitCode := 0
	for _, arg := range flag.Args() {
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Stat error %s: %v\n", arg, err)
			exitCode = 1
			continue
		}

		mesh, err := tri.DecodeFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Decode error %s: %v\n", arg, err)
			exitCode = 1
			continue
		}

		fmt.Printf("\n=== %s ===\n", arg)
		fmt.Printf("  Size: %d bytes (%d trailing)\n", info.Size(), info.Size()%tri.TriangleSize)
		fmt.Printf("  Triangles: %d, Vertices: %d, Faces: %d\n",
			mesh.NumTriangles(), len(mesh.Vertices), len(mesh.Faces))

		if mesh.Empty() {
			fmt.Println("  (no geometry)")
			continue
		}

		min, max := mesh.Bounds()
		fmt.Printf("  Bounds: X=[%.1f..%.1f] Y=[%.1f..%.1f] Z=[%.1f..%.1f]\n",
			min[0], max[0], min[1], max[1], min[2], max[2])
		fmt.Printf("  Span: %.1f x %.1f x %.1f\n",
			max[0]-min[0], max[1]-min[1], max[2]-min[2])
	}

	if *losPath != "" {
		tests, err := los.Load(*losPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "LOS error %s: %v\n", *losPath, err)
			os.Exit(1)
		}

		visible := 0
		fmt.Printf("\n=== %s (%d tests) ===\n", *losPath, len(tests))
		for i, t := range tests {
			state := "Blocked"
			if t.Visible() {
				state = "Visible"
				visible++
			}
			fmt.Printf("  [%d] %s: (%.1f, %.1f, %.1f) -> (%.1f, %.1f, %.1f) %s\n",
				i+1, t.Description,
				t.P1.X, t.P1.Y, t.P1.Z,
				t.P2.X, t.P2.Y, t.P2.Z,
				state)
		}
		fmt.Printf("  Visible: %d/%d\n", visible, len(tests))
	}

	os.Exit(exitCode)
}
