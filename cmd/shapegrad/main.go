// Package main provides the shapegrad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/born-ml/shapegrad/layout"
	"github.com/born-ml/shapegrad/shape"
	"github.com/born-ml/shapegrad/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("shapegrad %s\n", version)
			return
		case "info":
			info()
			return
		}
	}

	fmt.Println("shapegrad - shape-typed tensors with reverse-mode autodiff")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  info       Show kernel and layout settings")
}

func info() {
	cfg := tensor.DefaultKernelConfig()
	fmt.Printf("Kernel workers:      %d (parallel: %v, min chunk: %d)\n", cfg.NumWorkers, cfg.Enabled, cfg.MinChunkSize)
	fmt.Printf("Max rank:            %d\n", shape.MaxRank)
	fmt.Printf("Inline capacity:     %d elements (%s of float64)\n",
		layout.StackCapacity, humanize.IBytes(uint64(layout.StackCapacity*8)))

	small := tensor.Zeros[float64, shape.S2[shape.D4, shape.D4]](tensor.WithPolicy(layout.StackFirstPolicy{}))
	large := tensor.Zeros[float64, shape.S2[shape.D16, shape.D16]](tensor.WithPolicy(layout.StackFirstPolicy{}))
	fmt.Printf("stack-first 4x4:     %T\n", small.Layout())
	fmt.Printf("stack-first 16x16:   %T\n", large.Layout())
}
