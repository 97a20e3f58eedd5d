package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

// RenderOptions controls how node coordinates map to canvas pixels
type RenderOptions struct {
	Box    BoundingBox
	Width  uint
	Height uint
}

// DefaultRenderOptions is the geographic box and canvas used for the sample city graphs
var DefaultRenderOptions = RenderOptions{
	Box:    BoundingBox{MinX: 73.46, MaxX: 78.86, MinY: 40.67, MaxY: 44.93},
	Width:  480,
	Height: 400,
}

// pixel maps a coordinate onto the canvas. The x axis is mirrored.
func (o RenderOptions) pixel(p Point) (uint, uint) {
	nx, ny := o.Box.Normalize(p)
	return scale(1-nx, o.Width), scale(ny, o.Height)
}

// FitTo widens the render box to cover every node of graph
func (o RenderOptions) FitTo(graph *Graph) RenderOptions {
	if graph.NodeCount() == 0 {
		return o
	}
	o.Box = boundingBoxFromBound(o.Box.Bound().Union(graph.Bounds().Bound()))
	return o
}

func scale(fraction float64, size uint) uint {
	v := fraction * float64(size)
	if v <= 0 {
		return 0
	}
	return uint(v)
}

// WriteDOT renders the graph in Graphviz format with a pixel position per node and the
// edge weight as the edge label
func WriteDOT(w io.Writer, graph *Graph, opts RenderOptions) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "graph G {")
	for i, p := range graph.Nodes {
		px, py := opts.pixel(p)
		fmt.Fprintf(bw, "%d[label=\"%d\", pos=\"%d,%d\", fontsize=\"11\"];\n", i, graph.ID(i), px, py)
	}
	for _, e := range graph.EdgeList() {
		fmt.Fprintf(bw, "%d--%d [label=\"%s\", fontsize=\"11\"];\n",
			e.U, e.V, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// WriteDOTFile renders the graph to filename. The render box is widened when some
// nodes lie outside it.
func WriteDOTFile(filename string, graph *Graph, locator *NodeLocator, opts RenderOptions) error {
	log.Printf("💾 Writing visualization to %s...\n", filename)

	if outside := graph.NodeCount() - len(locator.Within(opts.Box)); outside > 0 {
		opts = opts.FitTo(graph)
		log.Printf("   ⚠️  %d nodes lie outside the render box, widening it to %+v\n", outside, opts.Box)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WriteDOT(f, graph, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write graph: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Println("   ✅ Visualization written")
	return nil
}
