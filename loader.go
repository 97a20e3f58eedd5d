package main

import (
	"log"
	"os"
	"path/filepath"
)

// LoadGraphFile reads a graph description from disk and builds the graph.
// A missing or unreadable file is reported as *IOError so the caller can ask for another path.
func LoadGraphFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	log.Printf("Loading graph from %s...\n", filepath.Base(path))

	tables, err := ParseGraphText(string(data))
	if err != nil {
		return nil, err
	}
	for _, warning := range tables.Warnings {
		log.Printf("⚠️  %s\n", warning)
	}
	parseWarningsTotal.Add(float64(len(tables.Warnings)))

	graph, err := BuildGraph(tables)
	if err != nil {
		return nil, err
	}

	log.Printf("   ✅ Loaded %d nodes and %d edges\n", graph.NodeCount(), graph.EdgeCount())
	return graph, nil
}
