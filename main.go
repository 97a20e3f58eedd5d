package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	config, err := LoadConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	log.Println("========================================")
	log.Println("🚀 A* heuristic comparison")
	log.Println("========================================")

	prompter := NewPrompter(stdin, stdout)

	var graph *Graph
	if config.Interactive {
		graph, config.GraphPath, err = prompter.LoadGraphInteractive(config.GraphPath)
	} else {
		graph, err = LoadGraphFile(config.GraphPath)
	}
	if err != nil {
		return err
	}

	locator := NewNodeLocator(graph)

	resolver := endpointResolver{graph: graph, locator: locator, prompter: prompter, interactive: config.Interactive}
	start, err := resolver.resolve("start", config.Start, config.StartID, config.StartPos)
	if err != nil {
		return err
	}
	goal, err := resolver.resolve("end", config.Goal, config.GoalID, config.GoalPos)
	if err != nil {
		return err
	}
	if err := checkEndpoints(graph, start, goal); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nStart vertex: %d\n\nGoal vertex: %d\n\n", graph.ID(start), graph.ID(goal))

	if config.VizPath != "" {
		if err := WriteDOTFile(config.VizPath, graph, locator, DefaultRenderOptions); err != nil {
			log.Printf("⚠️  Failed to write visualization: %v\n", err)
		}
	}

	results, err := RunComparison(ctx, graph, start, goal, config.Factories)
	if err != nil {
		return err
	}
	if err := WriteReport(stdout, graph, results); err != nil {
		return err
	}

	if config.BaselinePath != "" {
		baseline, err := LoadRoutesGeoJSON(config.BaselinePath)
		if err != nil {
			log.Printf("⚠️  Failed to load baseline: %v\n", err)
		} else if err := WriteBaselineReport(stdout, CompareRoutes(baseline, graph, results)); err != nil {
			return err
		}
	}
	if config.GeoJSONPath != "" {
		if err := SaveRoutesGeoJSON(config.GeoJSONPath, graph, results); err != nil {
			log.Printf("⚠️  Failed to save routes: %v\n", err)
		}
	}
	if config.MetricsPath != "" {
		if err := WriteMetricsFile(config.MetricsPath); err != nil {
			log.Printf("⚠️  Failed to save metrics: %v\n", err)
		}
	}

	log.Println("========================================")
	return nil
}

type endpointResolver struct {
	graph       *Graph
	locator     *NodeLocator
	prompter    *Prompter
	interactive bool
}

// resolve picks a node from a coordinate, a file id, an explicit index, or the console, in that order
func (r endpointResolver) resolve(role string, index int, id *int, pos *Point) (int, error) {
	if pos != nil {
		n, ok := r.locator.Nearest(*pos)
		if !ok {
			return 0, fmt.Errorf("no node near %s position (%.6f, %.6f)", role, pos.X, pos.Y)
		}
		log.Printf("   %s position (%.6f, %.6f) snapped to node %d\n", role, pos.X, pos.Y, r.graph.ID(n))
		return n, nil
	}
	if id != nil {
		n, ok := r.graph.IndexOf(*id)
		if !ok {
			return 0, fmt.Errorf("%s node id %d is not declared in the graph", role, *id)
		}
		return n, nil
	}
	if index >= 0 {
		return index, nil
	}
	if !r.interactive {
		return 0, fmt.Errorf("%s vertex not given and prompting is disabled", role)
	}
	return r.prompter.PromptNode(role, r.graph.NodeCount())
}
