package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/paulmach/orb/geojson"
)

// RoutesFeatureCollection builds one LineString feature per successful search
func RoutesFeatureCollection(graph *Graph, results []*PathResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range results {
		if !r.Found {
			continue
		}
		feature := geojson.NewFeature(r.LineString())
		feature.Properties["heuristic"] = r.Heuristic
		feature.Properties["start"] = graph.ID(r.Start)
		feature.Properties["goal"] = graph.ID(r.Goal)
		feature.Properties["nodes"] = r.IDs
		feature.Properties["cost"] = r.Cost
		feature.Properties["expanded"] = r.Expanded
		if meters, ok := r.LengthMeters(); ok {
			feature.Properties["distanceMeters"] = meters
		}
		fc.Append(feature)
	}
	return fc
}

// SaveRoutesGeoJSON serializes the found routes and saves them to a GeoJSON file
func SaveRoutesGeoJSON(filename string, graph *Graph, results []*PathResult) error {
	log.Printf("💾 Saving routes to %s...\n", filename)

	data, err := RoutesFeatureCollection(graph, results).MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal routes: %w", err)
	}

	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("   ✅ Routes saved (%d bytes)\n", len(data))
	return nil
}

// LoadRoutesGeoJSON reads a route file written by SaveRoutesGeoJSON
func LoadRoutesGeoJSON(filename string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal routes: %w", err)
	}
	return fc, nil
}

// RouteChange compares a search result with the baseline route found by the same
// heuristic between the same endpoints
type RouteChange struct {
	Heuristic    string
	InBaseline   bool
	Found        bool
	BaselineCost float64
	Cost         float64
	SamePath     bool
}

// CompareRoutes matches each result against a baseline written by SaveRoutesGeoJSON
func CompareRoutes(baseline *geojson.FeatureCollection, graph *Graph, results []*PathResult) []RouteChange {
	changes := make([]RouteChange, 0, len(results))
	for _, r := range results {
		change := RouteChange{Heuristic: r.Heuristic, Found: r.Found, Cost: r.Cost}
		for _, f := range baseline.Features {
			if f.Properties["heuristic"] != r.Heuristic ||
				!sameID(f.Properties["start"], graph.ID(r.Start)) ||
				!sameID(f.Properties["goal"], graph.ID(r.Goal)) {
				continue
			}
			change.InBaseline = true
			change.BaselineCost, _ = f.Properties["cost"].(float64)
			change.SamePath = r.Found && slices.Equal(featureNodeIDs(f), r.IDs)
			break
		}
		changes = append(changes, change)
	}
	return changes
}

// WriteBaselineReport prints one line per heuristic describing how its route moved
func WriteBaselineReport(w io.Writer, changes []RouteChange) error {
	for _, c := range changes {
		var status string
		switch {
		case !c.InBaseline && !c.Found:
			status = "no route in either run"
		case !c.InBaseline:
			status = fmt.Sprintf("new route, cost %g", c.Cost)
		case !c.Found:
			status = fmt.Sprintf("route lost, baseline cost %g", c.BaselineCost)
		case c.SamePath:
			status = "unchanged"
		default:
			status = fmt.Sprintf("cost %g -> %g", c.BaselineCost, c.Cost)
		}
		if _, err := fmt.Fprintf(w, "Baseline %s: %s\n", c.Heuristic, status); err != nil {
			return err
		}
	}
	return nil
}

// JSON numbers decode as float64
func sameID(value interface{}, id int) bool {
	v, ok := value.(float64)
	return ok && v == float64(id)
}

func featureNodeIDs(f *geojson.Feature) []int {
	raw, _ := f.Properties["nodes"].([]interface{})
	ids := make([]int, 0, len(raw))
	for _, v := range raw {
		n, ok := v.(float64)
		if !ok {
			return nil
		}
		ids = append(ids, int(n))
	}
	return ids
}
