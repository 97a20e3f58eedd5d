package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestSaveRoutesGeoJSON_RoundTrip(t *testing.T) {
	graph := mustGraph(t,
		[]Point{{5.0, 52.0}, {5.1, 52.0}, {5.2, 52.1}, {9, 9}},
		[]WeightedEdge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 1}},
	)
	found, err := AStar(context.Background(), graph, 0, 2, NewEuclideanHeuristic)
	if err != nil {
		t.Fatal(err)
	}
	missing, err := AStar(context.Background(), graph, 0, 3, NewManhattanHeuristic)
	if err != nil {
		t.Fatal(err)
	}

	filename := filepath.Join(t.TempDir(), "routes.geojson")
	if err := SaveRoutesGeoJSON(filename, graph, []*PathResult{found, missing}); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadRoutesGeoJSON(filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("len(Features) = %d, want only the found route", len(fc.Features))
	}

	feature := fc.Features[0]
	line, ok := feature.Geometry.(orb.LineString)
	if !ok || len(line) != 3 {
		t.Fatalf("Geometry = %#v, want a 3-point LineString", feature.Geometry)
	}
	if !line[2].Equal(orb.Point{5.2, 52.1}) {
		t.Errorf("last point = %v", line[2])
	}
	if got := feature.Properties.MustString("heuristic"); got != "euclidean" {
		t.Errorf("heuristic = %q", got)
	}
	if got := feature.Properties.MustFloat64("cost"); got != 2 {
		t.Errorf("cost = %v, want 2", got)
	}
	if got := feature.Properties.MustFloat64("distanceMeters"); got < 10000 || got > 30000 {
		t.Errorf("distanceMeters = %v, want roughly 19 km", got)
	}
}

func TestLoadRoutesGeoJSON_MissingFile(t *testing.T) {
	if _, err := LoadRoutesGeoJSON(filepath.Join(t.TempDir(), "nope.geojson")); err == nil {
		t.Fatal("LoadRoutesGeoJSON() succeeded on a missing file")
	}
}

func TestCompareRoutes(t *testing.T) {
	graph := mustGraph(t,
		[]Point{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		[]WeightedEdge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 1}, {U: 0, V: 3, Weight: 5}, {U: 3, V: 2, Weight: 5}},
	)
	before, err := RunComparison(context.Background(), graph, 0, 2, Heuristics)
	if err != nil {
		t.Fatal(err)
	}
	filename := filepath.Join(t.TempDir(), "baseline.geojson")
	if err := SaveRoutesGeoJSON(filename, graph, before[:1]); err != nil {
		t.Fatal(err)
	}
	baseline, err := LoadRoutesGeoJSON(filename)
	if err != nil {
		t.Fatal(err)
	}

	detour := mustGraph(t, graph.Nodes,
		[]WeightedEdge{{U: 0, V: 1, Weight: 1}, {U: 0, V: 3, Weight: 5}, {U: 3, V: 2, Weight: 5}},
	)
	after, err := RunComparison(context.Background(), detour, 0, 2, Heuristics)
	if err != nil {
		t.Fatal(err)
	}

	changes := CompareRoutes(baseline, graph, before)
	if len(changes) != 2 || !changes[0].SamePath || changes[1].InBaseline {
		t.Errorf("CompareRoutes(before) = %+v", changes)
	}

	changes = CompareRoutes(baseline, detour, after)
	if !changes[0].InBaseline || changes[0].SamePath || changes[0].BaselineCost != 2 || changes[0].Cost != 10 {
		t.Errorf("CompareRoutes(after)[0] = %+v", changes[0])
	}

	var buf bytes.Buffer
	if err := WriteBaselineReport(&buf, changes); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Baseline euclidean: cost 2 -> 10", "Baseline manhattan: new route, cost 10"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report missing %q:\n%s", want, buf.String())
		}
	}
}
