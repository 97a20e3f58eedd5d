package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_NonInteractive(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.dot")
	if err := os.WriteFile(graphPath, []byte(sampleGraph), 0644); err != nil {
		t.Fatal(err)
	}
	vizPath := filepath.Join(dir, "viz.dot")
	routesPath := filepath.Join(dir, "routes.geojson")

	var out bytes.Buffer
	err := run(context.Background(), []string{
		"-graph", graphPath,
		"-start", "0",
		"-goal-pos", "5.9,0.1",
		"-interactive=false",
		"-viz-out", vizPath,
		"-geojson-out", routesPath,
	}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, want := range []string{"Start vertex: 10", "Goal vertex: 30", "Shortest path from 10 to 30: 10 -> 20 -> 30"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	for _, path := range []string{vizPath, routesPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output file %s: %v", path, err)
		}
	}
}

func TestRun_PromptsForEndpoints(t *testing.T) {
	graphPath := filepath.Join(t.TempDir(), "graph.dot")
	if err := os.WriteFile(graphPath, []byte(sampleGraph), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := run(context.Background(), []string{"-graph", graphPath, "-viz-out", ""}, strings.NewReader("5\n1\n0\n"), &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Shortest path from 20 to 10: 20 -> 10") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRun_MissingEndpointWithoutPrompt(t *testing.T) {
	graphPath := filepath.Join(t.TempDir(), "graph.dot")
	if err := os.WriteFile(graphPath, []byte(sampleGraph), 0644); err != nil {
		t.Fatal(err)
	}

	err := run(context.Background(), []string{"-graph", graphPath, "-interactive=false", "-viz-out", ""}, strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "prompting is disabled") {
		t.Fatalf("error = %v, want prompting is disabled", err)
	}
}

func TestRun_FileIDsAndBaseline(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.dot")
	if err := os.WriteFile(graphPath, []byte(sampleGraph), 0644); err != nil {
		t.Fatal(err)
	}
	routesPath := filepath.Join(dir, "routes.geojson")
	args := []string{"-graph", graphPath, "-start-id", "30", "-goal-id", "10", "-interactive=false", "-viz-out", ""}

	var first bytes.Buffer
	if err := run(context.Background(), append(args, "-geojson-out", routesPath), strings.NewReader(""), &first); err != nil {
		t.Fatalf("first run() error = %v", err)
	}
	if !strings.Contains(first.String(), "Shortest path from 30 to 10: 30 -> 20 -> 10") {
		t.Errorf("unexpected output:\n%s", first.String())
	}

	var second bytes.Buffer
	if err := run(context.Background(), append(args, "-baseline", routesPath), strings.NewReader(""), &second); err != nil {
		t.Fatalf("second run() error = %v", err)
	}
	for _, want := range []string{"Baseline euclidean: unchanged", "Baseline manhattan: unchanged"} {
		if !strings.Contains(second.String(), want) {
			t.Errorf("output missing %q:\n%s", want, second.String())
		}
	}
}

func TestRun_UnknownFileID(t *testing.T) {
	graphPath := filepath.Join(t.TempDir(), "graph.dot")
	if err := os.WriteFile(graphPath, []byte(sampleGraph), 0644); err != nil {
		t.Fatal(err)
	}

	err := run(context.Background(), []string{"-graph", graphPath, "-start-id", "99", "-goal", "0", "-interactive=false", "-viz-out", ""}, strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "start node id 99 is not declared") {
		t.Fatalf("error = %v, want undeclared start id", err)
	}
}
