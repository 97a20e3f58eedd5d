package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultGraphPath  = "files/random64_4_1517441833.dot"
	defaultVizPath    = "test-astar-cities.dot"
	defaultHeuristics = "euclidean,manhattan"
)

// Config holds the command-line settings of a search session
type Config struct {
	GraphPath    string
	Start        int // node index, -1 when not given
	Goal         int
	StartID      *int // file id, takes precedence over Start
	GoalID       *int
	StartPos     *Point // resolved to the nearest node when set
	GoalPos      *Point
	Heuristics   []string
	Factories    []HeuristicFactory // resolved from Heuristics, same order
	VizPath      string             // "" disables the visualization file
	GeoJSONPath  string
	BaselinePath string // routes of an earlier run to compare against
	MetricsPath  string
	Interactive  bool
}

// LoadConfig parses flags, falling back to ASTAR_* environment variables
func LoadConfig(args []string) (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get cwd: %w", err)
	}

	graphPath := envOrDefault("ASTAR_GRAPH_PATH", defaultGraphPath)
	vizPath := envOrDefault("ASTAR_VIZ_PATH", defaultVizPath)
	heuristics := envOrDefault("ASTAR_HEURISTICS", defaultHeuristics)
	start, err := intFromEnv("ASTAR_START", -1)
	if err != nil {
		return Config{}, err
	}
	goal, err := intFromEnv("ASTAR_GOAL", -1)
	if err != nil {
		return Config{}, err
	}
	interactive, err := boolFromEnv("ASTAR_INTERACTIVE", true)
	if err != nil {
		return Config{}, err
	}

	flagSet := flag.NewFlagSet("dot-astar", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagGraph := flagSet.String("graph", graphPath, "path to the graph description")
	flagStart := flagSet.Int("start", start, "start node index (prompted when negative)")
	flagGoal := flagSet.Int("goal", goal, "goal node index (prompted when negative)")
	flagStartID := flagSet.String("start-id", os.Getenv("ASTAR_START_ID"), "start node by its id in the graph file")
	flagGoalID := flagSet.String("goal-id", os.Getenv("ASTAR_GOAL_ID"), "goal node by its id in the graph file")
	flagStartPos := flagSet.String("start-pos", os.Getenv("ASTAR_START_POS"), "start at the node nearest to x,y")
	flagGoalPos := flagSet.String("goal-pos", os.Getenv("ASTAR_GOAL_POS"), "end at the node nearest to x,y")
	flagHeuristics := flagSet.String("heuristics", heuristics, "comma-separated heuristics to compare, run in order")
	flagViz := flagSet.String("viz-out", vizPath, "visualization output file, empty to disable")
	flagGeoJSON := flagSet.String("geojson-out", os.Getenv("ASTAR_GEOJSON_PATH"), "GeoJSON route output file")
	flagBaseline := flagSet.String("baseline", os.Getenv("ASTAR_BASELINE_PATH"), "GeoJSON routes of an earlier run to compare against")
	flagMetrics := flagSet.String("metrics-file", os.Getenv("ASTAR_METRICS_FILE"), "Prometheus text-format metrics output file")
	flagInteractive := flagSet.Bool("interactive", interactive, "prompt for missing inputs on the console")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.SetOutput(os.Stdout)
			flagSet.PrintDefaults()
			return Config{}, err
		}
		return Config{}, err
	}

	config := Config{
		GraphPath:    resolvePath(*flagGraph, cwd),
		Start:        *flagStart,
		Goal:         *flagGoal,
		VizPath:      resolvePath(*flagViz, cwd),
		GeoJSONPath:  resolvePath(*flagGeoJSON, cwd),
		BaselinePath: resolvePath(*flagBaseline, cwd),
		MetricsPath:  resolvePath(*flagMetrics, cwd),
		Interactive:  *flagInteractive,
	}

	if config.GraphPath == "" {
		return Config{}, errors.New("graph path cannot be empty")
	}

	if config.StartID, err = parseIDFlag(*flagStartID); err != nil {
		return Config{}, fmt.Errorf("invalid start-id: %w", err)
	}
	if config.GoalID, err = parseIDFlag(*flagGoalID); err != nil {
		return Config{}, fmt.Errorf("invalid goal-id: %w", err)
	}
	if config.StartPos, err = parsePointFlag(*flagStartPos); err != nil {
		return Config{}, fmt.Errorf("invalid start-pos: %w", err)
	}
	if config.GoalPos, err = parsePointFlag(*flagGoalPos); err != nil {
		return Config{}, fmt.Errorf("invalid goal-pos: %w", err)
	}

	for _, name := range strings.Split(*flagHeuristics, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		factory, err := HeuristicByName(name)
		if err != nil {
			return Config{}, err
		}
		config.Heuristics = append(config.Heuristics, name)
		config.Factories = append(config.Factories, factory)
	}
	if len(config.Heuristics) == 0 {
		return Config{}, errors.New("at least one heuristic is required")
	}

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func boolFromEnv(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func parseIDFlag(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := parseNodeID(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parsePointFlag(value string) (*Point, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	fields := strings.Split(value, ",")
	if len(fields) != 2 {
		return nil, fmt.Errorf("%q must be x,y", value)
	}
	x, err := parseCoordinate(fields[0])
	if err != nil {
		return nil, err
	}
	y, err := parseCoordinate(fields[1])
	if err != nil {
		return nil, err
	}
	return &Point{X: x, Y: y}, nil
}

func resolvePath(path string, cwd string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return trimmed
	}
	if filepath.IsAbs(trimmed) {
		return trimmed
	}
	return filepath.Join(cwd, trimmed)
}
