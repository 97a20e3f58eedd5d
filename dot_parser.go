package main

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	nodeTokenRe  = regexp.MustCompile(`^("[^"]*"|-?[\w.]+)$`)
	posAttrRe    = regexp.MustCompile(`\bpos\s*=\s*"([^"]*)"`)
	weightAttrRe = regexp.MustCompile(`\bweight\s*=\s*(?:"([^"]*)"|([^,\]\s;]+))`)
	labelAttrRe  = regexp.MustCompile(`\blabel\s*=\s*(?:"([^"]*)"|([^,\]\s;]+))`)
)

// PositionDecl is a node line carrying a coordinate annotation
type PositionDecl struct {
	ID    int
	Point Point
	Line  int
}

// EdgeDecl is an undirected edge between two declared node ids
type EdgeDecl struct {
	From     int
	To       int
	Weight   float64
	Weighted bool // false when the line had no weight annotation
	Line     int
}

// GraphTables holds everything extracted from a graph description, keyed by file id
type GraphTables struct {
	NodeIDs   []int // file ids in first-seen order
	Positions map[int]Point
	Edges     []EdgeDecl
	Warnings  []string
}

// ParseGraphText scans a graph description in two passes: the first sizes the tables,
// the second extracts node positions and weighted edges. Lines that are neither position
// nor edge declarations are skipped; lines with a -- whose endpoints are not node ids
// are skipped with a warning.
func ParseGraphText(text string) (*GraphTables, error) {
	lines := strings.Split(text, "\n")
	stmts := make([]statement, len(lines))

	posCount, edgeCount := 0, 0
	for i, raw := range lines {
		stmts[i] = scanStatement(strings.TrimRight(raw, "\r"))
		switch stmts[i].kind {
		case linePosition:
			posCount++
		case lineEdge:
			edgeCount += len(stmts[i].ids) - 1
		}
	}

	tables := &GraphTables{
		NodeIDs:   make([]int, 0, posCount),
		Positions: make(map[int]Point, posCount),
		Edges:     make([]EdgeDecl, 0, edgeCount),
	}

	for i, stmt := range stmts {
		line := strings.TrimRight(lines[i], "\r")
		lineNo := i + 1

		switch stmt.kind {
		case linePosition:
			decl, err := parsePositionLine(stmt)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			if _, dup := tables.Positions[decl.ID]; dup {
				return nil, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("node %d declared twice", decl.ID)}
			}
			decl.Line = lineNo
			tables.NodeIDs = append(tables.NodeIDs, decl.ID)
			tables.Positions[decl.ID] = decl.Point

		case lineEdge:
			decls, err := parseEdgeLine(stmt)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			for _, decl := range decls {
				decl.Line = lineNo
				if !decl.Weighted {
					tables.Warnings = append(tables.Warnings,
						fmt.Sprintf("line %d: edge %d -- %d has no weight, defaulting to 0", lineNo, decl.From, decl.To))
				}
				tables.Edges = append(tables.Edges, decl)
			}

		case lineBadEdge:
			tables.Warnings = append(tables.Warnings,
				fmt.Sprintf("line %d: skipping unrecognized edge statement %q", lineNo, strings.TrimSpace(line)))
		}
	}

	return tables, nil
}

// attribute statements such as `node [pos="0,0"]` set defaults and declare no node
var dotKeywords = map[string]bool{"graph": true, "node": true, "edge": true}

type lineKind int

const (
	lineOther lineKind = iota
	linePosition
	lineEdge
	lineBadEdge // contains -- but an endpoint is not a node id
)

// statement is one line split into its endpoint tokens and its attribute list
type statement struct {
	kind  lineKind
	ids   []string // a single node for positions, the chain u -- v -- ... for edges
	attrs string
}

func scanStatement(line string) statement {
	if i := commentStart(line); i >= 0 {
		line = line[:i]
	}
	head, attrs := line, ""
	if i := indexOutsideQuotes(line, "["); i >= 0 {
		head, attrs = line[:i], line[i:]
	}
	head = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(head), ";"))

	if parts := splitOutsideQuotes(head, "--"); len(parts) > 1 {
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
			if !nodeTokenRe.MatchString(parts[i]) {
				return statement{kind: lineBadEdge}
			}
		}
		return statement{kind: lineEdge, ids: parts, attrs: attrs}
	}

	if !nodeTokenRe.MatchString(head) || dotKeywords[strings.ToLower(head)] || !posAttrRe.MatchString(attrs) {
		return statement{kind: lineOther}
	}
	return statement{kind: linePosition, ids: []string{head}, attrs: attrs}
}

// commentStart finds a // or # comment that is not inside a quoted string
func commentStart(line string) int {
	slash, hash := indexOutsideQuotes(line, "//"), indexOutsideQuotes(line, "#")
	if slash < 0 || (hash >= 0 && hash < slash) {
		return hash
	}
	return slash
}

func indexOutsideQuotes(s, sep string) int {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"':
			quoted = !quoted
		case !quoted && strings.HasPrefix(s[i:], sep):
			return i
		}
	}
	return -1
}

func splitOutsideQuotes(s, sep string) []string {
	var parts []string
	for {
		i := indexOutsideQuotes(s, sep)
		if i < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:i])
		s = s[i+len(sep):]
	}
}

// parsePositionLine handles `<id> [..., pos="<x>,<y>", ...]`
func parsePositionLine(stmt statement) (PositionDecl, error) {
	id, err := parseNodeID(stmt.ids[0])
	if err != nil {
		return PositionDecl{}, err
	}

	m := posAttrRe.FindStringSubmatch(stmt.attrs)
	if m == nil {
		return PositionDecl{}, errors.New("missing pos attribute")
	}
	fields := strings.Split(strings.TrimSuffix(strings.TrimSpace(m[1]), "!"), ",")
	if len(fields) != 2 {
		return PositionDecl{}, fmt.Errorf("pos %q must hold exactly two values", m[1])
	}
	x, err := parseCoordinate(fields[0])
	if err != nil {
		return PositionDecl{}, fmt.Errorf("invalid x coordinate: %w", err)
	}
	y, err := parseCoordinate(fields[1])
	if err != nil {
		return PositionDecl{}, fmt.Errorf("invalid y coordinate: %w", err)
	}

	return PositionDecl{ID: id, Point: Point{X: x, Y: y}}, nil
}

// parseEdgeLine handles `<u> -- <v> [..., label="<weight>", ...]`. A chain
// `a -- b -- c` yields one edge per consecutive pair, all sharing the weight.
func parseEdgeLine(stmt statement) ([]EdgeDecl, error) {
	ids := make([]int, len(stmt.ids))
	for i, token := range stmt.ids {
		id, err := parseNodeID(token)
		if err != nil {
			return nil, fmt.Errorf("invalid endpoint %d: %w", i+1, err)
		}
		ids[i] = id
	}

	weight, weighted := 0.0, false
	raw, ok := attrValue(weightAttrRe, stmt.attrs)
	if !ok {
		raw, ok = attrValue(labelAttrRe, stmt.attrs)
	}
	if ok {
		w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", raw, err)
		}
		if !isFiniteNonNegative(w) {
			return nil, fmt.Errorf("weight %v must be finite and non-negative", w)
		}
		weight, weighted = w, true
	}

	decls := make([]EdgeDecl, 0, len(ids)-1)
	for i := 1; i < len(ids); i++ {
		decls = append(decls, EdgeDecl{From: ids[i-1], To: ids[i], Weight: weight, Weighted: weighted})
	}
	return decls, nil
}

func attrValue(re *regexp.Regexp, attrs string) (string, bool) {
	m := re.FindStringSubmatch(attrs)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}

func parseNodeID(s string) (int, error) {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	if s == "" {
		return 0, errors.New("empty node id")
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid node id %q", s)
	}
	return id, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %v is not finite", v)
	}
	return v, nil
}
