package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrompter_PromptNode(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("abc\n7\n-1\n2\n"), &out)

	got, err := prompter.PromptNode("start", 3)
	if err != nil {
		t.Fatalf("PromptNode() error = %v", err)
	}
	if got != 2 {
		t.Errorf("PromptNode() = %d, want 2", got)
	}
	if n := strings.Count(out.String(), "Invalid input"); n != 3 {
		t.Errorf("re-prompted %d times, want 3:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "Define start vertex between 0 and 2") {
		t.Errorf("missing prompt text:\n%s", out.String())
	}
}

func TestPrompter_PromptNodeEOF(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("9\n"), io.Discard)
	if _, err := prompter.PromptNode("end", 3); !errors.Is(err, io.EOF) {
		t.Fatalf("error = %v, want io.EOF", err)
	}
}

func TestPrompter_LoadGraphInteractive(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "graph.dot")
	if err := os.WriteFile(good, []byte(sampleGraph), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader(filepath.Join(dir, "also-missing.dot")+"\n"+good+"\n"), &out)

	graph, path, err := prompter.LoadGraphInteractive(filepath.Join(dir, "missing.dot"))
	if err != nil {
		t.Fatalf("LoadGraphInteractive() error = %v", err)
	}
	if path != good || graph.NodeCount() != 3 {
		t.Errorf("path = %q nodes = %d", path, graph.NodeCount())
	}
	if n := strings.Count(out.String(), "File not opened"); n != 2 {
		t.Errorf("asked for a path %d times, want 2", n)
	}
}

func TestPrompter_LoadGraphInteractiveGivesUp(t *testing.T) {
	prompter := NewPrompter(strings.NewReader(""), io.Discard)
	_, _, err := prompter.LoadGraphInteractive(filepath.Join(t.TempDir(), "missing.dot"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}
}

func TestPrompter_LoadGraphInteractiveParseError(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.dot")
	if err := os.WriteFile(bad, []byte("1 [pos=\"x,1\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	prompter := NewPrompter(strings.NewReader(""), io.Discard)
	_, _, err := prompter.LoadGraphInteractive(bad)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}
