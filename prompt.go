package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks the operator for search inputs on a console
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads answers from r and writes questions to w
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// PromptNode asks for a node index until the answer lies in [0, nodeCount-1]
func (p *Prompter) PromptNode(role string, nodeCount int) (int, error) {
	if nodeCount <= 0 {
		return 0, errors.New("graph has no nodes")
	}
	for {
		fmt.Fprintf(p.out, "Define %s vertex between 0 and %d\n", role, nodeCount-1)
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 0 && n < nodeCount {
			return n, nil
		}
		fmt.Fprintf(p.out, "Invalid input, please input %s vertex again\n\n", role)
	}
}

// LoadGraphInteractive loads path, asking for another path for as long as the file
// cannot be opened. Parse and graph errors are returned as is.
func (p *Prompter) LoadGraphInteractive(path string) (*Graph, string, error) {
	for {
		graph, err := LoadGraphFile(path)
		var ioErr *IOError
		if !errors.As(err, &ioErr) {
			return graph, path, err
		}

		fmt.Fprintf(p.out, "File not opened, did you type the path correctly?\nPlease try again.\n\n")
		path, err = p.readLine()
		if err != nil {
			return nil, "", fmt.Errorf("no usable graph file: %w", ioErr)
		}
	}
}
