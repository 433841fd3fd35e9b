// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magsep/mag"
	"github.com/katalvlaran/magsep/matrix"
)

// vertexRef is one end of an edge in an input file: a label or an index.
type vertexRef struct {
	label   string
	index   int
	isLabel bool
}

func (r vertexRef) String() string {
	if r.isLabel {
		return strconv.Quote(r.label)
	}
	return strconv.Itoa(r.index)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *vertexRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: vertex must be a label or an index: %w", node.Line, ErrBadPair)
	}
	if node.Tag == "!!int" {
		r.isLabel = false
		return node.Decode(&r.index)
	}
	r.isLabel = true
	return node.Decode(&r.label)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *vertexRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		r.isLabel = true
		return json.Unmarshal(b, &r.label)
	}
	r.isLabel = false
	if err := json.Unmarshal(b, &r.index); err != nil {
		return fmt.Errorf("vertex %s must be a label or an index: %w", b, ErrBadPair)
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (r *vertexRef) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		r.label, r.isLabel = x, true
	case int64:
		r.index, r.isLabel = int(x), false
	default:
		return fmt.Errorf("vertex %v must be a label or an index: %w", v, ErrBadPair)
	}
	return nil
}

// candidateFile is the on-disk form of a candidate. Edges are given either as
// lists of pairs or as 0/1 matrices, per kind.
//
//	name: example
//	vertices: [q, x, y, w]
//	directed:   [[w, x], [q, y]]
//	bidirected: [[x, q], [y, w]]
type candidateFile struct {
	Name             string        `yaml:"name" json:"name" toml:"name"`
	Vertices         []string      `yaml:"vertices" json:"vertices" toml:"vertices"`
	Directed         [][]vertexRef `yaml:"directed" json:"directed" toml:"directed"`
	Bidirected       [][]vertexRef `yaml:"bidirected" json:"bidirected" toml:"bidirected"`
	DirectedMatrix   [][]int       `yaml:"directed_matrix" json:"directed_matrix" toml:"directed_matrix"`
	BidirectedMatrix [][]int       `yaml:"bidirected_matrix" json:"bidirected_matrix" toml:"bidirected_matrix"`
}

// candidateInput is a decoded, validated candidate.
type candidateInput struct {
	Name       string
	Labels     []string
	Directed   *matrix.Adjacency
	Bidirected *matrix.Adjacency
}

func (in candidateInput) order() int { return len(in.Labels) }

func (in candidateInput) candidate() mag.Candidate {
	return mag.Candidate{Name: in.Name, Directed: in.Directed, Bidirected: in.Bidirected}
}

// readCandidate loads and validates the candidate stored at path. The format
// is chosen by extension.
func readCandidate(path string) (candidateInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return candidateInput{}, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	var raw candidateFile
	if err := decodeCandidate(f, filepath.Ext(path), &raw); err != nil {
		return candidateInput{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if raw.Name == "" {
		raw.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	in, err := raw.resolve()
	if err != nil {
		return candidateInput{}, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// decodeCandidate decodes r by format extension, rejecting unknown fields.
func decodeCandidate(r io.Reader, ext string, dst *candidateFile) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(dst)
	case ".toml":
		md, err := toml.NewDecoder(r).Decode(dst)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %s: %w", undecoded[0], ErrUnknownField)
		}
		return nil
	default:
		return fmt.Errorf("%q (want .yaml, .yml, .toml or .json): %w", ext, ErrUnsupportedFormat)
	}
}

// resolve turns the file form into matrices.
//
// The order is, in priority: the number of declared vertices, the size of a
// given matrix, one past the largest index used by an edge list.
func (f candidateFile) resolve() (candidateInput, error) {
	if len(f.Directed) > 0 && f.DirectedMatrix != nil {
		return candidateInput{}, fmt.Errorf("directed given as list and matrix: %w", ErrConflictingInput)
	}
	if len(f.Bidirected) > 0 && f.BidirectedMatrix != nil {
		return candidateInput{}, fmt.Errorf("bidirected given as list and matrix: %w", ErrConflictingInput)
	}

	index := make(map[string]int, len(f.Vertices))
	for i, l := range f.Vertices {
		if _, dup := index[l]; dup {
			return candidateInput{}, fmt.Errorf("%q: %w", l, ErrDuplicateVertex)
		}
		index[l] = i
	}

	n, err := f.order()
	if err != nil {
		return candidateInput{}, err
	}

	dir, err := buildAdjacency("directed", n, f.Directed, f.DirectedMatrix, index, false)
	if err != nil {
		return candidateInput{}, err
	}
	bi, err := buildAdjacency("bidirected", n, f.Bidirected, f.BidirectedMatrix, index, true)
	if err != nil {
		return candidateInput{}, err
	}
	if err := matrix.ValidateMixed(dir, bi); err != nil {
		return candidateInput{}, err
	}

	labels := f.Vertices
	if len(labels) == 0 {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}

	return candidateInput{Name: f.Name, Labels: labels, Directed: dir, Bidirected: bi}, nil
}

// order determines the vertex count; see resolve.
func (f candidateFile) order() (int, error) {
	if len(f.Vertices) > 0 {
		for _, m := range [][][]int{f.DirectedMatrix, f.BidirectedMatrix} {
			if m != nil && len(m) != len(f.Vertices) {
				return 0, fmt.Errorf("%d vertices declared, matrix has %d rows: %w",
					len(f.Vertices), len(m), ErrConflictingInput)
			}
		}
		return len(f.Vertices), nil
	}
	if f.DirectedMatrix != nil {
		return len(f.DirectedMatrix), nil
	}
	if f.BidirectedMatrix != nil {
		return len(f.BidirectedMatrix), nil
	}

	n := 0
	for _, list := range [][][]vertexRef{f.Directed, f.Bidirected} {
		for _, pair := range list {
			for _, r := range pair {
				if r.isLabel {
					return 0, fmt.Errorf("label %s used without a vertices list: %w", r, ErrUnknownVertex)
				}
				if r.index >= n {
					n = r.index + 1
				}
			}
		}
	}

	return n, nil
}

// buildAdjacency builds one edge kind from its list or matrix form.
func buildAdjacency(kind string, n int, pairs [][]vertexRef, rows [][]int, index map[string]int, symmetric bool) (*matrix.Adjacency, error) {
	if rows != nil {
		a, err := matrix.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%s_matrix: %w", kind, err)
		}
		return a, nil
	}

	edges := make([]matrix.Edge, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%s[%d] has %d entries: %w", kind, i, len(pair), ErrBadPair)
		}
		from, err := lookupVertex(pair[0], n, index)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}
		to, err := lookupVertex(pair[1], n, index)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}
		edges = append(edges, matrix.Edge{From: from, To: to})
	}

	a, err := matrix.FromEdges(n, edges, symmetric)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return a, nil
}

func lookupVertex(r vertexRef, n int, index map[string]int) (int, error) {
	if r.isLabel {
		v, ok := index[r.label]
		if !ok {
			return 0, fmt.Errorf("%s: %w", r, ErrUnknownVertex)
		}
		return v, nil
	}
	if r.index < 0 || r.index >= n {
		return 0, fmt.Errorf("index %d outside [0, %d): %w", r.index, n, ErrUnknownVertex)
	}
	return r.index, nil
}
