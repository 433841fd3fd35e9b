// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magsep/apsp"
	"github.com/katalvlaran/magsep/mag"
	"github.com/katalvlaran/magsep/matrix"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// labeledEdge is an edge with vertex labels, as printed in reports.
type labeledEdge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// labeledWitness is mag.Witness with vertex labels instead of indices.
type labeledWitness struct {
	Kind       mag.Kind      `json:"kind" yaml:"kind"`
	Path       []string      `json:"path" yaml:"path,flow"`
	Directed   []labeledEdge `json:"directed" yaml:"directed,flow"`
	Bidirected []labeledEdge `json:"bidirected" yaml:"bidirected,flow"`
}

// checkResult is the serialized outcome for one candidate.
type checkResult struct {
	Name                 string           `json:"name" yaml:"name"`
	Vertices             []string         `json:"vertices" yaml:"vertices,flow"`
	Feasible             bool             `json:"feasible" yaml:"feasible"`
	AlmostDirectedCycles []labeledWitness `json:"almost_directed_cycles" yaml:"almost_directed_cycles"`
	InducingPaths        []labeledWitness `json:"inducing_paths" yaml:"inducing_paths"`
}

// distancesResult is the serialized distance index; nil entries are unreachable.
type distancesResult struct {
	Name      string   `json:"name" yaml:"name"`
	Vertices  []string `json:"vertices" yaml:"vertices,flow"`
	Distances [][]*int `json:"distances" yaml:"distances,flow"`
}

func labelEdges(labels []string, edges []matrix.Edge) []labeledEdge {
	out := make([]labeledEdge, len(edges))
	for i, ed := range edges {
		out[i] = labeledEdge{From: labels[ed.From], To: labels[ed.To]}
	}
	return out
}

func labelWitnesses(labels []string, ws []mag.Witness) []labeledWitness {
	out := make([]labeledWitness, len(ws))
	for i, w := range ws {
		path := make([]string, len(w.Path))
		for j, v := range w.Path {
			path[j] = labels[v]
		}
		out[i] = labeledWitness{
			Kind:       w.Kind,
			Path:       path,
			Directed:   labelEdges(labels, w.Directed),
			Bidirected: labelEdges(labels, w.Bidirected),
		}
	}
	return out
}

func newCheckResult(in candidateInput, r *mag.Report) checkResult {
	return checkResult{
		Name:                 in.Name,
		Vertices:             in.Labels,
		Feasible:             r.Feasible(),
		AlmostDirectedCycles: labelWitnesses(in.Labels, r.AlmostDirectedCycles),
		InducingPaths:        labelWitnesses(in.Labels, r.InducingPaths),
	}
}

func newDistancesResult(in candidateInput, d *apsp.Distances) distancesResult {
	rows := d.Rows()
	out := make([][]*int, len(rows))
	for i, row := range rows {
		out[i] = make([]*int, len(row))
		for j, v := range row {
			if v != apsp.Inf {
				v := v
				out[i][j] = &v
			}
		}
	}
	return distancesResult{Name: in.Name, Vertices: in.Labels, Distances: out}
}

// encode writes v as YAML or JSON.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("output %q: %w", format, ErrInvalidConfig)
	}
}

func joinEdges(edges []labeledEdge, arrow string) string {
	parts := make([]string, len(edges))
	for i, ed := range edges {
		parts[i] = ed.From + " " + arrow + " " + ed.To
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// writeCheckText prints one block per candidate:
//
//	✗ example (4 vertices): 1 inducing path, 0 almost directed cycles
//	  inducing-path  q <-> y <-> w <-> x
//	    directed:    y -> x, w -> q
//	    bidirected:  q <-> y, x <-> w, y <-> w
func writeCheckText(w io.Writer, results []checkResult) error {
	var sb strings.Builder
	for _, r := range results {
		header := fmt.Sprintf("%s (%s)", styleTitle.Render(r.Name), plural(len(r.Vertices), "vertex", "vertices"))
		if r.Feasible {
			fmt.Fprintf(&sb, "%s %s: feasible\n", styleSuccess.Render(iconSuccess), header)
			continue
		}
		fmt.Fprintf(&sb, "%s %s: %s, %s\n", styleError.Render(iconError), header,
			plural(len(r.InducingPaths), "inducing path", "inducing paths"),
			plural(len(r.AlmostDirectedCycles), "almost directed cycle", "almost directed cycles"))
		for _, ws := range [][]labeledWitness{r.AlmostDirectedCycles, r.InducingPaths} {
			for _, wt := range ws {
				fmt.Fprintf(&sb, "  %s  %s\n", wt.Kind, strings.Join(wt.Path, " <-> "))
				fmt.Fprintf(&sb, "    %s %s\n", styleDim.Render("directed:  "), joinEdges(wt.Directed, "->"))
				fmt.Fprintf(&sb, "    %s %s\n", styleDim.Render("bidirected:"), joinEdges(wt.Bidirected, "<->"))
			}
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeDistancesText renders the index as a table with "inf" for unreachable pairs.
func writeDistancesText(w io.Writer, r distancesResult) error {
	rows := make([][]string, len(r.Distances))
	for i, row := range r.Distances {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, r.Vertices[i])
		for _, v := range row {
			if v == nil {
				cells = append(cells, apsp.FormatDistance(apsp.Inf))
				continue
			}
			cells = append(cells, apsp.FormatDistance(*v))
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(append([]string{""}, r.Vertices...)...).
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%s\n", styleTitle.Render(r.Name), t.String())
	return err
}
