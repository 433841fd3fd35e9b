// SPDX-License-Identifier: MIT

package mag

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/magsep/apsp"
	"github.com/katalvlaran/magsep/matrix"
)

// Kind distinguishes the two structural violations.
type Kind int

const (
	// KindInducingPath: an inducing path between non-adjacent vertices (maximality).
	KindInducingPath Kind = iota
	// KindAlmostDirectedCycle: u↔v together with a directed path u→…→v (ancestrality).
	KindAlmostDirectedCycle
)

// String returns the kebab-case name used in serialized reports.
func (k Kind) String() string {
	switch k {
	case KindInducingPath:
		return "inducing-path"
	case KindAlmostDirectedCycle:
		return "almost-directed-cycle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindInducingPath, KindAlmostDirectedCycle:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "inducing-path":
		*k = KindInducingPath
	case "almost-directed-cycle":
		*k = KindAlmostDirectedCycle
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(b))
	}

	return nil
}

// Witness is the edge evidence of one violation.
//
// For KindInducingPath, Path is the bidirected path (start < end unless both
// orientations are requested through WithSearchOptions), Bidirected its
// consecutive edges and Directed the union of the ancestor witnesses of
// every interior vertex. For KindAlmostDirectedCycle, Path is [u, v], the
// directed path runs u→v, and Bidirected holds the single edge u↔v.
// Bidirected edges are canonical (From < To); both edge lists are sorted.
type Witness struct {
	Kind       Kind          `json:"kind" yaml:"kind"`
	Path       []int         `json:"path" yaml:"path,flow"`
	Directed   []matrix.Edge `json:"directed" yaml:"directed"`
	Bidirected []matrix.Edge `json:"bidirected" yaml:"bidirected"`
}

// NoGood is the constraint an optimizer adds for a witness: among the listed
// edge variables at most MaxPresent may be selected simultaneously.
type NoGood struct {
	Directed   []matrix.Edge
	Bidirected []matrix.Edge
	MaxPresent int
}

// NoGood returns the "forbid this exact combination" constraint of w.
func (w Witness) NoGood() NoGood {
	return NoGood{
		Directed:   w.Directed,
		Bidirected: w.Bidirected,
		MaxPresent: len(w.Directed) + len(w.Bidirected) - 1,
	}
}

// Key is a canonical signature of the edge combination, suitable for
// de-duplicating constraints in a pool.
func (w Witness) Key() string {
	var sb strings.Builder
	sb.WriteString("d:")
	for i, ed := range w.Directed {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(ed.String())
	}
	sb.WriteString("|b:")
	for i, ed := range w.Bidirected {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(ed.String())
	}

	return sb.String()
}

// Report is the outcome of separating one candidate.
type Report struct {
	// Distances is the reachability index of the directed skeleton.
	Distances *apsp.Distances `json:"-" yaml:"-"`

	InducingPaths        []Witness `json:"inducing_paths" yaml:"inducing_paths"`
	AlmostDirectedCycles []Witness `json:"almost_directed_cycles" yaml:"almost_directed_cycles"`
}

// Feasible reports whether no violation was found.
func (r *Report) Feasible() bool {
	return len(r.InducingPaths) == 0 && len(r.AlmostDirectedCycles) == 0
}

// All returns every witness, almost directed cycles first.
func (r *Report) All() []Witness {
	out := make([]Witness, 0, len(r.InducingPaths)+len(r.AlmostDirectedCycles))
	out = append(out, r.AlmostDirectedCycles...)

	return append(out, r.InducingPaths...)
}

// Candidate is one (directed, bidirected) pair submitted to CheckAll.
type Candidate struct {
	Name       string
	Directed   *matrix.Adjacency
	Bidirected *matrix.Adjacency
}

// Oracle is the contract the optimizer's lazy-constraint callback depends on.
type Oracle interface {
	Separate(dir, bi *matrix.Adjacency) (*Report, error)
}
