// Package swc reads neuron and vessel morphologies in the SWC format into
// a core.Graph.
//
// Each data line is a sample
//
//	index type x y z radius parent
//
// Samples are numbered 1, 2, ... in file order; the first one is the root
// and has parent -1. Every later sample k becomes node k and an edge
// (k, parent) carrying the sample's radius and type. Comment lines are
// only allowed before the first sample.
package swc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphmesh/core"
)

// ErrMalformedRecord reports a line that is not a valid sample, or samples
// that do not form a well-numbered single-root morphology.
var ErrMalformedRecord = errors.New("swc: malformed record")

const (
	rootIndex  = 1
	rootParent = -1
	// SomaType is the SWC structure type of soma samples.
	SomaType = 1
)

// Option configures Parse.
type Option func(*options)

type options struct {
	commentPrefix string
	onComment     func(string)
}

// WithCommentPrefix sets the prefix marking header comment lines ("#" by default).
// Panics on an empty prefix.
func WithCommentPrefix(prefix string) Option {
	if prefix == "" {
		panic("swc: WithCommentPrefix(\"\")")
	}

	return func(o *options) { o.commentPrefix = prefix }
}

// WithCommentSink receives each header comment line, prefix included.
func WithCommentSink(fn func(line string)) Option {
	return func(o *options) { o.onComment = fn }
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "swc: open")
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return g, nil
}

// Parse reads SWC samples from r. Blank lines are ignored anywhere.
//
// Errors wrap ErrMalformedRecord and name the offending line; nothing is
// returned on failure.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := options{commentPrefix: "#"}
	for _, fn := range opts {
		fn(&o)
	}

	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		lineNo   int
		next     = rootIndex
		comments int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, o.commentPrefix) {
			if next != rootIndex {
				return nil, errors.Wrapf(ErrMalformedRecord, "line %d: comment after first sample", lineNo)
			}
			comments++
			if o.onComment != nil {
				o.onComment(line)
			}
			continue
		}

		rec, err := sParseRecord.ParseString(fmt.Sprintf("line %d", lineNo), line)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "line %d: %v", lineNo, err)
		}
		if err = add(g, rec, next); err != nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "line %d: %v", lineNo, err)
		}
		next++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "swc: read")
	}
	if next == rootIndex {
		return nil, errors.Wrap(ErrMalformedRecord, "no samples")
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	klog.V(2).Infof("swc: %d samples, %d comment lines", next-rootIndex, comments)

	return g, nil
}

// add applies the numbering rules to rec and inserts it into g.
func add(g *core.Graph, rec *record, want int) error {
	if rec.Index != want {
		return fmt.Errorf("index %d, expected %d", rec.Index, want)
	}
	pos := [3]float64{rec.X, rec.Y, rec.Z}
	if want == rootIndex {
		if rec.Parent != rootParent {
			return fmt.Errorf("root sample has parent %d, expected %d", rec.Parent, rootParent)
		}

		return g.AddNode(rec.Index, pos)
	}
	if rec.Parent == rootParent {
		return fmt.Errorf("sample %d is a second root", rec.Index)
	}
	if err := g.AddNode(rec.Index, pos); err != nil {
		return err
	}
	_, err := g.AddEdge(rec.Index, rec.Parent, rec.Radius, core.WithType(rec.Type))

	return err
}

// TrimSoma removes every soma edge (type SomaType) from g, collapsing the
// cylinder-like soma outline to bare points, and returns the number removed.
// Nodes are kept.
func TrimSoma(g *core.Graph) int {
	n := g.FilterEdges(func(e core.Edge) bool { return e.Type != SomaType })
	klog.V(2).Infof("swc: trimmed %d soma edges", n)

	return n
}
