// Package engine ties the lexer, declaration parser, graph, reducer, and
// weighter into the single ingest→reduce→weigh pass described in
// SPEC_FULL.md §6, mirroring the shape of the teacher's
// internal/engine.InferenceEngine (a thin orchestration type with one
// entry point) without sharing its probabilistic-query domain.
package engine

import (
	"context"
	"io"

	"github.com/ritamzico/linkweight/decl"
	"github.com/ritamzico/linkweight/lexer"
	"github.com/ritamzico/linkweight/linkgraph"
	"github.com/ritamzico/linkweight/reduce"
	"github.com/ritamzico/linkweight/weight"
)

// Config selects the weighting policy for a Run. A nil Weight defaults to
// PageRank with its own defaults.
type Config struct {
	Weight weight.Policy
	Trace  decl.Tracer
}

// Result is the outcome of one ingestion pass: the weight vector (indexed
// by PageId; index 0 unused), the reduced graph for name lookups, the raw
// pre-reduction graph, and the warnings the parser's recovery policy
// collected along the way.
//
// RawGraph exists because reduce.Reduce builds its output with
// linkgraph.New and never calls DefineRedirect on it (SPEC_FULL.md §4.6.5:
// a reduced graph has no redirects by definition). Anything that needs to
// see redirect pairs — dump.WriteRedirects in particular — must read
// RawGraph, not Graph.
type Result struct {
	Weights  []float64
	Graph    *linkgraph.Graph
	RawGraph *linkgraph.Graph
	Warnings []string
}

// Run reads a declaration stream from r, builds a Graph, reduces it per
// cfg.Weight's endpoint policy, and computes its weight vector.
func Run(ctx context.Context, r io.Reader, cfg Config) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	policy := cfg.Weight
	if policy == nil {
		policy = weight.PageRank{}
	}

	g := linkgraph.New()
	b := &builder{g: g}
	var warnings []string

	opts := decl.Options{
		Warnings: decl.WarnFunc(func(msg string) { warnings = append(warnings, msg) }),
		Trace:    cfg.Trace,
	}
	if err := decl.Parse(lexer.New(r), b, opts); err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	reduced := reduce.Reduce(g, policy)
	weights, err := weight.Compute(reduced, policy)
	if err != nil {
		return Result{}, err
	}

	return Result{Weights: weights, Graph: reduced, RawGraph: g, Warnings: warnings}, nil
}

// builder adapts a linkgraph.Graph to decl.Sink.
type builder struct {
	g *linkgraph.Graph
}

func (b *builder) Begin(subject []byte, declared bool) {
	id := b.g.GetOrCreate(subject)
	if declared {
		b.g.MarkDeclared(id)
	}
}

func (b *builder) Redirect(subject, target []byte) {
	from := b.g.GetOrCreate(subject)
	to := b.g.GetOrCreate(target)
	_ = b.g.DefineRedirect(from, to)
}

func (b *builder) Link(subject, target []byte) {
	from := b.g.GetOrCreate(subject)
	to := b.g.GetOrCreate(target)
	_ = b.g.AddLink(from, to)
}
