package decl

import (
	"errors"
	"fmt"
	"io"

	"github.com/ritamzico/linkweight/lexer"
)

type state int

const (
	stateIdle state = iota
	stateAwaitSubject
	stateAwaitBody
	stateAwaitRedirectTarget
	stateInBody
)

// parser holds the accumulators for the declaration currently in progress.
// It is deliberately a flat struct rather than a tree of per-state types:
// the grammar is small and the original strusPageWeight.cpp main loop keys
// its recovery purely on lexeme kind, not on a strict position within the
// declaration — the Go translation below keeps that shape.
type parser struct {
	sink Sink
	opts Options

	state   state
	subject []byte
	target  []byte // redirect target, nil if none seen
	links   [][]byte
}

// Parse consumes tokens from lx until the stream is exhausted, emitting one
// Begin/Redirect/Link sequence per well-formed declaration to sink.
//
// Malformed declarations do not abort the pass: §4.2's recovery policy
// resets the in-progress declaration and reports a warning (when opts.Warnings
// is set), then continues with the next token. A non-nil, non-io.EOF error
// from lx.Next is the only condition that stops Parse early.
func Parse(lx *lexer.Lexer, sink Sink, opts Options) error {
	p := &parser{sink: sink, opts: opts}
	for {
		tok, err := lx.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// §4.2: end of input mid-declaration discards the partial
				// declaration silently; there is no synthetic ';'.
				return nil
			}
			return err
		}
		p.step(tok)
	}
}

func (p *parser) warn(line int, format string, args ...any) {
	if p.opts.Warnings == nil {
		return
	}
	p.opts.Warnings.Warn(fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)))
}

func (p *parser) trace(format string, args ...any) {
	if p.opts.Trace == nil {
		return
	}
	p.opts.Trace.Trace(fmt.Sprintf(format, args...))
}

func (p *parser) reset() {
	p.state = stateIdle
	p.subject = nil
	p.target = nil
	p.links = nil
}

// accumulated reports whether anything has been captured for the
// declaration in progress — mirrors pagerank.cpp/pageweight.cpp's
// `!declname.empty() || !linknames.empty() || !redirectname.empty()` guard
// before warning on an unterminated declaration.
func (p *parser) accumulated() bool {
	return len(p.subject) > 0 || len(p.target) > 0 || len(p.links) > 0
}

func (p *parser) step(tok lexer.Token) {
	// STARTRULE always resets, regardless of current state — a new
	// declaration beginning is never itself a recovery case.
	if tok.Kind == lexer.STARTRULE {
		if p.state != stateIdle && p.accumulated() {
			p.warn(tok.Line, "rule definition not terminated before definition of next declaration")
		}
		p.reset()
		p.state = stateAwaitSubject
		return
	}

	switch p.state {
	case stateIdle:
		// A stray token with no declaration open; ignore it.
		return

	case stateAwaitSubject:
		switch tok.Kind {
		case lexer.NAME:
			p.subject = tok.Text
		case lexer.EQUAL:
			p.state = stateAwaitBody
		case lexer.REDIRECT:
			p.state = stateAwaitRedirectTarget
		case lexer.ENDRULE:
			p.finish(tok.Line)
		}

	case stateAwaitBody, stateInBody:
		switch tok.Kind {
		case lexer.NAME:
			p.links = append(p.links, tok.Text)
			p.state = stateInBody
		case lexer.REDIRECT:
			p.state = stateAwaitRedirectTarget
		case lexer.ENDRULE:
			p.finish(tok.Line)
		case lexer.EQUAL:
			// Stray second '=' within a body; not part of the grammar,
			// ignored rather than treated as fatal.
		}

	case stateAwaitRedirectTarget:
		switch tok.Kind {
		case lexer.NAME:
			p.target = tok.Text
			p.state = stateInBody
		case lexer.REDIRECT:
			// "->" again before a target materialized: retry against the
			// next token (strusPageWeight.cpp's `goto AGAIN` on a second
			// LEXEM_REDIRECT).
		case lexer.ENDRULE:
			// Missing redirect target followed directly by ';': the whole
			// declaration is discarded silently, subject and any links
			// collected so far included.
			p.reset()
		case lexer.EQUAL:
			p.warn(tok.Line, "name of redirect target expected after '->'")
			p.state = stateInBody
		}
	}
}

// finish closes out the declaration in progress, emitting its events to
// the sink — or, if the subject was never captured, warning and discarding
// it (§4.2, exercised by S6: "* = X Y ;" followed by a well-formed
// declaration produces a diagnostic for the first and a graph for the
// second).
func (p *parser) finish(line int) {
	if len(p.subject) == 0 {
		if p.accumulated() {
			p.warn(line, "empty declaration found")
		}
		p.reset()
		return
	}

	// Declared unless the declaration was a pure redirect: a "->" target
	// with no link names of its own. A declaration with no redirect and
	// no links (e.g. "*B = ;") still joins the declared set — it was
	// never "merely a redirect" in the first place.
	hadLinks := len(p.links) > 0
	pureRedirect := p.target != nil && !hadLinks
	declared := !pureRedirect
	p.trace("begin subject=%q declared=%v", p.subject, declared)
	p.sink.Begin(p.subject, declared)

	if p.target != nil {
		p.trace("redirect subject=%q target=%q", p.subject, p.target)
		p.sink.Redirect(p.subject, p.target)
	}
	for _, l := range p.links {
		p.trace("link subject=%q target=%q", p.subject, l)
		p.sink.Link(p.subject, l)
	}

	p.reset()
}
