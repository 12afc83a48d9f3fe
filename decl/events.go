// Package decl implements the declaration-stream parser (SPEC_FULL.md §4.2):
// a small lenient state machine consuming lexer.Token values and emitting
// begin/link/redirect events to a Sink.
package decl

// Sink receives the events of one well-formed declaration. Names are only
// valid for the duration of the call; implementations that need to keep
// them must copy.
type Sink interface {
	// Begin is called once per declaration, after its body is known.
	// declared reports whether the subject joins the declared set: true
	// unless the declaration was a pure redirect (a "->" target with no
	// link names of its own) — see DESIGN.md's Open Question 2.
	Begin(subject []byte, declared bool)
	// Redirect is called at most once per declaration, if "->" NAME appeared.
	Redirect(subject, target []byte)
	// Link is called once per NAME appearing in the declaration body.
	Link(subject, target []byte)
}

// Options configures optional diagnostic channels for Parse.
type Options struct {
	// Warnings, if non-nil, receives one line per recoverable malformed
	// declaration (see SPEC_FULL.md §4.2's recovery policy).
	Warnings Warner
	// Trace, if non-nil, receives one line per emitted event — the
	// verbose per-declaration tracing supplemented from the original
	// strusPageWeight.cpp -V flag (SPEC_FULL.md "Supplemented features").
	Trace Tracer
}

// Warner receives a human-readable diagnostic for a malformed declaration
// that the recovery policy absorbed.
type Warner interface {
	Warn(msg string)
}

// Tracer receives a human-readable line for every event Parse emits.
type Tracer interface {
	Trace(msg string)
}

// WarnFunc adapts a plain function to Warner.
type WarnFunc func(string)

func (f WarnFunc) Warn(msg string) { f(msg) }

// TraceFunc adapts a plain function to Tracer.
type TraceFunc func(string)

func (f TraceFunc) Trace(msg string) { f(msg) }
