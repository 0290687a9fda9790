// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - RenderOption / renderOptions (functional options with internal state),
//   - documented defaults (constants) that String() uses verbatim,
//   - WithX constructors (panic only on nonsensical values),
//   - gatherRenderOptions helper.
//
// Defaults reproduce the String() contract exactly: every cell is wrapped as
// "~ v ~", cells are concatenated without a separator, and every row ends
// with a single "\n".
package matrix

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCellOpen is written before every cell value.
	DefaultCellOpen = "~ "

	// DefaultCellClose is written after every cell value.
	DefaultCellClose = " ~"

	// DefaultCellSeparator is written between cells of the same row.
	DefaultCellSeparator = ""

	// DefaultRowSeparator terminates every row.
	DefaultRowSeparator = "\n"

	// DefaultVerb is the fmt verb applied to each value.
	DefaultVerb = "%v"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVerbInvalid = "matrix: WithVerb: verb must start with '%'"
)

// RenderOption mutates internal render options. Safe to apply repeatedly.
type RenderOption func(*renderOptions)

// renderOptions stores the effective configuration after applying setters.
type renderOptions struct {
	open    string // DefaultCellOpen
	close   string // DefaultCellClose
	cellSep string // DefaultCellSeparator
	rowSep  string // DefaultRowSeparator
	verb    string // DefaultVerb
}

// defaultRenderOptions returns the String() configuration.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		open:    DefaultCellOpen,
		close:   DefaultCellClose,
		cellSep: DefaultCellSeparator,
		rowSep:  DefaultRowSeparator,
		verb:    DefaultVerb,
	}
}

// gatherRenderOptions applies opts over the defaults in order; last write wins.
func gatherRenderOptions(opts ...RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithCellDelimiters replaces the "~ " / " ~" wrapping around each value.
// Empty strings are allowed and drop the wrapping entirely.
func WithCellDelimiters(open, close string) RenderOption {
	return func(o *renderOptions) {
		o.open = open
		o.close = close
	}
}

// WithCellSeparator sets the text written between cells of one row.
func WithCellSeparator(sep string) RenderOption {
	return func(o *renderOptions) { o.cellSep = sep }
}

// WithRowSeparator sets the text written after every row.
func WithRowSeparator(sep string) RenderOption {
	return func(o *renderOptions) { o.rowSep = sep }
}

// WithVerb sets the fmt verb used for each value, e.g. "%.2f" or "%q".
// Panics when verb does not start with '%' (programmer error).
func WithVerb(verb string) RenderOption {
	if !strings.HasPrefix(verb, "%") {
		panic(panicVerbInvalid)
	}

	return func(o *renderOptions) { o.verb = verb }
}
