// SPDX-License-Identifier: MIT

package mag

import (
	"runtime"

	"github.com/katalvlaran/magsep/apsp"
	"github.com/katalvlaran/magsep/inducing"
)

// Option configures the extractors, Separate and CheckAll.
type Option func(*options)

type options struct {
	traceMode   apsp.TraceMode
	search      []inducing.Option
	parallelism int
	validate    bool
}

// defaultOptions: span witnesses, default search, GOMAXPROCS workers, validation on.
func defaultOptions() options {
	return options{
		traceMode:   apsp.TraceSpan,
		parallelism: runtime.GOMAXPROCS(0),
		validate:    true,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithTraceMode selects how directed witnesses are reconstructed.
func WithTraceMode(m apsp.TraceMode) Option {
	return func(o *options) {
		o.traceMode = m
	}
}

// WithSearchOptions forwards options to inducing.Enumerate.
// The directed skeleton is always supplied by the extractor.
func WithSearchOptions(opts ...inducing.Option) Option {
	return func(o *options) {
		o.search = append(o.search, opts...)
	}
}

// WithParallelism bounds CheckAll workers. Values < 1 mean unbounded.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithoutValidation skips the input contract checks; the caller guarantees
// well-formed matrices. Order checks between index and matrices remain.
func WithoutValidation() Option {
	return func(o *options) {
		o.validate = false
	}
}
