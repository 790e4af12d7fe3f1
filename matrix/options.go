// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for batch solving.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package matrix

// DefaultWorkers is the number of systems SolveAll solves concurrently.
const DefaultWorkers = 4

const panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 1"

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // DefaultWorkers
}

// WithWorkers bounds the number of concurrent solves in SolveAll.
// Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// defaultOptions returns the zero-configuration baseline.
func defaultOptions() Options {
	return Options{workers: DefaultWorkers}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
