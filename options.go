package glexport

import "log/slog"

// DefaultDialect is the dialect Dump uses unless WithDialect says otherwise.
const DefaultDialect = "c"

// Option configures a single Dump call.
//
// Example:
//
//	src, err := glexport.Dump(ctx,
//	    glexport.WithStrictSymbols(true),
//	    glexport.WithLogger(logger),
//	)
type Option func(*dumpOptions)

// dumpOptions holds optional configuration for Dump.
type dumpOptions struct {
	dialect string
	logger  *slog.Logger
	strict  bool
}

// defaultOptions returns the default dump options.
func defaultOptions() dumpOptions {
	return dumpOptions{
		dialect: DefaultDialect,
		logger:  nil, // package logger
	}
}

// WithDialect selects the registered emitter that renders the dump.
func WithDialect(name string) Option {
	return func(o *dumpOptions) {
		o.dialect = name
	}
}

// WithLogger overrides the package logger for one call.
// A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *dumpOptions) {
		o.logger = l
	}
}

// WithStrictSymbols makes Dump fail with ErrUnknownSymbol when a GL code has
// no symbol. By default such codes render as empty text and are only logged.
func WithStrictSymbols(strict bool) Option {
	return func(o *dumpOptions) {
		o.strict = strict
	}
}
