package glexport

import "errors"

var (
	// ErrUnknownDialect is returned when no emitter is registered under the
	// requested dialect name.
	ErrUnknownDialect = errors.New("glexport: unknown dialect")

	// ErrUnknownSymbol is returned in strict mode when the dump used a GL
	// code that has no symbol.
	ErrUnknownSymbol = errors.New("glexport: unknown GL symbol")
)
