package scene

import "errors"

var (
	// ErrUnsupportedFile is returned for scene files with an unknown extension.
	ErrUnsupportedFile = errors.New("scene: unsupported file type")

	// ErrUnknownName is returned when a field references an undeclared resource.
	ErrUnknownName = errors.New("scene: unknown resource name")

	// ErrDuplicateName is returned when two resources of one kind share a name.
	ErrDuplicateName = errors.New("scene: duplicate resource name")

	// ErrUnknownSymbol is returned for enumeration names with no GL code.
	ErrUnknownSymbol = errors.New("scene: unknown GL symbol")

	// ErrUnknownFormat is returned for unknown texture or vertex format names.
	ErrUnknownFormat = errors.New("scene: unknown format")

	ErrInvalidValue = errors.New("scene: invalid value")
)
