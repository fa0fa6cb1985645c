package graph

import "errors"

// Resource creation and release errors.
var (
	// ErrInvalidSize is returned for non-positive buffer or image dimensions.
	ErrInvalidSize = errors.New("graph: invalid size")

	// ErrUnsupportedFormat is returned for texture, vertex or index formats
	// without a GL mapping.
	ErrUnsupportedFormat = errors.New("graph: unsupported format")

	// ErrInvalidImage is returned for contradicting image flags and for
	// attachments or sampler bindings an image cannot serve.
	ErrInvalidImage = errors.New("graph: invalid image")

	// ErrInvalidFramebuffer is returned when a framebuffer has more than one
	// depth/stencil attachment.
	ErrInvalidFramebuffer = errors.New("graph: invalid framebuffer")

	// ErrTooManyAttachments is returned when a framebuffer exceeds MaxAttachments.
	ErrTooManyAttachments = errors.New("graph: too many color attachments")

	// ErrTooManyBindings is returned when a pipeline exceeds the uniform
	// buffer or sampler binding limits.
	ErrTooManyBindings = errors.New("graph: too many bindings")

	// ErrInvalidPipeline is returned for inconsistent pipeline parameters.
	ErrInvalidPipeline = errors.New("graph: invalid pipeline")

	// ErrMissingShader is returned when a pipeline lacks a vertex or
	// fragment shader.
	ErrMissingShader = errors.New("graph: missing shader")

	// ErrReleased is returned when using or releasing a released resource.
	ErrReleased = errors.New("graph: resource already released")

	// ErrInUse is returned when releasing a buffer or image that a live
	// pipeline still references.
	ErrInUse = errors.New("graph: resource in use")
)
