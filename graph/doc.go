// Package graph holds the resource graph of a GL context: the buffers,
// images and pipelines created through it and the deduplicated objects
// those pipelines realize (framebuffers, vertex arrays, samplers, shaders,
// programs, fixed-function settings and descriptor sets).
//
// A Context hands out GL object names the way a driver would, one counter
// per GL name space, and never reuses a name. Composite objects are cached
// by structural descriptor in insertion order, so two pipelines that
// describe the same framebuffer share one framebuffer object and walking a
// cache twice yields the same sequence.
//
// The root glexport package compiles a Context into replayable GL calls.
package graph
