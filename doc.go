// Package glexport compiles the resource graph of a GL context into a
// standalone program of OpenGL calls.
//
// # Overview
//
// A [graph.Context] records the buffers, images and pipelines an
// application creates, together with the framebuffers, vertex arrays,
// samplers, shaders and programs those pipelines share. [Dump] walks that
// graph in dependency order and renders every object as the GL calls that
// recreate it, followed by the draw calls of every pipeline. Running the
// result against a fresh context replays the frame without the code that
// built it.
//
// # Quick Start
//
//	ctx := graph.NewContext()
//	target, _ := ctx.NewImage(graph.ImageDesc{
//	    Width: 512, Height: 512, Format: gputypes.TextureFormatRGBA8Unorm,
//	})
//	ctx.NewPipeline(graph.PipelineDesc{
//	    VertexShader:   vs,
//	    FragmentShader: fs,
//	    Framebuffer:    []graph.Attachment{target.Face(0, 0)},
//	    Topology:       glsym.Triangles,
//	    VertexCount:    3,
//	})
//
//	src, err := glexport.Dump(ctx)
//
// # Dialects
//
// Output is produced by an [Emitter] chosen by dialect name. The "c"
// dialect is built in and writes C statements for a harness that provides
// a data pointer for uploads and a framebuffer, width and height for the
// final blit. Other dialects register themselves with [Register].
//
// # Unknown codes
//
// A GL code without a symbol renders as empty text and is logged at warn
// level. [WithStrictSymbols] turns such codes into an [ErrUnknownSymbol]
// error.
package glexport

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
