// Package scene builds resource graphs from declarative scene files.
//
// A scene file lists named buffers, images and pipelines in TOML or YAML.
// Pipelines reference buffers and images by name:
//
//	[[buffers]]
//	name = "vertices"
//	size = 1024
//
//	[[images]]
//	name = "color"
//	width = 256
//	height = 256
//	format = "rgba8unorm"
//
//	[[pipelines]]
//	name = "triangle"
//	vertex_shader_file = "triangle.vert"
//	fragment_shader_file = "triangle.frag"
//	framebuffer = [{ image = "color" }]
//	topology = "GL_TRIANGLES"
//	vertex_count = 3
//
//	[[pipelines.vertex_buffers]]
//	buffer = "vertices"
//	stride = 12
//	format = "float32x3"
//
// Use [Load] to read a file and build its resources into a new
// graph.Context.
package scene
