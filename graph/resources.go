package graph

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexport/glsym"
)

// BufferDesc describes a buffer to create.
type BufferDesc struct {
	Size    int
	Dynamic bool
}

// Buffer is a GL buffer object.
type Buffer struct {
	handle   uint32
	size     int
	dynamic  bool
	released bool
	refs     int
}

// Handle returns the GL name of the buffer.
func (b *Buffer) Handle() uint32 { return b.handle }

// Size returns the buffer size in bytes.
func (b *Buffer) Size() int { return b.size }

// Dynamic reports whether the buffer was created for frequent updates.
func (b *Buffer) Dynamic() bool { return b.dynamic }

// ImageDesc describes an image to create.
type ImageDesc struct {
	Width  int
	Height int
	Format gputypes.TextureFormat

	// Samples greater than 1 creates a multisample renderbuffer.
	Samples int

	// Layers greater than 0 creates a 2D array texture.
	Layers int

	Cubemap      bool
	Renderbuffer bool
}

// Image is a GL texture or renderbuffer.
type Image struct {
	handle       uint32
	width        int
	height       int
	layers       int
	samples      int
	cubemap      bool
	renderbuffer bool
	target       uint32
	format       ImageFormat
	released     bool
	refs         int
}

// Handle returns the GL name of the texture or renderbuffer.
func (i *Image) Handle() uint32 { return i.handle }

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.width }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.height }

// Layers returns the array layer count, 0 for non-array images.
func (i *Image) Layers() int { return i.layers }

// Samples returns the sample count.
func (i *Image) Samples() int { return i.samples }

// Cubemap reports whether the image is a cubemap texture.
func (i *Image) Cubemap() bool { return i.cubemap }

// Renderbuffer reports whether the image is a renderbuffer.
func (i *Image) Renderbuffer() bool { return i.renderbuffer }

// Target returns the texture target. Renderbuffers report GL_TEXTURE_2D.
func (i *Image) Target() uint32 { return i.target }

// Format returns the GL format of the image.
func (i *Image) Format() ImageFormat { return i.format }

// Face returns an attachment reference to one level and layer of the image.
func (i *Image) Face(layer, level int) Attachment {
	return Attachment{Image: i, Level: level, Layer: layer}
}

func imageTarget(d ImageDesc) uint32 {
	switch {
	case d.Cubemap:
		return glsym.TextureCubeMap
	case d.Layers > 0:
		return glsym.Texture2DArray
	default:
		return glsym.Texture2D
	}
}

// Pipeline is a draw call together with every object it binds.
type Pipeline struct {
	id uint32

	Settings    Settings
	Buffers     DescriptorSetBuffers
	Images      DescriptorSetImages
	Framebuffer uint32
	Program     uint32
	VertexArray uint32

	Topology      uint32
	VertexCount   int
	InstanceCount int
	FirstVertex   int

	// IndexType is zero for non-indexed draws.
	IndexType uint32
	IndexSize int

	Viewport Viewport

	refs     pipelineRefs
	released bool
}

// ID returns the creation sequence number of the pipeline.
func (p *Pipeline) ID() uint32 { return p.id }

// Indexed reports whether the pipeline issues an indexed draw.
func (p *Pipeline) Indexed() bool { return p.IndexType != 0 }

// pipelineRefs keeps the cache keys a pipeline acquired, so releasing the
// pipeline gives back exactly those uses.
type pipelineRefs struct {
	framebuffer FramebufferDescriptor
	vertexArray VertexArrayDescriptor
	samplers    []SamplerDescriptor
	shaders     [2]ShaderKey
	program     ProgramKey
	settings    Settings
	bufferSet   DescriptorSetBuffers
	imageSet    DescriptorSetImages
	buffers     []*Buffer
	images      []*Image
}
