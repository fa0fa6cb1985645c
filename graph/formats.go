package graph

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexport/glsym"
)

// ImageFormat is the GL description of a texture format.
type ImageFormat struct {
	// InternalFormat is the sized internal format (GL_RGBA8, ...).
	InternalFormat uint32

	// Format is the pixel transfer format (GL_RGBA, GL_DEPTH_COMPONENT, ...).
	Format uint32

	// Type is the pixel transfer component type (GL_UNSIGNED_BYTE, ...).
	Type uint32

	// Attachment is the framebuffer semantic of the format:
	// glsym.Color, glsym.Depth, glsym.Stencil or glsym.DepthStencil.
	Attachment uint32
}

// IsColor reports whether images of this format attach as color targets.
func (f ImageFormat) IsColor() bool {
	return f.Attachment == glsym.Color
}

// AttribFormat is the GL description of a vertex attribute format.
type AttribFormat struct {
	// Type is the component data type.
	Type uint32

	// Size is the number of components (1-4).
	Size int

	// Normalize maps integer data to [0, 1] or [-1, 1].
	Normalize bool

	// Integer selects the integer attribute path (glVertexAttribIPointer).
	Integer bool
}

type textureFormatEntry struct {
	name   string
	format gputypes.TextureFormat
	image  ImageFormat
}

var textureFormatTable = []textureFormatEntry{
	{"r8unorm", gputypes.TextureFormatR8Unorm, ImageFormat{glsym.R8, glsym.Red, glsym.UnsignedByte, glsym.Color}},
	{"rg8unorm", gputypes.TextureFormatRG8Unorm, ImageFormat{glsym.RG8, glsym.RG, glsym.UnsignedByte, glsym.Color}},
	{"rgba8unorm", gputypes.TextureFormatRGBA8Unorm, ImageFormat{glsym.RGBA8, glsym.RGBA, glsym.UnsignedByte, glsym.Color}},
	{"bgra8unorm", gputypes.TextureFormatBGRA8Unorm, ImageFormat{glsym.RGBA8, glsym.BGRA, glsym.UnsignedByte, glsym.Color}},
	{"r8snorm", gputypes.TextureFormatR8Snorm, ImageFormat{glsym.R8SNorm, glsym.Red, glsym.Byte, glsym.Color}},
	{"rg8snorm", gputypes.TextureFormatRG8Snorm, ImageFormat{glsym.RG8SNorm, glsym.RG, glsym.Byte, glsym.Color}},
	{"rgba8snorm", gputypes.TextureFormatRGBA8Snorm, ImageFormat{glsym.RGBA8SNorm, glsym.RGBA, glsym.Byte, glsym.Color}},
	{"r8uint", gputypes.TextureFormatR8Uint, ImageFormat{glsym.R8UI, glsym.RedInteger, glsym.UnsignedByte, glsym.Color}},
	{"rg8uint", gputypes.TextureFormatRG8Uint, ImageFormat{glsym.RG8UI, glsym.RGInteger, glsym.UnsignedByte, glsym.Color}},
	{"rgba8uint", gputypes.TextureFormatRGBA8Uint, ImageFormat{glsym.RGBA8UI, glsym.RGBAInteger, glsym.UnsignedByte, glsym.Color}},
	{"r16uint", gputypes.TextureFormatR16Uint, ImageFormat{glsym.R16UI, glsym.RedInteger, glsym.UnsignedShort, glsym.Color}},
	{"rg16uint", gputypes.TextureFormatRG16Uint, ImageFormat{glsym.RG16UI, glsym.RGInteger, glsym.UnsignedShort, glsym.Color}},
	{"rgba16uint", gputypes.TextureFormatRGBA16Uint, ImageFormat{glsym.RGBA16UI, glsym.RGBAInteger, glsym.UnsignedShort, glsym.Color}},
	{"r32uint", gputypes.TextureFormatR32Uint, ImageFormat{glsym.R32UI, glsym.RedInteger, glsym.UnsignedInt, glsym.Color}},
	{"rg32uint", gputypes.TextureFormatRG32Uint, ImageFormat{glsym.RG32UI, glsym.RGInteger, glsym.UnsignedInt, glsym.Color}},
	{"rgba32uint", gputypes.TextureFormatRGBA32Uint, ImageFormat{glsym.RGBA32UI, glsym.RGBAInteger, glsym.UnsignedInt, glsym.Color}},
	{"r8sint", gputypes.TextureFormatR8Sint, ImageFormat{glsym.R8I, glsym.RedInteger, glsym.Byte, glsym.Color}},
	{"rg8sint", gputypes.TextureFormatRG8Sint, ImageFormat{glsym.RG8I, glsym.RGInteger, glsym.Byte, glsym.Color}},
	{"rgba8sint", gputypes.TextureFormatRGBA8Sint, ImageFormat{glsym.RGBA8I, glsym.RGBAInteger, glsym.Byte, glsym.Color}},
	{"r16sint", gputypes.TextureFormatR16Sint, ImageFormat{glsym.R16I, glsym.RedInteger, glsym.Short, glsym.Color}},
	{"rg16sint", gputypes.TextureFormatRG16Sint, ImageFormat{glsym.RG16I, glsym.RGInteger, glsym.Short, glsym.Color}},
	{"rgba16sint", gputypes.TextureFormatRGBA16Sint, ImageFormat{glsym.RGBA16I, glsym.RGBAInteger, glsym.Short, glsym.Color}},
	{"r32sint", gputypes.TextureFormatR32Sint, ImageFormat{glsym.R32I, glsym.RedInteger, glsym.Int, glsym.Color}},
	{"rg32sint", gputypes.TextureFormatRG32Sint, ImageFormat{glsym.RG32I, glsym.RGInteger, glsym.Int, glsym.Color}},
	{"rgba32sint", gputypes.TextureFormatRGBA32Sint, ImageFormat{glsym.RGBA32I, glsym.RGBAInteger, glsym.Int, glsym.Color}},
	{"r16float", gputypes.TextureFormatR16Float, ImageFormat{glsym.R16F, glsym.Red, glsym.HalfFloat, glsym.Color}},
	{"rg16float", gputypes.TextureFormatRG16Float, ImageFormat{glsym.RG16F, glsym.RG, glsym.HalfFloat, glsym.Color}},
	{"rgba16float", gputypes.TextureFormatRGBA16Float, ImageFormat{glsym.RGBA16F, glsym.RGBA, glsym.HalfFloat, glsym.Color}},
	{"r32float", gputypes.TextureFormatR32Float, ImageFormat{glsym.R32F, glsym.Red, glsym.Float, glsym.Color}},
	{"rg32float", gputypes.TextureFormatRG32Float, ImageFormat{glsym.RG32F, glsym.RG, glsym.Float, glsym.Color}},
	{"rgba32float", gputypes.TextureFormatRGBA32Float, ImageFormat{glsym.RGBA32F, glsym.RGBA, glsym.Float, glsym.Color}},
	{"rgba8unorm-srgb", gputypes.TextureFormatRGBA8UnormSrgb, ImageFormat{glsym.SRGB8Alpha8, glsym.RGBA, glsym.UnsignedByte, glsym.Color}},
	{"bgra8unorm-srgb", gputypes.TextureFormatBGRA8UnormSrgb, ImageFormat{glsym.SRGB8Alpha8, glsym.BGRA, glsym.UnsignedByte, glsym.Color}},
	{"stencil8", gputypes.TextureFormatStencil8, ImageFormat{glsym.StencilIndex8, glsym.StencilIndex, glsym.UnsignedByte, glsym.Stencil}},
	{"depth16unorm", gputypes.TextureFormatDepth16Unorm, ImageFormat{glsym.DepthComponent16, glsym.DepthComponent, glsym.UnsignedShort, glsym.Depth}},
	{"depth24plus", gputypes.TextureFormatDepth24Plus, ImageFormat{glsym.DepthComponent24, glsym.DepthComponent, glsym.UnsignedInt, glsym.Depth}},
	{"depth24plus-stencil8", gputypes.TextureFormatDepth24PlusStencil8, ImageFormat{glsym.Depth24Stencil8, glsym.DepthStencil, glsym.UnsignedInt248, glsym.DepthStencil}},
	{"depth32float", gputypes.TextureFormatDepth32Float, ImageFormat{glsym.DepthComponent32F, glsym.DepthComponent, glsym.Float, glsym.Depth}},
}

type vertexFormatEntry struct {
	name   string
	format gputypes.VertexFormat
	vertex AttribFormat
}

var vertexFormatTable = []vertexFormatEntry{
	{"uint8x2", gputypes.VertexFormatUint8x2, AttribFormat{glsym.UnsignedByte, 2, false, true}},
	{"uint8x4", gputypes.VertexFormatUint8x4, AttribFormat{glsym.UnsignedByte, 4, false, true}},
	{"sint8x2", gputypes.VertexFormatSint8x2, AttribFormat{glsym.Byte, 2, false, true}},
	{"sint8x4", gputypes.VertexFormatSint8x4, AttribFormat{glsym.Byte, 4, false, true}},
	{"unorm8x2", gputypes.VertexFormatUnorm8x2, AttribFormat{glsym.UnsignedByte, 2, true, false}},
	{"unorm8x4", gputypes.VertexFormatUnorm8x4, AttribFormat{glsym.UnsignedByte, 4, true, false}},
	{"snorm8x2", gputypes.VertexFormatSnorm8x2, AttribFormat{glsym.Byte, 2, true, false}},
	{"snorm8x4", gputypes.VertexFormatSnorm8x4, AttribFormat{glsym.Byte, 4, true, false}},
	{"uint16x2", gputypes.VertexFormatUint16x2, AttribFormat{glsym.UnsignedShort, 2, false, true}},
	{"uint16x4", gputypes.VertexFormatUint16x4, AttribFormat{glsym.UnsignedShort, 4, false, true}},
	{"sint16x2", gputypes.VertexFormatSint16x2, AttribFormat{glsym.Short, 2, false, true}},
	{"sint16x4", gputypes.VertexFormatSint16x4, AttribFormat{glsym.Short, 4, false, true}},
	{"unorm16x2", gputypes.VertexFormatUnorm16x2, AttribFormat{glsym.UnsignedShort, 2, true, false}},
	{"unorm16x4", gputypes.VertexFormatUnorm16x4, AttribFormat{glsym.UnsignedShort, 4, true, false}},
	{"snorm16x2", gputypes.VertexFormatSnorm16x2, AttribFormat{glsym.Short, 2, true, false}},
	{"snorm16x4", gputypes.VertexFormatSnorm16x4, AttribFormat{glsym.Short, 4, true, false}},
	{"float16x2", gputypes.VertexFormatFloat16x2, AttribFormat{glsym.HalfFloat, 2, false, false}},
	{"float16x4", gputypes.VertexFormatFloat16x4, AttribFormat{glsym.HalfFloat, 4, false, false}},
	{"float32", gputypes.VertexFormatFloat32, AttribFormat{glsym.Float, 1, false, false}},
	{"float32x2", gputypes.VertexFormatFloat32x2, AttribFormat{glsym.Float, 2, false, false}},
	{"float32x3", gputypes.VertexFormatFloat32x3, AttribFormat{glsym.Float, 3, false, false}},
	{"float32x4", gputypes.VertexFormatFloat32x4, AttribFormat{glsym.Float, 4, false, false}},
	{"uint32", gputypes.VertexFormatUint32, AttribFormat{glsym.UnsignedInt, 1, false, true}},
	{"uint32x2", gputypes.VertexFormatUint32x2, AttribFormat{glsym.UnsignedInt, 2, false, true}},
	{"uint32x3", gputypes.VertexFormatUint32x3, AttribFormat{glsym.UnsignedInt, 3, false, true}},
	{"uint32x4", gputypes.VertexFormatUint32x4, AttribFormat{glsym.UnsignedInt, 4, false, true}},
	{"sint32", gputypes.VertexFormatSint32, AttribFormat{glsym.Int, 1, false, true}},
	{"sint32x2", gputypes.VertexFormatSint32x2, AttribFormat{glsym.Int, 2, false, true}},
	{"sint32x3", gputypes.VertexFormatSint32x3, AttribFormat{glsym.Int, 3, false, true}},
	{"sint32x4", gputypes.VertexFormatSint32x4, AttribFormat{glsym.Int, 4, false, true}},
}

var (
	imageFormats       = make(map[gputypes.TextureFormat]ImageFormat, len(textureFormatTable))
	textureFormatNames = make(map[string]gputypes.TextureFormat, len(textureFormatTable))
	vertexFormats      = make(map[gputypes.VertexFormat]AttribFormat, len(vertexFormatTable))
	vertexFormatNames  = make(map[string]gputypes.VertexFormat, len(vertexFormatTable))
)

func init() {
	for _, e := range textureFormatTable {
		imageFormats[e.format] = e.image
		textureFormatNames[e.name] = e.format
	}
	for _, e := range vertexFormatTable {
		vertexFormats[e.format] = e.vertex
		vertexFormatNames[e.name] = e.format
	}
}

// LookupImageFormat returns the GL description of a texture format.
func LookupImageFormat(f gputypes.TextureFormat) (ImageFormat, bool) {
	img, ok := imageFormats[f]
	return img, ok
}

// LookupVertexFormat returns the GL description of a vertex format.
// Unknown formats yield the zero AttribFormat.
func LookupVertexFormat(f gputypes.VertexFormat) (AttribFormat, bool) {
	v, ok := vertexFormats[f]
	return v, ok
}

// ParseTextureFormat resolves a WebGPU texture format name such as
// "rgba8unorm" or "depth24plus-stencil8".
func ParseTextureFormat(name string) (gputypes.TextureFormat, bool) {
	f, ok := textureFormatNames[name]
	return f, ok
}

// ParseVertexFormat resolves a WebGPU vertex format name such as "float32x3".
func ParseVertexFormat(name string) (gputypes.VertexFormat, bool) {
	f, ok := vertexFormatNames[name]
	return f, ok
}
