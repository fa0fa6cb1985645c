package graph

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexport/glsym"
)

// Attachment references one level and layer of an image.
// For cubemaps Layer is the face index 0..5.
type Attachment struct {
	Image *Image
	Level int
	Layer int
}

func (a Attachment) key() string {
	kind := 't'
	if a.Image.renderbuffer {
		kind = 'r'
	}
	return fmt.Sprintf("%c%d.%d.%d", kind, a.Image.handle, a.Level, a.Layer)
}

// FramebufferDescriptor describes a framebuffer by its attachments.
type FramebufferDescriptor struct {
	Colors       []Attachment
	DepthStencil *Attachment
}

func (d FramebufferDescriptor) cacheKey() string {
	var b strings.Builder
	b.WriteString("fb:")
	for _, a := range d.Colors {
		b.WriteString(a.key())
		b.WriteByte(',')
	}
	if d.DepthStencil != nil {
		b.WriteString("ds=")
		b.WriteString(d.DepthStencil.key())
	}
	return b.String()
}

// VertexBinding binds one vertex attribute location to a buffer range.
type VertexBinding struct {
	Buffer   *Buffer
	Location int
	Offset   int
	Stride   int
	Divisor  int
	Format   gputypes.VertexFormat
}

// VertexArrayDescriptor describes a vertex array by its index buffer and
// attribute bindings.
type VertexArrayDescriptor struct {
	IndexBuffer *Buffer
	Bindings    []VertexBinding
}

func (d VertexArrayDescriptor) cacheKey() string {
	var b strings.Builder
	b.WriteString("va:")
	if d.IndexBuffer != nil {
		fmt.Fprintf(&b, "ib=%d;", d.IndexBuffer.handle)
	}
	for _, v := range d.Bindings {
		fmt.Fprintf(&b, "%d.%d.%d.%d.%d.%d,", v.Buffer.handle, v.Location, v.Offset, v.Stride, v.Divisor, v.Format)
	}
	return b.String()
}

// SamplerDescriptor holds the sampling parameters of a sampler object.
type SamplerDescriptor struct {
	MinFilter     uint32
	MagFilter     uint32
	MinLOD        float32
	MaxLOD        float32
	LODBias       float32
	WrapS         uint32
	WrapT         uint32
	WrapR         uint32
	CompareMode   uint32
	CompareFunc   uint32
	MaxAnisotropy float32
	BorderColor   [4]float32
}

// DefaultSampler returns linear filtering with repeat wrapping and no
// depth comparison.
func DefaultSampler() SamplerDescriptor {
	return SamplerDescriptor{
		MinFilter:     glsym.Linear,
		MagFilter:     glsym.Linear,
		MinLOD:        -1000,
		MaxLOD:        1000,
		WrapS:         glsym.Repeat,
		WrapT:         glsym.Repeat,
		WrapR:         glsym.Repeat,
		CompareMode:   glsym.None,
		CompareFunc:   glsym.Never,
		MaxAnisotropy: 1,
	}
}

func (d SamplerDescriptor) cacheKey() string {
	return fmt.Sprintf("smp:%v", d)
}

// ShaderKey identifies a shader by its raw source and stage.
type ShaderKey struct {
	Source string
	Stage  uint32
}

func (k ShaderKey) cacheKey() string {
	return fmt.Sprintf("sh:%d:%s", k.Stage, k.Source)
}

// ProgramKey identifies a program by its two shaders.
type ProgramKey struct {
	Vertex   ShaderKey
	Fragment ShaderKey
}

func (k ProgramKey) cacheKey() string {
	return fmt.Sprintf("prog:%d:%d:%s\x00%s", len(k.Vertex.Source), len(k.Fragment.Source), k.Vertex.Source, k.Fragment.Source)
}

// StencilFace holds the stencil state of one polygon face.
type StencilFace struct {
	FailOp      uint32
	PassOp      uint32
	DepthFailOp uint32
	CompareOp   uint32
	CompareMask int
	WriteMask   int
	Reference   int
}

// Settings is the fixed-function state a pipeline draws with.
type Settings struct {
	PrimitiveRestart bool

	// CullFace is GL_FRONT, GL_BACK, GL_FRONT_AND_BACK or zero for no culling.
	CullFace uint32

	DepthTest  bool
	DepthWrite bool
	DepthFunc  uint32

	StencilTest  bool
	StencilFront StencilFace
	StencilBack  StencilFace

	// BlendEnable has bit i set when blending is enabled for color attachment i.
	BlendEnable   uint32
	BlendOpColor  uint32
	BlendOpAlpha  uint32
	BlendSrcColor uint32
	BlendDstColor uint32
	BlendSrcAlpha uint32
	BlendDstAlpha uint32

	PolygonOffset       bool
	PolygonOffsetFactor float32
	PolygonOffsetUnits  float32

	// ColorMask packs 4 bits per attachment, red in the lowest bit.
	ColorMask uint64

	// Attachments is the number of color attachments of the framebuffer.
	// It is set by NewPipeline.
	Attachments int
}

// DefaultSettings returns the state of a fresh GL context with writes to
// every color channel enabled.
func DefaultSettings() Settings {
	face := StencilFace{
		FailOp:      glsym.Keep,
		PassOp:      glsym.Keep,
		DepthFailOp: glsym.Keep,
		CompareOp:   glsym.Always,
		CompareMask: 0xff,
		WriteMask:   0xff,
	}
	return Settings{
		DepthWrite:    true,
		DepthFunc:     glsym.Less,
		StencilFront:  face,
		StencilBack:   face,
		BlendOpColor:  glsym.FuncAdd,
		BlendOpAlpha:  glsym.FuncAdd,
		BlendSrcColor: glsym.One,
		BlendDstColor: glsym.Zero,
		BlendSrcAlpha: glsym.One,
		BlendDstAlpha: glsym.Zero,
		ColorMask:     0xffffffffffffffff,
	}
}

func (s Settings) cacheKey() string {
	return fmt.Sprintf("set:%v", s)
}

// UniformBufferBinding is one uniform buffer slot of a pipeline.
type UniformBufferBinding struct {
	Buffer uint32
	Offset int
	Size   int
}

// DescriptorSetBuffers holds the uniform buffer slots of a pipeline,
// indexed by binding point. Slots with a zero Buffer are unbound.
type DescriptorSetBuffers struct {
	Bindings []UniformBufferBinding
}

func (d DescriptorSetBuffers) cacheKey() string {
	return fmt.Sprintf("dsb:%v", d.Bindings)
}

// SamplerBinding is one texture unit of a pipeline.
type SamplerBinding struct {
	Sampler uint32
	Target  uint32
	Image   uint32
}

// DescriptorSetImages holds the texture units of a pipeline, indexed by
// unit. Slots with a zero Image are unbound.
type DescriptorSetImages struct {
	Bindings []SamplerBinding
}

func (d DescriptorSetImages) cacheKey() string {
	return fmt.Sprintf("dsi:%v", d.Bindings)
}

// Viewport is a pixel rectangle.
type Viewport struct {
	X, Y          int
	Width, Height int
}
