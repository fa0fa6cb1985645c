package graph

import (
	"fmt"

	"github.com/gogpu/glexport/glsym"
	"github.com/gogpu/glexport/internal/wgslconv"
)

// Binding limits of a pipeline.
const (
	MaxAttachments    = 16
	MaxUniformBuffers = 16
	MaxSamplers       = 64
)

// UniformBufferResource binds a buffer range to a uniform block binding point.
type UniformBufferResource struct {
	Binding int
	Buffer  *Buffer
	Offset  int

	// Size of the bound range. Zero binds up to the end of the buffer.
	Size int
}

// SamplerResource binds an image and sampler state to a texture unit.
type SamplerResource struct {
	Binding int
	Image   *Image
	Sampler SamplerDescriptor
}

// PipelineDesc describes a draw call and everything it binds.
type PipelineDesc struct {
	// VertexShader and FragmentShader are GLSL sources.
	VertexShader   string
	FragmentShader string

	// WGSL replaces both GLSL sources with a WGSL module compiled once per
	// entry point. Empty entry names select the first entry point of the
	// stage.
	WGSL          string
	VertexEntry   string
	FragmentEntry string

	// Framebuffer lists the attachments. Color attachments take slots in
	// order; at most one depth, stencil or depth-stencil image may appear.
	Framebuffer []Attachment

	VertexBuffers []VertexBinding
	IndexBuffer   *Buffer

	// IndexType is GL_UNSIGNED_BYTE, GL_UNSIGNED_SHORT or GL_UNSIGNED_INT.
	// It defaults to GL_UNSIGNED_INT when IndexBuffer is set.
	IndexType uint32

	UniformBuffers []UniformBufferResource
	Samplers       []SamplerResource

	// Settings defaults to DefaultSettings.
	Settings *Settings

	Topology      uint32
	VertexCount   int
	InstanceCount int
	FirstVertex   int

	// Viewport defaults to the size of the first attachment.
	Viewport *Viewport
}

// NewPipeline validates desc, realizes the cached objects it needs and
// registers the pipeline. Nothing is cached or registered when it fails.
func (c *Context) NewPipeline(desc PipelineDesc) (*Pipeline, error) {
	vs, fs, err := c.pipelineShaders(desc)
	if err != nil {
		return nil, err
	}
	fb, err := framebufferDescriptor(desc.Framebuffer)
	if err != nil {
		return nil, err
	}
	viewport, err := pipelineViewport(desc, fb)
	if err != nil {
		return nil, err
	}
	va, err := vertexArrayDescriptor(desc)
	if err != nil {
		return nil, err
	}
	indexType, indexSize, err := indexFormat(desc)
	if err != nil {
		return nil, err
	}
	if err := checkUniformBuffers(desc.UniformBuffers); err != nil {
		return nil, err
	}
	if err := checkSamplers(desc.Samplers); err != nil {
		return nil, err
	}
	if desc.VertexCount < 0 || desc.InstanceCount < 0 || desc.FirstVertex < 0 {
		return nil, fmt.Errorf("%w: negative draw parameters", ErrInvalidPipeline)
	}

	settings := DefaultSettings()
	if desc.Settings != nil {
		settings = *desc.Settings
	}
	if err := checkStencil(settings); err != nil {
		return nil, err
	}
	settings.Attachments = len(fb.Colors)

	instances := desc.InstanceCount
	if instances == 0 {
		instances = 1
	}

	p := &Pipeline{
		id:            alloc(&c.names.pipelines),
		Settings:      settings,
		Topology:      desc.Topology,
		VertexCount:   desc.VertexCount,
		InstanceCount: instances,
		FirstVertex:   desc.FirstVertex,
		IndexType:     indexType,
		IndexSize:     indexSize,
		Viewport:      viewport,
	}
	refs := &p.refs

	programs := func() uint32 { return alloc(&c.names.programs) }
	none := func() uint32 { return 0 }

	c.shaders.acquire(vs, programs)
	c.shaders.acquire(fs, programs)
	refs.shaders = [2]ShaderKey{vs, fs}
	refs.program = ProgramKey{Vertex: vs, Fragment: fs}
	p.Program = c.programs.acquire(refs.program, programs).Handle

	refs.framebuffer = fb
	p.Framebuffer = c.framebuffers.acquire(fb, func() uint32 { return alloc(&c.names.framebuffers) }).Handle

	refs.vertexArray = va
	p.VertexArray = c.vertexArrays.acquire(va, func() uint32 { return alloc(&c.names.vertexArrays) }).Handle

	p.Buffers = bufferSet(desc.UniformBuffers)
	p.Images = c.imageSet(desc.Samplers, refs)

	refs.settings = settings
	c.settings.acquire(settings, none)
	refs.bufferSet = p.Buffers
	c.bufferSets.acquire(p.Buffers, none)
	refs.imageSet = p.Images
	c.imageSets.acquire(p.Images, none)

	refs.buffers = pipelineBuffers(desc)
	for _, b := range refs.buffers {
		b.refs++
	}
	refs.images = pipelineImages(desc)
	for _, img := range refs.images {
		img.refs++
	}

	c.pipelines.add(p)
	c.log.Debug("graph: pipeline created",
		"id", p.id,
		"program", p.Program,
		"framebuffer", p.Framebuffer,
		"vertex_array", p.VertexArray,
		"indexed", p.Indexed())
	return p, nil
}

func (c *Context) pipelineShaders(desc PipelineDesc) (vs, fs ShaderKey, err error) {
	vertex, fragment := desc.VertexShader, desc.FragmentShader
	if desc.WGSL != "" {
		if vertex != "" || fragment != "" {
			return vs, fs, fmt.Errorf("%w: both WGSL and GLSL shaders given", ErrInvalidPipeline)
		}
		res, err := wgslconv.Translate(desc.WGSL, wgslconv.Entries{
			Vertex:   desc.VertexEntry,
			Fragment: desc.FragmentEntry,
		})
		if err != nil {
			return vs, fs, fmt.Errorf("graph: pipeline shaders: %w", err)
		}
		vertex, fragment = res.Vertex, res.Fragment
		c.log.Debug("graph: translated WGSL pipeline shaders",
			"vertex_bytes", len(vertex),
			"fragment_bytes", len(fragment))
	}
	if vertex == "" {
		return vs, fs, fmt.Errorf("%w: vertex", ErrMissingShader)
	}
	if fragment == "" {
		return vs, fs, fmt.Errorf("%w: fragment", ErrMissingShader)
	}
	return ShaderKey{Source: vertex, Stage: glsym.VertexShader},
		ShaderKey{Source: fragment, Stage: glsym.FragmentShader}, nil
}

func framebufferDescriptor(attachments []Attachment) (FramebufferDescriptor, error) {
	var fb FramebufferDescriptor
	for i := range attachments {
		a := attachments[i]
		if err := checkAttachment(a); err != nil {
			return fb, err
		}
		if first := attachments[0].Image; a.Image.width != first.width || a.Image.height != first.height {
			return fb, fmt.Errorf("%w: attachment %d is %dx%d, want %dx%d",
				ErrInvalidFramebuffer, i, a.Image.width, a.Image.height, first.width, first.height)
		}
		if a.Image.format.IsColor() {
			fb.Colors = append(fb.Colors, a)
			continue
		}
		if fb.DepthStencil != nil {
			return fb, fmt.Errorf("%w: more than one depth/stencil attachment", ErrInvalidFramebuffer)
		}
		fb.DepthStencil = &a
	}
	if len(fb.Colors) > MaxAttachments {
		return fb, fmt.Errorf("%w: %d color attachments, limit %d", ErrTooManyAttachments, len(fb.Colors), MaxAttachments)
	}
	return fb, nil
}

func checkAttachment(a Attachment) error {
	img := a.Image
	switch {
	case img == nil:
		return fmt.Errorf("%w: nil attachment image", ErrInvalidFramebuffer)
	case img.released:
		return fmt.Errorf("%w: attachment image %d", ErrReleased, img.handle)
	case a.Level < 0 || a.Layer < 0:
		return fmt.Errorf("%w: negative attachment level or layer", ErrInvalidImage)
	case img.renderbuffer && (a.Level != 0 || a.Layer != 0):
		return fmt.Errorf("%w: renderbuffer %d has a single level and layer", ErrInvalidImage, img.handle)
	case img.cubemap && a.Layer > 5:
		return fmt.Errorf("%w: cubemap face %d", ErrInvalidImage, a.Layer)
	case !img.cubemap && img.layers == 0 && a.Layer != 0:
		return fmt.Errorf("%w: layer %d of a non-array image", ErrInvalidImage, a.Layer)
	case img.layers > 0 && a.Layer >= img.layers:
		return fmt.Errorf("%w: layer %d of %d", ErrInvalidImage, a.Layer, img.layers)
	}
	return nil
}

func pipelineViewport(desc PipelineDesc, fb FramebufferDescriptor) (Viewport, error) {
	if desc.Viewport != nil {
		return *desc.Viewport, nil
	}
	var first *Image
	switch {
	case len(fb.Colors) > 0:
		first = fb.Colors[0].Image
	case fb.DepthStencil != nil:
		first = fb.DepthStencil.Image
	default:
		return Viewport{}, fmt.Errorf("%w: no attachments and no viewport", ErrInvalidPipeline)
	}
	return Viewport{Width: first.width, Height: first.height}, nil
}

func vertexArrayDescriptor(desc PipelineDesc) (VertexArrayDescriptor, error) {
	va := VertexArrayDescriptor{IndexBuffer: desc.IndexBuffer}
	if b := desc.IndexBuffer; b != nil && b.released {
		return va, fmt.Errorf("%w: index buffer %d", ErrReleased, b.handle)
	}
	for i, vb := range desc.VertexBuffers {
		switch {
		case vb.Buffer == nil:
			return va, fmt.Errorf("%w: vertex binding %d has no buffer", ErrInvalidPipeline, i)
		case vb.Buffer.released:
			return va, fmt.Errorf("%w: vertex buffer %d", ErrReleased, vb.Buffer.handle)
		case vb.Location < 0 || vb.Offset < 0 || vb.Stride < 0 || vb.Divisor < 0:
			return va, fmt.Errorf("%w: vertex binding %d has negative parameters", ErrInvalidPipeline, i)
		}
		if _, ok := LookupVertexFormat(vb.Format); !ok {
			return va, fmt.Errorf("%w: vertex format %v", ErrUnsupportedFormat, vb.Format)
		}
	}
	va.Bindings = append([]VertexBinding(nil), desc.VertexBuffers...)
	return va, nil
}

func indexFormat(desc PipelineDesc) (uint32, int, error) {
	if desc.IndexBuffer == nil {
		if desc.IndexType != 0 {
			return 0, 0, fmt.Errorf("%w: index type without index buffer", ErrInvalidPipeline)
		}
		return 0, 0, nil
	}
	switch desc.IndexType {
	case glsym.UnsignedByte:
		return glsym.UnsignedByte, 1, nil
	case glsym.UnsignedShort:
		return glsym.UnsignedShort, 2, nil
	case 0, glsym.UnsignedInt:
		return glsym.UnsignedInt, 4, nil
	}
	return 0, 0, fmt.Errorf("%w: index type 0x%04x", ErrUnsupportedFormat, desc.IndexType)
}

// checkStencil keeps stencil references and masks within the 8 bits the
// stencil buffer formats provide.
func checkStencil(s Settings) error {
	for _, f := range []struct {
		name string
		face StencilFace
	}{{"front", s.StencilFront}, {"back", s.StencilBack}} {
		for _, v := range []struct {
			field string
			value int
		}{{"reference", f.face.Reference}, {"compare mask", f.face.CompareMask}, {"write mask", f.face.WriteMask}} {
			if v.value < 0 || v.value > 0xff {
				return fmt.Errorf("%w: %s stencil %s %d outside 0..255", ErrInvalidPipeline, f.name, v.field, v.value)
			}
		}
	}
	return nil
}

func checkUniformBuffers(res []UniformBufferResource) error {
	var seen [MaxUniformBuffers]bool
	for _, r := range res {
		switch {
		case r.Binding < 0 || r.Binding >= MaxUniformBuffers:
			return fmt.Errorf("%w: uniform buffer binding %d, limit %d", ErrTooManyBindings, r.Binding, MaxUniformBuffers)
		case seen[r.Binding]:
			return fmt.Errorf("%w: uniform buffer binding %d used twice", ErrInvalidPipeline, r.Binding)
		case r.Buffer == nil:
			return fmt.Errorf("%w: uniform buffer binding %d has no buffer", ErrInvalidPipeline, r.Binding)
		case r.Buffer.released:
			return fmt.Errorf("%w: uniform buffer %d", ErrReleased, r.Buffer.handle)
		case r.Offset < 0 || r.Size < 0 || r.Offset+r.Size > r.Buffer.size:
			return fmt.Errorf("%w: uniform buffer range %d+%d exceeds %d bytes", ErrInvalidPipeline, r.Offset, r.Size, r.Buffer.size)
		}
		seen[r.Binding] = true
	}
	return nil
}

func checkSamplers(res []SamplerResource) error {
	var seen [MaxSamplers]bool
	for _, r := range res {
		switch {
		case r.Binding < 0 || r.Binding >= MaxSamplers:
			return fmt.Errorf("%w: sampler binding %d, limit %d", ErrTooManyBindings, r.Binding, MaxSamplers)
		case seen[r.Binding]:
			return fmt.Errorf("%w: sampler binding %d used twice", ErrInvalidPipeline, r.Binding)
		case r.Image == nil:
			return fmt.Errorf("%w: sampler binding %d has no image", ErrInvalidPipeline, r.Binding)
		case r.Image.released:
			return fmt.Errorf("%w: sampled image %d", ErrReleased, r.Image.handle)
		case r.Image.renderbuffer:
			return fmt.Errorf("%w: renderbuffer %d cannot be sampled", ErrInvalidImage, r.Image.handle)
		}
		seen[r.Binding] = true
	}
	return nil
}

func bufferSet(res []UniformBufferResource) DescriptorSetBuffers {
	count := 0
	for _, r := range res {
		count = max(count, r.Binding+1)
	}
	set := DescriptorSetBuffers{Bindings: make([]UniformBufferBinding, count)}
	for _, r := range res {
		size := r.Size
		if size == 0 {
			size = r.Buffer.size - r.Offset
		}
		set.Bindings[r.Binding] = UniformBufferBinding{Buffer: r.Buffer.handle, Offset: r.Offset, Size: size}
	}
	return set
}

// imageSet acquires one sampler object per binding and returns the
// texture unit table.
func (c *Context) imageSet(res []SamplerResource, refs *pipelineRefs) DescriptorSetImages {
	count := 0
	for _, r := range res {
		count = max(count, r.Binding+1)
	}
	set := DescriptorSetImages{Bindings: make([]SamplerBinding, count)}
	for _, r := range res {
		obj := c.samplers.acquire(r.Sampler, func() uint32 { return alloc(&c.names.samplers) })
		refs.samplers = append(refs.samplers, r.Sampler)
		set.Bindings[r.Binding] = SamplerBinding{Sampler: obj.Handle, Target: r.Image.target, Image: r.Image.handle}
	}
	return set
}

func pipelineBuffers(desc PipelineDesc) []*Buffer {
	var out []*Buffer
	for _, vb := range desc.VertexBuffers {
		out = append(out, vb.Buffer)
	}
	if desc.IndexBuffer != nil {
		out = append(out, desc.IndexBuffer)
	}
	for _, r := range desc.UniformBuffers {
		out = append(out, r.Buffer)
	}
	return out
}

func pipelineImages(desc PipelineDesc) []*Image {
	out := make([]*Image, 0, len(desc.Framebuffer)+len(desc.Samplers))
	for _, a := range desc.Framebuffer {
		out = append(out, a.Image)
	}
	for _, r := range desc.Samplers {
		out = append(out, r.Image)
	}
	return out
}
