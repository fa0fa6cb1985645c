package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/glexport/glsym"
	"github.com/gogpu/glexport/graph"
)

// Scene is a graph built from a scene file.
type Scene struct {
	Context *graph.Context

	Buffers   map[string]*graph.Buffer
	Images    map[string]*graph.Image
	Pipelines map[string]*graph.Pipeline

	// Files lists the scene file and every file it references, in the
	// order they were read.
	Files []string
}

// Load reads filename and builds its resources into a new context.
func Load(filename string, opts ...graph.Option) (*Scene, error) {
	f, err := Open(filename)
	if err != nil {
		return nil, err
	}
	s, err := f.Build(filepath.Dir(filename), opts...)
	if err != nil {
		return nil, err
	}
	s.Files = append([]string{filename}, s.Files...)
	return s, nil
}

// Build creates the resources of f in a new context. Relative file
// references resolve against dir.
func (f *File) Build(dir string, opts ...graph.Option) (*Scene, error) {
	b := &builder{
		dir: dir,
		s: &Scene{
			Context:   graph.NewContext(opts...),
			Buffers:   make(map[string]*graph.Buffer, len(f.Buffers)),
			Images:    make(map[string]*graph.Image, len(f.Images)),
			Pipelines: make(map[string]*graph.Pipeline, len(f.Pipelines)),
		},
	}
	for _, spec := range f.Buffers {
		if err := b.buffer(spec); err != nil {
			return nil, err
		}
	}
	for _, spec := range f.Images {
		if err := b.image(spec); err != nil {
			return nil, err
		}
	}
	for _, spec := range f.Pipelines {
		if err := b.pipeline(spec); err != nil {
			return nil, err
		}
	}
	return b.s, nil
}

type builder struct {
	dir string
	s   *Scene
}

func (b *builder) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(b.dir, name)
}

func (b *builder) buffer(spec BufferSpec) error {
	if _, ok := b.s.Buffers[spec.Name]; ok {
		return fmt.Errorf("%w: buffer %q", ErrDuplicateName, spec.Name)
	}
	buf, err := b.s.Context.NewBuffer(graph.BufferDesc{Size: spec.Size, Dynamic: spec.Dynamic})
	if err != nil {
		return fmt.Errorf("scene: buffer %q: %w", spec.Name, err)
	}
	b.s.Buffers[spec.Name] = buf
	return nil
}

func (b *builder) image(spec ImageSpec) error {
	if _, ok := b.s.Images[spec.Name]; ok {
		return fmt.Errorf("%w: image %q", ErrDuplicateName, spec.Name)
	}
	format, ok := graph.ParseTextureFormat(spec.Format)
	if !ok {
		return fmt.Errorf("%w: image %q: texture format %q", ErrUnknownFormat, spec.Name, spec.Format)
	}
	desc := graph.ImageDesc{
		Width:        spec.Width,
		Height:       spec.Height,
		Format:       format,
		Samples:      spec.Samples,
		Layers:       spec.Layers,
		Cubemap:      spec.Cubemap,
		Renderbuffer: spec.Renderbuffer,
	}
	if spec.SizeFrom != "" {
		p := b.path(spec.SizeFrom)
		w, h, err := ImageSize(p)
		if err != nil {
			return fmt.Errorf("scene: image %q: %w", spec.Name, err)
		}
		desc.Width, desc.Height = w, h
		b.s.Files = append(b.s.Files, p)
	}
	img, err := b.s.Context.NewImage(desc)
	if err != nil {
		return fmt.Errorf("scene: image %q: %w", spec.Name, err)
	}
	b.s.Images[spec.Name] = img
	return nil
}

func (b *builder) pipeline(spec PipelineSpec) error {
	if _, ok := b.s.Pipelines[spec.Name]; ok {
		return fmt.Errorf("%w: pipeline %q", ErrDuplicateName, spec.Name)
	}
	desc, err := b.pipelineDesc(spec)
	if err != nil {
		return fmt.Errorf("scene: pipeline %q: %w", spec.Name, err)
	}
	p, err := b.s.Context.NewPipeline(desc)
	if err != nil {
		return fmt.Errorf("scene: pipeline %q: %w", spec.Name, err)
	}
	b.s.Pipelines[spec.Name] = p
	return nil
}

func (b *builder) pipelineDesc(spec PipelineSpec) (graph.PipelineDesc, error) {
	desc := graph.PipelineDesc{
		VertexEntry:   spec.VertexEntry,
		FragmentEntry: spec.FragmentEntry,
		VertexCount:   spec.VertexCount,
		InstanceCount: spec.InstanceCount,
		FirstVertex:   spec.FirstVertex,
	}

	var err error
	if desc.VertexShader, err = b.source("vertex_shader", spec.VertexShader, spec.VertexShaderFile); err != nil {
		return desc, err
	}
	if desc.FragmentShader, err = b.source("fragment_shader", spec.FragmentShader, spec.FragmentShaderFile); err != nil {
		return desc, err
	}
	if desc.WGSL, err = b.source("wgsl", spec.WGSL, spec.WGSLFile); err != nil {
		return desc, err
	}

	for _, a := range spec.Framebuffer {
		img, err := b.imageRef(a.Image)
		if err != nil {
			return desc, err
		}
		desc.Framebuffer = append(desc.Framebuffer, graph.Attachment{Image: img, Level: a.Level, Layer: a.Layer})
	}

	for _, v := range spec.VertexBuffers {
		buf, err := b.bufferRef(v.Buffer)
		if err != nil {
			return desc, err
		}
		format, ok := graph.ParseVertexFormat(v.Format)
		if !ok {
			return desc, fmt.Errorf("%w: vertex format %q", ErrUnknownFormat, v.Format)
		}
		desc.VertexBuffers = append(desc.VertexBuffers, graph.VertexBinding{
			Buffer:   buf,
			Location: v.Location,
			Offset:   v.Offset,
			Stride:   v.Stride,
			Divisor:  v.Divisor,
			Format:   format,
		})
	}
	if spec.IndexBuffer != "" {
		if desc.IndexBuffer, err = b.bufferRef(spec.IndexBuffer); err != nil {
			return desc, err
		}
	}
	if desc.IndexType, err = enum(glsym.DataType, spec.IndexType, 0); err != nil {
		return desc, err
	}

	for _, u := range spec.UniformBuffers {
		buf, err := b.bufferRef(u.Buffer)
		if err != nil {
			return desc, err
		}
		desc.UniformBuffers = append(desc.UniformBuffers, graph.UniformBufferResource{
			Binding: u.Binding,
			Buffer:  buf,
			Offset:  u.Offset,
			Size:    u.Size,
		})
	}
	for _, s := range spec.Samplers {
		img, err := b.imageRef(s.Image)
		if err != nil {
			return desc, err
		}
		sampler, err := samplerDescriptor(s)
		if err != nil {
			return desc, err
		}
		desc.Samplers = append(desc.Samplers, graph.SamplerResource{Binding: s.Binding, Image: img, Sampler: sampler})
	}

	if spec.Settings != nil {
		settings, err := settingsFrom(*spec.Settings)
		if err != nil {
			return desc, err
		}
		desc.Settings = &settings
	}
	if desc.Topology, err = enum(glsym.Topology, spec.Topology, glsym.Triangles); err != nil {
		return desc, err
	}
	if v := spec.Viewport; v != nil {
		desc.Viewport = &graph.Viewport{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
	}
	return desc, nil
}

// source returns inline text or the decoded contents of file. Giving both
// is an error.
func (b *builder) source(field, inline, file string) (string, error) {
	if file == "" {
		return inline, nil
	}
	if inline != "" {
		return "", fmt.Errorf("%w: %s and %s_file are both set", ErrInvalidValue, field, field)
	}
	p := b.path(file)
	text, err := ReadText(p)
	if err != nil {
		return "", err
	}
	b.s.Files = append(b.s.Files, p)
	return text, nil
}

func (b *builder) bufferRef(name string) (*graph.Buffer, error) {
	buf, ok := b.s.Buffers[name]
	if !ok {
		return nil, fmt.Errorf("%w: buffer %q", ErrUnknownName, name)
	}
	return buf, nil
}

func (b *builder) imageRef(name string) (*graph.Image, error) {
	img, ok := b.s.Images[name]
	if !ok {
		return nil, fmt.Errorf("%w: image %q", ErrUnknownName, name)
	}
	return img, nil
}

// enum resolves a GL symbol name in domain d. The GL_ prefix is optional
// and case is ignored. An empty name yields def.
func enum(d glsym.Domain, name string, def uint32) (uint32, error) {
	if name == "" {
		return def, nil
	}
	sym := strings.ToUpper(name)
	if !strings.HasPrefix(sym, "GL_") {
		sym = "GL_" + sym
	}
	code, ok := glsym.Code(d, sym)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownSymbol, d, name)
	}
	return code, nil
}

// enums resolves several fields of one record, stopping at the first error.
type enums struct {
	err error
}

func (e *enums) set(dst *uint32, d glsym.Domain, name string) {
	if e.err != nil || name == "" {
		return
	}
	*dst, e.err = enum(d, name, *dst)
}

func samplerDescriptor(s SamplerSpec) (graph.SamplerDescriptor, error) {
	d := graph.DefaultSampler()
	var e enums
	e.set(&d.MinFilter, glsym.Filter, s.MinFilter)
	e.set(&d.MagFilter, glsym.Filter, s.MagFilter)
	e.set(&d.WrapS, glsym.Wrap, s.WrapS)
	e.set(&d.WrapT, glsym.Wrap, s.WrapT)
	e.set(&d.WrapR, glsym.Wrap, s.WrapR)
	e.set(&d.CompareMode, glsym.CompareMode, s.CompareMode)
	e.set(&d.CompareFunc, glsym.CompareFunc, s.CompareFunc)
	if e.err != nil {
		return d, e.err
	}
	if s.MinLOD != nil {
		d.MinLOD = *s.MinLOD
	}
	if s.MaxLOD != nil {
		d.MaxLOD = *s.MaxLOD
	}
	d.LODBias = s.LODBias
	if s.MaxAnisotropy != nil {
		d.MaxAnisotropy = *s.MaxAnisotropy
	}
	switch len(s.BorderColor) {
	case 0:
	case 4:
		copy(d.BorderColor[:], s.BorderColor)
	default:
		return d, fmt.Errorf("%w: border_color needs 4 components, got %d", ErrInvalidValue, len(s.BorderColor))
	}
	return d, nil
}

func settingsFrom(s SettingsSpec) (graph.Settings, error) {
	out := graph.DefaultSettings()
	out.PrimitiveRestart = s.PrimitiveRestart
	out.DepthTest = s.DepthTest
	if s.DepthWrite != nil {
		out.DepthWrite = *s.DepthWrite
	}
	out.StencilTest = s.StencilTest
	out.BlendEnable = s.BlendEnable
	out.PolygonOffset = s.PolygonOffset
	out.PolygonOffsetFactor = s.PolygonOffsetFactor
	out.PolygonOffsetUnits = s.PolygonOffsetUnits
	if s.ColorMask != nil {
		out.ColorMask = *s.ColorMask
	}

	var e enums
	e.set(&out.CullFace, glsym.CullFace, s.CullFace)
	e.set(&out.DepthFunc, glsym.CompareFunc, s.DepthFunc)
	e.set(&out.BlendOpColor, glsym.BlendEquation, s.BlendOpColor)
	e.set(&out.BlendOpAlpha, glsym.BlendEquation, s.BlendOpAlpha)
	e.set(&out.BlendSrcColor, glsym.BlendFactor, s.BlendSrcColor)
	e.set(&out.BlendDstColor, glsym.BlendFactor, s.BlendDstColor)
	e.set(&out.BlendSrcAlpha, glsym.BlendFactor, s.BlendSrcAlpha)
	e.set(&out.BlendDstAlpha, glsym.BlendFactor, s.BlendDstAlpha)
	if s.StencilFront != nil {
		stencilFace(&e, &out.StencilFront, *s.StencilFront)
	}
	if s.StencilBack != nil {
		stencilFace(&e, &out.StencilBack, *s.StencilBack)
	}
	return out, e.err
}

func stencilFace(e *enums, f *graph.StencilFace, s StencilSpec) {
	e.set(&f.FailOp, glsym.StencilOp, s.FailOp)
	e.set(&f.PassOp, glsym.StencilOp, s.PassOp)
	e.set(&f.DepthFailOp, glsym.StencilOp, s.DepthFailOp)
	e.set(&f.CompareOp, glsym.CompareFunc, s.CompareOp)
	if s.CompareMask != nil {
		f.CompareMask = *s.CompareMask
	}
	if s.WriteMask != nil {
		f.WriteMask = *s.WriteMask
	}
	f.Reference = s.Reference
}
