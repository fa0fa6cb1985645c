package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Option configures a Context during creation.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger the context reports resource lifecycle events to.
// By default a Context logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// nopHandler discards every record.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// names allocates GL object names. Each GL name space counts separately
// and starts at 1; names are never reused.
type names struct {
	buffers       uint32
	textures      uint32
	renderbuffers uint32
	framebuffers  uint32
	vertexArrays  uint32
	samplers      uint32
	programs      uint32 // shaders and programs share one space
	pipelines     uint32
}

func alloc(counter *uint32) uint32 {
	*counter++
	return *counter
}

// Context owns the live resources and the deduplicating object caches of
// one GL context.
//
// Context is not safe for concurrent use. A dump must not run while
// resources are created or released.
type Context struct {
	id  uuid.UUID
	log *slog.Logger

	names names

	buffers   *registry[*Buffer]
	images    *registry[*Image]
	pipelines *registry[*Pipeline]

	samplers     *Cache[SamplerDescriptor]
	framebuffers *Cache[FramebufferDescriptor]
	vertexArrays *Cache[VertexArrayDescriptor]
	shaders      *Cache[ShaderKey]
	programs     *Cache[ProgramKey]
	settings     *Cache[Settings]
	bufferSets   *Cache[DescriptorSetBuffers]
	imageSets    *Cache[DescriptorSetImages]
}

// NewContext creates an empty context.
func NewContext(opts ...Option) *Context {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(nopHandler{})
	}

	id := uuid.New()
	return &Context{
		id:           id,
		log:          o.logger.With("context", id.String()),
		buffers:      newRegistry[*Buffer](),
		images:       newRegistry[*Image](),
		pipelines:    newRegistry[*Pipeline](),
		samplers:     newCache[SamplerDescriptor](),
		framebuffers: newCache[FramebufferDescriptor](),
		vertexArrays: newCache[VertexArrayDescriptor](),
		shaders:      newCache[ShaderKey](),
		programs:     newCache[ProgramKey](),
		settings:     newCache[Settings](),
		bufferSets:   newCache[DescriptorSetBuffers](),
		imageSets:    newCache[DescriptorSetImages](),
	}
}

// ID returns the unique id of the context.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// NewBuffer creates a buffer object.
func (c *Context) NewBuffer(desc BufferDesc) (*Buffer, error) {
	if desc.Size <= 0 {
		return nil, fmt.Errorf("%w: buffer size %d", ErrInvalidSize, desc.Size)
	}
	b := &Buffer{
		handle:  alloc(&c.names.buffers),
		size:    desc.Size,
		dynamic: desc.Dynamic,
	}
	c.buffers.add(b)
	c.log.Debug("graph: buffer created", "handle", b.handle, "size", b.size, "dynamic", b.dynamic)
	return b, nil
}

// NewImage creates a texture or renderbuffer.
//
// A sample count above 1 always creates a renderbuffer. Renderbuffers
// cannot be arrays or cubemaps, and cubemap faces must be square.
func (c *Context) NewImage(desc ImageDesc) (*Image, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidSize, desc.Width, desc.Height)
	}
	if desc.Samples < 0 || desc.Layers < 0 {
		return nil, fmt.Errorf("%w: negative samples or layers", ErrInvalidImage)
	}
	format, ok := LookupImageFormat(desc.Format)
	if !ok {
		return nil, fmt.Errorf("%w: texture format %v", ErrUnsupportedFormat, desc.Format)
	}

	samples := desc.Samples
	if samples == 0 {
		samples = 1
	}
	renderbuffer := desc.Renderbuffer || samples > 1
	if renderbuffer && (desc.Cubemap || desc.Layers > 0) {
		return nil, fmt.Errorf("%w: renderbuffers cannot be arrays or cubemaps", ErrInvalidImage)
	}
	if desc.Cubemap && desc.Layers > 0 {
		return nil, fmt.Errorf("%w: cubemap arrays are not supported", ErrInvalidImage)
	}
	if desc.Cubemap && desc.Width != desc.Height {
		return nil, fmt.Errorf("%w: cubemap faces must be square, got %dx%d", ErrInvalidImage, desc.Width, desc.Height)
	}

	img := &Image{
		width:        desc.Width,
		height:       desc.Height,
		layers:       desc.Layers,
		samples:      samples,
		cubemap:      desc.Cubemap,
		renderbuffer: renderbuffer,
		target:       imageTarget(desc),
		format:       format,
	}
	if renderbuffer {
		img.handle = alloc(&c.names.renderbuffers)
	} else {
		img.handle = alloc(&c.names.textures)
	}
	c.images.add(img)
	c.log.Debug("graph: image created",
		"handle", img.handle,
		"width", img.width,
		"height", img.height,
		"renderbuffer", img.renderbuffer)
	return img, nil
}

// Release removes a buffer, image or pipeline from the context.
//
// Releasing a pipeline gives back its uses of every cached object; objects
// no other pipeline uses are evicted. Buffers and images referenced by a
// live pipeline cannot be released.
func (c *Context) Release(r any) error {
	switch r := r.(type) {
	case *Buffer:
		if r.released {
			return fmt.Errorf("%w: buffer %d", ErrReleased, r.handle)
		}
		if r.refs > 0 {
			return fmt.Errorf("%w: buffer %d is used by %d pipeline(s)", ErrInUse, r.handle, r.refs)
		}
		r.released = true
		c.buffers.remove(r)
	case *Image:
		if r.released {
			return fmt.Errorf("%w: image %d", ErrReleased, r.handle)
		}
		if r.refs > 0 {
			return fmt.Errorf("%w: image %d is used by %d pipeline(s)", ErrInUse, r.handle, r.refs)
		}
		r.released = true
		c.images.remove(r)
	case *Pipeline:
		if r.released {
			return fmt.Errorf("%w: pipeline %d", ErrReleased, r.id)
		}
		r.released = true
		c.pipelines.remove(r)
		c.releaseRefs(&r.refs)
	default:
		panic(fmt.Sprintf("graph: Release of unsupported type %T", r))
	}
	return nil
}

func (c *Context) releaseRefs(refs *pipelineRefs) {
	evicted := 0
	count := func(ok bool) {
		if ok {
			evicted++
		}
	}
	count(c.framebuffers.release(refs.framebuffer))
	count(c.vertexArrays.release(refs.vertexArray))
	for _, s := range refs.samplers {
		count(c.samplers.release(s))
	}
	count(c.programs.release(refs.program))
	for _, s := range refs.shaders {
		count(c.shaders.release(s))
	}
	count(c.settings.release(refs.settings))
	count(c.bufferSets.release(refs.bufferSet))
	count(c.imageSets.release(refs.imageSet))
	for _, b := range refs.buffers {
		b.refs--
	}
	for _, img := range refs.images {
		img.refs--
	}
	c.log.Debug("graph: pipeline released", "evicted", evicted)
}

// Buffers returns the live buffers in creation order.
func (c *Context) Buffers() []*Buffer { return c.buffers.list() }

// Images returns the live images in creation order.
func (c *Context) Images() []*Image { return c.images.list() }

// Pipelines returns the live pipelines in creation order.
func (c *Context) Pipelines() []*Pipeline { return c.pipelines.list() }

// Samplers returns the sampler cache.
func (c *Context) Samplers() []Entry[SamplerDescriptor] { return c.samplers.Entries() }

// Framebuffers returns the framebuffer cache.
func (c *Context) Framebuffers() []Entry[FramebufferDescriptor] { return c.framebuffers.Entries() }

// VertexArrays returns the vertex array cache.
func (c *Context) VertexArrays() []Entry[VertexArrayDescriptor] { return c.vertexArrays.Entries() }

// Shaders returns the shader cache.
func (c *Context) Shaders() []Entry[ShaderKey] { return c.shaders.Entries() }

// Programs returns the program cache.
func (c *Context) Programs() []Entry[ProgramKey] { return c.programs.Entries() }

// ShaderHandle returns the GL name of a cached shader.
func (c *Context) ShaderHandle(key ShaderKey) (uint32, bool) {
	obj, ok := c.shaders.Lookup(key)
	if !ok {
		return 0, false
	}
	return obj.Handle, true
}

// CacheStats reports hit and miss counts of every cache, keyed by cache name.
func (c *Context) CacheStats() map[string][2]uint64 {
	caches := []struct {
		name  string
		cache interface{ Stats() (uint64, uint64) }
	}{
		{"samplers", c.samplers},
		{"framebuffers", c.framebuffers},
		{"vertex_arrays", c.vertexArrays},
		{"shaders", c.shaders},
		{"programs", c.programs},
		{"settings", c.settings},
		{"buffer_sets", c.bufferSets},
		{"image_sets", c.imageSets},
	}
	stats := make(map[string][2]uint64, len(caches))
	for _, e := range caches {
		hits, misses := e.cache.Stats()
		stats[e.name] = [2]uint64{hits, misses}
	}
	return stats
}
