package glexport

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/glexport/graph"
	"github.com/gogpu/glexport/internal/srctext"
	"github.com/gogpu/glexport/internal/wgslconv"
)

// Graph is the read-only view of a resource graph that Dump compiles.
// *graph.Context implements it.
type Graph interface {
	// Buffers, Images and Pipelines return live resources in creation order.
	Buffers() []*graph.Buffer
	Images() []*graph.Image
	Pipelines() []*graph.Pipeline

	Samplers() []graph.Entry[graph.SamplerDescriptor]
	Framebuffers() []graph.Entry[graph.FramebufferDescriptor]
	VertexArrays() []graph.Entry[graph.VertexArrayDescriptor]
	Shaders() []graph.Entry[graph.ShaderKey]
	Programs() []graph.Entry[graph.ProgramKey]

	ShaderHandle(key graph.ShaderKey) (uint32, bool)
}

var _ Graph = (*graph.Context)(nil)

// cacheStater is implemented by graphs that count cache hits and misses.
type cacheStater interface {
	CacheStats() map[string][2]uint64
}

// Dump compiles g into text that recreates its objects and replays its
// pipelines against a fresh GL context.
//
// Blocks appear in dependency order: buffers, images, samplers,
// framebuffers, vertex arrays, shaders, programs, the prologue, pipelines
// and the epilogue. Every block but the epilogue is followed by an empty
// line.
//
// Dump does not modify g. The caller must not create or release resources
// while Dump runs. On error no text is returned.
func Dump(g Graph, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	e, err := NewEmitter(o.dialect)
	if err != nil {
		return "", err
	}

	buffers := g.Buffers()
	for _, b := range buffers {
		e.Buffer(b)
		e.EndBlock()
	}
	images := g.Images()
	for _, img := range images {
		e.Image(img)
		e.EndBlock()
	}
	for _, s := range g.Samplers() {
		e.Sampler(s.Object.Handle, s.Descriptor)
		e.EndBlock()
	}
	for _, fb := range g.Framebuffers() {
		e.Framebuffer(fb.Object.Handle, fb.Descriptor)
		e.EndBlock()
	}
	for _, va := range g.VertexArrays() {
		e.VertexArray(va.Object.Handle, va.Descriptor)
		e.EndBlock()
	}
	for _, sh := range g.Shaders() {
		src, err := srctext.Normalize(sh.Descriptor.Source)
		if err != nil {
			return "", fmt.Errorf("glexport: shader %d: %w", sh.Object.Handle, err)
		}
		e.Shader(sh.Object.Handle, sh.Descriptor.Stage, src)
		e.EndBlock()
	}
	for _, p := range g.Programs() {
		e.Program(p.Object.Handle, mustShader(g, p.Descriptor.Vertex), mustShader(g, p.Descriptor.Fragment))
		e.EndBlock()
	}

	e.Prologue()
	e.EndBlock()

	pipelines := g.Pipelines()
	for _, p := range pipelines {
		e.Pipeline(p)
		e.EndBlock()
	}

	e.Epilogue()

	if misses := e.Misses(); len(misses) > 0 {
		list := make([]string, len(misses))
		for i, m := range misses {
			list[i] = m.String()
			log.Warn("glexport: GL code has no symbol", "domain", m.Domain.String(), "code", m.Code)
		}
		if o.strict {
			return "", fmt.Errorf("%w: %s", ErrUnknownSymbol, strings.Join(list, ", "))
		}
	}

	out := e.String()
	attrs := []any{
		"dialect", o.dialect,
		"buffers", len(buffers),
		"images", len(images),
		"pipelines", len(pipelines),
		"bytes", len(out),
	}
	if cs, ok := g.(cacheStater); ok {
		attrs = append(attrs, "caches", cs.CacheStats())
	}
	t := wgslconv.CacheStats()
	attrs = append(attrs, slog.Group("wgsl_translations",
		"entries", t.Len,
		"hits", t.Hits,
		"misses", t.Misses,
		"evictions", t.Evictions))
	log.Debug("glexport: dump complete", attrs...)
	return out, nil
}

// mustShader resolves a program's shader. Programs are only cached together
// with their shaders, so a miss means the graph is corrupt.
func mustShader(g Graph, key graph.ShaderKey) uint32 {
	h, ok := g.ShaderHandle(key)
	if !ok {
		panic(fmt.Sprintf("glexport: program references a shader missing from the cache (stage 0x%04x)", key.Stage))
	}
	return h
}
