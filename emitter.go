package glexport

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/glexport/cgen"
	"github.com/gogpu/glexport/glsym"
	"github.com/gogpu/glexport/graph"
)

// Emitter renders resource graph objects as text in one dialect.
//
// Dump calls the emitter once per object in dependency order and calls
// EndBlock after every block except the epilogue. Emitters append to their
// own buffer and never fail; symbol gaps are reported through Misses.
type Emitter interface {
	Buffer(b *graph.Buffer)
	Image(img *graph.Image)
	Sampler(handle uint32, d graph.SamplerDescriptor)
	Framebuffer(handle uint32, d graph.FramebufferDescriptor)
	VertexArray(handle uint32, d graph.VertexArrayDescriptor)

	// Shader receives source already normalized by Dump.
	Shader(handle uint32, stage uint32, source string)
	Program(handle, vertex, fragment uint32)

	Prologue()
	Pipeline(p *graph.Pipeline)
	Epilogue()

	EndBlock()
	String() string
	Misses() []glsym.Miss
}

// EmitterFactory creates a new emitter instance.
// Factories are registered via Register() and called by NewEmitter().
type EmitterFactory func() Emitter

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	dialects   = make(map[string]EmitterFactory)
)

func init() {
	Register(DefaultDialect, func() Emitter { return cgen.New() })
}

// Register registers an emitter factory under a dialect name.
// This follows the database/sql driver pattern:
//
//	func init() {
//	    glexport.Register("gles", func() glexport.Emitter {
//	        return NewGLESWriter()
//	    })
//	}
//
// Register panics if factory is nil or the dialect is already registered.
func Register(name string, factory EmitterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("glexport: Register factory is nil")
	}
	if _, dup := dialects[name]; dup {
		panic("glexport: Register called twice for " + name)
	}
	dialects[name] = factory
}

// Unregister removes a dialect from the registry.
// If the dialect is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(dialects, name)
}

// NewEmitter creates a new emitter for the named dialect.
// The error message includes a hint about forgotten imports.
func NewEmitter(name string) (Emitter, error) {
	registryMu.RLock()
	factory, ok := dialects[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownDialect, name)
	}
	return factory(), nil
}

// Dialects returns the registered dialect names, sorted alphabetically.
func Dialects() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a dialect with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := dialects[name]
	return ok
}
