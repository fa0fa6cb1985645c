package cgen

import (
	"github.com/gogpu/glexport/glsym"
	"github.com/gogpu/glexport/internal/srctext"
)

// Shader emits a shader object compiled from source. The source is written
// as a C string literal as given; callers normalize it first.
func (w *Writer) Shader(handle uint32, stage uint32, source string) {
	w.line("const char * src%d = %s;", handle, srctext.Quote(source))
	w.line("unsigned shader%d = glCreateShader(%s);", handle, w.sym(glsym.ShaderStage, stage))
	w.line("glShaderSource(shader%d, 1, &src%d, NULL);", handle, handle)
	w.line("glCompileShader(shader%d);", handle)
}

// Program emits a program object linking two shaders emitted earlier.
func (w *Writer) Program(handle, vertex, fragment uint32) {
	w.line("unsigned program%d = glCreateProgram();", handle)
	w.line("glAttachShader(program%d, shader%d);", handle, vertex)
	w.line("glAttachShader(program%d, shader%d);", handle, fragment)
	w.line("glLinkProgram(program%d);", handle)
}
