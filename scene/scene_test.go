package scene

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/gogpu/glexport/glsym"
	"github.com/gogpu/glexport/graph"
)

const vertexSource = "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n"
const fragmentSource = "#version 330 core\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n"

const tomlScene = `
[[buffers]]
name = "vertices"
size = 1024

[[buffers]]
name = "indices"
size = 64

[[buffers]]
name = "uniforms"
size = 256
dynamic = true

[[images]]
name = "color"
width = 64
height = 32
format = "rgba8unorm"

[[images]]
name = "depth"
width = 64
height = 32
format = "depth24plus-stencil8"

[[images]]
name = "albedo"
size_from = "albedo.png"
format = "rgba8unorm"

[[pipelines]]
name = "main"
vertex_shader_file = "main.vert"
fragment_shader_file = "main.frag"
framebuffer = [{ image = "color" }, { image = "depth" }]
index_buffer = "indices"
index_type = "GL_UNSIGNED_SHORT"
topology = "triangle_strip"
vertex_count = 6
instance_count = 2

[[pipelines.vertex_buffers]]
buffer = "vertices"
location = 0
stride = 12
format = "float32x3"

[[pipelines.uniform_buffers]]
binding = 1
buffer = "uniforms"
size = 64

[[pipelines.samplers]]
binding = 0
image = "albedo"
min_filter = "GL_NEAREST"
wrap_s = "clamp_to_edge"
border_color = [1.0, 0.0, 0.0, 1.0]

[pipelines.settings]
cull_face = "GL_BACK"
depth_test = true
depth_func = "GL_LEQUAL"
blend_enable = 1
blend_src_color = "GL_SRC_ALPHA"
blend_dst_color = "GL_ONE_MINUS_SRC_ALPHA"

[pipelines.settings.stencil_front]
compare_op = "GL_EQUAL"
reference = 3
`

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func writePNG(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	fp, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer fp.Close()
	require.NoError(t, png.Encode(fp, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.vert", []byte(vertexSource))
	writeFile(t, dir, "main.frag", []byte(fragmentSource))
	writePNG(t, dir, "albedo.png", 16, 8)
	path := writeFile(t, dir, "scene.toml", []byte(tomlScene))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		path,
		filepath.Join(dir, "albedo.png"),
		filepath.Join(dir, "main.vert"),
		filepath.Join(dir, "main.frag"),
	}, s.Files)

	require.Len(t, s.Context.Buffers(), 3)
	assert.True(t, s.Buffers["uniforms"].Dynamic())
	assert.Equal(t, 1024, s.Buffers["vertices"].Size())

	albedo := s.Images["albedo"]
	require.NotNil(t, albedo)
	assert.Equal(t, 16, albedo.Width())
	assert.Equal(t, 8, albedo.Height())

	p := s.Pipelines["main"]
	require.NotNil(t, p)
	assert.Equal(t, uint32(glsym.TriangleStrip), p.Topology)
	assert.Equal(t, uint32(glsym.UnsignedShort), p.IndexType)
	assert.Equal(t, 2, p.IndexSize)
	assert.Equal(t, 2, p.InstanceCount)
	assert.Equal(t, graph.Viewport{Width: 64, Height: 32}, p.Viewport)

	assert.Equal(t, uint32(glsym.Back), p.Settings.CullFace)
	assert.True(t, p.Settings.DepthTest)
	assert.True(t, p.Settings.DepthWrite)
	assert.Equal(t, uint32(glsym.LEqual), p.Settings.DepthFunc)
	assert.Equal(t, uint32(glsym.SrcAlpha), p.Settings.BlendSrcColor)
	assert.Equal(t, uint32(glsym.Equal), p.Settings.StencilFront.CompareOp)
	assert.Equal(t, 3, p.Settings.StencilFront.Reference)
	assert.Equal(t, 0xff, p.Settings.StencilFront.WriteMask)
	assert.Equal(t, uint32(glsym.Always), p.Settings.StencilBack.CompareOp)

	require.Len(t, p.Buffers.Bindings, 2)
	assert.Equal(t, s.Buffers["uniforms"].Handle(), p.Buffers.Bindings[1].Buffer)

	samplers := s.Context.Samplers()
	require.Len(t, samplers, 1)
	d := samplers[0].Descriptor
	assert.Equal(t, uint32(glsym.Nearest), d.MinFilter)
	assert.Equal(t, uint32(glsym.Linear), d.MagFilter)
	assert.Equal(t, uint32(glsym.ClampToEdge), d.WrapS)
	assert.Equal(t, uint32(glsym.Repeat), d.WrapT)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, d.BorderColor)

	shaders := s.Context.Shaders()
	require.Len(t, shaders, 2)
	assert.Equal(t, vertexSource, shaders[0].Descriptor.Source)
}

const yamlScene = `
buffers:
  - name: vertices
    size: 36
images:
  - name: target
    width: 8
    height: 8
    format: rgba8unorm
    samples: 4
pipelines:
  - name: tri
    vertex_shader: |
      #version 330 core
      void main() {}
    fragment_shader: |
      #version 330 core
      void main() {}
    framebuffer:
      - image: target
    vertex_buffers:
      - buffer: vertices
        stride: 12
        format: float32x3
    vertex_count: 3
    viewport: {x: 1, y: 2, width: 3, height: 4}
`

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scene.yml", []byte(yamlScene))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, s.Files)

	target := s.Images["target"]
	assert.True(t, target.Renderbuffer())
	assert.Equal(t, 4, target.Samples())

	p := s.Pipelines["tri"]
	assert.Equal(t, uint32(glsym.Triangles), p.Topology)
	assert.False(t, p.Indexed())
	assert.Equal(t, graph.Viewport{X: 1, Y: 2, Width: 3, Height: 4}, p.Viewport)
	assert.Equal(t, graph.DefaultSettings().DepthFunc, p.Settings.DepthFunc)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		scene string
		err   error
	}{
		{
			name: "extension",
			file: "scene.json",
			err:  ErrUnsupportedFile,
		},
		{
			name:  "duplicate buffer",
			file:  "scene.toml",
			scene: "[[buffers]]\nname = \"a\"\nsize = 4\n[[buffers]]\nname = \"a\"\nsize = 4\n",
			err:   ErrDuplicateName,
		},
		{
			name:  "texture format",
			file:  "scene.toml",
			scene: "[[images]]\nname = \"a\"\nwidth = 4\nheight = 4\nformat = \"rgb9\"\n",
			err:   ErrUnknownFormat,
		},
		{
			name:  "invalid buffer size",
			file:  "scene.yaml",
			scene: "buffers:\n  - name: a\n    size: 0\n",
			err:   graph.ErrInvalidSize,
		},
		{
			name: "unknown image",
			file: "scene.yaml",
			scene: "pipelines:\n  - name: p\n    vertex_shader: v\n    fragment_shader: f\n" +
				"    framebuffer:\n      - image: missing\n",
			err: ErrUnknownName,
		},
		{
			name: "unknown symbol",
			file: "scene.yaml",
			scene: "images:\n  - {name: c, width: 4, height: 4, format: rgba8unorm}\n" +
				"pipelines:\n  - name: p\n    vertex_shader: v\n    fragment_shader: f\n" +
				"    framebuffer: [{image: c}]\n    topology: GL_QUADS\n",
			err: ErrUnknownSymbol,
		},
		{
			name: "border color",
			file: "scene.yaml",
			scene: "images:\n  - {name: c, width: 4, height: 4, format: rgba8unorm}\n" +
				"pipelines:\n  - name: p\n    vertex_shader: v\n    fragment_shader: f\n" +
				"    framebuffer: [{image: c}]\n    samplers: [{image: c, border_color: [1, 2]}]\n",
			err: ErrInvalidValue,
		},
		{
			name: "inline and file shader",
			file: "scene.yaml",
			scene: "images:\n  - {name: c, width: 4, height: 4, format: rgba8unorm}\n" +
				"pipelines:\n  - name: p\n    vertex_shader: v\n    vertex_shader_file: v.glsl\n" +
				"    fragment_shader: f\n    framebuffer: [{image: c}]\n",
			err: ErrInvalidValue,
		},
		{
			name: "stencil reference",
			file: "scene.yaml",
			scene: "images:\n  - {name: c, width: 4, height: 4, format: rgba8unorm}\n" +
				"pipelines:\n  - name: p\n    vertex_shader: v\n    fragment_shader: f\n" +
				"    framebuffer: [{image: c}]\n    settings: {stencil_front: {reference: 256}}\n",
			err: graph.ErrInvalidPipeline,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, []byte(tt.scene))
			_, err := Load(path)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"scene.toml", "scene.yaml"} {
		var data string
		if strings.HasSuffix(name, ".toml") {
			data = "[[buffers]]\nname = \"a\"\nsise = 4\n"
		} else {
			data = "buffers:\n  - name: a\n    sise: 4\n"
		}
		_, err := Load(writeFile(t, dir, name, []byte(data)))
		assert.Error(t, err, name)
	}
}

func TestReadText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain", []byte("void main() {}"), "void main() {}"},
		{"utf8 bom", []byte("\xef\xbb\xbfvoid"), "void"},
		{"utf16le bom", []byte{0xff, 0xfe, 'g', 0, 'l', 0}, "gl"},
		{"utf16be bom", []byte{0xfe, 0xff, 0, 'g', 0, 'l'}, "gl"},
	}
	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadText(writeFile(t, dir, "shader.glsl", tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageSize(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 5, 9)

	fp, err := os.Create(filepath.Join(dir, "b.bmp"))
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(fp, image.NewGray(image.Rect(0, 0, 12, 4))))
	require.NoError(t, fp.Close())

	w, h, err := ImageSize(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, [2]int{5, 9}, [2]int{w, h})

	w, h, err = ImageSize(filepath.Join(dir, "b.bmp"))
	require.NoError(t, err)
	assert.Equal(t, [2]int{12, 4}, [2]int{w, h})

	_, _, err = ImageSize(writeFile(t, dir, "c.png", []byte("not an image")))
	assert.Error(t, err)
}
