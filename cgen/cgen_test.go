package cgen

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexport/glsym"
	"github.com/gogpu/glexport/graph"
)

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func mustImage(t *testing.T, ctx *graph.Context, desc graph.ImageDesc) *graph.Image {
	t.Helper()
	img, err := ctx.NewImage(desc)
	if err != nil {
		t.Fatalf("NewImage() error: %v", err)
	}
	return img
}

func mustBuffer(t *testing.T, ctx *graph.Context, desc graph.BufferDesc) *graph.Buffer {
	t.Helper()
	b, err := ctx.NewBuffer(desc)
	if err != nil {
		t.Fatalf("NewBuffer() error: %v", err)
	}
	return b
}

func TestBuffer(t *testing.T) {
	ctx := graph.NewContext()
	static := mustBuffer(t, ctx, graph.BufferDesc{Size: 64})
	dynamic := mustBuffer(t, ctx, graph.BufferDesc{Size: 256, Dynamic: true})

	w := New()
	w.Buffer(static)
	want := lines(
		"unsigned buffer1 = 0;",
		"glGenBuffers(1, &buffer1);",
		"glBindBuffer(GL_ARRAY_BUFFER, buffer1);",
		"glBufferData(GL_ARRAY_BUFFER, 64, data, GL_STATIC_DRAW);",
	)
	if got := w.String(); got != want {
		t.Errorf("Buffer(static) =\n%s\nwant\n%s", got, want)
	}

	w = New()
	w.Buffer(dynamic)
	if got := w.String(); !strings.HasSuffix(got, "glBufferData(GL_ARRAY_BUFFER, 256, data, GL_DYNAMIC_DRAW);\n") {
		t.Errorf("Buffer(dynamic) =\n%s", got)
	}
}

func TestImage(t *testing.T) {
	tests := []struct {
		name string
		desc graph.ImageDesc
		want string
	}{
		{
			name: "2d",
			desc: graph.ImageDesc{Width: 4, Height: 4, Format: gputypes.TextureFormatRGBA8Unorm},
			want: lines(
				"unsigned image1 = 0;",
				"glGenTextures(1, &image1);",
				"glBindTexture(GL_TEXTURE_2D, image1);",
				"glTexImage2D(GL_TEXTURE_2D, 0, GL_RGBA8, 4, 4, 0, GL_RGBA, GL_UNSIGNED_BYTE, data);",
			),
		},
		{
			name: "array",
			desc: graph.ImageDesc{Width: 16, Height: 8, Layers: 3, Format: gputypes.TextureFormatR8Unorm},
			want: lines(
				"unsigned image1 = 0;",
				"glGenTextures(1, &image1);",
				"glBindTexture(GL_TEXTURE_2D_ARRAY, image1);",
				"glTexImage3D(GL_TEXTURE_2D_ARRAY, 0, GL_R8, 16, 8, 3, 0, GL_RED, GL_UNSIGNED_BYTE, data);",
			),
		},
		{
			name: "cubemap",
			desc: graph.ImageDesc{Width: 2, Height: 2, Cubemap: true, Format: gputypes.TextureFormatRGBA8Unorm},
			want: lines(
				"unsigned image1 = 0;",
				"glGenTextures(1, &image1);",
				"glBindTexture(GL_TEXTURE_CUBE_MAP, image1);",
				"glTexImage2D(GL_TEXTURE_CUBE_MAP_POSITIVE_X, 0, GL_RGBA8, 2, 2, 0, GL_RGBA, GL_UNSIGNED_BYTE, data);",
				"glTexImage2D(GL_TEXTURE_CUBE_MAP_NEGATIVE_X, 0, GL_RGBA8, 2, 2, 0, GL_RGBA, GL_UNSIGNED_BYTE, data);",
				"glTexImage2D(GL_TEXTURE_CUBE_MAP_POSITIVE_Y, 0, GL_RGBA8, 2, 2, 0, GL_RGBA, GL_UNSIGNED_BYTE, data);",
				"glTexImage2D(GL_TEXTURE_CUBE_MAP_NEGATIVE_Y, 0, GL_RGBA8, 2, 2, 0, GL_RGBA, GL_UNSIGNED_BYTE, data);",
				"glTexImage2D(GL_TEXTURE_CUBE_MAP_POSITIVE_Z, 0, GL_RGBA8, 2, 2, 0, GL_RGBA, GL_UNSIGNED_BYTE, data);",
				"glTexImage2D(GL_TEXTURE_CUBE_MAP_NEGATIVE_Z, 0, GL_RGBA8, 2, 2, 0, GL_RGBA, GL_UNSIGNED_BYTE, data);",
			),
		},
		{
			name: "multisample renderbuffer",
			desc: graph.ImageDesc{Width: 32, Height: 16, Samples: 4, Format: gputypes.TextureFormatRGBA8Unorm},
			want: lines(
				"unsigned renderbuffer1 = 0;",
				"glGenRenderbuffers(1, &renderbuffer1);",
				"glBindRenderbuffer(GL_RENDERBUFFER, renderbuffer1);",
				"glRenderbufferStorageMultisample(GL_RENDERBUFFER, 4, GL_RGBA8, 32, 16);",
			),
		},
		{
			name: "single sample renderbuffer",
			desc: graph.ImageDesc{Width: 32, Height: 16, Renderbuffer: true, Format: gputypes.TextureFormatDepth24PlusStencil8},
			want: lines(
				"unsigned renderbuffer1 = 0;",
				"glGenRenderbuffers(1, &renderbuffer1);",
				"glBindRenderbuffer(GL_RENDERBUFFER, renderbuffer1);",
				"glRenderbufferStorageMultisample(GL_RENDERBUFFER, 0, GL_DEPTH24_STENCIL8, 32, 16);",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := graph.NewContext()
			img := mustImage(t, ctx, tt.desc)
			w := New()
			w.Image(img)
			if got := w.String(); got != tt.want {
				t.Errorf("Image() =\n%s\nwant\n%s", got, tt.want)
			}
			if len(w.Misses()) != 0 {
				t.Errorf("Misses() = %v, want none", w.Misses())
			}
		})
	}
}

func TestFramebuffer(t *testing.T) {
	ctx := graph.NewContext()
	color := mustImage(t, ctx, graph.ImageDesc{Width: 8, Height: 8, Format: gputypes.TextureFormatRGBA8Unorm})
	cube := mustImage(t, ctx, graph.ImageDesc{Width: 8, Height: 8, Cubemap: true, Format: gputypes.TextureFormatRGBA8Unorm})
	array := mustImage(t, ctx, graph.ImageDesc{Width: 8, Height: 8, Layers: 4, Format: gputypes.TextureFormatRGBA8Unorm})
	depth := mustImage(t, ctx, graph.ImageDesc{Width: 8, Height: 8, Samples: 4, Format: gputypes.TextureFormatDepth24PlusStencil8})

	ds := depth.Face(0, 0)
	w := New()
	w.Framebuffer(3, graph.FramebufferDescriptor{
		Colors:       []graph.Attachment{color.Face(0, 1), cube.Face(2, 0), array.Face(3, 0)},
		DepthStencil: &ds,
	})
	want := lines(
		"unsigned framebuffer3 = 0;",
		"glGenFramebuffers(1, &framebuffer3);",
		"glBindFramebuffer(GL_FRAMEBUFFER, framebuffer3);",
		"glFramebufferTexture2D(GL_FRAMEBUFFER, GL_COLOR_ATTACHMENT0, GL_TEXTURE_2D, image1, 1);",
		"glFramebufferTexture2D(GL_FRAMEBUFFER, GL_COLOR_ATTACHMENT1, GL_TEXTURE_CUBE_MAP_POSITIVE_Y, image2, 0);",
		"glFramebufferTextureLayer(GL_FRAMEBUFFER, GL_COLOR_ATTACHMENT2, image3, 0, 3);",
		"glFramebufferRenderbuffer(GL_FRAMEBUFFER, GL_DEPTH_STENCIL_ATTACHMENT, GL_RENDERBUFFER, renderbuffer1);",
		"unsigned draw_buffers3[] = {GL_COLOR_ATTACHMENT0, GL_COLOR_ATTACHMENT1, GL_COLOR_ATTACHMENT2};",
		"glDrawBuffers(3, draw_buffers3);",
		"glReadBuffer(GL_COLOR_ATTACHMENT0);",
	)
	if got := w.String(); got != want {
		t.Errorf("Framebuffer() =\n%s\nwant\n%s", got, want)
	}
}

func TestFramebufferDepthOnly(t *testing.T) {
	ctx := graph.NewContext()
	depth := mustImage(t, ctx, graph.ImageDesc{Width: 8, Height: 8, Format: gputypes.TextureFormatDepth32Float})
	stencil := mustImage(t, ctx, graph.ImageDesc{Width: 8, Height: 8, Format: gputypes.TextureFormatStencil8})

	tests := []struct {
		img  *graph.Image
		want string
	}{
		{depth, "glFramebufferTexture2D(GL_FRAMEBUFFER, GL_DEPTH_ATTACHMENT, GL_TEXTURE_2D, image1, 0);"},
		{stencil, "glFramebufferTexture2D(GL_FRAMEBUFFER, GL_STENCIL_ATTACHMENT, GL_TEXTURE_2D, image2, 0);"},
	}
	for _, tt := range tests {
		a := tt.img.Face(0, 0)
		w := New()
		w.Framebuffer(1, graph.FramebufferDescriptor{DepthStencil: &a})
		want := lines(
			"unsigned framebuffer1 = 0;",
			"glGenFramebuffers(1, &framebuffer1);",
			"glBindFramebuffer(GL_FRAMEBUFFER, framebuffer1);",
			tt.want,
			"unsigned draw_buffers1[] = {};",
			"glDrawBuffers(0, draw_buffers1);",
			"glReadBuffer(GL_NONE);",
		)
		if got := w.String(); got != want {
			t.Errorf("Framebuffer() =\n%s\nwant\n%s", got, want)
		}
	}
}

func TestVertexArray(t *testing.T) {
	ctx := graph.NewContext()
	vb := mustBuffer(t, ctx, graph.BufferDesc{Size: 1024})
	ib := mustBuffer(t, ctx, graph.BufferDesc{Size: 64})

	w := New()
	w.VertexArray(2, graph.VertexArrayDescriptor{
		IndexBuffer: ib,
		Bindings: []graph.VertexBinding{
			{Buffer: vb, Location: 0, Offset: 0, Stride: 20, Format: gputypes.VertexFormatFloat32x3},
			{Buffer: vb, Location: 1, Offset: 12, Stride: 20, Format: gputypes.VertexFormatUnorm8x4},
			{Buffer: vb, Location: 2, Offset: 16, Stride: 20, Divisor: 1, Format: gputypes.VertexFormatUint32},
		},
	})
	want := lines(
		"unsigned vertex_array2 = 0;",
		"glGenVertexArrays(1, &vertex_array2);",
		"glBindVertexArray(vertex_array2);",
		"glBindBuffer(GL_ARRAY_BUFFER, buffer1);",
		"glVertexAttribPointer(0, 3, GL_FLOAT, false, 20, 0);",
		"glVertexAttribDivisor(0, 0);",
		"glEnableVertexAttribArray(0);",
		"glBindBuffer(GL_ARRAY_BUFFER, buffer1);",
		"glVertexAttribPointer(1, 4, GL_UNSIGNED_BYTE, true, 20, 12);",
		"glVertexAttribDivisor(1, 0);",
		"glEnableVertexAttribArray(1);",
		"glBindBuffer(GL_ARRAY_BUFFER, buffer1);",
		"glVertexAttribIPointer(2, 1, GL_UNSIGNED_INT, 20, 16);",
		"glVertexAttribDivisor(2, 1);",
		"glEnableVertexAttribArray(2);",
		"glBindBuffer(GL_ELEMENT_ARRAY_BUFFER, buffer2);",
	)
	if got := w.String(); got != want {
		t.Errorf("VertexArray() =\n%s\nwant\n%s", got, want)
	}
}

func TestSampler(t *testing.T) {
	d := graph.DefaultSampler()
	d.BorderColor = [4]float32{0, 0.5, 1, 1}

	w := New()
	w.Sampler(1, d)
	want := lines(
		"unsigned sampler1 = 0;",
		"glGenSamplers(1, &sampler1);",
		"glSamplerParameteri(sampler1, GL_TEXTURE_MIN_FILTER, GL_LINEAR);",
		"glSamplerParameteri(sampler1, GL_TEXTURE_MAG_FILTER, GL_LINEAR);",
		"glSamplerParameterf(sampler1, GL_TEXTURE_MIN_LOD, -1000.000000);",
		"glSamplerParameterf(sampler1, GL_TEXTURE_MAX_LOD, 1000.000000);",
		"glSamplerParameterf(sampler1, GL_TEXTURE_LOD_BIAS, 0.000000);",
		"glSamplerParameteri(sampler1, GL_TEXTURE_WRAP_S, GL_REPEAT);",
		"glSamplerParameteri(sampler1, GL_TEXTURE_WRAP_T, GL_REPEAT);",
		"glSamplerParameteri(sampler1, GL_TEXTURE_WRAP_R, GL_REPEAT);",
		"glSamplerParameteri(sampler1, GL_TEXTURE_COMPARE_MODE, GL_NONE);",
		"glSamplerParameteri(sampler1, GL_TEXTURE_COMPARE_FUNC, GL_NEVER);",
		"glSamplerParameterf(sampler1, GL_TEXTURE_MAX_ANISOTROPY, 1.000000);",
		"float border1[] = {0.000000, 0.500000, 1.000000, 1.000000};",
		"glSamplerParameterfv(sampler1, GL_TEXTURE_BORDER_COLOR, border1);",
	)
	if got := w.String(); got != want {
		t.Errorf("Sampler() =\n%s\nwant\n%s", got, want)
	}
}

func TestShaderAndProgram(t *testing.T) {
	w := New()
	w.Shader(1, glsym.VertexShader, "#version 330 core\nvoid main() {\n}")
	w.Program(3, 1, 2)
	want := lines(
		`const char * src1 = "#version 330 core\nvoid main() {\n}";`,
		"unsigned shader1 = glCreateShader(GL_VERTEX_SHADER);",
		"glShaderSource(shader1, 1, &src1, NULL);",
		"glCompileShader(shader1);",
		"unsigned program3 = glCreateProgram();",
		"glAttachShader(program3, shader1);",
		"glAttachShader(program3, shader2);",
		"glLinkProgram(program3);",
	)
	if got := w.String(); got != want {
		t.Errorf("Shader()+Program() =\n%s\nwant\n%s", got, want)
	}
}

func TestSettingsDefault(t *testing.T) {
	s := graph.DefaultSettings()
	s.Attachments = 1

	w := New()
	w.Settings(s)
	want := lines(
		"glDisable(GL_PRIMITIVE_RESTART);",
		"glDisable(GL_POLYGON_OFFSET_FILL);",
		"glDisable(GL_CULL_FACE);",
		"glDisable(GL_DEPTH_TEST);",
		"glDisable(GL_STENCIL_TEST);",
		"glStencilMaskSeparate(GL_FRONT, 0xff);",
		"glStencilMaskSeparate(GL_BACK, 0xff);",
		"glStencilFuncSeparate(GL_FRONT, GL_ALWAYS, 0x00, 0xff);",
		"glStencilFuncSeparate(GL_BACK, GL_ALWAYS, 0x00, 0xff);",
		"glStencilOpSeparate(GL_FRONT, GL_KEEP, GL_KEEP, GL_KEEP);",
		"glStencilOpSeparate(GL_BACK, GL_KEEP, GL_KEEP, GL_KEEP);",
		"glDepthMask(true);",
		"glColorMaski(0, true, true, true, true);",
		"glBlendEquationSeparate(GL_FUNC_ADD, GL_FUNC_ADD);",
		"glBlendFuncSeparate(GL_ONE, GL_ZERO, GL_ONE, GL_ZERO);",
		"glDisablei(GL_BLEND, 0);",
	)
	if got := w.String(); got != want {
		t.Errorf("Settings() =\n%s\nwant\n%s", got, want)
	}
}

func TestSettingsEnabled(t *testing.T) {
	s := graph.DefaultSettings()
	s.PrimitiveRestart = true
	s.PolygonOffset = true
	s.PolygonOffsetFactor = 1.5
	s.PolygonOffsetUnits = -2
	s.CullFace = glsym.Back
	s.DepthTest = true
	s.DepthFunc = glsym.LEqual
	s.DepthWrite = false
	s.StencilTest = true
	s.StencilFront.Reference = 1
	s.StencilFront.PassOp = glsym.Replace
	s.BlendEnable = 0b10
	s.BlendSrcColor = glsym.SrcAlpha
	s.BlendDstColor = glsym.OneMinusSrcAlpha
	s.ColorMask = 0x2f
	s.Attachments = 2

	w := New()
	w.Settings(s)
	got := w.String()
	for _, want := range []string{
		"glEnable(GL_PRIMITIVE_RESTART);\nglEnable(GL_POLYGON_OFFSET_FILL);\nglEnable(GL_CULL_FACE);\nglEnable(GL_DEPTH_TEST);\nglEnable(GL_STENCIL_TEST);\n",
		"glPolygonOffset(1.500000, -2.000000);\nglCullFace(GL_BACK);\nglDepthFunc(GL_LEQUAL);\n",
		"glStencilFuncSeparate(GL_FRONT, GL_ALWAYS, 0x01, 0xff);\n",
		"glStencilOpSeparate(GL_FRONT, GL_KEEP, GL_REPLACE, GL_KEEP);\n",
		"glDepthMask(false);\n",
		"glColorMaski(0, true, true, true, true);\nglColorMaski(1, false, true, false, false);\n",
		"glBlendFuncSeparate(GL_SRC_ALPHA, GL_ONE_MINUS_SRC_ALPHA, GL_ONE, GL_ZERO);\n",
		"glDisablei(GL_BLEND, 0);\nglEnablei(GL_BLEND, 1);\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Settings() output lacks %q:\n%s", want, got)
		}
	}
}

func TestSettingsStencilBounds(t *testing.T) {
	s := graph.DefaultSettings()
	s.StencilFront.Reference = 0xff
	s.StencilFront.CompareMask = 0
	s.StencilFront.WriteMask = 0
	s.StencilBack.Reference = 0

	w := New()
	w.Settings(s)
	got := w.String()
	for _, want := range []string{
		"glStencilMaskSeparate(GL_FRONT, 0x00);\nglStencilMaskSeparate(GL_BACK, 0xff);\n",
		"glStencilFuncSeparate(GL_FRONT, GL_ALWAYS, 0xff, 0x00);\n",
		"glStencilFuncSeparate(GL_BACK, GL_ALWAYS, 0x00, 0xff);\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Settings() output lacks %q:\n%s", want, got)
		}
	}
}

func TestPipeline(t *testing.T) {
	ctx := graph.NewContext()
	target := mustImage(t, ctx, graph.ImageDesc{Width: 64, Height: 32, Format: gputypes.TextureFormatRGBA8Unorm})
	tex := mustImage(t, ctx, graph.ImageDesc{Width: 4, Height: 4, Format: gputypes.TextureFormatRGBA8Unorm})
	ubo := mustBuffer(t, ctx, graph.BufferDesc{Size: 64})
	ib := mustBuffer(t, ctx, graph.BufferDesc{Size: 12})

	desc := graph.PipelineDesc{
		VertexShader:   "void main() {}",
		FragmentShader: "void main() { }",
		Framebuffer:    []graph.Attachment{target.Face(0, 0)},
		UniformBuffers: []graph.UniformBufferResource{{Buffer: ubo}},
		Samplers:       []graph.SamplerResource{{Image: tex, Sampler: graph.DefaultSampler()}},
		Topology:       glsym.Triangles,
		VertexCount:    3,
	}
	arrays, err := ctx.NewPipeline(desc)
	if err != nil {
		t.Fatalf("NewPipeline() error: %v", err)
	}
	desc.IndexBuffer = ib
	desc.IndexType = glsym.UnsignedShort
	desc.FirstVertex = 2
	desc.InstanceCount = 5
	elements, err := ctx.NewPipeline(desc)
	if err != nil {
		t.Fatalf("NewPipeline() error: %v", err)
	}

	w := New()
	w.Pipeline(arrays)
	got := w.String()
	wantTail := lines(
		"glViewport(0, 0, 64, 32);",
		"glBindFramebuffer(GL_FRAMEBUFFER, framebuffer1);",
		"glUseProgram(program3);",
		"glBindVertexArray(vertex_array1);",
		"glBindBufferRange(GL_UNIFORM_BUFFER, 0, buffer1, 0, 64);",
		"glActiveTexture(GL_TEXTURE0);",
		"glBindTexture(GL_TEXTURE_2D, image2);",
		"glBindSampler(0, sampler1);",
		"glDrawArraysInstanced(GL_TRIANGLES, 0, 3, 1);",
	)
	if !strings.HasSuffix(got, wantTail) {
		t.Errorf("Pipeline() =\n%s\nwant suffix\n%s", got, wantTail)
	}
	if strings.Contains(got, "glDrawElements") || strings.Contains(got, "GL_ELEMENT_ARRAY_BUFFER") {
		t.Errorf("non-indexed pipeline emitted an index call:\n%s", got)
	}
	if !strings.HasPrefix(got, "glDisable(GL_PRIMITIVE_RESTART);\n") {
		t.Errorf("Pipeline() does not start with the settings block:\n%s", got)
	}

	w = New()
	w.Pipeline(elements)
	got = w.String()
	if want := "glBindVertexArray(vertex_array2);\n"; !strings.Contains(got, want) {
		t.Errorf("Pipeline() lacks %q:\n%s", want, got)
	}
	if want := "glDrawElementsInstanced(GL_TRIANGLES, 3, GL_UNSIGNED_SHORT, 2 * 2, 5);\n"; !strings.HasSuffix(got, want) {
		t.Errorf("Pipeline() =\n%s\nwant suffix %q", got, want)
	}
}

func TestPipelineSkipsUnboundSlots(t *testing.T) {
	ctx := graph.NewContext()
	target := mustImage(t, ctx, graph.ImageDesc{Width: 8, Height: 8, Format: gputypes.TextureFormatRGBA8Unorm})
	tex := mustImage(t, ctx, graph.ImageDesc{Width: 4, Height: 4, Format: gputypes.TextureFormatRGBA8Unorm})
	ubo := mustBuffer(t, ctx, graph.BufferDesc{Size: 64})

	p, err := ctx.NewPipeline(graph.PipelineDesc{
		VertexShader:   "void main() {}",
		FragmentShader: "void main() { }",
		Framebuffer:    []graph.Attachment{target.Face(0, 0)},
		UniformBuffers: []graph.UniformBufferResource{{Binding: 2, Buffer: ubo}},
		Samplers:       []graph.SamplerResource{{Binding: 1, Image: tex, Sampler: graph.DefaultSampler()}},
		Topology:       glsym.Triangles,
		VertexCount:    3,
	})
	if err != nil {
		t.Fatalf("NewPipeline() error: %v", err)
	}
	if len(p.Buffers.Bindings) != 3 || len(p.Images.Bindings) != 2 {
		t.Fatalf("bindings = %d buffers, %d images; want 3, 2", len(p.Buffers.Bindings), len(p.Images.Bindings))
	}

	w := New()
	w.Pipeline(p)
	got := w.String()
	want := lines(
		"glBindVertexArray(vertex_array1);",
		"glBindBufferRange(GL_UNIFORM_BUFFER, 2, buffer1, 0, 64);",
		"glActiveTexture(GL_TEXTURE1);",
		"glBindTexture(GL_TEXTURE_2D, image2);",
		"glBindSampler(1, sampler1);",
		"glDrawArraysInstanced(GL_TRIANGLES, 0, 3, 1);",
	)
	if !strings.HasSuffix(got, want) {
		t.Errorf("Pipeline() =\n%s\nwant suffix\n%s", got, want)
	}
	for _, unbound := range []string{"buffer0", "sampler0", "image0", "GL_TEXTURE0"} {
		if strings.Contains(got, unbound) {
			t.Errorf("Pipeline() references unbound slot %q:\n%s", unbound, got)
		}
	}
}

func TestPrologueEpilogue(t *testing.T) {
	w := New()
	w.Prologue()
	w.EndBlock()
	w.Epilogue()
	want := lines(
		"glPrimitiveRestartIndex(-1);",
		"glEnable(GL_PROGRAM_POINT_SIZE);",
		"glEnable(GL_TEXTURE_CUBE_MAP_SEAMLESS);",
		"glEnable(GL_FRAMEBUFFER_SRGB);",
		"",
		"glDisable(GL_FRAMEBUFFER_SRGB);",
		"glColorMaski(0, true, true, true, true);",
		"glBindFramebuffer(GL_READ_FRAMEBUFFER, framebuffer);",
		"glBindFramebuffer(GL_DRAW_FRAMEBUFFER, 0);",
		"glBlitFramebuffer(0, 0, width, height, 0, 0, width, height, GL_COLOR_BUFFER_BIT, GL_NEAREST);",
		"glEnable(GL_FRAMEBUFFER_SRGB);",
	)
	if got := w.String(); got != want {
		t.Errorf("Prologue()+Epilogue() =\n%s\nwant\n%s", got, want)
	}
}

func TestUnknownSymbols(t *testing.T) {
	s := graph.DefaultSettings()
	s.DepthTest = true
	s.DepthFunc = 0x1234
	s.BlendOpColor = 0x4321

	w := New()
	w.Settings(s)
	w.Settings(s)

	if !strings.Contains(w.String(), "glDepthFunc();\n") {
		t.Errorf("unknown depth func did not render empty:\n%s", w.String())
	}
	want := []glsym.Miss{
		{Domain: glsym.CompareFunc, Code: 0x1234},
		{Domain: glsym.BlendEquation, Code: 0x4321},
	}
	got := w.Misses()
	if len(got) != len(want) {
		t.Fatalf("Misses() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Misses()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
