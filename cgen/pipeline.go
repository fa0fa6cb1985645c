package cgen

import (
	"github.com/gogpu/glexport/glsym"
	"github.com/gogpu/glexport/graph"
)

// Settings emits the fixed-function state of a pipeline.
func (w *Writer) Settings(s graph.Settings) {
	w.line("%s(GL_PRIMITIVE_RESTART);", toggle(s.PrimitiveRestart))
	w.line("%s(GL_POLYGON_OFFSET_FILL);", toggle(s.PolygonOffset))
	w.line("%s(GL_CULL_FACE);", toggle(s.CullFace != 0))
	w.line("%s(GL_DEPTH_TEST);", toggle(s.DepthTest))
	w.line("%s(GL_STENCIL_TEST);", toggle(s.StencilTest))
	if s.PolygonOffset {
		w.line("glPolygonOffset(%f, %f);", s.PolygonOffsetFactor, s.PolygonOffsetUnits)
	}
	if s.CullFace != 0 {
		w.line("glCullFace(%s);", w.sym(glsym.CullFace, s.CullFace))
	}
	if s.DepthTest {
		w.line("glDepthFunc(%s);", w.sym(glsym.CompareFunc, s.DepthFunc))
	}

	front, back := s.StencilFront, s.StencilBack
	w.line("glStencilMaskSeparate(GL_FRONT, 0x%02x);", front.WriteMask)
	w.line("glStencilMaskSeparate(GL_BACK, 0x%02x);", back.WriteMask)
	w.line("glStencilFuncSeparate(GL_FRONT, %s, 0x%02x, 0x%02x);",
		w.sym(glsym.CompareFunc, front.CompareOp), front.Reference, front.CompareMask)
	w.line("glStencilFuncSeparate(GL_BACK, %s, 0x%02x, 0x%02x);",
		w.sym(glsym.CompareFunc, back.CompareOp), back.Reference, back.CompareMask)
	w.line("glStencilOpSeparate(GL_FRONT, %s, %s, %s);",
		w.sym(glsym.StencilOp, front.FailOp), w.sym(glsym.StencilOp, front.PassOp), w.sym(glsym.StencilOp, front.DepthFailOp))
	w.line("glStencilOpSeparate(GL_BACK, %s, %s, %s);",
		w.sym(glsym.StencilOp, back.FailOp), w.sym(glsym.StencilOp, back.PassOp), w.sym(glsym.StencilOp, back.DepthFailOp))
	w.line("glDepthMask(%s);", boolean(s.DepthWrite))

	for i := 0; i < s.Attachments; i++ {
		mask := s.ColorMask >> (i * 4)
		w.line("glColorMaski(%d, %s, %s, %s, %s);", i,
			boolean(mask&1 != 0), boolean(mask&2 != 0), boolean(mask&4 != 0), boolean(mask&8 != 0))
	}

	w.line("glBlendEquationSeparate(%s, %s);",
		w.sym(glsym.BlendEquation, s.BlendOpColor), w.sym(glsym.BlendEquation, s.BlendOpAlpha))
	w.line("glBlendFuncSeparate(%s, %s, %s, %s);",
		w.sym(glsym.BlendFactor, s.BlendSrcColor), w.sym(glsym.BlendFactor, s.BlendDstColor),
		w.sym(glsym.BlendFactor, s.BlendSrcAlpha), w.sym(glsym.BlendFactor, s.BlendDstAlpha))
	for i := 0; i < s.Attachments; i++ {
		call := "glDisablei"
		if s.BlendEnable>>i&1 != 0 {
			call = "glEnablei"
		}
		w.line("%s(GL_BLEND, %d);", call, i)
	}
}

// Pipeline emits the state setup and draw call of a pipeline.
func (w *Writer) Pipeline(p *graph.Pipeline) {
	w.Settings(p.Settings)

	v := p.Viewport
	w.line("glViewport(%d, %d, %d, %d);", v.X, v.Y, v.Width, v.Height)
	w.line("glBindFramebuffer(GL_FRAMEBUFFER, framebuffer%d);", p.Framebuffer)
	w.line("glUseProgram(program%d);", p.Program)
	w.line("glBindVertexArray(vertex_array%d);", p.VertexArray)

	for i, b := range p.Buffers.Bindings {
		if b.Buffer == 0 {
			continue
		}
		w.line("glBindBufferRange(GL_UNIFORM_BUFFER, %d, buffer%d, %d, %d);", i, b.Buffer, b.Offset, b.Size)
	}
	for i, s := range p.Images.Bindings {
		if s.Image == 0 {
			continue
		}
		w.line("glActiveTexture(GL_TEXTURE%d);", i)
		w.line("glBindTexture(%s, image%d);", w.sym(glsym.TextureTarget, s.Target), s.Image)
		w.line("glBindSampler(%d, sampler%d);", i, s.Sampler)
	}

	mode := w.sym(glsym.Topology, p.Topology)
	if p.Indexed() {
		w.line("glDrawElementsInstanced(%s, %d, %s, %d * %d, %d);",
			mode, p.VertexCount, w.sym(glsym.DataType, p.IndexType), p.FirstVertex, p.IndexSize, p.InstanceCount)
		return
	}
	w.line("glDrawArraysInstanced(%s, %d, %d, %d);", mode, p.FirstVertex, p.VertexCount, p.InstanceCount)
}

// Prologue emits the context state every replay starts from.
func (w *Writer) Prologue() {
	w.line("glPrimitiveRestartIndex(-1);")
	w.line("glEnable(GL_PROGRAM_POINT_SIZE);")
	w.line("glEnable(GL_TEXTURE_CUBE_MAP_SEAMLESS);")
	w.line("glEnable(GL_FRAMEBUFFER_SRGB);")
}

// Epilogue emits the blit of the replay harness framebuffer to the
// default framebuffer. The harness declares framebuffer, width and height.
func (w *Writer) Epilogue() {
	w.line("glDisable(GL_FRAMEBUFFER_SRGB);")
	w.line("glColorMaski(0, true, true, true, true);")
	w.line("glBindFramebuffer(GL_READ_FRAMEBUFFER, framebuffer);")
	w.line("glBindFramebuffer(GL_DRAW_FRAMEBUFFER, 0);")
	w.line("glBlitFramebuffer(0, 0, width, height, 0, 0, width, height, GL_COLOR_BUFFER_BIT, GL_NEAREST);")
	w.line("glEnable(GL_FRAMEBUFFER_SRGB);")
}
