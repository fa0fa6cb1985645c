package cgen

import (
	"fmt"
	"strings"

	"github.com/gogpu/glexport/glsym"
	"github.com/gogpu/glexport/graph"
)

// Buffer emits the creation and upload of a buffer object.
func (w *Writer) Buffer(b *graph.Buffer) {
	usage := "GL_STATIC_DRAW"
	if b.Dynamic() {
		usage = "GL_DYNAMIC_DRAW"
	}
	h := b.Handle()
	w.line("unsigned buffer%d = 0;", h)
	w.line("glGenBuffers(1, &buffer%d);", h)
	w.line("glBindBuffer(GL_ARRAY_BUFFER, buffer%d);", h)
	w.line("glBufferData(GL_ARRAY_BUFFER, %d, data, %s);", b.Size(), usage)
}

// Image emits the creation of a renderbuffer or the creation and upload of
// a texture.
func (w *Writer) Image(img *graph.Image) {
	h := img.Handle()
	f := img.Format()
	internal := w.sym(glsym.InternalFormat, f.InternalFormat)

	if img.Renderbuffer() {
		samples := img.Samples()
		if samples <= 1 {
			samples = 0
		}
		w.line("unsigned renderbuffer%d = 0;", h)
		w.line("glGenRenderbuffers(1, &renderbuffer%d);", h)
		w.line("glBindRenderbuffer(GL_RENDERBUFFER, renderbuffer%d);", h)
		w.line("glRenderbufferStorageMultisample(GL_RENDERBUFFER, %d, %s, %d, %d);",
			samples, internal, img.Width(), img.Height())
		return
	}

	target := w.sym(glsym.TextureTarget, img.Target())
	format := w.sym(glsym.PixelFormat, f.Format)
	typ := w.sym(glsym.DataType, f.Type)

	w.line("unsigned image%d = 0;", h)
	w.line("glGenTextures(1, &image%d);", h)
	w.line("glBindTexture(%s, image%d);", target, h)
	switch {
	case img.Cubemap():
		for face := uint32(0); face < 6; face++ {
			w.line("glTexImage2D(%s, 0, %s, %d, %d, 0, %s, %s, data);",
				w.sym(glsym.CubemapFace, face), internal, img.Width(), img.Height(), format, typ)
		}
	case img.Layers() > 0:
		w.line("glTexImage3D(%s, 0, %s, %d, %d, %d, 0, %s, %s, data);",
			target, internal, img.Width(), img.Height(), img.Layers(), format, typ)
	default:
		w.line("glTexImage2D(%s, 0, %s, %d, %d, 0, %s, %s, data);",
			target, internal, img.Width(), img.Height(), format, typ)
	}
}

// Framebuffer emits a framebuffer object with its attachments, draw
// buffers and read buffer.
func (w *Writer) Framebuffer(handle uint32, d graph.FramebufferDescriptor) {
	w.line("unsigned framebuffer%d = 0;", handle)
	w.line("glGenFramebuffers(1, &framebuffer%d);", handle)
	w.line("glBindFramebuffer(GL_FRAMEBUFFER, framebuffer%d);", handle)

	for i, a := range d.Colors {
		w.attachment(fmt.Sprintf("GL_COLOR_ATTACHMENT%d", i), a)
	}
	if ds := d.DepthStencil; ds != nil {
		w.attachment(depthStencilSlot(ds.Image.Format().Attachment), *ds)
	}

	slots := make([]string, len(d.Colors))
	for i := range d.Colors {
		slots[i] = fmt.Sprintf("GL_COLOR_ATTACHMENT%d", i)
	}
	w.line("unsigned draw_buffers%d[] = {%s};", handle, strings.Join(slots, ", "))
	w.line("glDrawBuffers(%d, draw_buffers%d);", len(d.Colors), handle)

	read := "GL_NONE"
	if len(d.Colors) > 0 {
		read = "GL_COLOR_ATTACHMENT0"
	}
	w.line("glReadBuffer(%s);", read)
}

func depthStencilSlot(semantic uint32) string {
	switch semantic {
	case glsym.Depth:
		return "GL_DEPTH_ATTACHMENT"
	case glsym.Stencil:
		return "GL_STENCIL_ATTACHMENT"
	default:
		return "GL_DEPTH_STENCIL_ATTACHMENT"
	}
}

func (w *Writer) attachment(slot string, a graph.Attachment) {
	img := a.Image
	h := img.Handle()
	switch {
	case img.Renderbuffer():
		w.line("glFramebufferRenderbuffer(GL_FRAMEBUFFER, %s, GL_RENDERBUFFER, renderbuffer%d);", slot, h)
	case img.Cubemap():
		w.line("glFramebufferTexture2D(GL_FRAMEBUFFER, %s, %s, image%d, %d);",
			slot, w.sym(glsym.CubemapFace, uint32(a.Layer)), h, a.Level)
	case img.Layers() > 0:
		w.line("glFramebufferTextureLayer(GL_FRAMEBUFFER, %s, image%d, %d, %d);", slot, h, a.Level, a.Layer)
	default:
		w.line("glFramebufferTexture2D(GL_FRAMEBUFFER, %s, GL_TEXTURE_2D, image%d, %d);", slot, h, a.Level)
	}
}

// VertexArray emits a vertex array object with its attribute bindings.
// The index buffer, if any, is bound last.
func (w *Writer) VertexArray(handle uint32, d graph.VertexArrayDescriptor) {
	w.line("unsigned vertex_array%d = 0;", handle)
	w.line("glGenVertexArrays(1, &vertex_array%d);", handle)
	w.line("glBindVertexArray(vertex_array%d);", handle)

	for _, b := range d.Bindings {
		f, _ := graph.LookupVertexFormat(b.Format)
		typ := w.sym(glsym.DataType, f.Type)
		w.line("glBindBuffer(GL_ARRAY_BUFFER, buffer%d);", b.Buffer.Handle())
		if f.Integer {
			w.line("glVertexAttribIPointer(%d, %d, %s, %d, %d);", b.Location, f.Size, typ, b.Stride, b.Offset)
		} else {
			w.line("glVertexAttribPointer(%d, %d, %s, %s, %d, %d);",
				b.Location, f.Size, typ, boolean(f.Normalize), b.Stride, b.Offset)
		}
		w.line("glVertexAttribDivisor(%d, %d);", b.Location, b.Divisor)
		w.line("glEnableVertexAttribArray(%d);", b.Location)
	}

	if d.IndexBuffer != nil {
		w.line("glBindBuffer(GL_ELEMENT_ARRAY_BUFFER, buffer%d);", d.IndexBuffer.Handle())
	}
}

// Sampler emits a sampler object. Every parameter is set, defaults included.
func (w *Writer) Sampler(handle uint32, d graph.SamplerDescriptor) {
	w.line("unsigned sampler%d = 0;", handle)
	w.line("glGenSamplers(1, &sampler%d);", handle)
	w.line("glSamplerParameteri(sampler%d, GL_TEXTURE_MIN_FILTER, %s);", handle, w.sym(glsym.Filter, d.MinFilter))
	w.line("glSamplerParameteri(sampler%d, GL_TEXTURE_MAG_FILTER, %s);", handle, w.sym(glsym.Filter, d.MagFilter))
	w.line("glSamplerParameterf(sampler%d, GL_TEXTURE_MIN_LOD, %f);", handle, d.MinLOD)
	w.line("glSamplerParameterf(sampler%d, GL_TEXTURE_MAX_LOD, %f);", handle, d.MaxLOD)
	w.line("glSamplerParameterf(sampler%d, GL_TEXTURE_LOD_BIAS, %f);", handle, d.LODBias)
	w.line("glSamplerParameteri(sampler%d, GL_TEXTURE_WRAP_S, %s);", handle, w.sym(glsym.Wrap, d.WrapS))
	w.line("glSamplerParameteri(sampler%d, GL_TEXTURE_WRAP_T, %s);", handle, w.sym(glsym.Wrap, d.WrapT))
	w.line("glSamplerParameteri(sampler%d, GL_TEXTURE_WRAP_R, %s);", handle, w.sym(glsym.Wrap, d.WrapR))
	w.line("glSamplerParameteri(sampler%d, GL_TEXTURE_COMPARE_MODE, %s);", handle, w.sym(glsym.CompareMode, d.CompareMode))
	w.line("glSamplerParameteri(sampler%d, GL_TEXTURE_COMPARE_FUNC, %s);", handle, w.sym(glsym.CompareFunc, d.CompareFunc))
	w.line("glSamplerParameterf(sampler%d, GL_TEXTURE_MAX_ANISOTROPY, %f);", handle, d.MaxAnisotropy)

	c := d.BorderColor
	w.line("float border%d[] = {%f, %f, %f, %f};", handle, c[0], c[1], c[2], c[3])
	w.line("glSamplerParameterfv(sampler%d, GL_TEXTURE_BORDER_COLOR, border%d);", handle, handle)
}
