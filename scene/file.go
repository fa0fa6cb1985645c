package scene

// File is the decoded form of a scene file. Resources are created in the
// order they are listed.
//
// Enumerations are GL symbol names ("GL_LESS", or "LESS"). Formats are
// WebGPU names ("rgba8unorm", "float32x3").
type File struct {
	Buffers   []BufferSpec   `toml:"buffers" yaml:"buffers"`
	Images    []ImageSpec    `toml:"images" yaml:"images"`
	Pipelines []PipelineSpec `toml:"pipelines" yaml:"pipelines"`
}

// BufferSpec creates a buffer. Pipelines refer to it by Name.
type BufferSpec struct {
	Name    string `toml:"name" yaml:"name"`
	Size    int    `toml:"size" yaml:"size"`
	Dynamic bool   `toml:"dynamic" yaml:"dynamic"`
}

// ImageSpec creates a texture, or a renderbuffer when Renderbuffer is set.
// Pipelines refer to it by Name.
type ImageSpec struct {
	Name   string `toml:"name" yaml:"name"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`

	// SizeFrom names an image file whose dimensions override Width and
	// Height. Relative paths resolve against the scene file's directory.
	SizeFrom string `toml:"size_from" yaml:"size_from"`

	Format       string `toml:"format" yaml:"format"`
	Samples      int    `toml:"samples" yaml:"samples"`
	Layers       int    `toml:"layers" yaml:"layers"`
	Cubemap      bool   `toml:"cubemap" yaml:"cubemap"`
	Renderbuffer bool   `toml:"renderbuffer" yaml:"renderbuffer"`
}

// AttachmentSpec selects the level and layer of a named image as a
// framebuffer attachment.
type AttachmentSpec struct {
	Image string `toml:"image" yaml:"image"`
	Level int    `toml:"level" yaml:"level"`
	Layer int    `toml:"layer" yaml:"layer"`
}

// VertexBufferSpec feeds a vertex attribute location from a named buffer.
// A non-zero Divisor advances the attribute per instance.
type VertexBufferSpec struct {
	Buffer   string `toml:"buffer" yaml:"buffer"`
	Location int    `toml:"location" yaml:"location"`
	Offset   int    `toml:"offset" yaml:"offset"`
	Stride   int    `toml:"stride" yaml:"stride"`
	Divisor  int    `toml:"divisor" yaml:"divisor"`
	Format   string `toml:"format" yaml:"format"`
}

// UniformBufferSpec binds a range of a named buffer to a uniform block
// binding. A zero Size binds the rest of the buffer.
type UniformBufferSpec struct {
	Binding int    `toml:"binding" yaml:"binding"`
	Buffer  string `toml:"buffer" yaml:"buffer"`
	Offset  int    `toml:"offset" yaml:"offset"`
	Size    int    `toml:"size" yaml:"size"`
}

// SamplerSpec binds an image with a sampler. Unset fields keep the
// defaults of graph.DefaultSampler.
type SamplerSpec struct {
	Binding int    `toml:"binding" yaml:"binding"`
	Image   string `toml:"image" yaml:"image"`

	MinFilter     string    `toml:"min_filter" yaml:"min_filter"`
	MagFilter     string    `toml:"mag_filter" yaml:"mag_filter"`
	MinLOD        *float32  `toml:"min_lod" yaml:"min_lod"`
	MaxLOD        *float32  `toml:"max_lod" yaml:"max_lod"`
	LODBias       float32   `toml:"lod_bias" yaml:"lod_bias"`
	WrapS         string    `toml:"wrap_s" yaml:"wrap_s"`
	WrapT         string    `toml:"wrap_t" yaml:"wrap_t"`
	WrapR         string    `toml:"wrap_r" yaml:"wrap_r"`
	CompareMode   string    `toml:"compare_mode" yaml:"compare_mode"`
	CompareFunc   string    `toml:"compare_func" yaml:"compare_func"`
	MaxAnisotropy *float32  `toml:"max_anisotropy" yaml:"max_anisotropy"`
	BorderColor   []float32 `toml:"border_color" yaml:"border_color"`
}

// StencilSpec configures one stencil face. Unset masks keep 0xff;
// masks and the reference must fit in 8 bits.
type StencilSpec struct {
	FailOp      string `toml:"fail_op" yaml:"fail_op"`
	PassOp      string `toml:"pass_op" yaml:"pass_op"`
	DepthFailOp string `toml:"depth_fail_op" yaml:"depth_fail_op"`
	CompareOp   string `toml:"compare_op" yaml:"compare_op"`
	CompareMask *int   `toml:"compare_mask" yaml:"compare_mask"`
	WriteMask   *int   `toml:"write_mask" yaml:"write_mask"`
	Reference   int    `toml:"reference" yaml:"reference"`
}

// SettingsSpec overrides fields of graph.DefaultSettings.
type SettingsSpec struct {
	PrimitiveRestart bool   `toml:"primitive_restart" yaml:"primitive_restart"`
	CullFace         string `toml:"cull_face" yaml:"cull_face"`

	DepthTest  bool   `toml:"depth_test" yaml:"depth_test"`
	DepthWrite *bool  `toml:"depth_write" yaml:"depth_write"`
	DepthFunc  string `toml:"depth_func" yaml:"depth_func"`

	StencilTest  bool         `toml:"stencil_test" yaml:"stencil_test"`
	StencilFront *StencilSpec `toml:"stencil_front" yaml:"stencil_front"`
	StencilBack  *StencilSpec `toml:"stencil_back" yaml:"stencil_back"`

	BlendEnable   uint32 `toml:"blend_enable" yaml:"blend_enable"`
	BlendOpColor  string `toml:"blend_op_color" yaml:"blend_op_color"`
	BlendOpAlpha  string `toml:"blend_op_alpha" yaml:"blend_op_alpha"`
	BlendSrcColor string `toml:"blend_src_color" yaml:"blend_src_color"`
	BlendDstColor string `toml:"blend_dst_color" yaml:"blend_dst_color"`
	BlendSrcAlpha string `toml:"blend_src_alpha" yaml:"blend_src_alpha"`
	BlendDstAlpha string `toml:"blend_dst_alpha" yaml:"blend_dst_alpha"`

	PolygonOffset       bool    `toml:"polygon_offset" yaml:"polygon_offset"`
	PolygonOffsetFactor float32 `toml:"polygon_offset_factor" yaml:"polygon_offset_factor"`
	PolygonOffsetUnits  float32 `toml:"polygon_offset_units" yaml:"polygon_offset_units"`

	ColorMask *uint64 `toml:"color_mask" yaml:"color_mask"`
}

// ViewportSpec is a viewport rectangle in pixels.
type ViewportSpec struct {
	X      int `toml:"x" yaml:"x"`
	Y      int `toml:"y" yaml:"y"`
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// PipelineSpec describes one draw. Each shader stage is given either inline
// or as a file; WGSL replaces both GLSL stages.
type PipelineSpec struct {
	Name string `toml:"name" yaml:"name"`

	VertexShader       string `toml:"vertex_shader" yaml:"vertex_shader"`
	VertexShaderFile   string `toml:"vertex_shader_file" yaml:"vertex_shader_file"`
	FragmentShader     string `toml:"fragment_shader" yaml:"fragment_shader"`
	FragmentShaderFile string `toml:"fragment_shader_file" yaml:"fragment_shader_file"`

	WGSL          string `toml:"wgsl" yaml:"wgsl"`
	WGSLFile      string `toml:"wgsl_file" yaml:"wgsl_file"`
	VertexEntry   string `toml:"vertex_entry" yaml:"vertex_entry"`
	FragmentEntry string `toml:"fragment_entry" yaml:"fragment_entry"`

	Framebuffer    []AttachmentSpec    `toml:"framebuffer" yaml:"framebuffer"`
	VertexBuffers  []VertexBufferSpec  `toml:"vertex_buffers" yaml:"vertex_buffers"`
	IndexBuffer    string              `toml:"index_buffer" yaml:"index_buffer"`
	IndexType      string              `toml:"index_type" yaml:"index_type"`
	UniformBuffers []UniformBufferSpec `toml:"uniform_buffers" yaml:"uniform_buffers"`
	Samplers       []SamplerSpec       `toml:"samplers" yaml:"samplers"`
	Settings       *SettingsSpec       `toml:"settings" yaml:"settings"`

	Topology      string        `toml:"topology" yaml:"topology"`
	VertexCount   int           `toml:"vertex_count" yaml:"vertex_count"`
	InstanceCount int           `toml:"instance_count" yaml:"instance_count"`
	FirstVertex   int           `toml:"first_vertex" yaml:"first_vertex"`
	Viewport      *ViewportSpec `toml:"viewport" yaml:"viewport"`
}
