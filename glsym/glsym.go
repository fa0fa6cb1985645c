// Package glsym maps GL enumeration codes to the symbol names used in
// emitted source text.
//
// Codes are grouped into domains because the same numeric value can name
// different symbols depending on where it is used (0 is GL_ZERO as a stencil
// operation but GL_NONE as a compare mode).
//
// Lookups never fail: an unknown code renders as the empty string, which is
// how callers detect gaps in the tables.
package glsym

import "fmt"

// Domain identifies a group of GL enumeration codes.
type Domain uint8

const (
	ShaderStage Domain = iota
	TextureTarget
	DataType
	PixelFormat
	InternalFormat
	Topology
	CubemapFace
	CullFace
	Filter
	Wrap
	CompareMode
	CompareFunc
	BlendEquation
	BlendFactor
	StencilOp

	domainCount
)

var domainNames = [...]string{
	ShaderStage:    "ShaderStage",
	TextureTarget:  "TextureTarget",
	DataType:       "DataType",
	PixelFormat:    "PixelFormat",
	InternalFormat: "InternalFormat",
	Topology:       "Topology",
	CubemapFace:    "CubemapFace",
	CullFace:       "CullFace",
	Filter:         "Filter",
	Wrap:           "Wrap",
	CompareMode:    "CompareMode",
	CompareFunc:    "CompareFunc",
	BlendEquation:  "BlendEquation",
	BlendFactor:    "BlendFactor",
	StencilOp:      "StencilOp",
}

// String returns the name of the domain.
func (d Domain) String() string {
	if int(d) < len(domainNames) {
		return domainNames[d]
	}
	return "Unknown"
}

var tables = [domainCount]map[uint32]string{
	ShaderStage: {
		VertexShader:   "GL_VERTEX_SHADER",
		FragmentShader: "GL_FRAGMENT_SHADER",
	},
	TextureTarget: {
		Texture2D:      "GL_TEXTURE_2D",
		TextureCubeMap: "GL_TEXTURE_CUBE_MAP",
		Texture2DArray: "GL_TEXTURE_2D_ARRAY",
	},
	DataType: {
		Byte:           "GL_BYTE",
		UnsignedByte:   "GL_UNSIGNED_BYTE",
		Short:          "GL_SHORT",
		UnsignedShort:  "GL_UNSIGNED_SHORT",
		Int:            "GL_INT",
		UnsignedInt:    "GL_UNSIGNED_INT",
		Float:          "GL_FLOAT",
		HalfFloat:      "GL_HALF_FLOAT",
		UnsignedInt248: "GL_UNSIGNED_INT_24_8",
	},
	PixelFormat: {
		Red:            "GL_RED",
		RedInteger:     "GL_RED_INTEGER",
		RG:             "GL_RG",
		RGInteger:      "GL_RG_INTEGER",
		RGBA:           "GL_RGBA",
		RGBAInteger:    "GL_RGBA_INTEGER",
		BGRA:           "GL_BGRA",
		DepthComponent: "GL_DEPTH_COMPONENT",
		DepthStencil:   "GL_DEPTH_STENCIL",
		StencilIndex:   "GL_STENCIL_INDEX",
	},
	InternalFormat: {
		R8:                "GL_R8",
		RG8:               "GL_RG8",
		RGBA8:             "GL_RGBA8",
		R8SNorm:           "GL_R8_SNORM",
		RG8SNorm:          "GL_RG8_SNORM",
		RGBA8SNorm:        "GL_RGBA8_SNORM",
		R8UI:              "GL_R8UI",
		RG8UI:             "GL_RG8UI",
		RGBA8UI:           "GL_RGBA8UI",
		R16UI:             "GL_R16UI",
		RG16UI:            "GL_RG16UI",
		RGBA16UI:          "GL_RGBA16UI",
		R32UI:             "GL_R32UI",
		RG32UI:            "GL_RG32UI",
		RGBA32UI:          "GL_RGBA32UI",
		R8I:               "GL_R8I",
		RG8I:              "GL_RG8I",
		RGBA8I:            "GL_RGBA8I",
		R16I:              "GL_R16I",
		RG16I:             "GL_RG16I",
		RGBA16I:           "GL_RGBA16I",
		R32I:              "GL_R32I",
		RG32I:             "GL_RG32I",
		RGBA32I:           "GL_RGBA32I",
		R16F:              "GL_R16F",
		RG16F:             "GL_RG16F",
		RGBA16F:           "GL_RGBA16F",
		R32F:              "GL_R32F",
		RG32F:             "GL_RG32F",
		RGBA32F:           "GL_RGBA32F",
		SRGB8Alpha8:       "GL_SRGB8_ALPHA8",
		StencilIndex8:     "GL_STENCIL_INDEX8",
		DepthComponent16:  "GL_DEPTH_COMPONENT16",
		DepthComponent24:  "GL_DEPTH_COMPONENT24",
		Depth24Stencil8:   "GL_DEPTH24_STENCIL8",
		DepthComponent32F: "GL_DEPTH_COMPONENT32F",
	},
	Topology: {
		Points:        "GL_POINTS",
		Lines:         "GL_LINES",
		LineLoop:      "GL_LINE_LOOP",
		LineStrip:     "GL_LINE_STRIP",
		Triangles:     "GL_TRIANGLES",
		TriangleStrip: "GL_TRIANGLE_STRIP",
		TriangleFan:   "GL_TRIANGLE_FAN",
	},
	CubemapFace: {
		0: "GL_TEXTURE_CUBE_MAP_POSITIVE_X",
		1: "GL_TEXTURE_CUBE_MAP_NEGATIVE_X",
		2: "GL_TEXTURE_CUBE_MAP_POSITIVE_Y",
		3: "GL_TEXTURE_CUBE_MAP_NEGATIVE_Y",
		4: "GL_TEXTURE_CUBE_MAP_POSITIVE_Z",
		5: "GL_TEXTURE_CUBE_MAP_NEGATIVE_Z",
	},
	CullFace: {
		Front:        "GL_FRONT",
		Back:         "GL_BACK",
		FrontAndBack: "GL_FRONT_AND_BACK",
		None:         "GL_NONE",
	},
	Filter: {
		Nearest:              "GL_NEAREST",
		Linear:               "GL_LINEAR",
		NearestMipmapNearest: "GL_NEAREST_MIPMAP_NEAREST",
		LinearMipmapNearest:  "GL_LINEAR_MIPMAP_NEAREST",
		NearestMipmapLinear:  "GL_NEAREST_MIPMAP_LINEAR",
		LinearMipmapLinear:   "GL_LINEAR_MIPMAP_LINEAR",
	},
	Wrap: {
		Repeat:         "GL_REPEAT",
		ClampToEdge:    "GL_CLAMP_TO_EDGE",
		MirroredRepeat: "GL_MIRRORED_REPEAT",
	},
	CompareMode: {
		CompareRefToTexture: "GL_REF_TO_TEXTURE",
		None:                "GL_NONE",
	},
	CompareFunc: {
		Never:    "GL_NEVER",
		Less:     "GL_LESS",
		Equal:    "GL_EQUAL",
		LEqual:   "GL_LEQUAL",
		Greater:  "GL_GREATER",
		NotEqual: "GL_NOTEQUAL",
		GEqual:   "GL_GEQUAL",
		Always:   "GL_ALWAYS",
	},
	BlendEquation: {
		FuncAdd:             "GL_FUNC_ADD",
		FuncSubtract:        "GL_FUNC_SUBTRACT",
		FuncReverseSubtract: "GL_FUNC_REVERSE_SUBTRACT",
		Min:                 "GL_MIN",
		Max:                 "GL_MAX",
	},
	BlendFactor: {
		Zero:                  "GL_ZERO",
		One:                   "GL_ONE",
		SrcColor:              "GL_SRC_COLOR",
		OneMinusSrcColor:      "GL_ONE_MINUS_SRC_COLOR",
		SrcAlpha:              "GL_SRC_ALPHA",
		OneMinusSrcAlpha:      "GL_ONE_MINUS_SRC_ALPHA",
		DstAlpha:              "GL_DST_ALPHA",
		OneMinusDstAlpha:      "GL_ONE_MINUS_DST_ALPHA",
		DstColor:              "GL_DST_COLOR",
		OneMinusDstColor:      "GL_ONE_MINUS_DST_COLOR",
		SrcAlphaSaturate:      "GL_SRC_ALPHA_SATURATE",
		ConstantColor:         "GL_CONSTANT_COLOR",
		OneMinusConstantColor: "GL_ONE_MINUS_CONSTANT_COLOR",
		ConstantAlpha:         "GL_CONSTANT_ALPHA",
		OneMinusConstantAlpha: "GL_ONE_MINUS_CONSTANT_ALPHA",
		Src1Alpha:             "GL_SRC1_ALPHA",
		Src1Color:             "GL_SRC1_COLOR",
		OneMinusSrc1Color:     "GL_ONE_MINUS_SRC1_COLOR",
		OneMinusSrc1Alpha:     "GL_ONE_MINUS_SRC1_ALPHA",
	},
	StencilOp: {
		Zero:     "GL_ZERO",
		Keep:     "GL_KEEP",
		Replace:  "GL_REPLACE",
		Incr:     "GL_INCR",
		Decr:     "GL_DECR",
		Invert:   "GL_INVERT",
		IncrWrap: "GL_INCR_WRAP",
		DecrWrap: "GL_DECR_WRAP",
	},
}

// reverse maps symbol names back to codes, per domain.
var reverse [domainCount]map[string]uint32

func init() {
	for d, table := range tables {
		reverse[d] = make(map[string]uint32, len(table))
		for code, name := range table {
			reverse[d][name] = code
		}
	}
}

// Lookup returns the GL symbol for code in the given domain.
// It returns "" if the domain or the code is unknown.
func Lookup(d Domain, code uint32) string {
	if d >= domainCount {
		return ""
	}
	return tables[d][code]
}

// Code returns the code of the GL symbol name in the given domain.
func Code(d Domain, name string) (uint32, bool) {
	if d >= domainCount {
		return 0, false
	}
	code, ok := reverse[d][name]
	return code, ok
}

// Miss records a code that has no symbol in its domain.
type Miss struct {
	Domain Domain
	Code   uint32
}

func (m Miss) String() string {
	return fmt.Sprintf("%s 0x%04x", m.Domain, m.Code)
}
