package glsym

// GL enumeration codes understood by the symbol tables.
// Names follow the GL symbol without the GL_ prefix.
const (
	None = 0x0000
	Zero = 0x0000
	One  = 0x0001

	// Shader stages
	FragmentShader = 0x8B30
	VertexShader   = 0x8B31

	// Texture targets
	Texture2D      = 0x0DE1
	TextureCubeMap = 0x8513
	Texture2DArray = 0x8C1A

	// Data types
	Byte           = 0x1400
	UnsignedByte   = 0x1401
	Short          = 0x1402
	UnsignedShort  = 0x1403
	Int            = 0x1404
	UnsignedInt    = 0x1405
	Float          = 0x1406
	HalfFloat      = 0x140B
	UnsignedInt248 = 0x84FA

	// Pixel transfer formats
	StencilIndex   = 0x1901
	DepthComponent = 0x1902
	Red            = 0x1903
	RGBA           = 0x1908
	BGRA           = 0x80E1
	RG             = 0x8227
	RGInteger      = 0x8228
	DepthStencil   = 0x84F9
	RedInteger     = 0x8D94
	RGBAInteger    = 0x8D99

	// Internal formats
	R8                = 0x8229
	RG8               = 0x822B
	RGBA8             = 0x8058
	R8SNorm           = 0x8F94
	RG8SNorm          = 0x8F95
	RGBA8SNorm        = 0x8F97
	R8UI              = 0x8232
	RG8UI             = 0x8238
	RGBA8UI           = 0x8D7C
	R16UI             = 0x8234
	RG16UI            = 0x823A
	RGBA16UI          = 0x8D76
	R32UI             = 0x8236
	RG32UI            = 0x823C
	RGBA32UI          = 0x8D70
	R8I               = 0x8231
	RG8I              = 0x8237
	RGBA8I            = 0x8D8E
	R16I              = 0x8233
	RG16I             = 0x8239
	RGBA16I           = 0x8D88
	R32I              = 0x8235
	RG32I             = 0x823B
	RGBA32I           = 0x8D82
	R16F              = 0x822D
	RG16F             = 0x822F
	RGBA16F           = 0x881A
	R32F              = 0x822E
	RG32F             = 0x8230
	RGBA32F           = 0x8814
	SRGB8Alpha8       = 0x8C43
	StencilIndex8     = 0x8D48
	DepthComponent16  = 0x81A5
	DepthComponent24  = 0x81A6
	Depth24Stencil8   = 0x88F0
	DepthComponent32F = 0x8CAC

	// Attachment semantics of an image format
	Color   = 0x1800
	Depth   = 0x1801
	Stencil = 0x1802

	// Primitive topologies
	Points        = 0
	Lines         = 1
	LineLoop      = 2
	LineStrip     = 3
	Triangles     = 4
	TriangleStrip = 5
	TriangleFan   = 6

	// Cull faces
	Front        = 0x0404
	Back         = 0x0405
	FrontAndBack = 0x0408

	// Filters
	Nearest              = 0x2600
	Linear               = 0x2601
	NearestMipmapNearest = 0x2700
	LinearMipmapNearest  = 0x2701
	NearestMipmapLinear  = 0x2702
	LinearMipmapLinear   = 0x2703

	// Wrap modes
	Repeat         = 0x2901
	ClampToEdge    = 0x812F
	MirroredRepeat = 0x8370

	// Compare modes
	CompareRefToTexture = 0x884E

	// Compare functions
	Never    = 0x0200
	Less     = 0x0201
	Equal    = 0x0202
	LEqual   = 0x0203
	Greater  = 0x0204
	NotEqual = 0x0205
	GEqual   = 0x0206
	Always   = 0x0207

	// Blend equations
	FuncAdd             = 0x8006
	Min                 = 0x8007
	Max                 = 0x8008
	FuncSubtract        = 0x800A
	FuncReverseSubtract = 0x800B

	// Blend factors
	SrcColor              = 0x0300
	OneMinusSrcColor      = 0x0301
	SrcAlpha              = 0x0302
	OneMinusSrcAlpha      = 0x0303
	DstAlpha              = 0x0304
	OneMinusDstAlpha      = 0x0305
	DstColor              = 0x0306
	OneMinusDstColor      = 0x0307
	SrcAlphaSaturate      = 0x0308
	ConstantColor         = 0x8001
	OneMinusConstantColor = 0x8002
	ConstantAlpha         = 0x8003
	OneMinusConstantAlpha = 0x8004
	Src1Alpha             = 0x8589
	Src1Color             = 0x88F9
	OneMinusSrc1Color     = 0x88FA
	OneMinusSrc1Alpha     = 0x88FB

	// Stencil operations
	Invert   = 0x150A
	Keep     = 0x1E00
	Replace  = 0x1E01
	Incr     = 0x1E02
	Decr     = 0x1E03
	IncrWrap = 0x8507
	DecrWrap = 0x8508
)
