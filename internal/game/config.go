package game

const WindowTitle = "Lap Racer"

// Projection.
const (
	FieldOfView = 75.0 // degrees, vertical
	NearPlane   = 0.1
	FarPlane    = 1000.0
)

// Lighting: dim grey ambient plus a white sun from the upper right.
const (
	AmbientIntensity = 0.6
	SunIntensity     = 1.0
	SunX, SunY, SunZ = 50.0, 50.0, 50.0
)

// Font atlas layout: ASCII 32..127 rasterised from a 7x13 bitmap face into
// 16 columns x 6 rows. Cell 127 is solid and used for panels.
const (
	FontFirst  = 32
	FontLast   = 127
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 16
	FontRows   = 6
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 78
	SolidGlyph = 127
)

// Text buffer capacity in glyph quads.
const MaxTextQuads = 1024
