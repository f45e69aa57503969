package scene

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex unpacks a 0xRRGGBB value.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Floats returns the colour as 0..1 components for shader uniforms.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// Scale multiplies every channel by k (0..1).
func (c RGB) Scale(k float32) (r, g, b float32) {
	r, g, b = c.Floats()
	return r * k, g * k, b * k
}

var Palette = struct {
	Sky      RGB
	Road     RGB
	Marking  RGB
	CarBody  RGB
	CarRoof  RGB
	Wheel    RGB
	Trunk    RGB
	Leaves   RGB
	Ambient  RGB
	Sunlight RGB
}{
	Sky:      Hex(0x87CEEB),
	Road:     Hex(0x333333),
	Marking:  Hex(0xFFFFFF),
	CarBody:  Hex(0xFF0000),
	CarRoof:  Hex(0xCC0000),
	Wheel:    Hex(0x333333),
	Trunk:    Hex(0x8B4513),
	Leaves:   Hex(0x228B22),
	Ambient:  Hex(0x404040),
	Sunlight: Hex(0xFFFFFF),
}
