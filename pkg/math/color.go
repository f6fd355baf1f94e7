package math

// Color is a linear RGBA colour with float channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// White is opaque white.
var White = Color{1, 1, 1, 1}

// Clamped returns the colour with every channel limited to [0, 1].
func (c Color) Clamped() Color {
	return Color{Clamp01(c.R), Clamp01(c.G), Clamp01(c.B), Clamp01(c.A)}
}

// Vec4 returns the colour as a Vec4.
func (c Color) Vec4() Vec4 {
	return Vec4{c.R, c.G, c.B, c.A}
}

// ColorFrom builds a colour from a 4-element slice as stored in config files.
// Missing channels default to 1.
func ColorFrom(ch []float32) Color {
	c := White
	dst := []*float32{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i < len(ch) && i < 4; i++ {
		*dst[i] = ch[i]
	}
	return c
}

// Array returns the channels in RGBA order.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
