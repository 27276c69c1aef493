package render

import (
	"image/color"
	"strings"
)

// SeatPalette colors floor, empty and occupied seats.
var SeatPalette = []color.RGBA{
	{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff},
	{R: 0x4a, G: 0x90, B: 0x5c, A: 0xff},
	{R: 0xd9, G: 0x5b, B: 0x43, A: 0xff},
}

// CubePalette colors inactive and active cubes.
var CubePalette = []color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// PaletteFor picks the palette matching a registered sim name.
func PaletteFor(name string) []color.RGBA {
	if strings.HasPrefix(name, "seats") {
		return SeatPalette
	}
	return CubePalette
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last color.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
