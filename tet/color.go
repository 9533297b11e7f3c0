package tet

import (
	"image/color"

	log "github.com/sirupsen/logrus"
)

// Fallback is the color used for empty and unrecognized values.
var Fallback = color.RGBA{0xff, 0xff, 0xff, 0xff}

var palette = [...]color.RGBA{
	Cyan:   {0x33, 0xcc, 0xcc, 0xff},
	Blue:   {0x00, 0xaa, 0xff, 0xff},
	Orange: {0xff, 0x99, 0x00, 0xff},
	Yellow: {0xee, 0xee, 0x00, 0xff},
	Green:  {0x00, 0xcc, 0x00, 0xff},
	Purple: {0xcc, 0x00, 0xcc, 0xff},
	Red:    {0xcc, 0x00, 0x00, 0xff},
}

// Palette maps a cell color to its display color. Empty and unknown values map to
// Fallback with a logged warning.
func Palette(c Color) color.RGBA {
	if c > Empty && int(c) < len(palette) {
		return palette[c]
	}
	log.WithField("color", int(c)).Warn("unexpected color")
	return Fallback
}
