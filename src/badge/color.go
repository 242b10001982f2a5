package badge

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.NRGBA{
	"white":       White,
	"red":         Red,
	"black":       {A: 0xff},
	"transparent": {},
	"gray":        {R: 0x9f, G: 0x9f, B: 0x9f, A: 0xff},
	"blue":        {R: 0x00, G: 0x7e, B: 0xc6, A: 0xff},
	"brightgreen": {R: 0x44, G: 0xcc, B: 0x11, A: 0xff},
	"green":       {R: 0x97, G: 0xca, B: 0x00, A: 0xff},
	"yellow":      {R: 0xdf, G: 0xb3, B: 0x17, A: 0xff},
	"orange":      {R: 0xfe, G: 0x7d, B: 0x37, A: 0xff},
	"crimson":     {R: 0xe0, G: 0x5d, B: 0x44, A: 0xff},
}

// ParseColor accepts a color name or #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// StatusColor maps a status keyword to a badge fill color.
func StatusColor(status string) color.NRGBA {
	switch status {
	case "passed", "success":
		return namedColors["brightgreen"]
	case "warning":
		return namedColors["yellow"]
	case "critical", "failed":
		return namedColors["crimson"]
	default:
		return Red
	}
}
