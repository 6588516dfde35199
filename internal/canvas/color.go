package canvas

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0x00, 0x00, 0xff},
	"green":  {0x00, 0x80, 0x00, 0xff},
	"blue":   {0x00, 0x00, 0xff, 0xff},
	"yellow": {0xff, 0xff, 0x00, 0xff},
	"orange": {0xff, 0xa5, 0x00, 0xff},
	"purple": {0x80, 0x00, 0x80, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
}

// ParseColor understands #rgb, #rrggbb, #rrggbbaa and a small set of
// CSS color names, which is what the client palette emits.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, errors.New("unknown color: " + s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		r, err1 := nibble(hex[0])
		g, err2 := nibble(hex[1])
		b, err3 := nibble(hex[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return color.RGBA{}, errors.New("invalid hex color: " + s)
		}
		return color.RGBA{r*16 + r, g*16 + g, b*16 + b, 0xff}, nil
	case 6, 8:
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return color.RGBA{}, errors.New("invalid hex color: " + s)
		}
		if len(hex) == 6 {
			return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
		}
		return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	return color.RGBA{}, errors.New("invalid hex color: " + s)
}

func nibble(b byte) (uint8, error) {
	v, err := strconv.ParseUint(string(b), 16, 8)
	return uint8(v), err
}
