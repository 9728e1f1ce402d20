package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color returns the color denoted by a property value. Values which are
// not interpretable as colors (including "currentcolor", which has to be
// resolved against the color property of an element) yield nil.
func (p Property) Color() color.Color {
	c, ok := ParseColor(p)
	if !ok {
		return nil
	}
	return c
}

// ParseColor interprets a CSS color value: named colors, "transparent",
// hex notations #rgb, #rgba, #rrggbb, #rrggbbaa and functional notations
// rgb(…) and rgba(…).
func ParseColor(p Property) (color.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	switch {
	case s == "":
		return nil, false
	case s == "transparent":
		return color.RGBA{}, true
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseRGBFunction(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	return nil, false
}

func parseHexColor(h string) (color.Color, bool) {
	var digits []uint8
	for i := 0; i < len(h); i++ {
		d, err := strconv.ParseUint(h[i:i+1], 16, 8)
		if err != nil {
			return nil, false
		}
		digits = append(digits, uint8(d))
	}
	c := color.RGBA{A: 0xff}
	switch len(digits) {
	case 3, 4:
		c.R, c.G, c.B = digits[0]*17, digits[1]*17, digits[2]*17
		if len(digits) == 4 {
			c.A = digits[3] * 17
		}
	case 6, 8:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	default:
		return nil, false
	}
	return premultiply(c), true
}

func parseRGBFunction(s string) (color.Color, bool) {
	lp, rp := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if lp < 0 || rp < lp {
		return nil, false
	}
	args := strings.FieldsFunc(s[lp+1:rp], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return nil, false
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, a := range args {
		var f float64
		var err error
		if strings.HasSuffix(a, "%") {
			f, err = strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
			f = f * 2.55
		} else {
			f, err = strconv.ParseFloat(a, 64)
			if i == 3 {
				f = f * 255
			}
		}
		if err != nil {
			return nil, false
		}
		ch[i] = clamp8(f)
	}
	return premultiply(color.RGBA{ch[0], ch[1], ch[2], ch[3]}), true
}

// color.RGBA is alpha-premultiplied.
func premultiply(c color.RGBA) color.RGBA {
	if c.A == 0xff {
		return c
	}
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 0xff),
		G: uint8(uint16(c.G) * a / 0xff),
		B: uint8(uint16(c.B) * a / 0xff),
		A: c.A,
	}
}

func clamp8(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f + 0.5)
}

// ColorString returns a CSS hex notation for a color, e.g. "#ff0000".
// A nil color is rendered as "currentcolor".
func ColorString(c color.Color) string {
	if c == nil {
		return "currentcolor"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
