// Package ansi provides the RGB color model and truecolor escape sequences
// used by prism's themed console output. Colors convert to and from 24-bit
// hex values; the Append helpers emit SGR sequences without allocating.
package ansi

import (
	"errors"
	"strconv"
)

// Reset clears all terminal styling.
const Reset = "\x1b[0m"

// Color is a 24-bit RGB triple.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// FromHex unpacks a 24-bit 0xRRGGBB value into a Color. Bits above the low 24
// are ignored.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex renders the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	buf := make([]byte, 0, 7)
	buf = append(buf, '#')
	buf = appendHexByte(buf, c.R)
	buf = appendHexByte(buf, c.G)
	buf = appendHexByte(buf, c.B)
	return string(buf)
}

// ErrBadHexColor reports a string that ParseHex could not interpret.
var ErrBadHexColor = errors.New("ansi: malformed hex color")

// ParseHex parses "#rrggbb" or "rrggbb" (case insensitive) into a Color.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, ErrBadHexColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, ErrBadHexColor
	}
	return FromHex(uint32(v)), nil
}

// AppendForeground appends the truecolor foreground sequence
// ESC[38;2;R;G;Bm for c to dst.
func AppendForeground(dst []byte, c Color) []byte {
	return appendSGR(dst, 38, c)
}

// AppendBackground appends the truecolor background sequence
// ESC[48;2;R;G;Bm for c to dst.
func AppendBackground(dst []byte, c Color) []byte {
	return appendSGR(dst, 48, c)
}

func appendSGR(dst []byte, selector int, c Color) []byte {
	dst = append(dst, 0x1b, '[')
	dst = strconv.AppendInt(dst, int64(selector), 10)
	dst = append(dst, ';', '2', ';')
	dst = strconv.AppendInt(dst, int64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(c.B), 10)
	return append(dst, 'm')
}

const hexDigits = "0123456789abcdef"

func appendHexByte(dst []byte, b uint8) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0x0f])
}
