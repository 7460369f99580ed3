package tim

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorMode represents the color capability of the terminal the engine is
// rendering for. Color rendering degrades gracefully from ColorModeTrueColor
// down to ColorModeNone.
type ColorMode int

const (
	// ColorModeNone strips all color sequences (NO_COLOR, non-terminal writers).
	ColorModeNone ColorMode = iota

	// ColorModeStandard is the 16-color ANSI palette.
	ColorModeStandard

	// ColorMode256 is the 256-color palette (6x6x6 cube + grayscale ramp).
	ColorMode256

	// ColorModeTrueColor is 24-bit RGB.
	ColorModeTrueColor
)

// Color is a color that can render itself as an SGR fragment appropriate for
// a given ColorMode and ground (foreground/background), downgrading when the
// mode doesn't support it natively.
type Color interface {
	toANSI(mode ColorMode, foreground bool) string
}

// ANSIColor is one of the 16 standard ANSI colors (0-15).
type ANSIColor int

const (
	Black ANSIColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

func (c ANSIColor) toANSI(mode ColorMode, foreground bool) string {
	if mode == ColorModeNone {
		return ""
	}

	base := 30
	if !foreground {
		base = 40
	}

	if c >= BrightBlack {
		base += 60
		return fmt.Sprintf("\x1b[%dm", base+int(c-BrightBlack))
	}

	return fmt.Sprintf("\x1b[%dm", base+int(c))
}

// sgrCode returns the raw SGR foreground/background code for a standard
// ANSI color, e.g. Red.sgrCode(true) == 31, BrightRed.sgrCode(false) == 101.
func (c ANSIColor) sgrCode(foreground bool) int {
	base := 30
	if !foreground {
		base = 40
	}
	if c >= BrightBlack {
		return base + 60 + int(c-BrightBlack)
	}
	return base + int(c)
}

// ansiColorFromSGRCode maps a raw SGR numeric code back to a standard color
// and the ground it applies to. ok is false outside the four 8-wide ranges.
func ansiColorFromSGRCode(code int) (color ANSIColor, foreground bool, ok bool) {
	switch {
	case code >= 30 && code <= 37:
		return ANSIColor(code - 30), true, true
	case code >= 40 && code <= 47:
		return ANSIColor(code - 40), false, true
	case code >= 90 && code <= 97:
		return BrightBlack + ANSIColor(code-90), true, true
	case code >= 100 && code <= 107:
		return BrightBlack + ANSIColor(code-100), false, true
	default:
		return 0, false, false
	}
}

// ANSI256Color is a palette index (0-255): 0-15 standard, 16-231 the 6x6x6
// RGB cube, 232-255 a 24-step grayscale ramp.
type ANSI256Color int

func (c ANSI256Color) toANSI(mode ColorMode, foreground bool) string {
	if mode == ColorModeNone {
		return ""
	}

	if mode == ColorModeStandard {
		return c.toStandardANSI().toANSI(mode, foreground)
	}

	code := 38
	if !foreground {
		code = 48
	}

	return fmt.Sprintf("\x1b[%d;5;%dm", code, int(c))
}

func (c ANSI256Color) toStandardANSI() ANSIColor {
	n := int(c)

	if n < 16 {
		return ANSIColor(n)
	}

	if n >= 232 {
		if n < 244 {
			return Black
		}
		return White
	}

	n -= 16
	r := n / 36
	g := (n % 36) / 6
	b := n % 6

	colors := []ANSIColor{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
	idx := 0
	if r >= 3 {
		idx |= 1
	}
	if g >= 3 {
		idx |= 2
	}
	if b >= 3 {
		idx |= 4
	}
	return colors[idx]
}

// RGBColor is a 24-bit true color.
type RGBColor struct {
	R uint8
	G uint8
	B uint8
}

func (c RGBColor) toANSI(mode ColorMode, foreground bool) string {
	if mode == ColorModeNone {
		return ""
	}

	if mode == ColorModeStandard {
		return c.toStandardANSI().toANSI(mode, foreground)
	}

	if mode == ColorMode256 {
		return c.toANSI256().toANSI(mode, foreground)
	}

	code := 38
	if !foreground {
		code = 48
	}

	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, c.R, c.G, c.B)
}

func (c RGBColor) toANSI256() ANSI256Color {
	if c.R == c.G && c.G == c.B {
		if c.R < 8 {
			return 16
		}
		if c.R > 247 {
			return 231
		}
		return ANSI256Color(232 + (int(c.R)-8)/10)
	}

	r := int(c.R) * 5 / 255
	g := int(c.G) * 5 / 255
	b := int(c.B) * 5 / 255

	return ANSI256Color(16 + 36*r + 6*g + b)
}

func (c RGBColor) toStandardANSI() ANSIColor {
	idx := 0
	if c.R >= 128 {
		idx |= 1
	}
	if c.G >= 128 {
		idx |= 2
	}
	if c.B >= 128 {
		idx |= 4
	}

	colors := []ANSIColor{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
	return colors[idx]
}

// RGB builds an RGBColor from components.
func RGB(r, g, b uint8) RGBColor {
	return RGBColor{R: r, G: g, B: b}
}

// Hex parses "#RRGGBB" or "RRGGBB".
func Hex(hex string) (RGBColor, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return RGBColor{}, fmt.Errorf("%w: invalid hex color %q", ErrColorSyntax, hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w: invalid hex color %q", ErrColorSyntax, hex)
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w: invalid hex color %q", ErrColorSyntax, hex)
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w: invalid hex color %q", ErrColorSyntax, hex)
	}

	return RGBColor{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

var namedColors = map[string]RGBColor{
	"black":   {0, 0, 0},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"yellow":  {255, 255, 0},
	"blue":    {0, 0, 255},
	"magenta": {255, 0, 255},
	"cyan":    {0, 255, 255},
	"white":   {255, 255, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"pink":    {255, 192, 203},
}

// Named looks up a CSS-ish color name, case-insensitively.
func Named(name string) (RGBColor, error) {
	color, ok := namedColors[strings.ToLower(name)]
	if !ok {
		return RGBColor{}, fmt.Errorf("%w: unknown color name %q", ErrColorSyntax, name)
	}
	return color, nil
}

// ColorValue is the result of the color oracle: a resolved Color plus
// whether it targets the background ground, per spec §1's
// `parse_color(spec) -> Color{sequence, is_background}`.
type ColorValue struct {
	Color        Color
	IsBackground bool
}

// Sequence renders the SGR fragment for this color under mode.
func (v ColorValue) Sequence(mode ColorMode) string {
	if v.Color == nil {
		return ""
	}
	return v.Color.toANSI(mode, !v.IsBackground)
}

var truecolorPattern = func() func(string) ([3]uint8, bool) {
	parse := func(s string) ([3]uint8, bool) {
		parts := strings.Split(s, ";")
		if len(parts) != 3 {
			return [3]uint8{}, false
		}
		var out [3]uint8
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return [3]uint8{}, false
			}
			out[i] = uint8(n)
		}
		return out, true
	}
	return parse
}()

// ParseColor is the engine's color oracle (spec §1, §6). It accepts:
//
//   - an optional leading "@" marking the background ground
//   - a named color ("red", "orange", ...)
//   - a hex color ("#FF0000" or "FF0000")
//   - a truecolor triple ("R;G;B")
//   - an 8-bit palette index ("0".."255")
//   - a raw SGR color code as emitted by a real terminal ("30".."37",
//     "40".."47", "90".."97", "100".."107"), which carries its own ground
//     and overrides any "@" prefix
//
// It returns ErrColorSyntax when spec matches none of the above.
func ParseColor(spec string) (ColorValue, error) {
	background := false
	if strings.HasPrefix(spec, "@") {
		background = true
		spec = spec[1:]
	}

	if spec == "" {
		return ColorValue{}, fmt.Errorf("%w: empty color spec", ErrColorSyntax)
	}

	if strings.HasPrefix(spec, "#") || isHexTriplet(spec) {
		rgb, err := Hex(spec)
		if err != nil {
			return ColorValue{}, err
		}
		return ColorValue{Color: rgb, IsBackground: background}, nil
	}

	if rgb, ok := truecolorPattern(spec); ok {
		return ColorValue{Color: RGBColor{R: rgb[0], G: rgb[1], B: rgb[2]}, IsBackground: background}, nil
	}

	if n, err := strconv.Atoi(spec); err == nil {
		// 30-37/40-47/90-97/100-107 are shadowed here: a bare numeric tag in
		// that range is read as a raw SGR color code (matching the standard
		// color it would set), not as an 8-bit palette index, even though
		// those same numbers are also valid ANSI256Color indices.
		if color, fg, ok := ansiColorFromSGRCode(n); ok {
			return ColorValue{Color: color, IsBackground: !fg}, nil
		}
		if n < 0 || n > 255 {
			return ColorValue{}, fmt.Errorf("%w: palette index %d out of range", ErrColorSyntax, n)
		}
		return ColorValue{Color: ANSI256Color(n), IsBackground: background}, nil
	}

	rgb, err := Named(spec)
	if err != nil {
		return ColorValue{}, err
	}
	return ColorValue{Color: rgb, IsBackground: background}, nil
}

func isHexTriplet(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}
