package rpirgbw

import "github.com/pkg/errors"

// The eye does not respond linearly to light: a PWM'd LED at 50% duty cycle looks
// much brighter than half. The dimming functions compress a value so the midpoint
// appears roughly half as bright. The brighten functions mirror them around 255 and
// are only approximate inverses.

//Dim8Raw dims x by scaling it with itself.
func Dim8Raw(x uint8) uint8 {
	return Scale8(x, x)
}

//Dim8Video dims x like Dim8Raw but never reaches 0 for x > 0.
func Dim8Video(x uint8) uint8 {
	return Scale8Video(x, x)
}

//Dim8Lin dims the upper half like Dim8Raw and halves values below 128.
func Dim8Lin(x uint8) uint8 {
	if x&0x80 != 0 {
		return Scale8(x, x)
	}
	return (x + 1) / 2
}

//Brighten8Raw is the mirror of Dim8Raw.
func Brighten8Raw(x uint8) uint8 {
	ix := 255 - x
	return 255 - Scale8(ix, ix)
}

//Brighten8Video is the mirror of Dim8Video.
func Brighten8Video(x uint8) uint8 {
	ix := 255 - x
	return 255 - Scale8Video(ix, ix)
}

//Brighten8Lin is the mirror of Dim8Lin.
func Brighten8Lin(x uint8) uint8 {
	return 255 - Dim8Lin(255-x)
}

//Curve selects one of the dimming curves. It is used for the output gamma of a strip.
type Curve uint8

//Valid Curves
const (
	CurveNone Curve = iota
	CurveRaw
	CurveVideo
	CurveLinear
)

//Valid reports whether c is a known curve.
func (c Curve) Valid() bool {
	return c <= CurveLinear
}

//Dim applies the dimming function of the curve. CurveNone and unknown curves return x.
func (c Curve) Dim(x uint8) uint8 {
	switch c {
	case CurveRaw:
		return Dim8Raw(x)
	case CurveVideo:
		return Dim8Video(x)
	case CurveLinear:
		return Dim8Lin(x)
	}
	return x
}

//Brighten applies the brighten function of the curve. CurveNone and unknown curves return x.
func (c Curve) Brighten(x uint8) uint8 {
	switch c {
	case CurveRaw:
		return Brighten8Raw(x)
	case CurveVideo:
		return Brighten8Video(x)
	case CurveLinear:
		return Brighten8Lin(x)
	}
	return x
}

//Table returns the dimming curve as a lookup table.
func (c Curve) Table() [256]uint8 {
	var t [256]uint8
	for x := range t {
		t[x] = c.Dim(uint8(x))
	}
	return t
}

func (c Curve) String() string {
	switch c {
	case CurveNone:
		return "none"
	case CurveRaw:
		return "raw"
	case CurveVideo:
		return "video"
	case CurveLinear:
		return "linear"
	}
	return "unknown"
}

//ParseCurve returns the Curve named by s as printed by String.
func ParseCurve(s string) (Curve, error) {
	for c := CurveNone; c <= CurveLinear; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return CurveNone, errors.Wrap(ErrUnknownCurve, s)
}
