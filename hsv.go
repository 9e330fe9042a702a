package rpirgbw

import (
	"fmt"

	"github.com/pkg/errors"
)

//HSV is a color given as hue, saturation and value. A hue of 256 would be a full turn of the color wheel.
type HSV struct {
	Hue uint8
	Sat uint8
	Val uint8
}

//RGBW converts the color with the default Rainbow.
func (c HSV) RGBW() RGBW {
	return DefaultRainbow.Convert(c)
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d, %d, %d)", c.Hue, c.Sat, c.Val)
}

//BoostLevel defines how much brighter yellow is rendered than a plain hue wheel would render it.
/*
'Pure' yellow is perceived to be 93% as bright as white, so it has to be rendered
brighter than all other colors to appear at the correct relative brightness.
*/
type BoostLevel uint8

//Valid BoostLevels
const (
	BoostModerate BoostLevel = iota // default
	BoostStrong
)

func (b BoostLevel) String() string {
	switch b {
	case BoostModerate:
		return "moderate"
	case BoostStrong:
		return "strong"
	}
	return "unknown"
}

//ParseBoostLevel returns the BoostLevel named by s as printed by String.
func ParseBoostLevel(s string) (BoostLevel, error) {
	for b := BoostModerate; b <= BoostStrong; b++ {
		if b.String() == s {
			return b, nil
		}
	}
	return BoostModerate, errors.Wrap(ErrUnknownBoost, s)
}

//Rainbow holds the settings of the HSV to RGBW conversion. The zero value is the default conversion.
type Rainbow struct {
	Boost BoostLevel
	// HalveGreen divides all greens by two. Depends greatly on the LEDs used.
	HalveGreen bool
	// GreenScale scales green down after HalveGreen. 0 disables it.
	GreenScale uint8
}

//DefaultRainbow is the conversion used by HSV.RGBW and HSVToRGBW.
var DefaultRainbow = Rainbow{}

//Validate returns an error if the settings can not be used.
func (rb Rainbow) Validate() error {
	if rb.Boost > BoostStrong {
		return errors.Wrap(ErrUnknownBoost, fmt.Sprintf("rainbow boost %d", rb.Boost))
	}
	return nil
}

//HSVToRGBW converts hsv with DefaultRainbow.
func HSVToRGBW(hsv HSV) RGBW {
	return DefaultRainbow.Convert(hsv)
}

const (
	k255 uint8 = 255
	k171 uint8 = 171
	k170 uint8 = 170
	k85  uint8 = 85
)

//Convert turns hsv into an RGBW color. White is always 0.
/*
The hue is split into 8 sectors of 32 steps (red, orange, yellow, green, aqua, blue, purple, pink).
Inside a sector the channels are blended linearly between anchor levels of 255, 171, 170 and 85.
Channels which are lit stay lit when saturation or value are reduced, as long as value is not 0.
*/
func (rb Rainbow) Convert(hsv HSV) RGBW {
	hue, sat, val := hsv.Hue, hsv.Sat, hsv.Val

	offset8 := (hue & 0x1f) << 3 // 0..248
	third := Scale8(offset8, 256/3)
	twothirds := func() uint8 { return Scale8(offset8, (256*2)/3) }

	var r, g, b uint8
	switch hue >> 5 {
	case 0: // red -> orange
		r = k255 - third
		g = third
	case 1: // orange -> yellow
		if rb.Boost == BoostStrong {
			r = k170 + third
			g = k85 + twothirds()
		} else {
			r = k171
			g = k85 + third
		}
	case 2: // yellow -> green
		if rb.Boost == BoostStrong {
			r = k255 - offset8
			g = k255
		} else {
			r = k171 - twothirds()
			g = k170 + third
		}
	case 3: // green -> aqua
		g = k255 - third
		b = third
	case 4: // aqua -> blue
		tt := twothirds()
		g = k171 - tt
		b = k85 + tt
	case 5: // blue -> purple
		r = third
		b = k255 - third
	case 6: // purple -> pink
		r = k85 + third
		b = k171 - third
	default: // pink -> red
		r = k170 + third
		b = k85 - third
	}

	if rb.HalveGreen {
		g >>= 1
	}
	if rb.GreenScale != 0 {
		g = Scale8Video(g, rb.GreenScale)
	}

	if sat != 255 {
		if sat == 0 {
			r, g, b = 255, 255, 255
		} else {
			r, g, b = scaleLit(r, sat), scaleLit(g, sat), scaleLit(b, sat)
			desat := 255 - sat
			floor := Scale8(desat, desat)
			r, g, b = QAdd8(r, floor), QAdd8(g, floor), QAdd8(b, floor)
		}
	}

	if val != 255 {
		val = Dim8Video(val)
		if val == 0 {
			r, g, b = 0, 0, 0
		} else {
			r, g, b = scaleLit(r, val), scaleLit(g, val), scaleLit(b, val)
		}
	}

	return RGBW{R: r, G: g, B: b}
}

// scale must be below 255, so the biased result still fits.
func scaleLit(v, scale uint8) uint8 {
	if v == 0 {
		return 0
	}
	return Scale8(v, scale) + 1
}

//FillRainbow fills the first count leds with full colors starting at initialHue and moving deltaHue per led.
func FillRainbow(leds []RGBW, count int, rb Rainbow, initialHue, deltaHue uint8) {
	hsv := HSV{Hue: initialHue, Sat: 255, Val: 255}
	for i := 0; i < count; i++ {
		leds[i] = rb.Convert(hsv)
		hsv.Hue += deltaHue
	}
}
