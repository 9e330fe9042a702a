package rpirgbw

import (
	"image/color"

	"github.com/pkg/errors"
)

//LEDStrip represent a physical continious strip of LEDs.
//Each LED is an RGBW. HSV colors are converted with the Rainbow of the strip.
type LEDStrip struct {
	leds    Pixels
	rainbow Rainbow
}

//NewLEDStrip returns a LEDStrip with count LEDs, all off. Colors can be set with the methods.
func NewLEDStrip(count int) *LEDStrip {
	return &LEDStrip{
		leds:    make(Pixels, count),
		rainbow: DefaultRainbow,
	}
}

//SetRainbow sets the conversion used by SetHSV and FillRainbow.
func (l *LEDStrip) SetRainbow(rb Rainbow) error {
	if err := rb.Validate(); err != nil {
		return errors.Wrap(err, "strip SetRainbow")
	}
	l.rainbow = rb
	return nil
}

//Rainbow returns the conversion used by the strip.
func (l *LEDStrip) Rainbow() Rainbow {
	return l.rainbow
}

//TotalCount returns the number of LEDs in the strip.
func (l *LEDStrip) TotalCount() int {
	return len(l.leds)
}

//Pixel returns the color at position.
func (l *LEDStrip) Pixel(position int) RGBW {
	return l.leds.Pixel(position)
}

//Pixels returns the buffer of the strip. Changes to it are visible on the next render.
func (l *LEDStrip) Pixels() Pixels {
	return l.leds
}

func (l *LEDStrip) inRange(position int) bool {
	return position >= 0 && position < len(l.leds)
}

//Set sets the color at position.
func (l *LEDStrip) Set(position int, c RGBW) {
	if !l.inRange(position) {
		return
	}
	l.leds[position] = c
}

//SetColor sets the color from color.Color at position. White is set to 0.
func (l *LEDStrip) SetColor(position int, c color.Color) {
	l.Set(position, RGBWFromColor(c))
}

//SetRGBW sets the color value by r, g, b, and w values at position.
func (l *LEDStrip) SetRGBW(position int, r, g, b, w uint8) {
	l.Set(position, RGBW{R: r, G: g, B: b, W: w})
}

//SetHSV sets the converted hsv color at position. White is set to 0.
func (l *LEDStrip) SetHSV(position int, hsv HSV) {
	if !l.inRange(position) {
		return
	}
	l.leds[position] = l.rainbow.Convert(hsv)
}

//SetDirect sets the color value for LED at position directly. Format 0xWWRRGGBB
func (l *LEDStrip) SetDirect(position int, val uint32) {
	l.Set(position, RGBWFromUInt32(val))
}

//Fill sets all LEDs to c.
func (l *LEDStrip) Fill(c RGBW) {
	Fill(l.leds, len(l.leds), c)
}

//FillRainbow fills the strip with full colors starting at initialHue and moving deltaHue per LED.
func (l *LEDStrip) FillRainbow(initialHue, deltaHue uint8) {
	FillRainbow(l.leds, len(l.leds), l.rainbow, initialHue, deltaHue)
}

//FadeToBlackBy dims all LEDs by fadeBy/256.
func (l *LEDStrip) FadeToBlackBy(fadeBy uint8) {
	FadeToBlackBy(l.leds, len(l.leds), fadeBy)
}

//Scale scales all LEDs down to scale/256 of their brightness.
func (l *LEDStrip) Scale(scale uint8) {
	NScale8(l.leds, len(l.leds), scale)
}

//ShiftRight shifts the LED colors by shift to the right. Everything leaving on the right wraps around.
//Use ShiftLeft instead of negative shifts.
func (l *LEDStrip) ShiftRight(shift int) {
	count := len(l.leds)
	if shift <= 0 || count == 0 || shift%count == 0 {
		return
	}
	l.rotate(count - shift%count)
}

//ShiftLeft shifts the LED colors by shift to the left. Everything leaving on the left wraps around.
//Use ShiftRight instead of negative shifts.
func (l *LEDStrip) ShiftLeft(shift int) {
	count := len(l.leds)
	if shift <= 0 || count == 0 || shift%count == 0 {
		return
	}
	l.rotate(shift % count)
}

// rotate moves the LED at position n to position 0 in place.
func (l *LEDStrip) rotate(n int) {
	reverse(l.leds[:n])
	reverse(l.leds[n:])
	reverse(l.leds)
}

func reverse(p Pixels) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
