package rpirgbw

//LEDs is anything the driver can render. Position defines the physical position on the LED strip starting at 0 to the total number of LEDs on that strip.
type LEDs interface {
	Pixel(position int) RGBW
	TotalCount() int
}

//Pixels is a plain buffer of leds which can be used as LEDs.
type Pixels []RGBW

//Pixel returns the led at position or black if position is out of range.
func (p Pixels) Pixel(position int) RGBW {
	if position < 0 || position >= len(p) {
		return RGBW{}
	}
	return p[position]
}

//TotalCount returns the number of leds in the buffer.
func (p Pixels) TotalCount() int {
	return len(p)
}

//Pixel returns c. A single RGBW can be used as LEDs with one led.
func (c RGBW) Pixel(unused int) RGBW {
	return c
}

//TotalCount returns the number of LEDs.
//
//In this case this will always be 1.
func (c RGBW) TotalCount() int {
	return 1
}
