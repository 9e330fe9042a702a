package rpirgbw

import (
	"fmt"
	"image/color"
)

//RGB is a three channel color without a white component.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

//RGBW returns c as RGBW with white set to 0.
func (c RGB) RGBW() RGBW {
	return RGBW{R: c.R, G: c.G, B: c.B}
}

//RGBW describes one LED of an RGBW strip like the SK6812.
/*
RGBW is a plain value. All methods return a new value and leave the receiver untouched.
*/
type RGBW struct {
	R uint8
	G uint8
	B uint8
	W uint8
}

//RGBWFromRaw builds an RGBW from a 4 element array in the order R, G, B, W.
func RGBWFromRaw(raw [4]uint8) RGBW {
	return RGBW{R: raw[0], G: raw[1], B: raw[2], W: raw[3]}
}

//RGBWFromUInt32 builds an RGBW from the format 0xWWRRGGBB.
func RGBWFromUInt32(val uint32) RGBW {
	return RGBW{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
		W: uint8(val >> 24),
	}
}

//RGBWFromColor turns a color.Color into an RGBW. Like an RGB assignment white is 0.
func RGBWFromColor(c color.Color) RGBW {
	// A color's RGBA method returns values in the range [0, 65535]
	red, green, blue, _ := c.RGBA()
	return RGBW{R: uint8(red >> 8), G: uint8(green >> 8), B: uint8(blue >> 8)}
}

//Raw returns the channels as array in the order R, G, B, W.
func (c RGBW) Raw() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.W}
}

//UInt32 returns the color as uint32. Format 0xWWRRGGBB
func (c RGBW) UInt32() uint32 {
	return uint32(c.W)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

//Add adds o channel by channel, saturating at 255.
func (c RGBW) Add(o RGBW) RGBW {
	return RGBW{
		R: QAdd8(c.R, o.R),
		G: QAdd8(c.G, o.G),
		B: QAdd8(c.B, o.B),
		W: QAdd8(c.W, o.W),
	}
}

//AddRGB adds o channel by channel, saturating at 255. White is set to 0.
func (c RGBW) AddRGB(o RGB) RGBW {
	return RGBW{
		R: QAdd8(c.R, o.R),
		G: QAdd8(c.G, o.G),
		B: QAdd8(c.B, o.B),
	}
}

//ScaleVideo scales all four channels down to scale/256 of their brightness.
//Lit channels stay lit unless scale is 0.
func (c RGBW) ScaleVideo(scale uint8) RGBW {
	c.R, c.G, c.B, c.W = NScale8x4Video(c.R, c.G, c.B, c.W, scale)
	return c
}

//Scale scales all four channels down to scale/256 of their brightness using
//plain math, so low levels may go all the way to black.
func (c RGBW) Scale(scale uint8) RGBW {
	c.R, c.G, c.B, c.W = NScale8x4(c.R, c.G, c.B, c.W, scale)
	return c
}

//RGBA implements color.Color. White light is added to each color channel.
func (c RGBW) RGBA() (r, g, b, a uint32) {
	r = uint32(QAdd8(c.R, c.W))
	g = uint32(QAdd8(c.G, c.W))
	b = uint32(QAdd8(c.B, c.W))
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

func (c RGBW) String() string {
	return fmt.Sprintf("rgbw(%d, %d, %d, %d)", c.R, c.G, c.B, c.W)
}
