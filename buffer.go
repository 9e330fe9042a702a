package rpirgbw

// The buffer functions work on the first count leds. count must not exceed len(leds).

//Fill sets the first count leds to c.
func Fill(leds []RGBW, count int, c RGBW) {
	for i := 0; i < count; i++ {
		leds[i] = c
	}
}

//FillRGB sets the first count leds to c with white 0.
func FillRGB(leds []RGBW, count int, c RGB) {
	Fill(leds, count, c.RGBW())
}

//NScale8 scales the first count leds down to scale/256 of their brightness, white included.
func NScale8(leds []RGBW, count int, scale uint8) {
	for i := 0; i < count; i++ {
		leds[i] = leds[i].Scale(scale)
	}
}

//FadeToBlackBy dims the first count leds by fadeBy/256. A fadeBy of 0 leaves them untouched.
func FadeToBlackBy(leds []RGBW, count int, fadeBy uint8) {
	NScale8(leds, count, 255-fadeBy)
}

//RGBWSize returns how many 3 byte RGB units are needed to hold pixelCount RGBW leds.
func RGBWSize(pixelCount int) int {
	nbytes := pixelCount * 4
	if nbytes%3 > 0 {
		return nbytes/3 + 1
	}
	return nbytes / 3
}
