//Package rpirgbw is a fixed-point color engine for RGBW LEDs together with a driver for WS281x/SK6812 strips on the Raspberry Pi using plain GO.
/*
The color engine (Scale8, the Dim8 and Brighten8 curves, Rainbow and RGBW) only uses integer math and never allocates.
The driver renders anything implementing LEDs through PWM and DMA.
*/
package rpirgbw

import (
	"github.com/DerLukas15/rpihardware"
	"github.com/pkg/errors"
)

// Errors
var (
	ErrDriverAlreadyUsed  = errors.New("driver already initialized")
	ErrConfigInitialized  = errors.New("config already initialized")
	ErrNotInitialized     = errors.New("config not initialized")
	ErrConfigWrongIndex   = errors.New("wrong strip index")
	ErrDriverNotSupported = errors.New("driver not supported")
	ErrPinNotAllowed      = errors.New("selected pin not allowed")
	ErrNoActiveChannel    = errors.New("no active channel")
	ErrWrongFrequency     = errors.New("wrong frequency")
	ErrUnknownBoost       = errors.New("unknown boost level")
	ErrUnknownCurve       = errors.New("unknown curve")
	ErrUnknownStripType   = errors.New("unknown strip type")
)

var (
	pwmActive   bool                  // Set once a config with PWM as driver is active
	curHardware *rpihardware.Hardware // Set during initialize
)

//DriverType defines the hardware type (PWM, PCM, SPI) which is used for communication
type DriverType uint8

//Valid DriverTypes. Only DriverPWM is implemented.
const (
	DriverPWM DriverType = 1 << iota
	DriverPCM
	DriverSPI
)

//StripType is the layout of the connected strip an can be different for each output signal.
/*
Format 0xWWRRGGBB where each byte is the shift of that color inside the 32 bit word sent to the strip.
*/
type StripType uint32

// If the white shift is set the strip has 4 colors.
const sk6812ShiftMask StripType = 0xf0000000

//Valid StripTypes
const (
	// 4 color R, G, B and W ordering
	SK6812StripRGBW StripType = 0x18100800
	SK6812StripRBGW StripType = 0x18100008
	SK6812StripGRBW StripType = 0x18081000
	SK6812StripGBRW StripType = 0x18080010
	SK6812StripBRGW StripType = 0x18001008
	SK6812StripBGRW StripType = 0x18000810

	// 3 color R, G and B ordering
	WS2811StripRGB StripType = 0x00100800
	WS2811StripRBG StripType = 0x00100008
	WS2811StripGRB StripType = 0x00081000
	WS2811StripGBR StripType = 0x00080010
	WS2811StripBRG StripType = 0x00001008
	WS2811StripBGR StripType = 0x00000810
)

// Predefined fixed LED types
const (
	WS2812Strip  = WS2811StripGRB
	SK6812Strip  = WS2811StripGRB
	SK6812WStrip = SK6812StripGRBW
)

var stripTypeNames = map[string]StripType{
	"rgbw": SK6812StripRGBW,
	"rbgw": SK6812StripRBGW,
	"grbw": SK6812StripGRBW,
	"gbrw": SK6812StripGBRW,
	"brgw": SK6812StripBRGW,
	"bgrw": SK6812StripBGRW,
	"rgb":  WS2811StripRGB,
	"rbg":  WS2811StripRBG,
	"grb":  WS2811StripGRB,
	"gbr":  WS2811StripGBR,
	"brg":  WS2811StripBRG,
	"bgr":  WS2811StripBGR,
}

//ParseStripType returns the StripType for a channel order like "grbw" or "grb".
func ParseStripType(s string) (StripType, error) {
	st, ok := stripTypeNames[s]
	if !ok {
		return 0, errors.Wrap(ErrUnknownStripType, s)
	}
	return st, nil
}

//Colors returns the number of colors per led, 3 or 4.
func (st StripType) Colors() int {
	if st&sk6812ShiftMask != 0 {
		return 4
	}
	return 3
}

func (st StripType) shifts() (w, r, g, b uint8) {
	return uint8(st >> 24), uint8(st >> 16), uint8(st >> 8), uint8(st)
}

const (
	symbolHigh uint8 = 0b110
	symbolLow  uint8 = 0b100
)

//Enable two channel mode for PWM no matter the configuration
var PWMAlwaysUseTwoChannel bool
