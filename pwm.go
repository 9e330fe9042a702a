package rpirgbw

import (
	"time"

	"github.com/DerLukas15/rpigpio"
	"github.com/DerLukas15/rpimemmap"
	"github.com/pkg/errors"
)

/*
 * Pin map of alternate pin configuration for PWM
 * GPIO    PWM0   PWM1
 *  12      0
 *  13             0
 *  18      5
 *  19             5
 *  40      0
 *  41             0
 *  45             0
 */

const (
	pwmBitsPerOutputBit = 3

	//Register Offsets
	registerOffsetPWMCtl  uint32 = 0x00 // Control
	registerOffsetPWMDmac uint32 = 0x08 // DMA control
	registerOffsetPWMRng1 uint32 = 0x10 // Channel 1 range
	registerOffsetPWMFif1 uint32 = 0x18 // Channel 1 fifo
	registerOffsetPWMRng2 uint32 = 0x20 // Channel 2 range

	registerValuePWMDmacEnab uint32 = (1 << 31) // Start PWM DMA

	registerValuePWMCtlPwen1 uint32 = (1 << 0)  // Chan 1: enable
	registerValuePWMCtlMode1 uint32 = (1 << 1)  // Chan 1: serializer mode
	registerValuePWMCtlPola1 uint32 = (1 << 4)  // Chan 1: polarisation
	registerValuePWMCtlUsef1 uint32 = (1 << 5)  // Chan 1: use Fifo
	registerValuePWMCtlClrf1 uint32 = (1 << 6)  // Chan 1: clear fifo
	registerValuePWMCtlPwen2 uint32 = (1 << 8)  // Chan 2: enable
	registerValuePWMCtlMode2 uint32 = (1 << 9)  // Chan 2: serializer mode
	registerValuePWMCtlPola2 uint32 = (1 << 12) // Chan 2: polarisation
	registerValuePWMCtlUsef2 uint32 = (1 << 13) // Chan 2: use Fifo

	// Minimum time in microseconds the line has to stay low so the strip latches.
	pwmResetTime = 300 * time.Microsecond
)

func registerValuePWMDmacPanic(val uint32) uint32 { return (val & 0xff) << 8 }
func registerValuePWMDmacDreq(val uint32) uint32  { return val & 0xff }

var pwmDevice = &peripheral{name: "pwm", busOffset: 0x0020c000}

var pwmDataMem rpimemmap.MemMap

type pwmPin struct {
	gpio    uint32
	channel int
	mode    rpigpio.Mode
}

var pwmPins = []pwmPin{
	{gpio: 12, channel: 0, mode: rpigpio.ModeAlternate0},
	{gpio: 18, channel: 0, mode: rpigpio.ModeAlternate5},
	{gpio: 40, channel: 0, mode: rpigpio.ModeAlternate0},
	{gpio: 13, channel: 1, mode: rpigpio.ModeAlternate0},
	{gpio: 19, channel: 1, mode: rpigpio.ModeAlternate5},
	{gpio: 41, channel: 1, mode: rpigpio.ModeAlternate0},
	{gpio: 45, channel: 1, mode: rpigpio.ModeAlternate0},
}

//pwmPinMode returns the alternate mode which routes PWM channel to gpio.
func pwmPinMode(channel int, gpio uint32) (rpigpio.Mode, error) {
	for _, p := range pwmPins {
		if p.channel == channel && p.gpio == gpio {
			return p.mode, nil
		}
	}
	return 0, errors.Wrapf(ErrPinNotAllowed, "gpio %d on pwm channel %d", gpio, channel)
}

//pwmChannelBytes returns the bytes of PWM words one channel needs for its strip.
func pwmChannelBytes(ch *ledChannel) uint32 {
	// Each LED has 8 bit per color which are each mapped to pwmBitsPerOutputBit bits
	bits := uint32(ch.strip.TotalCount()*ch.stripType.Colors()) * 8 * pwmBitsPerOutputBit
	// Rounded to whole words plus spacing so the strip latches
	return ((bits >> 3) &^ 0x7) + 8 + 32
}

//pwmDataSize returns the size of the DMA buffer and the number of interleaved channels.
func pwmDataSize(channels []ledChannel) (uint32, uint32) {
	var size, active uint32
	for i := range channels {
		if !channels[i].active {
			continue
		}
		if n := pwmChannelBytes(&channels[i]); n > size {
			size = n
		}
		active++
	}
	if PWMAlwaysUseTwoChannel {
		active = 2
	}
	return size * active, active
}

//initializePWM sets up clock, pwm device, pwm data and dma control block. It returns the size of the pwm data in bytes.
func initializePWM(channels []ledChannel, frequency uint32) (uint32, uint32, error) {
	if err := clockDevice.open(); err != nil {
		return 0, 0, errors.Wrap(err, "PWM init")
	}
	startPWMClock(frequency)
	if err := pwmDevice.open(); err != nil {
		return 0, 0, errors.Wrap(err, "PWM init")
	}
	*pwmDevice.reg(registerOffsetPWMRng1) = 32 // 32 bits per word to serialize
	*pwmDevice.reg(registerOffsetPWMRng2) = 32
	time.Sleep(10 * time.Microsecond)
	*pwmDevice.reg(registerOffsetPWMCtl) = registerValuePWMCtlClrf1
	time.Sleep(10 * time.Microsecond)
	*pwmDevice.reg(registerOffsetPWMDmac) = registerValuePWMDmacEnab | registerValuePWMDmacPanic(7) | registerValuePWMDmacDreq(3)
	time.Sleep(10 * time.Microsecond)

	use1 := channels[0].active || PWMAlwaysUseTwoChannel
	use2 := channels[1].active || PWMAlwaysUseTwoChannel
	var ctl, enable uint32
	if use1 {
		ctl |= registerValuePWMCtlUsef1 | registerValuePWMCtlMode1
		enable |= registerValuePWMCtlPwen1
		if channels[0].invert {
			ctl |= registerValuePWMCtlPola1
		}
	}
	if use2 {
		ctl |= registerValuePWMCtlUsef2 | registerValuePWMCtlMode2
		enable |= registerValuePWMCtlPwen2
		if channels[1].invert {
			ctl |= registerValuePWMCtlPola2
		}
	}
	*pwmDevice.reg(registerOffsetPWMCtl) = ctl
	time.Sleep(10 * time.Microsecond)
	*pwmDevice.reg(registerOffsetPWMCtl) |= enable
	time.Sleep(10 * time.Microsecond)

	if err := unmapUncached(&pwmDataMem); err != nil {
		return 0, 0, errors.Wrap(err, "PWM init")
	}
	dataSize, active := pwmDataSize(channels)
	logDebug("mapping pwm data", "bytes", dataSize, "channels", active)
	mem, err := mapUncached(dataSize)
	if err != nil {
		return 0, 0, errors.Wrap(err, "PWM init")
	}
	pwmDataMem = mem
	if err := setupDmaCBPWM(dataSize); err != nil {
		return 0, 0, errors.Wrap(err, "PWM init")
	}
	return dataSize, active, nil
}

//cleanupPWM stops pwm and releases all memory
func cleanupPWM() error {
	if pwmDevice.mapped() {
		*pwmDevice.reg(registerOffsetPWMCtl) = 0
	}
	stopPWMClock()
	if err := pwmDevice.close(); err != nil {
		return errors.Wrap(err, "cleanup pwm")
	}
	if err := unmapUncached(&pwmDataMem); err != nil {
		return errors.Wrap(err, "cleanup pwm data")
	}
	if err := unmapUncached(&dmaCBMemPWM); err != nil {
		return errors.Wrap(err, "cleanup pwm dma cb")
	}
	return nil
}

//wireColors returns the colors of c in the order they are sent to a strip of type st.
func wireColors(c RGBW, st StripType) [4]uint8 {
	v := c.UInt32()
	ws, rs, gs, bs := st.shifts()
	return [4]uint8{uint8(v >> rs), uint8(v >> gs), uint8(v >> bs), uint8(v >> ws)}
}

//encodePWM writes the symbols of the selected channel into words. strip -1 encodes all active channels.
/*
With two channels the PWM fifo alternates between them, so every other word belongs to the same channel.
Every bit of a color becomes a 3 bit symbol, most significant bit first.
*/
func encodePWM(words []uint32, channels []ledChannel, interleave uint32, strip int) {
	if interleave == 0 {
		interleave = 1
	}
	for chanID := range channels {
		ch := &channels[chanID]
		if !ch.active || (strip != -1 && strip != chanID) {
			continue
		}
		wordPos := uint32(chanID)
		if interleave == 1 {
			wordPos = 0
		}
		bitPos := 31
		colors := ch.stripType.Colors()
		for i := 0; i < ch.strip.TotalCount(); i++ {
			wire := wireColors(ch.strip.Pixel(i), ch.stripType)
			for j := 0; j < colors; j++ {
				color := ch.gamma[Scale8(wire[j], ch.brightness)]
				for k := 7; k >= 0; k-- {
					symbol := symbolLow
					if color&(1<<k) != 0 {
						symbol = symbolHigh
					}
					for l := 2; l >= 0; l-- {
						if symbol&(1<<l) != 0 {
							words[wordPos] |= 1 << bitPos
						} else {
							words[wordPos] &^= 1 << bitPos
						}
						bitPos--
						if bitPos < 0 {
							wordPos += interleave
							bitPos = 31
						}
					}
				}
			}
		}
	}
}

//protocolTime returns how long sending count leds with colors each takes at frequency, including the reset time.
func protocolTime(count, colors int, frequency uint32) time.Duration {
	bits := int64(count * colors * 8)
	return time.Duration(bits*int64(time.Second)/int64(frequency)) + pwmResetTime
}

//renderPWM encodes the channels into the DMA memory. It returns the time the transfer needs.
func renderPWM(words []uint32, channels []ledChannel, interleave uint32, strip int, frequency uint32) time.Duration {
	encodePWM(words, channels, interleave, strip)
	var longest time.Duration
	for i := range channels {
		if !channels[i].active {
			continue
		}
		if d := protocolTime(channels[i].strip.TotalCount(), channels[i].stripType.Colors(), frequency); d > longest {
			longest = d
		}
	}
	for i, w := range words {
		*rpimemmap.Reg32(pwmDataMem, uint32(i*4)) = w
	}
	return longest
}
