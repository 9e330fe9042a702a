package rpirgbw

import (
	"time"

	"github.com/DerLukas15/rpigpio"
	"github.com/DerLukas15/rpihardware"
	"github.com/pkg/errors"
)

//Config is the main struct which holds all information.
/*
A Config can only contain one driver type. Only PWM is implemented, which drives up to two strips. Be aware
that only one Config per driver type can be initialized and used at a time.

There are only some methods possible once the Config has been initialized. Use method Stop to deinitialize the Config.
*/
type Config struct {
	driverType DriverType // DriverType for this config. Only on active config per driverType allowed
	// DMA channel to use. Use different channels if you use multiple drivers simultaniously.
	dmaChannel uint32
	//Frequency for communication
	frequency uint32
	//PWM allowes two strips as it has two channels. Thus channels is a slice
	channels []ledChannel

	initialized bool
	words       []uint32 // encoded symbols, copied to DMA memory on render
	interleave  uint32   // number of channels sharing the PWM fifo

	// Timing for next render
	renderWait         time.Duration
	previousRenderTime time.Time
}

type ledChannel struct {
	stripType  StripType    // StripType
	strip      LEDs         // Actual LEDs
	pin        *rpigpio.Pin // Pin to use for the strip
	invert     bool         // Set output inverse
	active     bool         // Set when this channel is configured to be used
	brightness uint8        // Brightness of the strip, 255 is full
	gamma      [256]uint8   // Output curve applied after brightness
}

//New returns a new Config for driverType.
/*
Default Frequency: 800 kHz

Default DMAChannel: 10

Default Brightness: 255 with no gamma curve
*/
func New(driverType DriverType) (*Config, error) {
	c := &Config{
		driverType: driverType,
		dmaChannel: 10,
		frequency:  800000,
	}
	switch c.driverType {
	case DriverPWM:
		c.channels = make([]ledChannel, 2)
	default:
		return nil, errors.Wrap(ErrDriverNotSupported, "New")
	}
	for i := range c.channels {
		c.channels[i].brightness = 255
		c.channels[i].gamma = CurveNone.Table()
	}
	return c, nil
}

//Initialize activates a Config. If another Config for the same driverType is already active, an error is returned
func (c *Config) Initialize() error {
	if c.initialized {
		return nil
	}
	var oneActive bool
	for _, curChannel := range c.channels {
		if curChannel.active {
			oneActive = true
			break
		}
	}
	if !oneActive {
		return errors.Wrap(ErrNoActiveChannel, "config initialize")
	}
	if c.driverType != DriverPWM {
		return errors.Wrap(ErrDriverNotSupported, "config initialize")
	}
	if pwmActive {
		return errors.Wrap(ErrDriverAlreadyUsed, "pwm")
	}
	//Initialize GPIO. Does not matter if already done.
	if err := rpigpio.Initialize(); err != nil {
		return errors.Wrap(err, "config initialize")
	}
	var err error
	curHardware, err = rpihardware.Check()
	if err != nil {
		return errors.Wrap(err, "config initialize")
	}
	if err := dmaDevice.open(); err != nil {
		return errors.Wrap(err, "config initialize")
	}
	enableDMA(c.dmaChannel)
	dataSize, interleave, err := initializePWM(c.channels, c.frequency)
	if err != nil {
		return errors.Wrap(err, "config initialize")
	}
	pwmActive = true
	c.words = make([]uint32, dataSize/4)
	c.interleave = interleave
	for curChannelID, curChannel := range c.channels {
		if curChannel.active {
			//err was checked during SetStrip
			altMode, _ := pwmPinMode(curChannelID, curChannel.pin.UInt32())
			curChannel.pin.Mode(altMode)
		}
	}
	c.initialized = true
	Logger().Info("config initialized", "driver", c.driverType, "dma", c.dmaChannel, "frequency", c.frequency)
	return nil
}

//Stop will disable the Config so that another Config of same driverType can be initialized.
//Stopping is also needed if changing of fundamental settings is desired.
func (c *Config) Stop() error {
	if !c.initialized {
		return nil
	}
	pwmActive = false
	if err := cleanupPWM(); err != nil {
		return errors.Wrap(err, "config Stop")
	}
	//Don't stop DMA as other config might use it.
	c.initialized = false
	c.words = nil
	for _, curChan := range c.channels {
		if curChan.active {
			logDebug("releasing pin", "gpio", curChan.pin.UInt32())
			curChan.pin.Mode(rpigpio.ModeOut)
			curChan.pin.Set(0)
		}
	}
	Logger().Info("config stopped", "driver", c.driverType)
	return nil
}

//SetDMAChannel sets the DMAChannel to use. Default is 10.
/*
If you want to use multiple Config, you can use the same DMAChannel IF you don't render the Config at the same time.

There are some DMAChannels used by the system. Please check only if you want to use another channel as 10.
*/
func (c *Config) SetDMAChannel(channel uint32) error {
	if c.initialized {
		return errors.Wrap(ErrConfigInitialized, "config SetDMAChannel")
	}
	c.dmaChannel = channel
	return nil
}

//SetFrequency sets the output frequency to use. Valid values are 400000 and 800000
func (c *Config) SetFrequency(frequency uint32) error {
	if c.initialized {
		return errors.Wrap(ErrConfigInitialized, "config SetFrequency")
	}
	if frequency != 400000 && frequency != 800000 {
		return errors.Wrap(ErrWrongFrequency, "config SetFrequency")
	}
	c.frequency = frequency
	return nil
}

func (c *Config) channel(stripIndex int, op string) (*ledChannel, error) {
	if stripIndex < 0 || stripIndex >= len(c.channels) {
		return nil, errors.Wrap(ErrConfigWrongIndex, op)
	}
	return &c.channels[stripIndex], nil
}

//SetBrightness sets the output brightness for the strip with index stripIndex. 255 is full brightness.
//Every color is scaled with Scale8 on render. This method can be called once the Config is initialized.
func (c *Config) SetBrightness(brightness uint8, stripIndex int) error {
	ch, err := c.channel(stripIndex, "config SetBrightness")
	if err != nil {
		return err
	}
	ch.brightness = brightness
	logDebug("brightness set", "strip", stripIndex, "brightness", brightness)
	return nil
}

//SetGamma sets the curve applied to every color after brightness for the strip with index stripIndex.
//This method can be called once the Config is initialized.
func (c *Config) SetGamma(curve Curve, stripIndex int) error {
	ch, err := c.channel(stripIndex, "config SetGamma")
	if err != nil {
		return err
	}
	if !curve.Valid() {
		return errors.Wrap(ErrUnknownCurve, "config SetGamma")
	}
	ch.gamma = curve.Table()
	return nil
}

//SetStrip adds LEDs to the Config.
/*
*****

A word about channels:

A channel represents a physical signal output on the Raspberry Pi.

There are two simultaniously available channels when using PWM as a driver.

*****

For PWM the stripIndex can be 0 or 1.
The pin is checked if it is suitable for the channel.
*/
func (c *Config) SetStrip(ledStrip LEDs, pin uint32, stripType StripType, stripIndex int, invertSignal bool) error {
	if c.initialized {
		return errors.Wrap(ErrConfigInitialized, "config SetStrip")
	}
	curChannel, err := c.channel(stripIndex, "config SetStrip")
	if err != nil {
		return err
	}
	if _, err := pwmPinMode(stripIndex, pin); err != nil {
		return errors.Wrap(err, "config SetStrip")
	}
	curChannel.pin, err = rpigpio.NewPin(pin)
	if err != nil {
		return errors.Wrap(err, "config SetStrip")
	}
	curChannel.strip = ledStrip
	curChannel.stripType = stripType
	curChannel.invert = invertSignal
	curChannel.active = true
	return nil
}

//Render sends the current colors to the strips. stripIndex -1 renders all strips of the Config.
func (c *Config) Render(stripIndex int) error {
	if stripIndex < -1 || stripIndex >= len(c.channels) {
		return errors.Wrap(ErrConfigWrongIndex, "config Render")
	}
	if !c.initialized {
		return errors.Wrap(ErrNotInitialized, "config Render")
	}
	if c.renderWait != 0 && !c.previousRenderTime.IsZero() {
		if elapsed := time.Since(c.previousRenderTime); elapsed < c.renderWait {
			time.Sleep(c.renderWait - elapsed)
		}
	}
	c.renderWait = renderPWM(c.words, c.channels, c.interleave, stripIndex, c.frequency)
	startDMA(c.dmaChannel, dmaCBMemPWM.BusAddr())
	c.previousRenderTime = time.Now()
	return nil
}
