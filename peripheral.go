package rpirgbw

import (
	"os"
	"time"

	"github.com/DerLukas15/rpihardware"
	"github.com/DerLukas15/rpimemmap"
	"github.com/pkg/errors"
)

//peripheral is a memory mapped register block of the SoC.
type peripheral struct {
	name      string
	busOffset uint32
	mem       rpimemmap.MemMap
}

//open maps the registers. Mapping twice is a no-op.
func (p *peripheral) open() error {
	if p.mem != nil {
		logDebug("peripheral already mapped", "name", p.name)
		return nil
	}
	mem := rpimemmap.NewPeripheral(uint32(os.Getpagesize()))
	if err := mem.Map(p.busOffset, rpimemmap.MemDevDefault, 0); err != nil {
		return errors.Wrap(err, p.name+" map")
	}
	p.mem = mem
	logDebug("peripheral mapped", "name", p.name, "mem", mem.String())
	return nil
}

func (p *peripheral) close() error {
	if p.mem == nil {
		return nil
	}
	if err := p.mem.Unmap(); err != nil {
		return errors.Wrap(err, p.name+" unmap")
	}
	p.mem = nil
	return nil
}

func (p *peripheral) mapped() bool {
	return p.mem != nil
}

func (p *peripheral) reg(offset uint32) *uint32 {
	return rpimemmap.Reg32(p.mem, offset)
}

func (p *peripheral) busAddr() uint32 {
	return p.mem.BusAddr()
}

//mapUncached allocates memory which the DMA engine can read without cache issues.
func mapUncached(size uint32) (rpimemmap.MemMap, error) {
	mem := rpimemmap.NewUncached(size)
	allocationFlags := rpimemmap.UncachedMemFlagDirect
	if curHardware.RPiType == rpihardware.RPiType1 {
		allocationFlags = 0xc
	}
	if err := mem.Map(0, "", allocationFlags); err != nil {
		return nil, errors.Wrap(err, "map uncached")
	}
	return mem, nil
}

func unmapUncached(mem *rpimemmap.MemMap) error {
	if *mem == nil {
		return nil
	}
	if err := (*mem).Unmap(); err != nil {
		return err
	}
	*mem = nil
	return nil
}

//waitUntil polls cond every microsecond.
func waitUntil(cond func() bool) {
	for !cond() {
		time.Sleep(time.Microsecond)
	}
}

// Clock manager

const (
	registerOffsetClkPwmCtl uint32 = 0xa0 // PWM Control
	registerOffsetClkPwmDiv uint32 = 0xa4 // PWM Div

	registerValueClkPasswd    uint32 = 0x5a000000 // Password used by the clock registers
	registerValueClkCtlSrcOsc uint32 = (1 << 0)   // Source is the oscillator
	registerValueClkCtlEnab   uint32 = (1 << 4)   // Enable clock
	registerValueClkCtlKill   uint32 = (1 << 5)   // Kill and reset
	registerValueClkCtlBusy   uint32 = (1 << 7)   // Set if running
)

// Integer part of the divisor
func registerValueClkDivDivi(val uint32) uint32 { return (val & 0xfff) << 12 }

var clockDevice = &peripheral{name: "clock", busOffset: 0x00101000}

//startPWMClock runs the PWM clock so that one output bit takes pwmBitsPerOutputBit clock cycles at frequency.
func startPWMClock(frequency uint32) {
	stopPWMClock()
	ctl := clockDevice.reg(registerOffsetClkPwmCtl)
	*clockDevice.reg(registerOffsetClkPwmDiv) = registerValueClkPasswd | registerValueClkDivDivi(curHardware.OscFreq/(pwmBitsPerOutputBit*frequency))
	*ctl = registerValueClkPasswd | registerValueClkCtlSrcOsc
	*ctl = registerValueClkPasswd | registerValueClkCtlSrcOsc | registerValueClkCtlEnab
	time.Sleep(10 * time.Microsecond)
	logDebug("waiting for pwm clock to start")
	waitUntil(func() bool { return *ctl&registerValueClkCtlBusy != 0 })
}

func stopPWMClock() {
	if !clockDevice.mapped() {
		return
	}
	ctl := clockDevice.reg(registerOffsetClkPwmCtl)
	*ctl = registerValueClkPasswd | registerValueClkCtlKill
	time.Sleep(10 * time.Microsecond)
	logDebug("waiting for pwm clock to stop")
	waitUntil(func() bool { return *ctl&registerValueClkCtlBusy == 0 })
}
