package rpirgbw

import (
	"os"
	"time"

	"github.com/DerLukas15/rpimemmap"
)

const (
	// Channel register offsets
	registerOffsetDmaCs       uint32 = 0x00
	registerOffsetDmaConblkAd uint32 = 0x04
	registerOffsetDmaDebug    uint32 = 0x20
	// Global enable register
	registerOffsetDmaEnable uint32 = 0xff0

	registerValueDmaCsReset                 uint32 = (1 << 31)
	registerValueDmaCsWaitOutstandingWrites uint32 = (1 << 28)
	registerValueDmaCsInt                   uint32 = (1 << 2)
	registerValueDmaCsEnd                   uint32 = (1 << 1)
	registerValueDmaCsActive                uint32 = (1 << 0)

	// Control block layout, one word each
	registerOffsetDmaCBTi             uint32 = 0 * 4
	registerOffsetDmaCBSrcAddress     uint32 = 1 * 4
	registerOffsetDmaCBDestAddress    uint32 = 2 * 4
	registerOffsetDmaCBTransferLength uint32 = 3 * 4
	registerOffsetDmaCB2DModeStride   uint32 = 4 * 4
	registerOffsetDmaCBNextCBAddress  uint32 = 5 * 4

	registerValueDmaCBTiWaitResp     uint32 = 1 << 3
	registerValueDmaCBTiDestDreq     uint32 = 1 << 6
	registerValueDmaCBTiSrcInc       uint32 = 1 << 8
	registerValueDmaCBTiNoWideBursts uint32 = 1 << 26

	dmaPeripheralMapPWM uint32 = 5
)

func registerValueDmaCsPanicPriority(val uint32) uint32 { return (val & 0xf) << 20 }
func registerValueDmaCsPriority(val uint32) uint32      { return (val & 0xf) << 16 }
func registerValueDmaCBTiPermap(val uint32) uint32      { return (val & 0x1f) << 16 }

// Each channel has its own 0x100 block of registers.
func dmaChannelRegister(channel, offset uint32) uint32 {
	return channel*0x100 + offset
}

var dmaDevice = &peripheral{name: "dma", busOffset: 0x00007000}

var dmaCBMemPWM rpimemmap.MemMap // the one control block used for PWM

func enableDMA(channel uint32) {
	if !dmaDevice.mapped() {
		return
	}
	*dmaDevice.reg(registerOffsetDmaEnable) |= 1 << channel
}

func resetDMA(channel uint32) {
	if !dmaDevice.mapped() {
		return
	}
	*dmaDevice.reg(dmaChannelRegister(channel, registerOffsetDmaCs)) = registerValueDmaCsReset
}

//startDMA resets channel and starts a transfer described by the control block at cbAddress.
func startDMA(channel uint32, cbAddress uint32) {
	resetDMA(channel)
	cs := dmaDevice.reg(dmaChannelRegister(channel, registerOffsetDmaCs))
	time.Sleep(10 * time.Microsecond)
	*cs = registerValueDmaCsInt | registerValueDmaCsEnd
	time.Sleep(10 * time.Microsecond)
	*dmaDevice.reg(dmaChannelRegister(channel, registerOffsetDmaConblkAd)) = cbAddress
	*dmaDevice.reg(dmaChannelRegister(channel, registerOffsetDmaDebug)) = 7
	*cs = registerValueDmaCsWaitOutstandingWrites | registerValueDmaCsPanicPriority(15) | registerValueDmaCsPriority(15)
	*cs |= registerValueDmaCsActive
	time.Sleep(20 * time.Microsecond)
}

//setupDmaCBPWM writes the control block which moves transferBytes of PWM words into the PWM fifo.
func setupDmaCBPWM(transferBytes uint32) error {
	if dmaCBMemPWM == nil {
		mem, err := mapUncached(uint32(os.Getpagesize()))
		if err != nil {
			return err
		}
		dmaCBMemPWM = mem
		logDebug("dma control block mapped", "mem", mem.String())
	}
	cb := func(offset uint32) *uint32 { return rpimemmap.Reg32(dmaCBMemPWM, offset) }
	*cb(registerOffsetDmaCBTi) = registerValueDmaCBTiNoWideBursts | registerValueDmaCBTiWaitResp | registerValueDmaCBTiDestDreq |
		registerValueDmaCBTiSrcInc | registerValueDmaCBTiPermap(dmaPeripheralMapPWM)
	*cb(registerOffsetDmaCBSrcAddress) = pwmDataMem.BusAddr()
	*cb(registerOffsetDmaCBDestAddress) = pwmDevice.busAddr() + registerOffsetPWMFif1
	*cb(registerOffsetDmaCBTransferLength) = transferBytes
	*cb(registerOffsetDmaCB2DModeStride) = 0
	*cb(registerOffsetDmaCBNextCBAddress) = 0
	return nil
}
