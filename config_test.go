package rpirgbw

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNew(t *testing.T) {
	if _, err := New(DriverPCM); errors.Cause(err) != ErrDriverNotSupported {
		t.Errorf("New(DriverPCM) error = %v, want ErrDriverNotSupported", err)
	}
	c, err := New(DriverPWM)
	if err != nil {
		t.Fatalf("New(DriverPWM) = %v", err)
	}
	if len(c.channels) != 2 || c.frequency != 800000 || c.dmaChannel != 10 {
		t.Errorf("defaults = %d channels, %d Hz, dma %d", len(c.channels), c.frequency, c.dmaChannel)
	}
	for i, ch := range c.channels {
		if ch.brightness != 255 || ch.gamma != CurveNone.Table() {
			t.Errorf("channel %d defaults: brightness %d", i, ch.brightness)
		}
	}
}

func TestConfigSetters(t *testing.T) {
	c, err := New(DriverPWM)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"frequency 400k", func() error { return c.SetFrequency(400000) }, nil},
		{"frequency 500k", func() error { return c.SetFrequency(500000) }, ErrWrongFrequency},
		{"dma channel", func() error { return c.SetDMAChannel(5) }, nil},
		{"brightness", func() error { return c.SetBrightness(128, 1) }, nil},
		{"brightness index", func() error { return c.SetBrightness(128, 2) }, ErrConfigWrongIndex},
		{"gamma", func() error { return c.SetGamma(CurveVideo, 0) }, nil},
		{"gamma unknown", func() error { return c.SetGamma(Curve(7), 0) }, ErrUnknownCurve},
		{"gamma index", func() error { return c.SetGamma(CurveRaw, -1) }, ErrConfigWrongIndex},
		{"strip pin", func() error { return c.SetStrip(NewLEDStrip(3), 17, SK6812WStrip, 0, false) }, ErrPinNotAllowed},
		{"strip index", func() error { return c.SetStrip(NewLEDStrip(3), 18, SK6812WStrip, 2, false) }, ErrConfigWrongIndex},
		{"render uninitialized", func() error { return c.Render(-1) }, ErrNotInitialized},
		{"render index", func() error { return c.Render(-2) }, ErrConfigWrongIndex},
		{"initialize without strips", c.Initialize, ErrNoActiveChannel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); errors.Cause(err) != tt.want {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if c.frequency != 400000 || c.dmaChannel != 5 {
		t.Errorf("frequency %d, dma %d not stored", c.frequency, c.dmaChannel)
	}
	if c.channels[1].brightness != 128 {
		t.Errorf("brightness = %d, want 128", c.channels[1].brightness)
	}
	if c.channels[0].gamma != CurveVideo.Table() {
		t.Error("gamma table not stored")
	}
	if c.channels[0].active {
		t.Error("channel activated by a failed SetStrip")
	}
}

func TestConfigInitializedRejectsChanges(t *testing.T) {
	c, err := New(DriverPWM)
	if err != nil {
		t.Fatal(err)
	}
	c.initialized = true
	if err := c.SetFrequency(400000); errors.Cause(err) != ErrConfigInitialized {
		t.Errorf("SetFrequency = %v, want ErrConfigInitialized", err)
	}
	if err := c.SetDMAChannel(4); errors.Cause(err) != ErrConfigInitialized {
		t.Errorf("SetDMAChannel = %v, want ErrConfigInitialized", err)
	}
	if err := c.SetStrip(NewLEDStrip(1), 18, SK6812WStrip, 0, false); errors.Cause(err) != ErrConfigInitialized {
		t.Errorf("SetStrip = %v, want ErrConfigInitialized", err)
	}
	if err := c.SetBrightness(10, 0); err != nil {
		t.Errorf("SetBrightness on initialized config = %v", err)
	}
}

func TestStripTypes(t *testing.T) {
	tests := []struct {
		name   string
		want   StripType
		colors int
	}{
		{"grbw", SK6812StripGRBW, 4},
		{"rgbw", SK6812StripRGBW, 4},
		{"grb", WS2812Strip, 3},
		{"bgr", WS2811StripBGR, 3},
	}
	for _, tt := range tests {
		st, err := ParseStripType(tt.name)
		if err != nil || st != tt.want || st.Colors() != tt.colors {
			t.Errorf("ParseStripType(%q) = %#x, %v (colors %d)", tt.name, uint32(st), err, st.Colors())
		}
	}
	if _, err := ParseStripType("rgbww"); errors.Cause(err) != ErrUnknownStripType {
		t.Errorf("ParseStripType(rgbww) = %v, want ErrUnknownStripType", err)
	}
}
