package rpirgbw

import (
	"strings"
	"testing"
	"time"

	"github.com/DerLukas15/rpigpio"
	"github.com/pkg/errors"
)

// symbolBits returns the symbols the strip expects for colors as a string of 0 and 1.
func symbolBits(colors ...uint8) string {
	var sb strings.Builder
	for _, c := range colors {
		for k := 7; k >= 0; k-- {
			if c&(1<<k) != 0 {
				sb.WriteString("110")
			} else {
				sb.WriteString("100")
			}
		}
	}
	return sb.String()
}

func packBits(bits string) []uint32 {
	words := make([]uint32, (len(bits)+31)/32)
	for i, b := range bits {
		if b == '1' {
			words[i/32] |= 1 << (31 - i%32)
		}
	}
	return words
}

func testChannel(leds LEDs, st StripType) ledChannel {
	return ledChannel{
		strip:      leds,
		stripType:  st,
		active:     true,
		brightness: 255,
		gamma:      CurveNone.Table(),
	}
}

func TestWireColors(t *testing.T) {
	c := RGBW{R: 1, G: 2, B: 3, W: 4}
	tests := []struct {
		st   StripType
		want []uint8
	}{
		{SK6812StripGRBW, []uint8{2, 1, 3, 4}},
		{SK6812StripRGBW, []uint8{1, 2, 3, 4}},
		{SK6812StripBGRW, []uint8{3, 2, 1, 4}},
		{WS2811StripGRB, []uint8{2, 1, 3}},
		{WS2811StripRGB, []uint8{1, 2, 3}},
		{WS2811StripBRG, []uint8{3, 1, 2}},
	}
	for _, tt := range tests {
		got := wireColors(c, tt.st)
		if !equalBytes(got[:tt.st.Colors()], tt.want) {
			t.Errorf("wireColors(%#x) = %v, want %v", uint32(tt.st), got[:tt.st.Colors()], tt.want)
		}
	}
}

func TestEncodePWMSingleChannel(t *testing.T) {
	ch := testChannel(Pixels{{R: 0x01, G: 0x80, B: 0xff}}, SK6812StripGRBW)
	channels := []ledChannel{ch, {}}
	words := make([]uint32, 8)
	encodePWM(words, channels, 1, -1)

	want := packBits(symbolBits(0x80, 0x01, 0xff, 0x00))
	for i := range words {
		var w uint32
		if i < len(want) {
			w = want[i]
		}
		if words[i] != w {
			t.Errorf("word %d = %#08x, want %#08x", i, words[i], w)
		}
	}
}

func TestEncodePWMBrightnessAndGamma(t *testing.T) {
	ch := testChannel(Pixels{{G: 0xff}}, WS2811StripGRB)
	ch.brightness = 127
	ch.gamma = CurveRaw.Table()
	words := make([]uint32, 4)
	encodePWM(words, []ledChannel{ch, {}}, 1, -1)

	want := packBits(symbolBits(0x3f, 0, 0))
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d = %#08x, want %#08x", i, words[i], want[i])
		}
	}
}

func TestEncodePWMInterleaved(t *testing.T) {
	first := testChannel(Pixels{{R: 0xff, G: 0xff, B: 0xff, W: 0xff}}, SK6812StripGRBW)
	second := testChannel(Pixels{{R: 0x0f, G: 0xf0, B: 0x55, W: 0}}, SK6812StripGRBW)
	channels := []ledChannel{first, second}
	size, interleave := pwmDataSize(channels)
	if interleave != 2 {
		t.Fatalf("interleave = %d, want 2", interleave)
	}
	words := make([]uint32, size/4)
	for i := range words {
		words[i] = 0xffffffff
	}
	encodePWM(words, channels, interleave, 1)

	want := packBits(symbolBits(0xf0, 0x0f, 0x55, 0))
	for i, w := range words {
		expect := uint32(0xffffffff)
		if i%2 == 1 && i/2 < len(want) {
			expect = want[i/2]
		}
		if w != expect {
			t.Errorf("word %d = %#08x, want %#08x", i, w, expect)
		}
	}
}

func TestPWMDataSize(t *testing.T) {
	one := []ledChannel{testChannel(make(Pixels, 10), WS2811StripGRB), {}}
	if size, active := pwmDataSize(one); size != 128 || active != 1 {
		t.Errorf("pwmDataSize(one strip) = %d, %d, want 128, 1", size, active)
	}
	two := []ledChannel{testChannel(make(Pixels, 10), WS2811StripGRB), testChannel(make(Pixels, 20), SK6812StripGRBW)}
	if size, active := pwmDataSize(two); size != 560 || active != 2 {
		t.Errorf("pwmDataSize(two strips) = %d, %d, want 560, 2", size, active)
	}
}

func TestProtocolTime(t *testing.T) {
	if got, want := protocolTime(10, 3, 800000), 600*time.Microsecond; got != want {
		t.Errorf("protocolTime(10, 3, 800k) = %v, want %v", got, want)
	}
	if got, want := protocolTime(10, 4, 400000), 1100*time.Microsecond; got != want {
		t.Errorf("protocolTime(10, 4, 400k) = %v, want %v", got, want)
	}
}

func TestPWMPinMode(t *testing.T) {
	mode, err := pwmPinMode(0, 18)
	if err != nil || mode != rpigpio.ModeAlternate5 {
		t.Errorf("pwmPinMode(0, 18) = %v, %v", mode, err)
	}
	mode, err = pwmPinMode(1, 13)
	if err != nil || mode != rpigpio.ModeAlternate0 {
		t.Errorf("pwmPinMode(1, 13) = %v, %v", mode, err)
	}
	if _, err := pwmPinMode(1, 18); errors.Cause(err) != ErrPinNotAllowed {
		t.Errorf("pwmPinMode(1, 18) error = %v, want ErrPinNotAllowed", err)
	}
}
