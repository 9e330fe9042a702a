package rpirgbw

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDimBrighten(t *testing.T) {
	tests := []struct {
		name string
		fn   func(uint8) uint8
		x    uint8
		want uint8
	}{
		{"Dim8Raw 0", Dim8Raw, 0, 0},
		{"Dim8Raw 255", Dim8Raw, 255, 255},
		{"Dim8Raw 128", Dim8Raw, 128, 64},
		{"Dim8Video 1", Dim8Video, 1, 1},
		{"Dim8Video 128", Dim8Video, 128, 65},
		{"Dim8Lin 0", Dim8Lin, 0, 0},
		{"Dim8Lin 1", Dim8Lin, 1, 1},
		{"Dim8Lin 100", Dim8Lin, 100, 50},
		{"Dim8Lin 127", Dim8Lin, 127, 64},
		{"Dim8Lin 128", Dim8Lin, 128, 64},
		{"Dim8Lin 255", Dim8Lin, 255, 255},
		{"Brighten8Raw 0", Brighten8Raw, 0, 0},
		{"Brighten8Raw 255", Brighten8Raw, 255, 255},
		{"Brighten8Raw 127", Brighten8Raw, 127, 191},
		{"Brighten8Video 0", Brighten8Video, 0, 0},
		{"Brighten8Video 255", Brighten8Video, 255, 255},
		{"Brighten8Lin 200", Brighten8Lin, 200, 227},
		{"Brighten8Lin 0", Brighten8Lin, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.x); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDimCurvesMonotonic(t *testing.T) {
	curves := map[string]func(uint8) uint8{
		"Dim8Raw":        Dim8Raw,
		"Dim8Video":      Dim8Video,
		"Dim8Lin":        Dim8Lin,
		"Brighten8Raw":   Brighten8Raw,
		"Brighten8Video": Brighten8Video,
		"Brighten8Lin":   Brighten8Lin,
	}
	for name, fn := range curves {
		prev := fn(0)
		for x := 1; x < 256; x++ {
			got := fn(uint8(x))
			if got < prev {
				t.Errorf("%s(%d) = %d, smaller than %s(%d) = %d", name, x, got, name, x-1, prev)
				break
			}
			prev = got
		}
	}
}

func TestDim8VideoZeroOnlyForZero(t *testing.T) {
	for x := 0; x < 256; x++ {
		got := Dim8Video(uint8(x))
		if (got == 0) != (x == 0) {
			t.Errorf("Dim8Video(%d) = %d", x, got)
		}
	}
}

func TestDimCurvesCompress(t *testing.T) {
	for x := 0; x < 256; x++ {
		if got := Dim8Raw(uint8(x)); got > uint8(x) {
			t.Errorf("Dim8Raw(%d) = %d, brighter than input", x, got)
		}
		if got := Brighten8Raw(uint8(x)); got < uint8(x) {
			t.Errorf("Brighten8Raw(%d) = %d, darker than input", x, got)
		}
	}
}

func TestCurve(t *testing.T) {
	for c := CurveNone; c <= CurveLinear; c++ {
		table := c.Table()
		for x := 0; x < 256; x++ {
			if table[x] != c.Dim(uint8(x)) {
				t.Fatalf("%s table[%d] = %d, want %d", c, x, table[x], c.Dim(uint8(x)))
			}
		}
		parsed, err := ParseCurve(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseCurve(%q) = %v, %v", c.String(), parsed, err)
		}
	}
	if got := CurveNone.Dim(42); got != 42 {
		t.Errorf("CurveNone.Dim(42) = %d", got)
	}
	if got := CurveRaw.Brighten(127); got != Brighten8Raw(127) {
		t.Errorf("CurveRaw.Brighten(127) = %d", got)
	}
	if Curve(9).Valid() {
		t.Error("Curve(9) reported as valid")
	}
	if _, err := ParseCurve("sqrt"); errors.Cause(err) != ErrUnknownCurve {
		t.Errorf("ParseCurve(sqrt) error = %v, want ErrUnknownCurve", err)
	}
}
