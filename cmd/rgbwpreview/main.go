// Command rgbwpreview shows a simulated RGBW strip in the terminal.
//
// Keys:
//
//	m          next mode (rainbow, solid, comet)
//	b          toggle boost level
//	up/down    value
//	left/right saturation
//	+/-        hue speed
//	q, esc     quit
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/DerLukas15/rpirgbw"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

type mode int

const (
	modeRainbow mode = iota
	modeSolid
	modeComet
	modeCount
)

func (m mode) String() string {
	return [...]string{"rainbow", "solid", "comet"}[m]
}

// preview holds the interactive state
type preview struct {
	screen tcell.Screen
	strip  *rpirgbw.LEDStrip
	gamma  rpirgbw.Curve

	mode       mode
	hue        uint8
	speed      uint8
	delta      uint8
	sat, val   uint8
	brightness uint8
	cometPos   int
}

func main() {
	count := flag.Int("count", 60, "number of simulated leds")
	fps := flag.Int("fps", 30, "frames per second")
	delta := flag.Uint("delta", 4, "hue step between leds in rainbow mode")
	brightness := flag.Uint("brightness", 255, "strip brightness 0-255")
	gammaName := flag.String("gamma", "none", "output curve: none, raw, video, linear")
	boostName := flag.String("boost", "moderate", "yellow boost: moderate, strong")
	flag.Parse()

	gamma, err := rpirgbw.ParseCurve(*gammaName)
	if err != nil {
		log.Fatal(err)
	}
	boost, err := rpirgbw.ParseBoostLevel(*boostName)
	if err != nil {
		log.Fatal(err)
	}
	if *fps <= 0 || *count <= 0 {
		log.Fatal("count and fps must be positive")
	}

	strip := rpirgbw.NewLEDStrip(*count)
	if err := strip.SetRainbow(rpirgbw.Rainbow{Boost: boost}); err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	p := &preview{
		screen:     screen,
		strip:      strip,
		gamma:      gamma,
		speed:      1,
		delta:      uint8(*delta),
		sat:        255,
		val:        255,
		brightness: uint8(*brightness),
	}
	defer screen.Fini()
	p.run(time.Second / time.Duration(*fps))
}

func (p *preview) run(frame time.Duration) {
	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			if !p.handle(ev) {
				return
			}
		case <-ticker.C:
			p.step()
			p.draw()
		}
	}
}

// handle applies one event and reports whether to keep running.
func (p *preview) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			p.val = rpirgbw.QAdd8(p.val, 5)
		case tcell.KeyDown:
			p.val = sub8(p.val, 5)
		case tcell.KeyRight:
			p.sat = rpirgbw.QAdd8(p.sat, 5)
		case tcell.KeyLeft:
			p.sat = sub8(p.sat, 5)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'm':
				p.mode = (p.mode + 1) % modeCount
			case 'b':
				rb := p.strip.Rainbow()
				rb.Boost = (rb.Boost + 1) % 2
				if err := p.strip.SetRainbow(rb); err != nil {
					log.Print(err)
				}
			case '+':
				p.speed++
			case '-':
				p.speed--
			}
		}
	}
	return true
}

func sub8(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}

// step advances the animation by one frame.
func (p *preview) step() {
	p.hue += p.speed
	switch p.mode {
	case modeRainbow:
		p.strip.FillRainbow(p.hue, p.delta)
		p.strip.Scale(rpirgbw.Dim8Video(p.val))
	case modeSolid:
		p.strip.Fill(p.strip.Rainbow().Convert(rpirgbw.HSV{Hue: p.hue, Sat: p.sat, Val: p.val}))
	case modeComet:
		p.strip.FadeToBlackBy(64)
		p.cometPos = (p.cometPos + 1) % p.strip.TotalCount()
		p.strip.SetHSV(p.cometPos, rpirgbw.HSV{Hue: p.hue, Sat: p.sat, Val: p.val})
	}
}

// output returns what the driver would send for c.
func (p *preview) output(c rpirgbw.RGBW) rpirgbw.RGBW {
	raw := c.Raw()
	for i := range raw {
		raw[i] = p.gamma.Dim(rpirgbw.Scale8(raw[i], p.brightness))
	}
	return rpirgbw.RGBWFromRaw(raw)
}

func (p *preview) draw() {
	p.screen.Clear()
	w, _ := p.screen.Size()
	for i := 0; i < p.strip.TotalCount() && i < w; i++ {
		r, g, b, _ := p.output(p.strip.Pixel(i)).RGBA()
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
		p.screen.SetContent(i, 1, ' ', nil, style)
		p.screen.SetContent(i, 2, ' ', nil, style)
	}

	first := p.strip.Pixel(0)
	deg, _, _ := colorful.Color{R: float64(first.R) / 255, G: float64(first.G) / 255, B: float64(first.B) / 255}.Hsv()
	status := fmt.Sprintf("mode %s  boost %s  hue %3d (%5.1f°)  sat %3d  val %3d  speed %d  gamma %s",
		p.mode, p.strip.Rainbow().Boost, p.hue, deg, p.sat, p.val, p.speed, p.gamma)
	drawText(p.screen, 0, 4, tcell.StyleDefault, status)
	drawText(p.screen, 0, 5, tcell.StyleDefault, fmt.Sprintf("led 0: %s", first))
	p.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
