// Command rgbwlamp drives an RGBW strip on a Raspberry Pi with a solid color or a moving rainbow.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/DerLukas15/rpirgbw"
	"github.com/pkg/errors"
)

type options struct {
	pin        uint
	count      int
	brightness uint
	mode       string
	hue        uint
	sat        uint
	val        uint
	fps        int
	gamma      rpirgbw.Curve
	boost      rpirgbw.BoostLevel
	stripType  rpirgbw.StripType
}

func main() {
	var opts options
	var gammaName, boostName, stripName string
	flag.UintVar(&opts.pin, "pin", 18, "gpio pin of the strip data line")
	flag.IntVar(&opts.count, "count", 30, "number of leds")
	flag.UintVar(&opts.brightness, "brightness", 255, "strip brightness 0-255")
	flag.StringVar(&opts.mode, "mode", "rainbow", "solid or rainbow")
	flag.UintVar(&opts.hue, "hue", 0, "hue 0-255 for solid mode")
	flag.UintVar(&opts.sat, "sat", 255, "saturation 0-255 for solid mode")
	flag.UintVar(&opts.val, "val", 255, "value 0-255 for solid mode")
	flag.IntVar(&opts.fps, "fps", 30, "frames per second in rainbow mode")
	flag.StringVar(&gammaName, "gamma", "none", "output curve: none, raw, video, linear")
	flag.StringVar(&boostName, "boost", "moderate", "yellow boost: moderate, strong")
	flag.StringVar(&stripName, "strip", "grbw", "channel order of the strip, e.g. grbw, rgbw, grb")
	debug := flag.Bool("debug", false, "log driver steps")
	flag.Parse()

	if *debug {
		rpirgbw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	if opts.gamma, err = rpirgbw.ParseCurve(gammaName); err != nil {
		log.Fatal(err)
	}
	if opts.boost, err = rpirgbw.ParseBoostLevel(boostName); err != nil {
		log.Fatal(err)
	}
	if opts.stripType, err = rpirgbw.ParseStripType(stripName); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, opts); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.mode != "solid" && opts.mode != "rainbow" {
		return errors.Errorf("unknown mode %q", opts.mode)
	}
	if opts.fps <= 0 || opts.count <= 0 {
		return errors.Errorf("count and fps must be positive, got %d and %d", opts.count, opts.fps)
	}

	strip := rpirgbw.NewLEDStrip(opts.count)
	if err := strip.SetRainbow(rpirgbw.Rainbow{Boost: opts.boost}); err != nil {
		return err
	}
	config, err := rpirgbw.New(rpirgbw.DriverPWM)
	if err != nil {
		return err
	}
	if err := config.SetStrip(strip, uint32(opts.pin), opts.stripType, 0, false); err != nil {
		return err
	}
	if err := config.SetBrightness(uint8(opts.brightness), 0); err != nil {
		return err
	}
	if err := config.SetGamma(opts.gamma, 0); err != nil {
		return err
	}
	if err := config.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := config.Stop(); err != nil {
			log.Print(err)
		}
	}()

	if opts.mode == "solid" {
		strip.SetHSV(0, rpirgbw.HSV{Hue: uint8(opts.hue), Sat: uint8(opts.sat), Val: uint8(opts.val)})
		strip.Fill(strip.Pixel(0))
		if err := config.Render(-1); err != nil {
			return err
		}
		<-ctx.Done()
		return blackout(strip, config)
	}

	ticker := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer ticker.Stop()
	var hue uint8
	for {
		select {
		case <-ctx.Done():
			return blackout(strip, config)
		case <-ticker.C:
			strip.FillRainbow(hue, uint8(256/opts.count+1))
			hue++
			if err := config.Render(-1); err != nil {
				return err
			}
		}
	}
}

// blackout turns all leds off before the driver is stopped.
func blackout(strip *rpirgbw.LEDStrip, config *rpirgbw.Config) error {
	strip.Fill(rpirgbw.RGBW{})
	return errors.Wrap(config.Render(-1), "blackout")
}
