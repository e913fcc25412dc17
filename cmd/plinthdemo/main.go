// Command plinthdemo renders a few frames of styled shapes headlessly.
//
// Shape colors come from style classes. An in-memory style source drives
// the "primary" class through the hue circle, one step per frame, while
// classes from an optional YAML theme stay fixed.
//
//	plinthdemo -frames 60 -theme theme.yaml -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/gputypes"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/plinth"
	"github.com/gogpu/plinth/backend/native"
	"github.com/gogpu/plinth/render"
	"github.com/gogpu/plinth/style"
	"github.com/gogpu/plinth/style/memsource"
)

type config struct {
	width   uint32
	height  uint32
	frames  int
	theme   string
	noop    bool
	verbose bool
}

func main() {
	cfg := config{width: 800, height: 600}
	flag.Func("width", "surface width (default 800)", dimensionFlag(&cfg.width))
	flag.Func("height", "surface height (default 600)", dimensionFlag(&cfg.height))
	flag.IntVar(&cfg.frames, "frames", 12, "number of frames to render")
	flag.StringVar(&cfg.theme, "theme", "", "optional YAML theme file")
	flag.BoolVar(&cfg.noop, "noop", false, "use the noop backend instead of Vulkan")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("plinthdemo: %v", err)
	}
}

// parseDimension parses a surface edge length. Zero and values that do not
// fit in 32 bits are rejected.
func parseDimension(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errors.New("must be positive")
	}
	return uint32(v), nil
}

func dimensionFlag(dst *uint32) func(string) error {
	return func(s string) error {
		v, err := parseDimension(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func run(cfg config) error {
	if cfg.verbose {
		plinth.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer plinth.SetLogger(nil)
	}

	reg := style.NewRegistry()
	if cfg.theme != "" {
		classes, err := loadTheme(cfg.theme)
		if err != nil {
			return err
		}
		for _, c := range classes {
			reg.Upsert(c)
		}
	}

	src := memsource.New()
	accent := src.Add("primary")
	accent.SetProperty(style.DefaultProperty, "#ff0000")

	w, err := style.NewWatcher(src, reg,
		style.WithNamedColors(),
		style.WithDiagnostics(func(err error) { log.Printf("style: %v", err) }),
	)
	if err != nil {
		return err
	}
	w.WatchClass("primary")
	changes := 0
	w.SetListener(func() { changes++ })
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	opened, err := openDevice(cfg.noop)
	if err != nil {
		return err
	}
	defer opened.Release()

	dev, err := native.NewHALDevice(opened.Device, opened.Queue)
	if err != nil {
		return err
	}
	defer dev.Close()

	surf, err := native.NewOffscreenSurface(dev, cfg.width, cfg.height, gputypes.TextureFormatUndefined)
	if err != nil {
		return err
	}
	defer surf.Destroy()

	sess, err := render.NewSession(dev, surf, reg, render.WithBackground(plinth.RGB(16, 16, 24)))
	if err != nil {
		return err
	}
	defer sess.Close()

	for i := 0; i < cfg.frames; i++ {
		hue := 360 * float64(i) / float64(max(cfg.frames, 1))
		accent.SetProperty(style.DefaultProperty, colorful.Hsv(hue, 0.8, 1).Hex())
		src.Fire(style.TriggerStylesheet)

		if err := sess.Render(scene(i)); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		st := sess.Stats()
		plinth.Logger().Info("plinthdemo: frame",
			"frame", i,
			"draws", st.DrawCalls,
			"overrides", st.Overrides)
	}

	log.Printf("rendered %d frames (%dx%d), %d style changes, %d presented",
		cfg.frames, cfg.width, cfg.height, changes, surf.Presented())
	return nil
}

// openDevice prefers Vulkan and falls back to the noop backend when no
// driver is available.
func openDevice(forceNoop bool) (*native.Opened, error) {
	if !forceNoop {
		opened, err := native.OpenDefault()
		if err == nil {
			return opened, nil
		}
		log.Printf("vulkan unavailable (%v), using noop backend", err)
	}
	return native.OpenNoop()
}

// scene builds a fresh set of shapes for frame i. Shapes are rebuilt every
// frame because style overrides replace their colors permanently.
func scene(i int) []plinth.Shape {
	spin := plinth.Identity().WithRotation(float32(i) * 0.1)

	sun := plinth.NewCircle(plinth.V2(-0.5, 0.3), 0.25).WithStyleClass("primary")
	moon := plinth.NewCircle(plinth.V2(0.5, 0.3), 0.15).WithColor(plinth.RGB(200, 200, 220))
	panel := plinth.NewRectangle(plinth.V2(-0.9, -0.9), plinth.V2(1.8, 0.5)).WithStyleClass("panel")
	arrow := plinth.DefaultTriangle().WithStyleClass("primary").WithTransform(spin.WithScale(plinth.V2(0.3, 0.3)))

	return []plinth.Shape{&sun, &moon, &panel, &arrow}
}
