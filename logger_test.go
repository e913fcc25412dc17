package plinth_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/plinth"
	"github.com/gogpu/plinth/gpucore"
	"github.com/gogpu/plinth/render"
	"github.com/gogpu/plinth/style"
	"github.com/gogpu/plinth/style/memsource"
)

// syncBuffer is a bytes.Buffer safe for the concurrent writes slog makes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureLogs installs a debug-level text logger for the duration of the test.
func captureLogs(t *testing.T) *syncBuffer {
	t.Helper()
	prev := plinth.Logger()
	t.Cleanup(func() { plinth.SetLogger(prev) })
	out := &syncBuffer{}
	plinth.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return out
}

// uploadDevice accepts buffer uploads and nothing else.
type uploadDevice struct{ next gpucore.BufferID }

func (d *uploadDevice) CreateBuffer(string, uint64, gputypes.BufferUsage) (gpucore.BufferID, error) {
	d.next++
	return d.next, nil
}

func (d *uploadDevice) DestroyBuffer(gpucore.BufferID) {}

func (d *uploadDevice) WriteBuffer(gpucore.BufferID, uint64, []byte) error { return nil }

func (d *uploadDevice) CreateRenderPipeline(*gpucore.RenderPipelineDesc) (gpucore.PipelineID, error) {
	return gpucore.InvalidID, nil
}

func (d *uploadDevice) DestroyRenderPipeline(gpucore.PipelineID) {}

func (d *uploadDevice) BeginRenderPass(*gpucore.RenderPassDesc) (gpucore.RenderPassEncoder, error) {
	return nil, nil
}

func (d *uploadDevice) Submit() error { return nil }

var _ gpucore.Device = (*uploadDevice)(nil)

func TestSetLoggerNilSilences(t *testing.T) {
	prev := plinth.Logger()
	t.Cleanup(func() { plinth.SetLogger(prev) })

	plinth.SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	plinth.SetLogger(nil)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if plinth.Logger().Enabled(context.Background(), level) {
			t.Errorf("SetLogger(nil): Enabled(%v) = true, want false", level)
		}
	}
}

func TestStyleLogsThroughSharedLogger(t *testing.T) {
	out := captureLogs(t)

	src := memsource.New()
	src.Add("primary").SetProperty(style.DefaultProperty, "not-a-color")
	w, err := style.NewWatcher(src, style.NewRegistry())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.WatchClass("primary")
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w.Stop()

	for _, msg := range []string{
		"style: rescan",
		"style: rescan problem",
		"style: watcher started",
		"style: watcher stopped",
	} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("log is missing %q:\n%s", msg, out.String())
		}
	}
	if !strings.Contains(out.String(), "level=WARN") {
		t.Errorf("unparseable value was not logged at warn:\n%s", out.String())
	}
}

func TestRenderLogsThroughSharedLogger(t *testing.T) {
	out := captureLogs(t)

	b := render.NewCircleBatch()
	b.Add(plinth.NewCircle(plinth.Vec2{}, 1))
	if err := b.Sync(&uploadDevice{}); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "render: batch synced") || !strings.Contains(got, "kind=circle") {
		t.Errorf("batch upload not logged:\n%s", got)
	}
}

func TestSetLoggerWhileLogging(t *testing.T) {
	prev := plinth.Logger()
	t.Cleanup(func() { plinth.SetLogger(prev) })

	reg := style.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			plinth.SetLogger(slog.New(slog.NewTextHandler(&syncBuffer{}, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}()
		go func() {
			defer wg.Done()
			src := memsource.New()
			src.Add("c").SetProperty(style.DefaultProperty, "#123456")
			w, err := style.NewWatcher(src, reg)
			if err != nil {
				t.Error(err)
				return
			}
			w.WatchClass("c")
			w.Rescan()
		}()
	}
	wg.Wait()
}
