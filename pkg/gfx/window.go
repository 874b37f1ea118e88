package gfx

import (
	"context"
	"runtime"
	"time"

	"github.com/kjkrol/gokgl/internal/platform"
)

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{PositionX: w.PositionX, PositionY: w.PositionY, Width: w.Width, Height: w.Height, Title: w.Title}
}

// Window owns the platform window, its OpenGL context and the renderer.
// NewWindow, Run and Close must all happen on the same OS thread.
type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	refreshDelay       time.Duration
	closed             bool
	ctx                context.Context
	cancel             context.CancelFunc
}

const maxEventWait = 50 * time.Millisecond

func NewWindow(conf WindowConfig, factory RendererFactory) (*Window, error) {
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, err
	}
	return newWindow(wrapper, factory), nil
}

func newWindow(wrapper platform.PlatformWindowWrapper, factory RendererFactory) *Window {
	window := Window{
		platformWinWrapper: wrapper,
	}
	if factory != nil {
		window.renderer = factory(&window)
	}
	window.ctx, window.cancel = context.WithCancel(context.Background())
	return &window
}

// Size reports the current framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	if w == nil || w.platformWinWrapper == nil {
		return 0, 0
	}
	return w.platformWinWrapper.Size()
}

func (w *Window) Show() {
	w.platformWinWrapper.Show()
}

// RefreshRate caps the frame rate of Run. Values <= 0 fall back to 60.
func (w *Window) RefreshRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	w.refreshDelay = time.Second / time.Duration(fps)
}

// Stop cancels a running loop from any goroutine.
func (w *Window) Stop() {
	w.cancel()
}

// Closed reports whether Run has observed a close signal and returned.
func (w *Window) Closed() bool {
	return w.closed
}

func (w *Window) SetRenderer(renderer Renderer) {
	if w == nil {
		return
	}
	if w.renderer != nil {
		w.renderer.Close()
	}
	w.renderer = renderer
}

func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWinWrapper.Close()
}

// Run drives the window until the platform reports a close request or Stop
// is called. Each iteration consumes pending events through the strategy,
// checks the close flag once, and renders a frame when the pacing deadline
// arrives. No frame is rendered after the close signal is observed.
func (w *Window) Run(handleEvent func(event Event), strategy EventsConsumerStrategy) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	delay := w.refreshDelay
	if delay == 0 {
		delay = time.Second / 60
	}
	if strategy == nil {
		strategy = DrainAll()
	}
	if handleEvent == nil {
		handleEvent = func(Event) {}
	}
	poll := func(timeoutMs int) (Event, bool) {
		platformEvent := w.platformWinWrapper.NextEventTimeout(timeoutMs)
		if _, ok := platformEvent.(platform.TimeoutEvent); ok {
			return nil, false
		}
		return convert(platformEvent), true
	}

	nextRender := time.Now().Add(delay)

	for {
		select {
		case <-w.ctx.Done():
			w.closed = true
			return
		default:
		}
		if w.platformWinWrapper.ShouldClose() {
			w.closed = true
			return
		}

		now := time.Now()
		timeout := nextRender.Sub(now)
		if timeout < 0 {
			timeout = 0
		}
		if timeout > maxEventWait {
			timeout = maxEventWait
		}
		timeoutMs := int(timeout / time.Millisecond)
		if timeout > 0 && timeoutMs == 0 {
			timeoutMs = 1
		}

		strategy.Consume(poll, handleEvent, timeoutMs)

		now = time.Now()
		if !now.Before(nextRender) {
			w.platformWinWrapper.BeginFrame()
			if w.renderer != nil {
				w.renderer.Render(w)
			}
			w.platformWinWrapper.EndFrame()
			nextRender = now.Add(delay)
		}
	}
}
