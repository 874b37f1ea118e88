package gfx

import (
	"testing"
	"time"

	"github.com/kjkrol/gokgl/internal/platform"
)

type fakeWrapper struct {
	events []platform.Event

	// closeAfterFrames < 0 means the window never asks to close.
	closeAfterFrames int
	frames           int
	shown            bool
	closed           bool
}

func (f *fakeWrapper) Show() { f.shown = true }

func (f *fakeWrapper) ShouldClose() bool {
	return f.closeAfterFrames >= 0 && f.frames >= f.closeAfterFrames
}

func (f *fakeWrapper) NextEventTimeout(int) platform.Event {
	if len(f.events) == 0 {
		return platform.TimeoutEvent{}
	}
	event := f.events[0]
	f.events = f.events[1:]
	return event
}

func (f *fakeWrapper) BeginFrame() {}

func (f *fakeWrapper) EndFrame() { f.frames++ }

func (f *fakeWrapper) Size() (int, int) { return 640, 480 }

func (f *fakeWrapper) Close() { f.closed = true }

type countingRenderer struct {
	renders int
	closed  bool
	onClose func()
}

func (c *countingRenderer) Render(*Window) { c.renders++ }

func (c *countingRenderer) Close() {
	c.closed = true
	if c.onClose != nil {
		c.onClose()
	}
}

func runWithTimeout(t *testing.T, w *Window, handle func(Event)) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		w.Run(handle, DrainAll())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run loop did not terminate")
	}
}

func TestRunStopsAfterCloseRequest(t *testing.T) {
	wrapper := &fakeWrapper{closeAfterFrames: 2}
	rend := &countingRenderer{}
	w := newWindow(wrapper, func(*Window) Renderer { return rend })
	w.RefreshRate(1000)

	runWithTimeout(t, w, nil)

	if !w.Closed() {
		t.Error("window not marked closed after run loop returned")
	}
	if rend.renders != 2 {
		t.Errorf("rendered %d frames, want 2 (none after close signal)", rend.renders)
	}
	if wrapper.frames != rend.renders {
		t.Errorf("presented %d frames but rendered %d", wrapper.frames, rend.renders)
	}
}

func TestRunStopsOnStop(t *testing.T) {
	wrapper := &fakeWrapper{closeAfterFrames: -1}
	w := newWindow(wrapper, nil)
	w.RefreshRate(1000)

	done := make(chan struct{})
	go func() {
		w.Run(nil, DrainAll())
		close(done)
	}()
	w.Stop()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run loop did not stop after cancellation")
	}
	if !w.Closed() {
		t.Error("window not marked closed after Stop")
	}
}

func TestRunDispatchesConvertedEvents(t *testing.T) {
	wrapper := &fakeWrapper{
		closeAfterFrames: 1,
		events: []platform.Event{
			platform.KeyPress{Code: 65, Label: "a"},
			platform.CloseRequest{},
		},
	}
	w := newWindow(wrapper, nil)
	w.RefreshRate(1000)

	var got []Event
	runWithTimeout(t, w, func(event Event) { got = append(got, event) })

	if len(got) != 2 {
		t.Fatalf("dispatched %d events, want 2", len(got))
	}
	key, ok := got[0].(KeyPress)
	if !ok || key.Code != 65 || key.Label != "a" {
		t.Errorf("first event = %#v, want KeyPress{Code: 65, Label: \"a\"}", got[0])
	}
	if _, ok := got[1].(CloseRequest); !ok {
		t.Errorf("second event = %#v, want CloseRequest", got[1])
	}
}

func TestCloseReleasesRendererBeforeWindow(t *testing.T) {
	wrapper := &fakeWrapper{closeAfterFrames: -1}
	rend := &countingRenderer{}
	rend.onClose = func() {
		if wrapper.closed {
			t.Error("platform window closed before renderer")
		}
	}
	w := newWindow(wrapper, func(*Window) Renderer { return rend })

	w.Close()

	if !rend.closed {
		t.Error("renderer not closed")
	}
	if !wrapper.closed {
		t.Error("platform window not closed")
	}
}

func TestShowForwardsToPlatform(t *testing.T) {
	wrapper := &fakeWrapper{closeAfterFrames: -1}
	w := newWindow(wrapper, nil)

	w.Show()

	if !wrapper.shown {
		t.Error("platform window not shown")
	}
}
