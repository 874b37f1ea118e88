package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindowWrapper struct {
	window *glfw.Window
	events []Event
}

// NewPlatformWindowWrapper initializes GLFW, creates a hidden window with a
// 3.3 core forward-compatible context and makes the context current on the
// calling thread.
func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	if conf.PositionX != 0 || conf.PositionY != 0 {
		window.SetPos(conf.PositionX, conf.PositionY)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &glfwWindowWrapper{window: window}
	w.installCallbacks()
	return w, nil
}

func (w *glfwWindowWrapper) installCallbacks() {
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.push(CloseRequest{})
	})
	w.window.SetRefreshCallback(func(_ *glfw.Window) {
		w.push(Expose{})
	})
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			w.push(KeyPress{Code: uint64(key), Label: glfw.GetKeyName(key, scancode)})
		case glfw.Release:
			w.push(KeyRelease{Code: uint64(key), Label: glfw.GetKeyName(key, scancode)})
		}
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.cursorPos()
		switch action {
		case glfw.Press:
			w.push(ButtonPress{Button: uint32(button), X: x, Y: y})
		case glfw.Release:
			w.push(ButtonRelease{Button: uint32(button), X: x, Y: y})
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(MotionNotify{X: int(x), Y: int(y)})
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		x, y := w.cursorPos()
		w.push(MouseWheel{DeltaX: dx, DeltaY: dy, X: x, Y: y})
	})
	w.window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.push(EnterNotify{})
		} else {
			w.push(LeaveNotify{})
		}
	})
}

func (w *glfwWindowWrapper) push(event Event) {
	w.events = append(w.events, event)
}

func (w *glfwWindowWrapper) cursorPos() (int, int) {
	x, y := w.window.GetCursorPos()
	return int(x), int(y)
}

func (w *glfwWindowWrapper) Show() {
	w.window.Show()
}

func (w *glfwWindowWrapper) ShouldClose() bool {
	return w.window.ShouldClose()
}

// NextEventTimeout returns the next pending event, waiting up to timeoutMs
// for the windowing system to deliver one. TimeoutEvent means nothing
// arrived in time.
func (w *glfwWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	if len(w.events) == 0 {
		if timeoutMs <= 0 {
			glfw.PollEvents()
		} else {
			glfw.WaitEventsTimeout(float64(timeoutMs) / 1000.0)
		}
	}
	if len(w.events) == 0 {
		return TimeoutEvent{}
	}
	event := w.events[0]
	w.events = w.events[1:]
	return event
}

func (w *glfwWindowWrapper) BeginFrame() {
	w.window.MakeContextCurrent()
}

func (w *glfwWindowWrapper) EndFrame() {
	w.window.SwapBuffers()
}

func (w *glfwWindowWrapper) Size() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindowWrapper) Close() {
	w.window.Destroy()
	glfw.Terminate()
}
