package platform

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
}

// PlatformWindowWrapper owns the native window, its OpenGL context and the
// pending event queue. All methods must be called from the thread that
// created the window.
type PlatformWindowWrapper interface {
	Show()
	ShouldClose() bool
	NextEventTimeout(timeoutMs int) Event
	BeginFrame()
	EndFrame()
	Size() (int, int)
	Close()
}
