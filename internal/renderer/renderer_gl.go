package renderer

import (
	"fmt"
	"image/color"
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/gokgl/pkg/gfx"
)

// RendererConfig describes the shader pair, the clear color and the static
// geometry drawn every frame. A nil ClearColor falls back to the default.
type RendererConfig struct {
	VertexSource   string
	FragmentSource string
	ClearColor     color.Color
	Mesh           gfx.Mesh
}

var defaultClearColor = [4]float32{0.2, 0.2, 0.3, 1}

type renderer struct {
	conf        RendererConfig
	initialized bool
	failed      bool

	program     uint32
	vao         uint32
	vbo         uint32
	vertexCount int32
	clearColor  [4]float32
}

func newRenderer(_ *gfx.Window, conf RendererConfig) *renderer {
	return &renderer{conf: conf}
}

func (r *renderer) Render(w *gfx.Window) {
	if w == nil {
		return
	}
	r.ensureInit()

	width, height := w.Size()
	if width <= 0 || height <= 0 {
		return
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if r.failed || r.program == 0 || r.vertexCount == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
}

func (r *renderer) Close() {
	if !r.initialized {
		return
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	r.initialized = false
}

func (r *renderer) ensureInit() {
	if r.initialized {
		return
	}
	r.initialized = true

	if err := gl.Init(); err != nil {
		panic(fmt.Sprintf("gl.Init error: %v", err))
	}

	r.clearColor = defaultClearColor
	if r.conf.ClearColor != nil {
		r.clearColor = colorToFloat(r.conf.ClearColor)
	}

	program, err := newProgram(r.conf.VertexSource, r.conf.FragmentSource)
	if err != nil {
		// The frame loop keeps clearing, but nothing is drawn with a
		// broken program.
		fmt.Fprintf(os.Stderr, "shader build failed: %v\n", err)
		r.failed = true
		return
	}
	r.program = program

	r.uploadMesh(r.conf.Mesh)

	gl.Disable(gl.DEPTH_TEST)
}

func (r *renderer) uploadMesh(mesh gfx.Mesh) {
	data := mesh.Floats()
	r.vertexCount = int32(mesh.VertexCount())
	if len(data) == 0 {
		return
	}

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, floatsPerVertex, gl.FLOAT, false, floatsPerVertex*4, gl.PtrOffset(0))
}
