package main

import (
	"fmt"
	"image/color"
	"os"
	"runtime"

	"github.com/kjkrol/gokgl/internal/renderer"
	"github.com/kjkrol/gokgl/pkg/gfx"
)

const vertexShader = `#version 330 core

layout(location = 0) in vec4 position;

void main() {
	gl_Position = position;
}
`

const fragmentShader = `#version 330 core

layout(location = 0) out vec4 color;

void main() {
	color = vec4(1.0, 0.0, 0.0, 1.0);
}
`

func init() {
	runtime.LockOSThread()
}

func main() {
	config := gfx.WindowConfig{
		Width:  640,
		Height: 480,
		Title:  "Hello Triangle",
	}

	factory := renderer.NewRendererFactory(renderer.RendererConfig{
		VertexSource:   vertexShader,
		FragmentSource: fragmentShader,
		ClearColor:     color.RGBA{R: 51, G: 51, B: 76, A: 255},
		Mesh:           gfx.DefaultTriangle(),
	})

	window, err := gfx.NewWindow(config, factory)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer window.Close()

	window.Show()
	window.Run(nil, gfx.DrainAll())
}
