package renderer

import "github.com/kjkrol/gokgl/pkg/gfx"

func NewRendererFactory(conf RendererConfig) gfx.RendererFactory {
	return func(w *gfx.Window) gfx.Renderer {
		return newRenderer(w, conf)
	}
}
