//go:build sdl2

package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/baredmg/bus"
	"github.com/ushitora-anqou/baredmg/constant"
)

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

func SDLFinalize() {
	sdl.Quit()
}

type SDLViewer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	sheet    [PixelCount]uint8
}

func NewSDLViewer() (*SDLViewer, error) {
	window, err := sdl.CreateWindow(
		constant.WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		constant.WINDOW_WIDTH,
		constant.WINDOW_HEIGHT,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		constant.VIEWER_WIDTH,
		constant.VIEWER_HEIGHT,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	return &SDLViewer{
		window:   window,
		renderer: renderer,
		texture:  texture,
	}, nil
}

func (v *SDLViewer) Close() {
	v.texture.Destroy()
	v.renderer.Destroy()
	v.window.Destroy()
}

func (v *SDLViewer) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && (ev.Keysym.Sym == sdl.K_ESCAPE || ev.Keysym.Sym == sdl.K_q) {
				return false
			}
		}
	}
	return true
}

func (v *SDLViewer) Update(mem bus.Memory) (bool, error) {
	if !v.handleEvents() {
		return false, nil
	}

	if err := DecodeTiles(mem, v.sheet[:]); err != nil {
		return false, err
	}

	// Update the texture
	pixels, _, err := v.texture.Lock(nil)
	if err != nil {
		return false, err
	}
	for off, shade := range v.sheet {
		color := Shade(shade)
		pixels[off*4+0] = color // b
		pixels[off*4+1] = color // g
		pixels[off*4+2] = color // r
		pixels[off*4+3] = 0xff  // a
	}
	v.texture.Unlock()

	// Present the scene
	v.renderer.Clear()
	v.renderer.Copy(v.texture, nil, nil)
	v.renderer.Present()

	return true, nil
}

// SDLClock is a Clock backed by SDL's millisecond timer.
type SDLClock struct{}

func (SDLClock) Ticks() int64 {
	return int64(sdl.GetTicks()) * 1000
}

func (SDLClock) Delay(us int64) {
	if us > 1000 { // Larger than 1ms
		sdl.Delay(uint32(us / 1000))
	}
}
