//go:build sdl2

package main

import (
	"github.com/ushitora-anqou/baredmg/constant"
	"github.com/ushitora-anqou/baredmg/gameboy"
	"github.com/ushitora-anqou/baredmg/window"
)

func runViewer(gb *gameboy.GameBoy) error {
	// Initialize SDL
	if err := window.SDLInitialize(); err != nil {
		return err
	}
	defer window.SDLFinalize()

	// Create a window
	viewer, err := window.NewSDLViewer()
	if err != nil {
		return err
	}
	defer viewer.Close()

	// Main loop
	synchronizer := window.NewTimeSynchronizer(window.SDLClock{}, constant.TARGET_FPS)
	for {
		cont, err := viewer.Update(gb.MMU)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
		synchronizer.MaySleep()
	}
}
