//go:build !sdl2

package main

import (
	"errors"

	"github.com/ushitora-anqou/baredmg/gameboy"
)

func runViewer(gb *gameboy.GameBoy) error {
	return errors.New("the tile viewer needs a build with -tags sdl2")
}
