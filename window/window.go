// Package window renders the contents of video RAM for inspection.
package window

import (
	"fmt"

	"github.com/ushitora-anqou/baredmg/bus"
	"github.com/ushitora-anqou/baredmg/constant"
	"github.com/ushitora-anqou/baredmg/ioreg"
	"github.com/ushitora-anqou/baredmg/util"
)

const PixelCount = constant.VIEWER_WIDTH * constant.VIEWER_HEIGHT

var palette = [4]uint8{
	constant.COLOR_WHITE,
	constant.COLOR_LIGHT_GRAY,
	constant.COLOR_DARK_GRAY,
	constant.COLOR_BLACK,
}

// Viewer is a frontend that can show a decoded tile sheet.
type Viewer interface {
	// Update draws the sheet and reports whether the user wants to go on.
	Update(mem bus.Memory) (bool, error)
	Close()
}

// DecodeTiles fills dst with the shade (0-3) of every pixel of the tile data
// area laid out as a grid of TILES_PER_ROW tiles. Color ids are mapped to
// shades through BGP.
func DecodeTiles(mem bus.Memory, dst []uint8) error {
	if len(dst) != PixelCount {
		return fmt.Errorf("invalid length of tile sheet: expected %d, got %d", PixelCount, len(dst))
	}

	bgp := mem.Get8(ioreg.BGP)
	for tile := 0; tile < constant.TILE_COUNT; tile++ {
		base := uint16(constant.TILE_DATA_START + tile*constant.TILE_BYTES)
		originX := (tile % constant.TILES_PER_ROW) * constant.TILE_PX
		originY := (tile / constant.TILES_PER_ROW) * constant.TILE_PX

		for row := 0; row < constant.TILE_PX; row++ {
			lo := mem.Get8(base + uint16(row*2))
			hi := mem.Get8(base + uint16(row*2+1))
			for col := 0; col < constant.TILE_PX; col++ {
				bit := uint(7 - col)
				id := util.BoolToU8(util.CheckBit(hi, bit))<<1 | util.BoolToU8(util.CheckBit(lo, bit))
				shade := util.GetBits(bgp, uint(id)*2, 2)
				dst[(originY+row)*constant.VIEWER_WIDTH+originX+col] = shade
			}
		}
	}
	return nil
}

// Shade converts a shade index to its gray level.
func Shade(shade uint8) uint8 {
	return palette[shade&0x03]
}
