package mmu

import "fmt"

// Region identifies which backing store owns an address.
type Region int

const (
	ROMBank0 Region = iota
	ROMBankN
	VRAM
	ExternalRAM
	WRAM
	EchoRAM
	OAM
	Unusable
	IO
	HRAM
	IE
	numRegions
)

type span struct {
	start, end uint16 // inclusive
	name       string
}

/*
	GENERAL MEMORY MAP
	Thanks to: https://gbdev.io/pandocs/Memory_Map.html

	0000-3FFF  16KB ROM bank 00     From cartridge
	4000-7FFF  16KB ROM Bank 01-NN  From cartridge
	8000-9FFF  8KB Video RAM (VRAM)
	A000-BFFF  8KB External RAM     In cartridge
	C000-DFFF  8KB Work RAM (WRAM)
	E000-FDFF  Mirror of C000-DDFF (ECHO RAM)
	FE00-FE9F  Sprite attribute table (OAM)
	FEA0-FEFF  Not Usable
	FF00-FF7F  I/O Registers
	FF80-FFFE  High RAM (HRAM)
	FFFF-FFFF  Interrupts Enable Register (IE)

	Entries are ascending and contiguous; Locate relies on it.
*/
var memoryMap = [numRegions]span{
	ROMBank0:    {0x0000, 0x3fff, "ROM0"},
	ROMBankN:    {0x4000, 0x7fff, "ROMN"},
	VRAM:        {0x8000, 0x9fff, "VRAM"},
	ExternalRAM: {0xa000, 0xbfff, "ERAM"},
	WRAM:        {0xc000, 0xdfff, "WRAM"},
	EchoRAM:     {0xe000, 0xfdff, "ECHO"},
	OAM:         {0xfe00, 0xfe9f, "OAM"},
	Unusable:    {0xfea0, 0xfeff, "UNUSABLE"},
	IO:          {0xff00, 0xff7f, "IO"},
	HRAM:        {0xff80, 0xfffe, "HRAM"},
	IE:          {0xffff, 0xffff, "IE"},
}

// Locate returns the region owning addr and addr's offset from the start of
// that region.
func Locate(addr uint16) (Region, uint16) {
	for r := ROMBank0; r < numRegions; r++ {
		if addr <= memoryMap[r].end {
			return r, addr - memoryMap[r].start
		}
	}
	panic("memory map does not reach 0xffff")
}

// Bounds returns the first and last address of the region.
func (r Region) Bounds() (uint16, uint16) {
	s := r.span()
	return s.start, s.end
}

func (r Region) Size() int {
	s := r.span()
	return int(s.end) - int(s.start) + 1
}

func (r Region) String() string {
	if r < 0 || r >= numRegions {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return memoryMap[r].name
}

func (r Region) span() span {
	if r < 0 || r >= numRegions {
		panic(fmt.Sprintf("invalid region %d", int(r)))
	}
	return memoryMap[r]
}
