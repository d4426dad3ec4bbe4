// Package mmu routes every CPU memory access to the component that owns the
// address.
package mmu

import (
	"fmt"
	"io"

	"github.com/ushitora-anqou/baredmg/bus"
	"github.com/ushitora-anqou/baredmg/util"
)

const (
	VRAMSize = 0x2000
	WRAMSize = 0x2000
	OAMSize  = 0x00a0
	HRAMSize = 0x007f
)

// Memory is the console's on-board memory.
type Memory struct {
	VRAM [VRAMSize]uint8
	WRAM [WRAMSize]uint8
	OAM  [OAMSize]uint8
	HRAM [HRAMSize]uint8
	IE   uint8
}

type MMU struct {
	mem  *Memory
	cart bus.Cartridge
	ioRg bus.IO
}

func NewMMU(mem *Memory, cart bus.Cartridge, ioRg bus.IO) *MMU {
	return &MMU{
		mem:  mem,
		cart: cart,
		ioRg: ioRg,
	}
}

func (mmu *MMU) Get8(addr uint16) uint8 {
	region, off := Locate(addr)

	switch region {
	case ROMBank0, ROMBankN:
		// Without a bank controller 0x4000-0x7FFF is simply the second
		// 16KB of the image.
		return mmu.cart.ReadROM(addr)
	case VRAM:
		return mmu.mem.VRAM[off]
	case ExternalRAM:
		return mmu.cart.ReadRAM(off)
	case WRAM, EchoRAM:
		return mmu.mem.WRAM[off]
	case OAM:
		return mmu.mem.OAM[off]
	case Unusable:
		return 0x00
	case IO:
		return mmu.ioRg.Get8(addr)
	case HRAM:
		return mmu.mem.HRAM[off]
	case IE:
		return mmu.mem.IE
	}

	panic(fmt.Sprintf("Get8: no handler for region %v at 0x%04x", region, addr))
}

func (mmu *MMU) Set8(addr uint16, val uint8) {
	region, off := Locate(addr)

	switch region {
	case ROMBank0, ROMBankN:
		mmu.cart.WriteROM(addr, val)
	case VRAM:
		mmu.mem.VRAM[off] = val
	case ExternalRAM:
		mmu.cart.WriteRAM(off, val)
	case WRAM, EchoRAM:
		mmu.mem.WRAM[off] = val
	case OAM:
		mmu.mem.OAM[off] = val
	case Unusable:
		util.Trace("\t<<<WRITE: unusable 0x%04x: 0x%02x (dropped)>>>", addr, val)
	case IO:
		mmu.ioRg.Set8(addr, val)
	case HRAM:
		mmu.mem.HRAM[off] = val
	case IE:
		util.Trace("\t<<<WRITE: IE Interrupt Enable: %08b>>>", val)
		mmu.mem.IE = val
	default:
		panic(fmt.Sprintf("Set8: no handler for region %v at 0x%04x", region, addr))
	}
}

func (mmu *MMU) Get16(addr uint16) uint16 {
	lo := mmu.Get8(addr)
	hi := mmu.Get8(addr + 1)
	return util.MakeU16(hi, lo)
}

func (mmu *MMU) Set16(addr uint16, val uint16) {
	mmu.Set8(addr, util.LowByte(val))
	mmu.Set8(addr+1, util.HighByte(val))
}

// DumpRegion writes start..end (inclusive) as hex, 16 bytes per line.
// Reads go through Get8, so I/O registers show what the CPU would see.
func (mmu *MMU) DumpRegion(w io.Writer, start, end uint16) error {
	if end < start {
		return fmt.Errorf("invalid range: 0x%04x-0x%04x", start, end)
	}
	if _, err := fmt.Fprintf(w, "Memory Dump [0x%04x - 0x%04x]:\n", start, end); err != nil {
		return err
	}

	for line := uint32(start); line <= uint32(end); line += 16 {
		if _, err := fmt.Fprintf(w, "0x%04x:", line); err != nil {
			return err
		}
		for addr := line; addr < line+16 && addr <= uint32(end); addr++ {
			if _, err := fmt.Fprintf(w, " %02x", mmu.Get8(uint16(addr))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
