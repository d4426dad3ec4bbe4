package mmu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCart struct {
	rom       []uint8
	ram       []uint8
	romWrites int
}

func (c *fakeCart) ReadROM(addr uint16) uint8 {
	if int(addr) < len(c.rom) {
		return c.rom[addr]
	}
	return 0xff
}

func (c *fakeCart) WriteROM(addr uint16, val uint8) {
	c.romWrites++
}

func (c *fakeCart) ReadRAM(offset uint16) uint8 {
	if int(offset) < len(c.ram) {
		return c.ram[offset]
	}
	return 0xff
}

func (c *fakeCart) WriteRAM(offset uint16, val uint8) {
	if int(offset) < len(c.ram) {
		c.ram[offset] = val
	}
}

type fakeIO struct {
	reads  []uint16
	writes map[uint16]uint8
}

func (f *fakeIO) Get8(addr uint16) uint8 {
	f.reads = append(f.reads, addr)
	return 0x5a
}

func (f *fakeIO) Set8(addr uint16, val uint8) {
	if f.writes == nil {
		f.writes = map[uint16]uint8{}
	}
	f.writes[addr] = val
}

func newTestMMU() (*MMU, *Memory, *fakeCart, *fakeIO) {
	mem := &Memory{}
	cart := &fakeCart{rom: make([]uint8, 0x8000), ram: make([]uint8, 0x800)}
	for i := range cart.rom {
		cart.rom[i] = uint8(i >> 8)
	}
	io := &fakeIO{}
	return NewMMU(mem, cart, io), mem, cart, io
}

func TestMemoryMapIsContiguous(t *testing.T) {
	start, _ := ROMBank0.Bounds()
	require.Equal(t, uint16(0x0000), start)
	total := 0
	for r := ROMBank0; r < numRegions; r++ {
		s, e := r.Bounds()
		require.LessOrEqual(t, s, e, r.String())
		if r > ROMBank0 {
			_, prevEnd := (r - 1).Bounds()
			require.Equal(t, prevEnd+1, s, "gap before %v", r)
		}
		total += r.Size()
	}
	_, end := IE.Bounds()
	require.Equal(t, uint16(0xffff), end)
	require.Equal(t, 0x10000, total)
}

func TestLocate(t *testing.T) {
	cases := []struct {
		addr   uint16
		region Region
		offset uint16
	}{
		{0x0000, ROMBank0, 0x0000},
		{0x3fff, ROMBank0, 0x3fff},
		{0x4000, ROMBankN, 0x0000},
		{0x8010, VRAM, 0x0010},
		{0xa001, ExternalRAM, 0x0001},
		{0xc000, WRAM, 0x0000},
		{0xe123, EchoRAM, 0x0123},
		{0xfe9f, OAM, 0x009f},
		{0xfea0, Unusable, 0x0000},
		{0xff40, IO, 0x0040},
		{0xff80, HRAM, 0x0000},
		{0xfffe, HRAM, 0x007e},
		{0xffff, IE, 0x0000},
	}
	for _, c := range cases {
		region, off := Locate(c.addr)
		require.Equal(t, c.region, region, "0x%04x", c.addr)
		require.Equal(t, c.offset, off, "0x%04x", c.addr)
	}
}

func TestRegionString(t *testing.T) {
	require.Equal(t, "ECHO", EchoRAM.String())
	require.Equal(t, "IE", IE.String())
	require.Equal(t, "Region(42)", Region(42).String())
}

func TestEchoMirrorsWRAM(t *testing.T) {
	m, mem, _, _ := newTestMMU()

	for addr := uint32(0xc000); addr <= 0xddff; addr++ {
		val := uint8(addr ^ (addr >> 8))
		m.Set8(uint16(addr), val)
		require.Equal(t, val, m.Get8(uint16(addr+0x2000)))
	}

	m.Set8(0xfdff, 0x77)
	require.Equal(t, uint8(0x77), m.Get8(0xddff))
	require.Equal(t, uint8(0x77), mem.WRAM[0x1dff])
}

func TestROMReadsGoThroughCartridge(t *testing.T) {
	m, _, cart, _ := newTestMMU()

	require.Equal(t, uint8(0x01), m.Get8(0x0100))
	require.Equal(t, uint8(0x7f), m.Get8(0x7fff))

	m.Set8(0x2000, 0x01)
	require.Equal(t, 1, cart.romWrites)
	require.Equal(t, uint8(0x20), m.Get8(0x2000))

	cart.rom = cart.rom[:0x4000]
	require.Equal(t, uint8(0xff), m.Get8(0x4000))
}

func TestExternalRAM(t *testing.T) {
	m, _, cart, _ := newTestMMU()

	m.Set8(0xa000, 0x12)
	m.Set8(0xa7ff, 0x34)
	require.Equal(t, uint8(0x12), cart.ram[0])
	require.Equal(t, uint8(0x34), m.Get8(0xa7ff))

	m.Set8(0xa800, 0x56)
	require.Equal(t, uint8(0xff), m.Get8(0xa800))
}

func TestUnusableArea(t *testing.T) {
	m, mem, _, _ := newTestMMU()

	m.Set8(0xfea0, 0xab)
	require.Equal(t, uint8(0x00), m.Get8(0xfea0))
	require.Equal(t, uint8(0x00), m.Get8(0xfeff))
	require.Equal(t, [OAMSize]uint8{}, mem.OAM)
}

func TestIODelegation(t *testing.T) {
	m, _, _, io := newTestMMU()

	require.Equal(t, uint8(0x5a), m.Get8(0xff00))
	require.Equal(t, uint8(0x5a), m.Get8(0xff7f))
	m.Set8(0xff46, 0xc0)
	require.Equal(t, []uint16{0xff00, 0xff7f}, io.reads)
	require.Equal(t, map[uint16]uint8{0xff46: 0xc0}, io.writes)

	// Neighbours never reach the delegate.
	m.Get8(0xfeff)
	m.Get8(0xff80)
	require.Len(t, io.reads, 2)
}

func TestDirectRegions(t *testing.T) {
	m, mem, _, _ := newTestMMU()

	m.Set8(0x8000, 0x01)
	m.Set8(0x9fff, 0x02)
	m.Set8(0xfe00, 0x03)
	m.Set8(0xff80, 0x04)
	m.Set8(0xfffe, 0x05)
	m.Set8(0xffff, 0x1f)

	require.Equal(t, uint8(0x01), mem.VRAM[0])
	require.Equal(t, uint8(0x02), mem.VRAM[VRAMSize-1])
	require.Equal(t, uint8(0x03), mem.OAM[0])
	require.Equal(t, uint8(0x04), mem.HRAM[0])
	require.Equal(t, uint8(0x05), mem.HRAM[HRAMSize-1])
	require.Equal(t, uint8(0x1f), mem.IE)
	require.Equal(t, uint8(0x1f), m.Get8(0xffff))
}

func TestGetSet16LittleEndian(t *testing.T) {
	m, mem, _, _ := newTestMMU()

	m.Set16(0xc010, 0xbeef)
	require.Equal(t, uint8(0xef), mem.WRAM[0x10])
	require.Equal(t, uint8(0xbe), mem.WRAM[0x11])
	require.Equal(t, uint16(0xbeef), m.Get16(0xc010))
	require.Equal(t, uint16(0xbeef), m.Get16(0xe010))
}

func TestDumpRegion(t *testing.T) {
	m, _, _, _ := newTestMMU()
	for i := uint16(0); i < 0x14; i++ {
		m.Set8(0xc000+i, uint8(i))
	}

	var buf bytes.Buffer
	require.NoError(t, m.DumpRegion(&buf, 0xc000, 0xc013))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"Memory Dump [0xc000 - 0xc013]:",
		"0xc000: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f",
		"0xc010: 10 11 12 13",
	}, lines)

	require.Error(t, m.DumpRegion(&buf, 0xc010, 0xc000))
}

func TestDumpRegionReachesTop(t *testing.T) {
	m, _, _, _ := newTestMMU()

	var buf bytes.Buffer
	require.NoError(t, m.DumpRegion(&buf, 0xfff0, 0xffff))
	require.Contains(t, buf.String(), "0xfff0:")
	require.Equal(t, 2, strings.Count(buf.String(), "\n"))
}
