// Package cartridge loads Game Boy ROM images, decodes and validates their
// header and provides the cartridge side of the memory bus.
//
// Bank switching is not implemented: the ROM is mapped flat (bank 0 at
// 0x4000-0x7FFF as well) and writes to the ROM area are ignored.
package cartridge

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/ushitora-anqou/baredmg/util"
)

const openBus = 0xff

// Cartridge owns the ROM image, the external RAM and the header decoded from
// the ROM. The zero value is an empty slot: every read returns 0xFF.
type Cartridge struct {
	rom, ram buffer

	Raw    RawHeader
	Header Header
}

// Load reads the ROM image at path. On error nothing is retained and the
// returned cartridge is nil.
func Load(path string) (*Cartridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s: not a regular file", ErrOpen, path)
	}

	return load(file, info.Size())
}

// LoadBytes is Load for an image already in memory. The cartridge keeps its
// own copy of data.
func LoadBytes(data []uint8) (*Cartridge, error) {
	return load(bytes.NewReader(data), int64(len(data)))
}

func load(r io.Reader, size int64) (_ *Cartridge, err error) {
	if size < HeaderEnd {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTooSmall, size, HeaderEnd)
	}
	romSize, ok := toInt(size)
	if !ok {
		return nil, fmt.Errorf("%w: ROM of %d bytes", ErrAllocation, size)
	}

	cart := &Cartridge{}
	defer func() {
		if err != nil {
			cart.Unload()
		}
	}()

	if cart.rom, err = allocate(romSize); err != nil {
		return nil, fmt.Errorf("%w: ROM of %d bytes: %w", ErrAllocation, romSize, err)
	}
	if n, err := io.ReadFull(r, cart.rom.data); err != nil {
		return nil, fmt.Errorf("%w: got %d of %d bytes: %w", ErrRead, n, romSize, err)
	}

	cart.Raw = readRawHeader(cart.rom.data)
	cart.Header = Decode(cart.Raw)

	if !cart.VerifyHeaderChecksum() {
		return nil, fmt.Errorf("%w: computed 0x%02x, header says 0x%02x",
			ErrChecksum, HeaderChecksum(cart.rom.data), cart.rom.data[checksumAddr])
	}

	// The RAM size byte is trusted even for types that carry no RAM.
	ramSize, sizeErr := RAMSize(cart.Header.RAMSizeCode)
	if sizeErr != nil {
		util.Warn("%v", sizeErr)
	}
	if cart.ram, err = allocate(ramSize); err != nil {
		return nil, fmt.Errorf("%w: RAM of %d bytes: %w", ErrAllocation, ramSize, err)
	}

	cart.reportOddities()
	return cart, nil
}

// reportOddities warns about header contents that real hardware tolerates.
func (c *Cartridge) reportOddities() {
	declared, err := ROMSize(c.Header.ROMSizeCode)
	switch {
	case err != nil:
		util.Warn("%v", err)
	case declared != c.ROMSize():
		util.Warn("header declares %d bytes of ROM, image has %d", declared, c.ROMSize())
	}
	if !c.VerifyGlobalChecksum() {
		util.Warn("global checksum mismatch (computed 0x%04x, header says 0x%04x)",
			GlobalChecksum(c.rom.data), c.Raw.GlobalChecksum)
	}
	if !c.LogoValid() {
		util.Warn("Nintendo logo does not match")
	}
}

// Unload releases the ROM and RAM. Calling it on an empty cartridge does
// nothing.
func (c *Cartridge) Unload() {
	c.rom.release()
	c.ram.release()
}

func (c *Cartridge) Loaded() bool {
	return c.rom.len() > 0
}

func (c *Cartridge) ROMSize() int {
	return c.rom.len()
}

func (c *Cartridge) RAMSize() int {
	return c.ram.len()
}

// VerifyHeaderChecksum recomputes the header checksum over the ROM buffer
// and compares it with the byte at 0x014D.
func (c *Cartridge) VerifyHeaderChecksum() bool {
	if c.rom.len() < HeaderEnd {
		return false
	}
	return HeaderChecksum(c.rom.data) == c.rom.data[checksumAddr]
}

// VerifyGlobalChecksum checks the 16-bit sum at 0x014E. Real hardware never
// does, and plenty of released games get it wrong.
func (c *Cartridge) VerifyGlobalChecksum() bool {
	if c.rom.len() < HeaderEnd {
		return false
	}
	expected := binary.BigEndian.Uint16(c.rom.data[globalSumAddr:])
	return GlobalChecksum(c.rom.data) == expected
}

func (c *Cartridge) LogoValid() bool {
	return c.Raw.Logo == nintendoLogo
}

func (c *Cartridge) ReadROM(addr uint16) uint8 {
	if int(addr) < c.rom.len() {
		return c.rom.data[addr]
	}
	return openBus
}

// WriteROM is where a bank controller would latch its registers.
func (c *Cartridge) WriteROM(addr uint16, val uint8) {
	util.Trace("\t<<<WRITE: ROM 0x%04x: 0x%02x (ignored)>>>", addr, val)
}

func (c *Cartridge) ReadRAM(offset uint16) uint8 {
	if int(offset) < c.ram.len() {
		return c.ram.data[offset]
	}
	return openBus
}

func (c *Cartridge) WriteRAM(offset uint16, val uint8) {
	if int(offset) < c.ram.len() {
		c.ram.data[offset] = val
	}
}
