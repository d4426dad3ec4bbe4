// Package bus defines the capabilities the components of the console
// expose to each other. Concrete implementations live in their own packages
// so that the MMU never depends on a particular CPU, I/O block or mapper.
package bus

// Memory is the CPU-visible address space.
type Memory interface {
	Get8(addr uint16) uint8
	Get16(addr uint16) uint16
	Set8(addr uint16, val uint8)
	Set16(addr uint16, val uint16)
}

// Cartridge is the seam a memory bank controller plugs into. ROM accesses
// receive the CPU address (0x0000-0x7FFF); RAM accesses receive the offset
// into the external RAM window (0x0000-0x1FFF).
type Cartridge interface {
	ReadROM(addr uint16) uint8
	WriteROM(addr uint16, val uint8)
	ReadRAM(offset uint16) uint8
	WriteRAM(offset uint16, val uint8)
}

// IO handles the I/O register block (0xFF00-0xFF7F).
type IO interface {
	Get8(addr uint16) uint8
	Set8(addr uint16, val uint8)
}

// CPU executes one instruction per Step and reports the ticks it consumed.
type CPU interface {
	Step() (uint, error)
}
