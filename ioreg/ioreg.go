// Package ioreg is the I/O register block (0xFF00-0xFF7F) as seen by the
// MMU. Only the power-on values of a few registers are modelled; everything
// else reads as 0xFF and writes are dropped.
package ioreg

import "github.com/ushitora-anqou/baredmg/util"

const (
	P1   = 0xff00 // Joypad
	SB   = 0xff01 // Serial transfer data
	SC   = 0xff02 // Serial transfer control
	DIV  = 0xff04 // Divider
	TIMA = 0xff05 // Timer counter
	TMA  = 0xff06 // Timer modulo
	TAC  = 0xff07 // Timer control
	IF   = 0xff0f // Interrupt flag
	LCDC = 0xff40 // LCD control
	STAT = 0xff41 // LCD status
	SCY  = 0xff42
	SCX  = 0xff43
	LY   = 0xff44
	LYC  = 0xff45
	DMA  = 0xff46 // OAM DMA source
	BGP  = 0xff47 // BG palette
	OBP0 = 0xff48
	OBP1 = 0xff49
	WY   = 0xff4a
	WX   = 0xff4b
)

var names = map[uint16]string{
	P1:   "P1/JOYP Joypad",
	SB:   "SB Serial transfer data",
	SC:   "SC Serial Transfer Control",
	DIV:  "DIV Divider Register",
	TIMA: "TIMA Timer counter",
	TMA:  "TMA Timer Modulo",
	TAC:  "TAC Timer Control",
	IF:   "IF Interrupt Flag",
	LCDC: "LCDC LCD Control",
	STAT: "STAT LCDC Status",
	SCY:  "SCY Scroll Y",
	SCX:  "SCX Scroll X",
	LY:   "LY LCDC Y-Coordinate",
	LYC:  "LYC LY Compare",
	DMA:  "DMA OAM DMA Transfer",
	BGP:  "BGP BG Palette Data",
	OBP0: "OBP0 Object Palette 0 Data",
	OBP1: "OBP1 Object Palette 1 Data",
	WY:   "WY Window Y Position",
	WX:   "WX Window X Position",
}

// Name returns a short description of the register at addr.
func Name(addr uint16) string {
	if name, ok := names[addr]; ok {
		return name
	}
	return "unmapped"
}

type Registers struct{}

func NewRegisters() *Registers {
	return &Registers{}
}

func (r *Registers) Get8(addr uint16) uint8 {
	util.Trace("\t<<<READ: 0x%04x %s>>>", addr, Name(addr))

	switch addr {
	case P1:
		return 0xcf // no buttons pressed, neither group selected
	case LCDC:
		return 0x91
	case BGP:
		return 0xfc
	}
	return 0xff
}

func (r *Registers) Set8(addr uint16, val uint8) {
	util.Trace("\t<<<WRITE: 0x%04x %s: %08b>>>", addr, Name(addr), val)
}
