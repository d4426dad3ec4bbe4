// Package gameboy wires the cartridge, on-board memory, I/O registers and
// memory bus into a console.
package gameboy

import (
	"errors"

	"github.com/ushitora-anqou/baredmg/bus"
	"github.com/ushitora-anqou/baredmg/cartridge"
	"github.com/ushitora-anqou/baredmg/constant"
	"github.com/ushitora-anqou/baredmg/ioreg"
	"github.com/ushitora-anqou/baredmg/mmu"
	"github.com/ushitora-anqou/baredmg/util"
)

var (
	ErrNoCPU      = errors.New("no CPU attached")
	ErrNotRunning = errors.New("no cartridge loaded")
)

type GameBoy struct {
	Cart   cartridge.Cartridge
	Memory mmu.Memory
	IO     *ioreg.Registers
	MMU    *mmu.MMU

	cpu     bus.CPU
	cycles  uint64
	running bool
	frame   *util.TickCounter
}

func New() *GameBoy {
	gb := &GameBoy{
		IO:    ioreg.NewRegisters(),
		frame: util.NewTickCounter(constant.FRAME_TICKS),
	}
	gb.MMU = mmu.NewMMU(&gb.Memory, &gb.Cart, gb.IO)
	return gb
}

// LoadROM replaces the inserted cartridge. If loading fails the console is
// left empty.
func (gb *GameBoy) LoadROM(path string) error {
	gb.Unload()

	cart, err := cartridge.Load(path)
	if err != nil {
		return err
	}
	gb.Cart = *cart
	gb.running = true
	return nil
}

func (gb *GameBoy) Unload() {
	gb.Cart.Unload()
	gb.running = false
	gb.cycles = 0
	gb.frame.Reset()
}

// AttachCPU plugs in the processor that drives Step. It sees the console
// through gb.MMU.
func (gb *GameBoy) AttachCPU(cpu bus.CPU) {
	gb.cpu = cpu
}

func (gb *GameBoy) Running() bool {
	return gb.running
}

func (gb *GameBoy) Cycles() uint64 {
	return gb.cycles
}

// Step executes a single instruction and returns the ticks it took.
func (gb *GameBoy) Step() (uint, error) {
	if gb.cpu == nil {
		return 0, ErrNoCPU
	}
	if !gb.running {
		return 0, ErrNotRunning
	}

	tick, err := gb.cpu.Step()
	if err != nil {
		return tick, err
	}
	gb.cycles += uint64(tick)
	return tick, nil
}

// RunFrame steps until one frame worth of ticks has elapsed. Ticks that
// overshoot the frame are credited to the next one.
func (gb *GameBoy) RunFrame() error {
	for {
		tick, err := gb.Step()
		if err != nil {
			return err
		}
		if gb.frame.Tick(tick) {
			return nil
		}
	}
}
