package util

func BoolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Bit returns a byte with only bit n set.
func Bit(n uint) uint8 {
	return 1 << n
}

func CheckBit(val uint8, n uint) bool {
	return (val>>n)&1 != 0
}

func SetBit(val uint8, n uint) uint8 {
	return val | Bit(n)
}

func ClearBit(val uint8, n uint) uint8 {
	return val &^ Bit(n)
}

func ToggleBit(val uint8, n uint) uint8 {
	return val ^ Bit(n)
}

// GetBits extracts length bits of val starting at bit start, right-aligned.
func GetBits(val uint8, start, length uint) uint8 {
	return uint8((uint(val) >> start) & ((1 << length) - 1))
}

// SetBits replaces length bits of val starting at bit start with bits.
func SetBits(val uint8, start, length uint, bits uint8) uint8 {
	mask := uint((1 << length) - 1)
	return uint8((uint(val) &^ (mask << start)) | ((uint(bits) & mask) << start))
}

func MakeU16(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

func HighByte(val uint16) uint8 {
	return uint8(val >> 8)
}

func LowByte(val uint16) uint8 {
	return uint8(val)
}

func SwapBytes(val uint16) uint16 {
	return val<<8 | val>>8
}

// TickCounter reports a rising edge every time the accumulated ticks reach
// target. Excess ticks carry over to the next period.
type TickCounter struct {
	current, target uint
}

func NewTickCounter(target uint) *TickCounter {
	return &TickCounter{target: target}
}

func (tc *TickCounter) Tick(tick uint) bool {
	posedge := false
	tc.current += tick
	if tc.current >= tc.target {
		tc.current -= tc.target
		posedge = true
	}
	return posedge
}

func (tc *TickCounter) Current() uint {
	return tc.current
}

func (tc *TickCounter) Reset() {
	tc.current = 0
}
