package util

// Flag predicates for the ALU. Subtraction variants report a borrow.

func HalfCarryAdd8(a, b uint8) bool {
	return (a&0x0f)+(b&0x0f) > 0x0f
}

func CarryAdd8(a, b uint8) bool {
	return uint16(a)+uint16(b) > 0xff
}

func HalfCarrySub8(a, b uint8) bool {
	return a&0x0f < b&0x0f
}

func CarrySub8(a, b uint8) bool {
	return a < b
}

// HalfCarryAdd16 reports a carry out of bit 11.
func HalfCarryAdd16(a, b uint16) bool {
	return (a&0x0fff)+(b&0x0fff) > 0x0fff
}

// CarryAdd16 reports a carry out of bit 15.
func CarryAdd16(a, b uint16) bool {
	return uint32(a)+uint32(b) > 0xffff
}

// SignExtend8 widens val treating bit 7 as the sign bit.
func SignExtend8(val uint8) int16 {
	return int16(int8(val))
}

func Add8(x, y uint8, carry bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=354
	sum := x + y + BoolToU8(carry)
	carryOut := (((x & y) | ((x | y) &^ sum)) >> 7) != 0
	return sum, carryOut
}

func Add4(xu8, yu8 uint8, carry bool) (uint8, bool) {
	x, y := xu8&0x0f, yu8&0x0f
	sum := (x + y + BoolToU8(carry)) & 0x0f
	carryOut := (((x & y) | ((x | y) &^ sum)) >> 3) != 0
	return sum, carryOut
}

func Sub8(x, y uint8, borrow bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=380
	diff := x - y - BoolToU8(borrow)
	borrowOut := (((^x & y) | (^(x ^ y) & diff)) >> 7) != 0
	return diff, borrowOut
}

func Sub4(xu8, yu8 uint8, borrow bool) (uint8, bool) {
	x, y := xu8&0x0f, yu8&0x0f
	diff := (x - y - BoolToU8(borrow)) & 0x0f
	borrowOut := (((^x & y) | (^(x ^ y) & diff)) >> 3) != 0
	return diff, borrowOut
}

// AdjustBCD corrects val after a BCD addition or subtraction (the DAA
// instruction). It returns the adjusted value and the new carry flag.
func AdjustBCD(val uint8, subtract, carry, halfCarry bool) (uint8, bool) {
	if !subtract {
		if carry || val > 0x99 {
			val += 0x60
			carry = true
		}
		if halfCarry || val&0x0f > 0x09 {
			val += 0x06
		}
	} else {
		if carry {
			val -= 0x60
		}
		if halfCarry {
			val -= 0x06
		}
	}
	return val, carry
}
