package util

import "testing"

func TestBitHelpers(t *testing.T) {
	if Bit(0) != 0x01 || Bit(3) != 0x08 || Bit(7) != 0x80 {
		t.Fatalf("Bit: unexpected masks")
	}

	var val uint8 = 0b10101010
	for i, expected := range []bool{false, true, false, true} {
		if CheckBit(val, uint(i)) != expected {
			t.Fatalf("CheckBit(%08b, %d): expected %v", val, i, expected)
		}
	}

	val = SetBit(0x00, 3)
	if val != 0x08 {
		t.Fatalf("SetBit: got 0x%02x", val)
	}
	if val = SetBit(val, 7); val != 0x88 {
		t.Fatalf("SetBit: got 0x%02x", val)
	}
	if val = ClearBit(0xff, 3); val != 0xf7 {
		t.Fatalf("ClearBit: got 0x%02x", val)
	}
	if val = ClearBit(val, 0); val != 0xf6 {
		t.Fatalf("ClearBit: got 0x%02x", val)
	}
	if val = ToggleBit(0x00, 2); val != 0x04 {
		t.Fatalf("ToggleBit: got 0x%02x", val)
	}
	if val = ToggleBit(val, 2); val != 0x00 {
		t.Fatalf("ToggleBit: got 0x%02x", val)
	}
}

func TestBitFields(t *testing.T) {
	var val uint8 = 0b11010110
	table := [][3]uint8{
		// start, length, expected
		{0, 4, 0b0110},
		{4, 4, 0b1101},
		{2, 3, 0b101},
		{0, 8, 0b11010110},
	}
	for _, entry := range table {
		got := GetBits(val, uint(entry[0]), uint(entry[1]))
		if got != entry[2] {
			t.Fatalf("GetBits(%08b, %d, %d): got %08b, expected %08b", val, entry[0], entry[1], got, entry[2])
		}
	}

	val = SetBits(0b11110000, 0, 4, 0b1010)
	if val != 0b11111010 {
		t.Fatalf("SetBits: got %08b", val)
	}
	val = SetBits(val, 4, 4, 0b0101)
	if val != 0b01011010 {
		t.Fatalf("SetBits: got %08b", val)
	}
}

func TestWordHelpers(t *testing.T) {
	if got := MakeU16(0xab, 0xcd); got != 0xabcd {
		t.Fatalf("MakeU16: got 0x%04x", got)
	}
	if got := HighByte(0x1234); got != 0x12 {
		t.Fatalf("HighByte: got 0x%02x", got)
	}
	if got := LowByte(0x1234); got != 0x34 {
		t.Fatalf("LowByte: got 0x%02x", got)
	}
	if got := SwapBytes(0x1234); got != 0x3412 {
		t.Fatalf("SwapBytes: got 0x%04x", got)
	}
}

func TestTickCounter(t *testing.T) {
	tc := NewTickCounter(10)
	if tc.Tick(4) || tc.Tick(5) {
		t.Fatalf("TickCounter: edge before target")
	}
	if !tc.Tick(3) {
		t.Fatalf("TickCounter: no edge at target")
	}
	if tc.Current() != 2 {
		t.Fatalf("TickCounter: expected carry-over of 2, got %d", tc.Current())
	}
	tc.Reset()
	if tc.Current() != 0 {
		t.Fatalf("TickCounter: reset left %d", tc.Current())
	}
}
