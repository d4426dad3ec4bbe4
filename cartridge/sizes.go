package cartridge

import "fmt"

const (
	KiB = 1024
	MiB = 1024 * KiB

	romBankSize = 16 * KiB
)

// UnknownSizeCodeError is returned when a ROM or RAM size code is not in the
// published tables. The accompanying size is always 0.
type UnknownSizeCodeError struct {
	Field string // "ROM" or "RAM"
	Code  uint8
}

func (e *UnknownSizeCodeError) Error() string {
	return fmt.Sprintf("unknown %s size code: 0x%02x", e.Field, e.Code)
}

// Sizes that do not follow the doubling rule. A handful of carts use them.
var irregularROMSizes = map[uint8]int{
	0x52: 72 * romBankSize, // 1.1 MiB
	0x53: 80 * romBankSize, // 1.2 MiB
	0x54: 96 * romBankSize, // 1.5 MiB
}

// ROMSize decodes the ROM size byte at 0x0148 into bytes.
func ROMSize(code uint8) (int, error) {
	if code <= 0x08 {
		return (32 * KiB) << code, nil
	}
	if size, ok := irregularROMSizes[code]; ok {
		return size, nil
	}
	return 0, &UnknownSizeCodeError{Field: "ROM", Code: code}
}

// ROMBanks is the number of 16 KiB banks for a ROM size code.
func ROMBanks(code uint8) (int, error) {
	size, err := ROMSize(code)
	return size / romBankSize, err
}

// RAMSize decodes the RAM size byte at 0x0149 into bytes. Note that 0x04 is
// larger than 0x05; the table is not monotonic.
func RAMSize(code uint8) (int, error) {
	switch code {
	case 0x00:
		return 0, nil
	case 0x01:
		return 2 * KiB, nil
	case 0x02:
		return 8 * KiB, nil
	case 0x03:
		return 32 * KiB, nil // 4 banks of 8 KiB
	case 0x04:
		return 128 * KiB, nil // 16 banks of 8 KiB
	case 0x05:
		return 64 * KiB, nil // 8 banks of 8 KiB
	}
	return 0, &UnknownSizeCodeError{Field: "RAM", Code: code}
}
