package cartridge

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildROM makes a synthetic image with a valid header and checksums.
func buildROM(title string, cartType, romSizeCode, ramSizeCode uint8, size int) []uint8 {
	rom := make([]uint8, size)
	copy(rom[logoStart:], nintendoLogo[:])

	tbytes := []byte(title)
	if len(tbytes) > 16 {
		tbytes = tbytes[:16]
	}
	copy(rom[0x0134:0x0144], tbytes)

	rom[0x0144], rom[0x0145] = '0', '1'
	rom[0x0147] = cartType
	rom[0x0148] = romSizeCode
	rom[0x0149] = ramSizeCode
	rom[0x014b] = useNewLicense
	rom[0x014c] = 0x01

	fixChecksums(rom)
	return rom
}

func fixChecksums(rom []uint8) {
	rom[checksumAddr] = HeaderChecksum(rom)
	binary.BigEndian.PutUint16(rom[globalSumAddr:], GlobalChecksum(rom))
}

func writeROM(t *testing.T, rom []uint8) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gb")
	require.NoError(t, os.WriteFile(path, rom, 0o644))
	return path
}
