package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ushitora-anqou/baredmg/gameboy"
)

func TestParseRange(t *testing.T) {
	start, end, err := parseRange("0x0100:0x014f")
	require.NoError(t, err)
	require.Equal(t, uint16(0x0100), start)
	require.Equal(t, uint16(0x014f), end)

	start, end, err = parseRange("49152:49152")
	require.NoError(t, err)
	require.Equal(t, uint16(0xc000), start)
	require.Equal(t, uint16(0xc000), end)

	for _, bad := range []string{"", "0x100", "0x200:0x100", "0x10000:0x10001", "zz:0x10"} {
		_, _, err := parseRange(bad)
		require.Error(t, err, bad)
	}
}

func TestWriteHeaderGraph(t *testing.T) {
	gb := gameboy.New()
	rom := make([]uint8, 0x8000)
	copy(rom[0x134:], "GRAPH")
	var x uint8
	for i := 0x134; i <= 0x14c; i++ {
		x = x - rom[i] - 1
	}
	rom[0x14d] = x
	romPath := filepath.Join(t.TempDir(), "graph.gb")
	require.NoError(t, os.WriteFile(romPath, rom, 0o644))
	require.NoError(t, gb.LoadROM(romPath))

	out := filepath.Join(t.TempDir(), "header.dot")
	require.NoError(t, writeHeaderGraph(out, gb))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "digraph")
}
