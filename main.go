package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/ushitora-anqou/baredmg/gameboy"
	"github.com/ushitora-anqou/baredmg/statsview"
	"github.com/ushitora-anqou/baredmg/util"
)

func buildUsageError() error {
	return fmt.Errorf("Usage: %s [-dump START:END] [-view] [-statsview] [-memviz FILE] PATH", os.Args[0])
}

// parseRange parses "START:END" where both ends are addresses in any base
// strconv accepts (0x0100:0x014f).
func parseRange(s string) (uint16, uint16, error) {
	startStr, endStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q: expected START:END", s)
	}
	start, err := strconv.ParseUint(startStr, 0, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %w", s, err)
	}
	end, err := strconv.ParseUint(endStr, 0, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if end < start {
		return 0, 0, fmt.Errorf("invalid range %q: end before start", s)
	}
	return uint16(start), uint16(end), nil
}

// writeHeaderGraph writes the raw and decoded header as a graphviz digraph.
func writeHeaderGraph(path string, gb *gameboy.GameBoy) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	memviz.Map(file, &gb.Cart.Raw, &gb.Cart.Header)
	return file.Close()
}

func run() error {
	// Parse options and arguments
	dump := flag.String("dump", "", "dump memory START:END after loading")
	view := flag.Bool("view", false, "open the VRAM tile viewer")
	stats := flag.Bool("statsview", false, "serve runtime statistics over HTTP")
	graph := flag.String("memviz", "", "write the cartridge header as a graphviz file")
	flag.Parse()
	if flag.NArg() < 1 {
		return buildUsageError()
	}
	romPath := flag.Arg(0)

	if os.Getenv("BAREDMG_TRACE") == "1" {
		util.EnableTrace()
	}
	if filename := os.Getenv("BAREDMG_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}
	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview is not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	gb := gameboy.New()
	if err := gb.LoadROM(romPath); err != nil {
		return err
	}
	defer gb.Unload()

	if err := gb.Cart.PrintInfo(os.Stdout); err != nil {
		return err
	}

	if *dump != "" {
		start, end, err := parseRange(*dump)
		if err != nil {
			return err
		}
		if err := gb.MMU.DumpRegion(os.Stdout, start, end); err != nil {
			return err
		}
	}

	if *graph != "" {
		if err := writeHeaderGraph(*graph, gb); err != nil {
			return err
		}
	}

	if *view {
		return runViewer(gb)
	}
	return nil
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}
