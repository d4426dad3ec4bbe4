package cartridge

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func sizeString(size int, err error) string {
	if err != nil {
		return "unknown"
	}
	if size >= MiB && size%MiB == 0 {
		return fmt.Sprintf("%d MiB", size/MiB)
	}
	return fmt.Sprintf("%d KiB", size/KiB)
}

// PrintInfo writes a human readable summary of the cartridge header.
func (c *Cartridge) PrintInfo(w io.Writer) error {
	h := &c.Header
	romSize, romErr := ROMSize(h.ROMSizeCode)
	ramSize, ramErr := RAMSize(h.RAMSizeCode)

	license := fmt.Sprintf("0x%02x", h.LicenseCode)
	if h.NewLicense {
		license = fmt.Sprintf("%q", string([]byte{uint8(h.LicenseCode >> 8), uint8(h.LicenseCode)}))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", h.Title)
	fmt.Fprintf(tw, "Type:\t0x%02x (%s)\n", h.Type, h.TypeName())
	fmt.Fprintf(tw, "ROM size:\t0x%02x (%s), image %d bytes\n", h.ROMSizeCode, sizeString(romSize, romErr), c.ROMSize())
	fmt.Fprintf(tw, "RAM size:\t0x%02x (%s)\n", h.RAMSizeCode, sizeString(ramSize, ramErr))
	fmt.Fprintf(tw, "Publisher:\t%s (%s)\n", h.Publisher(), license)
	fmt.Fprintf(tw, "Destination:\t%s\n", DestinationName(h.Destination))
	fmt.Fprintf(tw, "Version:\t%d\n", h.Version)
	fmt.Fprintf(tw, "SGB:\t%s\n", yesNo(h.SGBSupported))
	fmt.Fprintf(tw, "CGB:\t%s\n", yesNo(h.CGBSupported))
	fmt.Fprintf(tw, "Header checksum:\t0x%02x (%s)\n", c.Raw.HeaderChecksum, okString(c.VerifyHeaderChecksum()))
	fmt.Fprintf(tw, "Global checksum:\t0x%04x (%s)\n", c.Raw.GlobalChecksum, okString(c.VerifyGlobalChecksum()))
	return tw.Flush()
}

func okString(ok bool) string {
	if ok {
		return "ok"
	}
	return "mismatch"
}
