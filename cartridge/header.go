package cartridge

import (
	"bytes"
	"encoding/binary"
)

// Header layout, see https://gbdev.io/pandocs/The_Cartridge_Header.html
const (
	HeaderStart = 0x0100
	HeaderEnd   = 0x0150 // exclusive; also the smallest acceptable ROM

	checksumStart = 0x0134
	checksumEnd   = 0x014c // inclusive
	checksumAddr  = 0x014d
	globalSumAddr = 0x014e

	logoStart = 0x0104

	cgbEnhanced = 0x80
	cgbOnly     = 0xc0
	sgbSupport  = 0x03

	// An old license byte of 0x33 means the publisher is found in the
	// two-character new license field instead.
	useNewLicense = 0x33
)

// RawHeader is a byte-exact copy of 0x0100-0x014F.
type RawHeader struct {
	Entry          [4]uint8
	Logo           [48]uint8
	Title          [16]uint8 // byte 15 doubles as the CGB flag
	NewLicense     [2]uint8
	SGBFlag        uint8
	Type           uint8
	ROMSize        uint8
	RAMSize        uint8
	Destination    uint8
	OldLicense     uint8
	Version        uint8
	HeaderChecksum uint8
	GlobalChecksum uint16 // big-endian
}

// Header is the decoded view of a RawHeader.
type Header struct {
	Title        string
	Type         uint8
	ROMSizeCode  uint8
	RAMSizeCode  uint8
	LicenseCode  uint16
	NewLicense   bool // LicenseCode came from the two-character field
	Version      uint8
	Destination  uint8
	SGBSupported bool
	CGBSupported bool
}

func readRawHeader(rom []uint8) RawHeader {
	var raw RawHeader
	// The layout has no padding and the source is exactly the right size,
	// so binary.Read cannot fail here.
	_ = binary.Read(bytes.NewReader(rom[HeaderStart:HeaderEnd]), binary.BigEndian, &raw)
	return raw
}

// Decode derives the usable header fields. It never fails.
func Decode(raw RawHeader) Header {
	var title [17]uint8
	copy(title[:16], raw.Title[:])

	cgbFlag := raw.Title[15]
	cgb := cgbFlag == cgbEnhanced || cgbFlag == cgbOnly
	if cgb {
		title[15] = 0
	}

	h := Header{
		Title:        cString(title[:]),
		Type:         raw.Type,
		ROMSizeCode:  raw.ROMSize,
		RAMSizeCode:  raw.RAMSize,
		Version:      raw.Version,
		Destination:  raw.Destination,
		SGBSupported: raw.SGBFlag == sgbSupport,
		CGBSupported: cgb,
	}

	if raw.OldLicense == useNewLicense {
		h.LicenseCode = uint16(raw.NewLicense[0])<<8 | uint16(raw.NewLicense[1])
		h.NewLicense = true
	} else {
		h.LicenseCode = uint16(raw.OldLicense)
	}

	return h
}

func (h *Header) TypeName() string {
	return TypeName(h.Type)
}

func (h *Header) Publisher() string {
	return PublisherName(h.LicenseCode, !h.NewLicense)
}

func cString(b []uint8) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// HeaderChecksum computes the boot ROM's header checksum over
// 0x0134-0x014C. rom must be at least HeaderEnd bytes long.
func HeaderChecksum(rom []uint8) uint8 {
	var checksum uint8 = 0
	for addr := checksumStart; addr <= checksumEnd; addr++ {
		checksum = checksum - rom[addr] - 1
	}
	return checksum
}

// GlobalChecksum sums every ROM byte except the two checksum bytes.
func GlobalChecksum(rom []uint8) uint16 {
	var sum uint16 = 0
	for i, b := range rom {
		if i == globalSumAddr || i == globalSumAddr+1 {
			continue
		}
		sum += uint16(b)
	}
	return sum
}

var nintendoLogo = [48]uint8{
	0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0c, 0x00, 0x0d,
	0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e, 0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99,
	0xbb, 0xbb, 0x67, 0x63, 0x6e, 0x0e, 0xec, 0xcc, 0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
}
