package cartridge

import "errors"

// Load failures. Returned errors wrap exactly one of these, so callers can
// test with errors.Is.
var (
	ErrOpen       = errors.New("failed to open ROM")
	ErrTooSmall   = errors.New("ROM file too small")
	ErrAllocation = errors.New("failed to allocate cartridge memory")
	ErrRead       = errors.New("failed to read ROM")
	ErrChecksum   = errors.New("header checksum mismatch")
)
