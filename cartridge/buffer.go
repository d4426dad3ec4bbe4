package cartridge

import (
	"fmt"
	"math"
)

// buffer owns a block of cartridge memory. The zero value is an empty
// buffer with nothing allocated.
type buffer struct {
	data []uint8
}

// allocate returns a zeroed buffer of n bytes. n == 0 allocates nothing.
// It is a variable so tests can simulate allocation failure.
var allocate = func(n int) (b buffer, err error) {
	if n < 0 {
		return buffer{}, fmt.Errorf("negative size %d", n)
	}
	if n == 0 {
		return buffer{}, nil
	}
	// make reports impossible sizes by panicking.
	defer func() {
		if r := recover(); r != nil {
			b, err = buffer{}, fmt.Errorf("%v", r)
		}
	}()
	return buffer{data: make([]uint8, n)}, nil
}

func (b *buffer) len() int {
	return len(b.data)
}

func (b *buffer) release() {
	b.data = nil
}

func toInt(size int64) (int, bool) {
	if size < 0 || size > math.MaxInt {
		return 0, false
	}
	return int(size), true
}
