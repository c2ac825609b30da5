// Package rom loads a Kickstart ROM image from disk. It knows nothing
// about the power-on overlay that mirrors this image into page zero —
// that routing lives in memory.Fabric, which owns the overlay bit.
package rom

import (
	"fmt"
	"os"
)

// Base is the fixed physical address Kickstart ROM is mapped at on an
// Amiga with a 512K or 256K ROM: 0xF80000.
const Base uint32 = 0xF80000

// Image is a loaded ROM blob and the address it is mapped at.
type Image struct {
	Base uint32
	Data []byte
}

// LoadImage reads a ROM image from path. Sizes other than 256K/512K are
// accepted (some test fixtures use smaller synthetic images); the caller
// decides how End is derived from len(Data) when building a RegionSpec.
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: load %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("rom: %s is empty", path)
	}
	return &Image{Base: Base, Data: data}, nil
}
