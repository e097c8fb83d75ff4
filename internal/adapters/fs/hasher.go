package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sassimport/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests of file contents.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ContentHash returns the 64-bit XXHash of data as 16 hex digits.
func (h *Hasher) ContentHash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
