// Package md5 implements the MD5 message digest defined in RFC 1321.
//
// MD5 is cryptographically broken and should not be used where collision
// resistance matters. It remains useful for checksums and interoperability.
package md5

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

const (
	// Size is the number of bytes in a digest.
	Size = consts.Size

	// BlockSize is the number of bytes consumed by one compression.
	BlockSize = consts.BlockLen
)

// Sum returns the MD5 digest of data.
func Sum(data []byte) Digest {
	return sum(data)
}

// Hasher is a hash.Hash for MD5.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{h: newHasher()}
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but specialized to strings to avoid allocations.
func (h *Hasher) WriteString(p string) (int, error) {
	n := len(p)
	for len(p) > 0 {
		var buf [consts.BlockLen]byte
		m := copy(buf[:], p)
		h.h.update(buf[:m])
		p = p[m:]
	}
	return n, nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Clone returns a new Hasher with the same internal state.
//
// Modifying the resulting Hasher will not modify the original Hasher, and
// vice versa.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int { return Size }

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int { return BlockSize }

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.h.finalize()
	return append(b, d[:]...)
}

// Digest returns the digest of everything written so far. The Hasher can
// still be written to afterwards.
func (h *Hasher) Digest() Digest {
	return h.h.finalize()
}

//
// state snapshots
//

const (
	magic         = "md5\x01"
	marshaledSize = len(magic) + consts.Size + consts.BlockLen + 8
)

// MarshalBinary implements encoding.BinaryMarshaler. The encoded state can be
// restored with UnmarshalBinary to continue hashing where it left off.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	var state [consts.Size]byte
	utils.StateToBytes(&h.h.state, &state)

	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	b = append(b, state[:]...)
	b = append(b, h.h.buf[:h.h.bufn]...)
	b = b[:len(b)+len(h.h.buf)-h.h.bufn] // already zero
	b = binary.LittleEndian.AppendUint64(b, h.h.len)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Hasher) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("md5: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.Errorf("md5: invalid hash state size %d", len(b))
	}
	b = b[len(magic):]

	var next hasher
	utils.BytesToState((*[consts.Size]byte)(b), &next.state)
	b = b[consts.Size:]
	b = b[copy(next.buf[:], b):]
	next.len = binary.LittleEndian.Uint64(b)
	next.bufn = int(next.len % consts.BlockLen)

	h.h = next
	return nil
}

// PaddedLen returns the number of bytes an n byte message occupies after
// padding. It is always a multiple of BlockSize.
func PaddedLen(n uint64) uint64 {
	return padLen(n)
}
