// Package ref contains a table driven MD5 compression function that follows
// RFC 1321 operation by operation. It is slow and exists to check the
// unrolled implementation against.
package ref

import (
	"math/bits"

	"github.com/zeebo/md5/internal/consts"
)

// Round selects the nonlinear function mixed in during one round.
type Round int

const (
	Round1 Round = iota
	Round2
	Round3
	Round4
)

// Apply evaluates the round's nonlinear function.
func (r Round) Apply(x, y, z uint32) uint32 {
	switch r {
	case Round1:
		return (x & y) | (^x & z)
	case Round2:
		return (x & z) | (y & ^z)
	case Round3:
		return x ^ y ^ z
	case Round4:
		return y ^ (x | ^z)
	default:
		panic("invalid round")
	}
}

// Compress runs the 64 operations over block starting from state, writing
// the resulting registers into out. The feedback addition is not applied.
func Compress(state *[4]uint32, block *[16]uint32, out *[4]uint32) {
	*out = *state

	for i := 0; i < 64; i++ {
		r, p := Round(i/16), i%16
		roles := &consts.Roles[i%4]
		k := consts.Sched[r][p]
		s := consts.Shift[r][p%4]

		b := out[roles[1]]
		t := out[roles[0]] + r.Apply(b, out[roles[2]], out[roles[3]]) + block[k] + consts.T[i]
		t = bits.RotateLeft32(t, int(s))
		out[roles[0]] = t + b
	}
}

// Accumulate compresses block into state with the Davies-Meyer feedback.
func Accumulate(state *[4]uint32, block *[16]uint32) {
	var out [4]uint32
	Compress(state, block, &out)

	state[0] += out[0]
	state[1] += out[1]
	state[2] += out[2]
	state[3] += out[3]
}
