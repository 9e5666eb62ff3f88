package md5

import (
	"unsafe"

	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

//
// hasher contains state for an md5 hash
//

type hasher struct {
	state [4]uint32
	len   uint64
	bufn  int
	buf   [consts.BlockLen]byte
}

func newHasher() hasher {
	return hasher{state: consts.IV}
}

func (a *hasher) reset() {
	a.state = consts.IV
	a.len = 0
	a.bufn = 0
}

func (a *hasher) update(buf []byte) {
	a.len += uint64(len(buf))

	if a.bufn > 0 {
		n := copy(a.buf[a.bufn:], buf)
		a.bufn += n
		buf = buf[n:]

		if a.bufn < consts.BlockLen {
			return
		}
		a.consume(&a.buf)
		a.bufn = 0
	}

	for len(buf) >= consts.BlockLen {
		a.consume((*[consts.BlockLen]byte)(buf))
		buf = buf[consts.BlockLen:]
	}

	a.bufn = copy(a.buf[:], buf)
}

func (a *hasher) consume(block *[consts.BlockLen]byte) {
	if consts.IsLittleEndian {
		accumulate(&a.state, (*[16]uint32)(unsafe.Pointer(block)))
		return
	}

	var words [16]uint32
	utils.BytesToWords(block, &words)
	accumulate(&a.state, &words)
}

// finalize pads the buffered tail and returns the digest. It does not modify
// the hasher, so more data may be written afterwards.
func (a *hasher) finalize() Digest {
	state := a.state

	var tmp [2 * consts.BlockLen]byte
	tail := appendPadding(append(tmp[:0], a.buf[:a.bufn]...), a.len)

	var words [16]uint32
	for c := newChunker(tail); c.next(&words); {
		accumulate(&state, &words)
	}

	return encode(&state)
}

//
// state accumulation
//

// accumulate folds one block into state: the compressed registers are added
// back to the registers the block started from.
func accumulate(state *[4]uint32, block *[16]uint32) {
	out := compress(state, block)

	state[0] += out[0]
	state[1] += out[1]
	state[2] += out[2]
	state[3] += out[3]
}

// sum runs the whole pipeline over msg: pad, decode every block in order,
// fold each into the state and encode the result.
func sum(msg []byte) Digest {
	state := consts.IV

	var words [16]uint32
	for c := newChunker(pad(msg)); c.next(&words); {
		accumulate(&state, &words)
	}

	return encode(&state)
}
