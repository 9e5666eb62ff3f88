package md5

import (
	"encoding/binary"

	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

//
// message padding
//

// padLen returns the smallest multiple of the block length that holds an n
// byte message, the 0x80 marker and the bit length trailer.
func padLen(n uint64) uint64 {
	const reserved = 1 + consts.LenBytes
	return (n + reserved + consts.BlockLen - 1) / consts.BlockLen * consts.BlockLen
}

// pad returns a freshly allocated padded copy of msg.
func pad(msg []byte) []byte {
	buf := make([]byte, len(msg), padLen(uint64(len(msg))))
	copy(buf, msg)
	return appendPadding(buf, uint64(len(msg)))
}

// appendPadding appends the padding for a message of n total bytes to buf.
// buf must end with the last n mod 64 bytes of the message so that the
// result is a whole number of blocks.
func appendPadding(buf []byte, n uint64) []byte {
	var zeros [consts.BlockLen]byte
	var trailer [consts.LenBytes]byte

	buf = append(buf, 0x80)
	fill := (consts.BlockLen - (n+1+consts.LenBytes)%consts.BlockLen) % consts.BlockLen
	buf = append(buf, zeros[:fill]...)

	// the bit length wraps modulo 2^64
	binary.LittleEndian.PutUint64(trailer[:], n<<3)
	return append(buf, trailer[:]...)
}

//
// chunk decoding
//

// chunker walks a padded buffer one block at a time.
type chunker struct {
	buf []byte
}

func newChunker(buf []byte) chunker {
	if len(buf)%consts.BlockLen != 0 {
		panic("md5: buffer is not a whole number of blocks")
	}
	return chunker{buf: buf}
}

// remaining reports how many blocks have not been decoded yet.
func (c *chunker) remaining() int { return len(c.buf) / consts.BlockLen }

// next decodes the following block into words and reports whether there
// was one.
func (c *chunker) next(words *[16]uint32) bool {
	if len(c.buf) < consts.BlockLen {
		return false
	}
	utils.BytesToWords((*[consts.BlockLen]byte)(c.buf), words)
	c.buf = c.buf[consts.BlockLen:]
	return true
}
