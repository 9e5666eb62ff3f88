package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/md5/internal/consts"
)

// BytesToWords decodes a block into 16 words, least significant byte first.
func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	if consts.IsLittleEndian {
		*words = *(*[16]uint32)(unsafe.Pointer(bytes))
		return
	}

	words[0] = binary.LittleEndian.Uint32(bytes[0*4:])
	words[1] = binary.LittleEndian.Uint32(bytes[1*4:])
	words[2] = binary.LittleEndian.Uint32(bytes[2*4:])
	words[3] = binary.LittleEndian.Uint32(bytes[3*4:])
	words[4] = binary.LittleEndian.Uint32(bytes[4*4:])
	words[5] = binary.LittleEndian.Uint32(bytes[5*4:])
	words[6] = binary.LittleEndian.Uint32(bytes[6*4:])
	words[7] = binary.LittleEndian.Uint32(bytes[7*4:])
	words[8] = binary.LittleEndian.Uint32(bytes[8*4:])
	words[9] = binary.LittleEndian.Uint32(bytes[9*4:])
	words[10] = binary.LittleEndian.Uint32(bytes[10*4:])
	words[11] = binary.LittleEndian.Uint32(bytes[11*4:])
	words[12] = binary.LittleEndian.Uint32(bytes[12*4:])
	words[13] = binary.LittleEndian.Uint32(bytes[13*4:])
	words[14] = binary.LittleEndian.Uint32(bytes[14*4:])
	words[15] = binary.LittleEndian.Uint32(bytes[15*4:])
}

// WordsToBytes is the inverse of BytesToWords.
func WordsToBytes(words *[16]uint32, bytes *[64]uint8) {
	if consts.IsLittleEndian {
		*bytes = *(*[64]uint8)(unsafe.Pointer(words))
		return
	}

	for i, w := range words {
		binary.LittleEndian.PutUint32(bytes[4*i:], w)
	}
}

// StateToBytes serializes the four state registers in order, each little
// endian.
func StateToBytes(state *[4]uint32, bytes *[16]uint8) {
	binary.LittleEndian.PutUint32(bytes[0:], state[0])
	binary.LittleEndian.PutUint32(bytes[4:], state[1])
	binary.LittleEndian.PutUint32(bytes[8:], state[2])
	binary.LittleEndian.PutUint32(bytes[12:], state[3])
}

// BytesToState is the inverse of StateToBytes.
func BytesToState(bytes *[16]uint8, state *[4]uint32) {
	state[0] = binary.LittleEndian.Uint32(bytes[0:])
	state[1] = binary.LittleEndian.Uint32(bytes[4:])
	state[2] = binary.LittleEndian.Uint32(bytes[8:])
	state[3] = binary.LittleEndian.Uint32(bytes[12:])
}
