package md5

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

// Digest is the 16 byte MD5 output: the registers A, B, C and D in order,
// each least significant byte first.
type Digest [consts.Size]byte

// encode serializes the final state into a Digest.
func encode(state *[4]uint32) (d Digest) {
	utils.StateToBytes(state, (*[consts.Size]byte)(&d))
	return d
}

// String returns the digest as 32 lowercase hexadecimal characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(d)))
	hex.Encode(out, d[:])
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	if len(text) != hex.EncodedLen(len(d)) {
		return errors.Errorf("md5: invalid digest length %d", len(text))
	}
	var tmp Digest
	if _, err := hex.Decode(tmp[:], text); err != nil {
		return errors.Wrap(err, "md5: invalid digest")
	}
	*d = tmp
	return nil
}

// ParseDigest parses the hexadecimal form produced by Digest.String. Upper
// case digits are accepted.
func ParseDigest(s string) (d Digest, err error) {
	err = d.UnmarshalText([]byte(s))
	return d, err
}
