package util

import (
	"encoding/binary"
	"encoding/hex"
	"github.com/twmb/murmur3"
)

// AddressLen is the number of bytes of a derived address
const AddressLen = 20

// DeriveAddress computes a deterministic hex address from the creator and its per-creator nonce
func DeriveAddress(creator string, nonce uint64) string {
	data := make([]byte, 0, len(creator)+8)
	data = append(data, creator...)
	data = binary.BigEndian.AppendUint64(data, nonce)

	var out [AddressLen]byte
	h1, h2 := murmur3.Sum128(data)
	binary.BigEndian.PutUint64(out[0:], h1)
	binary.BigEndian.PutUint64(out[8:], h2)
	binary.BigEndian.PutUint32(out[16:], murmur3.Sum32(data))

	return "0x" + hex.EncodeToString(out[:])
}
