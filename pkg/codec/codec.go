// Package codec provides the byte-level building blocks shared by Bitcoin
// serialization: the compact variable-length integer format, conversions
// between integers and fixed-width big-endian or little-endian bytes, and
// the hash compositions (double SHA-256 and HASH160) used for signable
// digests and address-like encodings.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Varint threshold values. A value below 0xfd is stored in a single byte;
// larger values get a discriminator byte followed by a little-endian 2-, 4-
// or 8-byte integer.
const (
	varIntThreshold16 = 0xfd
	varIntThreshold32 = 0x10000
	varIntThreshold64 = 0x100000000
)

// ErrNonCanonicalVarInt is returned when a varint uses more bytes than its
// value requires. The wire contract demands the shortest encoding.
var ErrNonCanonicalVarInt = errors.New("non-canonical varint encoding")

// PutVarInt encodes n in Bitcoin's compact variable-length integer format:
// 1 byte below 0xfd, otherwise 0xfd/0xfe/0xff followed by a little-endian
// 16-, 32- or 64-bit integer.
func PutVarInt(n uint64) []byte {
	switch {
	case n < varIntThreshold16:
		return []byte{byte(n)}
	case n < varIntThreshold32:
		b := make([]byte, 3)
		b[0] = 0xfd
		binary.LittleEndian.PutUint16(b[1:], uint16(n))
		return b
	case n < varIntThreshold64:
		b := make([]byte, 5)
		b[0] = 0xfe
		binary.LittleEndian.PutUint32(b[1:], uint32(n))
		return b
	default:
		b := make([]byte, 9)
		b[0] = 0xff
		binary.LittleEndian.PutUint64(b[1:], n)
		return b
	}
}

// VarIntSize returns the number of bytes PutVarInt uses for n.
func VarIntSize(n uint64) int {
	switch {
	case n < varIntThreshold16:
		return 1
	case n < varIntThreshold32:
		return 3
	case n < varIntThreshold64:
		return 5
	default:
		return 9
	}
}

// ReadVarInt decodes a compact variable-length integer from r, rejecting
// encodings longer than the value requires.
func ReadVarInt(r io.Reader) (uint64, error) {
	var discriminator [1]byte
	if _, err := io.ReadFull(r, discriminator[:]); err != nil {
		return 0, fmt.Errorf("read varint discriminator: %w", err)
	}

	var n uint64
	var min uint64
	switch discriminator[0] {
	case 0xfd:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("read varint body: %w", err)
		}
		n = uint64(binary.LittleEndian.Uint16(buf[:]))
		min = varIntThreshold16
	case 0xfe:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("read varint body: %w", err)
		}
		n = uint64(binary.LittleEndian.Uint32(buf[:]))
		min = varIntThreshold32
	case 0xff:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("read varint body: %w", err)
		}
		n = binary.LittleEndian.Uint64(buf[:])
		min = varIntThreshold64
	default:
		return uint64(discriminator[0]), nil
	}
	if n < min {
		return 0, fmt.Errorf("%w: value %d encoded with discriminator 0x%02x",
			ErrNonCanonicalVarInt, n, discriminator[0])
	}
	return n, nil
}

// IntToBigEndian returns n as big-endian bytes left-padded to size. Values
// wider than size are truncated to their low-order bytes, matching the
// fixed-width coordinate and scalar fields of the wire formats where the
// caller guarantees the value fits.
func IntToBigEndian(n *big.Int, size int) []byte {
	out := make([]byte, size)
	b := n.Bytes()
	if len(b) > size {
		b = b[len(b)-size:]
	}
	copy(out[size-len(b):], b)
	return out
}

// BigEndianToInt interprets b as a big-endian unsigned integer.
func BigEndianToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// IntToLittleEndian returns n as little-endian bytes padded to size.
func IntToLittleEndian(n *big.Int, size int) []byte {
	b := IntToBigEndian(n, size)
	reverse(b)
	return b
}

// LittleEndianToInt interprets b as a little-endian unsigned integer.
func LittleEndianToInt(b []byte) *big.Int {
	rev := make([]byte, len(b))
	copy(rev, b)
	reverse(rev)
	return new(big.Int).SetBytes(rev)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
