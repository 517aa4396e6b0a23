package wire

import (
	"encoding/binary"
	"errors"
	"strings"
)

var ErrStringTooLong = errors.New("string does not fit its length prefix")

// ReadString reads a string prefixed by a single length byte.
func ReadString(r Reader) (v string, err error) {
	length, err := r.ReadByte()
	if err != nil {
		return
	}

	buf, err := r.Read(int(length))
	return string(buf), err
}

// AppendString writes a u8 length prefix followed by v. Strings longer than
// 255 bytes are cut to fit the prefix. Generated count prefixes of arrays
// are not cut this way: they carry the low bits of len, and whole messages
// past MaxHeaderSize fail to encode with ErrMessageTooLarge.
func AppendString(b []byte, v string) []byte {
	if len(v) > 0xFF {
		v = v[:0xFF]
	}
	b = append(b, byte(len(v)))
	return append(b, v...)
}

// StringSize is the encoded size of a length prefixed string.
func StringSize(v string) int {
	return 1 + min(len(v), 0xFF)
}

// ReadCString reads up to and including a NUL terminator.
func ReadCString(r Reader) (v string, err error) {
	buf, err := r.ReadUntil(0)
	if err != nil {
		return
	}

	v = string(buf[:len(buf)-1])
	return
}

func AppendCString(b []byte, v string) []byte {
	b = append(b, v...)
	return append(b, 0)
}

// ReadSizedCString reads a u32 length which counts the trailing NUL, then the
// string bytes. Trailing NULs are stripped.
func ReadSizedCString(r Reader) (v string, err error) {
	length, err := ReadU32(r)
	if err != nil {
		return
	}
	if length > 1<<24 {
		err = ErrStringTooLong
		return
	}

	buf, err := r.Read(int(length))
	if err != nil {
		return
	}
	v = strings.TrimRight(string(buf), "\x00")
	return
}

func AppendSizedCString(b []byte, v string) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(len(v)+1))
	b = append(b, v...)
	return append(b, 0)
}

// ReadPackedGuid reads a presence mask followed by the non-zero bytes of the
// guid, lowest byte first.
func ReadPackedGuid(r Reader) (v uint64, err error) {
	mask, err := r.ReadByte()
	if err != nil {
		return
	}

	for i := 0; i < 8; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		var b byte
		if b, err = r.ReadByte(); err != nil {
			return
		}
		v |= uint64(b) << (i * 8)
	}
	return
}

func packedGuidMask(v uint64) (mask byte) {
	for i := 0; i < 8; i++ {
		if v&(0xFF<<(i*8)) != 0 {
			mask |= 1 << i
		}
	}
	return
}

func AppendPackedGuid(b []byte, v uint64) []byte {
	mask := packedGuidMask(v)
	b = append(b, mask)
	for i := 0; i < 8; i++ {
		if mask&(1<<i) != 0 {
			b = append(b, byte(v>>(i*8)))
		}
	}
	return b
}

// PackedGuidSize uses the same byte scan as AppendPackedGuid.
func PackedGuidSize(v uint64) int {
	size := 1
	mask := packedGuidMask(v)
	for ; mask != 0; mask &= mask - 1 {
		size++
	}
	return size
}
