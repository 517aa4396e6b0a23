package wire

import (
	"encoding/binary"
	"math"
	"net/netip"
)

// Integers are little-endian on the wire unless noted otherwise.

func ReadU8(r Reader) (v uint8, err error) {
	return r.ReadByte()
}

func ReadI8(r Reader) (v int8, err error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func ReadU16(r Reader) (v uint16, err error) {
	b, err := r.Read(2)
	if err != nil {
		return
	}

	v = binary.LittleEndian.Uint16(b)
	return
}

func ReadI16(r Reader) (v int16, err error) {
	u, err := ReadU16(r)
	return int16(u), err
}

func ReadU32(r Reader) (v uint32, err error) {
	b, err := r.Read(4)
	if err != nil {
		return
	}

	v = binary.LittleEndian.Uint32(b)
	return
}

func ReadI32(r Reader) (v int32, err error) {
	u, err := ReadU32(r)
	return int32(u), err
}

// ReadU48 reads a 6 byte integer: a u32 followed by a u16.
func ReadU48(r Reader) (v uint64, err error) {
	b, err := r.Read(6)
	if err != nil {
		return
	}

	v = uint64(binary.LittleEndian.Uint32(b)) | uint64(binary.LittleEndian.Uint16(b[4:]))<<32
	return
}

func ReadU64(r Reader) (v uint64, err error) {
	b, err := r.Read(8)
	if err != nil {
		return
	}

	v = binary.LittleEndian.Uint64(b)
	return
}

func ReadI64(r Reader) (v int64, err error) {
	u, err := ReadU64(r)
	return int64(u), err
}

func AppendU8(b []byte, v uint8) []byte   { return append(b, v) }
func AppendI8(b []byte, v int8) []byte    { return append(b, byte(v)) }
func AppendU16(b []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(b, v) }
func AppendI16(b []byte, v int16) []byte  { return binary.LittleEndian.AppendUint16(b, uint16(v)) }
func AppendU32(b []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(b, v) }
func AppendI32(b []byte, v int32) []byte  { return binary.LittleEndian.AppendUint32(b, uint32(v)) }
func AppendU64(b []byte, v uint64) []byte { return binary.LittleEndian.AppendUint64(b, v) }
func AppendI64(b []byte, v int64) []byte  { return binary.LittleEndian.AppendUint64(b, uint64(v)) }

// AppendU48 writes the low 48 bits of v.
func AppendU48(b []byte, v uint64) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(v))
	return binary.LittleEndian.AppendUint16(b, uint16(v>>32))
}

// ReadBool reads a width byte integer. Only the value 1 is true; any other
// value is accepted and decodes as false.
func ReadBool(r Reader, width int) (v bool, err error) {
	b, err := r.Read(width)
	if err != nil {
		return
	}

	var n uint64
	for i := width - 1; i >= 0; i-- {
		n = n<<8 | uint64(b[i])
	}
	v = n == 1
	return
}

func AppendBool(b []byte, v bool, width int) []byte {
	first := byte(0)
	if v {
		first = 1
	}
	b = append(b, first)
	for i := 1; i < width; i++ {
		b = append(b, 0)
	}
	return b
}

// ReadF32 reads an IEEE-754 single precision float.
func ReadF32(r Reader) (v float32, err error) {
	u, err := ReadU32(r)
	return math.Float32frombits(u), err
}

func AppendF32(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
}

// ReadIPv4 reads a big-endian IPv4 address.
func ReadIPv4(r Reader) (v netip.Addr, err error) {
	b, err := r.Read(4)
	if err != nil {
		return
	}

	v = netip.AddrFrom4([4]byte(b))
	return
}

// AppendIPv4 writes v in network order. Addresses that are not IPv4 are
// written as 0.0.0.0.
func AppendIPv4(b []byte, v netip.Addr) []byte {
	if !v.Is4() && !v.Is4In6() {
		return append(b, 0, 0, 0, 0)
	}
	a := v.Unmap().As4()
	return append(b, a[:]...)
}

// ReadBytes reads n raw bytes into a caller owned slice.
func ReadBytes(r Reader, n int) (v []byte, err error) {
	b, err := r.Read(n)
	if err != nil {
		return
	}

	v = make([]byte, n)
	copy(v, b)
	return
}

// ReadInto fills dst, typically a fixed size byte array field.
func ReadInto(r Reader, dst []byte) error {
	b, err := r.Read(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// Value dereferences p, returning the zero value when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
