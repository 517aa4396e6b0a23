package wire

import (
	"bytes"
	"errors"
	"io"
	"net/netip"
	"testing"
)

type TestCase[T any] struct {
	desc      string
	expectErr error
	v         T
	ser       []byte
}

func testRead[T comparable](t *testing.T, tcs []TestCase[T], read func(Reader) (T, error)) {
	t.Helper()
	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			r := NewFrameReader(tc.ser)
			v, err := read(&r)
			if !errors.Is(err, tc.expectErr) {
				t.Fatalf("got error %v, want %v", err, tc.expectErr)
			}
			if tc.expectErr != nil {
				return
			}
			if v != tc.v {
				t.Errorf("got %v, want %v", v, tc.v)
			}
			if r.Remaining() != 0 {
				t.Errorf("%d bytes left unread", r.Remaining())
			}
		})
	}
}

func testAppend[T any](t *testing.T, tcs []TestCase[T], appendFn func([]byte, T) []byte) {
	t.Helper()
	for _, tc := range tcs {
		if tc.expectErr != nil {
			continue
		}
		t.Run(tc.desc, func(t *testing.T) {
			got := appendFn(nil, tc.v)
			if !bytes.Equal(got, tc.ser) {
				t.Errorf("got %x, want %x", got, tc.ser)
			}
		})
	}
}

var u16Tc = []TestCase[uint16]{
	{desc: "Zero", v: 0, ser: []byte{0x00, 0x00}},
	{desc: "Little endian", v: 0x01EC, ser: []byte{0xEC, 0x01}},
	{desc: "Max", v: 0xFFFF, ser: []byte{0xFF, 0xFF}},
	{desc: "Short", expectErr: io.ErrUnexpectedEOF, ser: []byte{0x01}},
}

func TestU16(t *testing.T) {
	testRead(t, u16Tc, ReadU16)
	testAppend(t, u16Tc, AppendU16)
}

var u32Tc = []TestCase[uint32]{
	{desc: "Build 5875", v: 5875, ser: []byte{0xF3, 0x16, 0x00, 0x00}},
	{desc: "High bit", v: 0x80000000, ser: []byte{0x00, 0x00, 0x00, 0x80}},
	{desc: "Short", expectErr: io.ErrUnexpectedEOF, ser: []byte{0x01, 0x02, 0x03}},
}

func TestU32(t *testing.T) {
	testRead(t, u32Tc, ReadU32)
	testAppend(t, u32Tc, AppendU32)
}

var i32Tc = []TestCase[int32]{
	{desc: "Minus one", v: -1, ser: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	{desc: "Min", v: -2147483648, ser: []byte{0x00, 0x00, 0x00, 0x80}},
}

func TestI32(t *testing.T) {
	testRead(t, i32Tc, ReadI32)
	testAppend(t, i32Tc, AppendI32)
}

var u48Tc = []TestCase[uint64]{
	{desc: "Low word only", v: 0x01020304, ser: []byte{0x04, 0x03, 0x02, 0x01, 0x00, 0x00}},
	{desc: "High word", v: 0xAABB00000001, ser: []byte{0x01, 0x00, 0x00, 0x00, 0xBB, 0xAA}},
	{desc: "Five bytes is short", expectErr: io.ErrUnexpectedEOF, ser: []byte{1, 2, 3, 4, 5}},
}

func TestU48(t *testing.T) {
	testRead(t, u48Tc, ReadU48)
	testAppend(t, u48Tc, AppendU48)
}

func TestBoolIsLenient(t *testing.T) {
	tcs := []TestCase[bool]{
		{desc: "Zero", v: false, ser: []byte{0x00}},
		{desc: "One", v: true, ser: []byte{0x01}},
		{desc: "Two decodes as false", v: false, ser: []byte{0x02}},
	}
	testRead(t, tcs, func(r Reader) (bool, error) { return ReadBool(r, 1) })

	wide := []TestCase[bool]{
		{desc: "Wide one", v: true, ser: []byte{0x01, 0x00, 0x00, 0x00}},
		{desc: "Wide 256", v: false, ser: []byte{0x00, 0x01, 0x00, 0x00}},
	}
	testRead(t, wide, func(r Reader) (bool, error) { return ReadBool(r, 4) })

	if got := AppendBool(nil, true, 4); !bytes.Equal(got, []byte{1, 0, 0, 0}) {
		t.Errorf("AppendBool: got %x", got)
	}
}

var f32Tc = []TestCase[float32]{
	{desc: "Zero", v: 0, ser: []byte{0x00, 0x00, 0x00, 0x00}},
	{desc: "One", v: 1.0, ser: []byte{0x00, 0x00, 0x80, 0x3F}},
	{desc: "Two point five", v: 2.5, ser: []byte{0x00, 0x00, 0x20, 0x40}},
}

func TestF32(t *testing.T) {
	testRead(t, f32Tc, ReadF32)
	testAppend(t, f32Tc, AppendF32)
}

var ipTc = []TestCase[netip.Addr]{
	{desc: "Loopback is network order", v: netip.MustParseAddr("127.0.0.1"), ser: []byte{127, 0, 0, 1}},
	{desc: "Private", v: netip.MustParseAddr("10.1.2.3"), ser: []byte{10, 1, 2, 3}},
}

func TestIPv4(t *testing.T) {
	testRead(t, ipTc, ReadIPv4)
	testAppend(t, ipTc, AppendIPv4)

	if got := AppendIPv4(nil, netip.MustParseAddr("::1")); !bytes.Equal(got, []byte{0, 0, 0, 0}) {
		t.Errorf("IPv6 address: got %x", got)
	}
}

func TestValue(t *testing.T) {
	if got := Value[uint32](nil); got != 0 {
		t.Errorf("nil: got %d", got)
	}
	v := uint32(7)
	if got := Value(&v); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestReadBytesCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	r := NewFrameReader(src)
	b, err := ReadBytes(&r, 3)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = 9
	if b[0] != 1 {
		t.Errorf("ReadBytes aliases the frame buffer")
	}
}
