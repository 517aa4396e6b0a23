package wire

import (
	"bufio"
	"bytes"
	"io"
	"math/bits"
	"strings"
	"testing"
)

var stringTc = []TestCase[string]{
	{desc: "Empty", v: "", ser: []byte{0x00}},
	{desc: "Realm name", v: "A", ser: []byte{0x01, 'A'}},
	{desc: "Short", expectErr: io.ErrUnexpectedEOF, ser: []byte{0x03, 'a'}},
}

func TestString(t *testing.T) {
	testRead(t, stringTc, ReadString)
	testAppend(t, stringTc, AppendString)

	if got := StringSize("abc"); got != 4 {
		t.Errorf("StringSize: got %d, want 4", got)
	}
}

var cstringTc = []TestCase[string]{
	{desc: "Empty", v: "", ser: []byte{0x00}},
	{desc: "Address", v: "127.0.0.1:8085", ser: append([]byte("127.0.0.1:8085"), 0)},
	{desc: "Unterminated", expectErr: io.ErrUnexpectedEOF, ser: []byte("abc")},
}

func TestCString(t *testing.T) {
	testRead(t, cstringTc, ReadCString)
	testAppend(t, cstringTc, AppendCString)
}

var sizedCstringTc = []TestCase[string]{
	{desc: "Length counts the terminator", v: "hi", ser: []byte{0x03, 0x00, 0x00, 0x00, 'h', 'i', 0x00}},
	{desc: "Empty", v: "", ser: []byte{0x01, 0x00, 0x00, 0x00, 0x00}},
}

func TestSizedCString(t *testing.T) {
	testRead(t, sizedCstringTc, ReadSizedCString)
	testAppend(t, sizedCstringTc, AppendSizedCString)
}

var packedGuidTc = []TestCase[uint64]{
	{desc: "Zero", v: 0, ser: []byte{0x00}},
	{desc: "Low byte", v: 0x07, ser: []byte{0x01, 0x07}},
	{desc: "Gap", v: 0xFF00000000AA00, ser: []byte{0x42, 0xAA, 0xFF}},
	{desc: "Full", v: 0x0102030405060708, ser: []byte{0xFF, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
	{desc: "Short", expectErr: io.ErrUnexpectedEOF, ser: []byte{0x03, 0x01}},
}

func TestPackedGuid(t *testing.T) {
	testRead(t, packedGuidTc, ReadPackedGuid)
	testAppend(t, packedGuidTc, AppendPackedGuid)
}

func nonZeroBytes(v uint64) (n int) {
	for i := 0; i < 8; i++ {
		if byte(v>>(i*8)) != 0 {
			n++
		}
	}
	return
}

func TestPackedGuidSymmetry(t *testing.T) {
	guids := []uint64{0, 1, 0x100, 0xDEADBEEF, 1 << 63, 0xFFFFFFFFFFFFFFFF, 0x00FF00FF00FF00FF}
	for i := uint64(1); i != 0; i <<= 3 {
		guids = append(guids, i, bits.Reverse64(i)|i)
	}

	for _, g := range guids {
		b := AppendPackedGuid(nil, g)
		if len(b) != 1+nonZeroBytes(g) || PackedGuidSize(g) != len(b) {
			t.Errorf("%#x: encoded %d bytes, size %d, want %d", g, len(b), PackedGuidSize(g), 1+nonZeroBytes(g))
		}

		r := NewFrameReader(b)
		got, err := ReadPackedGuid(&r)
		if err != nil {
			t.Fatalf("%#x: %v", g, err)
		}
		if got != g {
			t.Errorf("got %#x, want %#x", got, g)
		}
	}
}

func TestStreamReader(t *testing.T) {
	src := bytes.NewReader(append([]byte{0x05, 'w', 'o', 'r', 'l', 'd'}, append([]byte("name"), 0)...))
	r := NewStreamReader(bufio.NewReader(src))

	s, err := ReadString(r)
	if err != nil || s != "world" {
		t.Fatalf("ReadString: got %q, %v", s, err)
	}
	c, err := ReadCString(r)
	if err != nil || c != "name" {
		t.Fatalf("ReadCString: got %q, %v", c, err)
	}
	if _, err = ReadCString(r); err != io.ErrUnexpectedEOF {
		t.Errorf("read past end: got %v", err)
	}
}

func TestStreamReaderUnterminated(t *testing.T) {
	r := NewStreamReader(strings.NewReader("abc"))
	if _, err := r.ReadUntil(0); err != io.ErrUnexpectedEOF {
		t.Errorf("got %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestStreamReaderHugeLength(t *testing.T) {
	r := NewStreamReader(strings.NewReader("abcdef"))
	b, err := r.Read(1 << 30)
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("got %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if string(b) != "abcdef" || cap(b) > 2*streamChunk {
		t.Errorf("buffered %q with capacity %d", b, cap(b))
	}
}

func TestStreamReaderChunked(t *testing.T) {
	want := bytes.Repeat([]byte{1, 2, 3}, streamChunk)
	r := NewStreamReader(bytes.NewReader(want))
	got, err := r.Read(len(want))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %d bytes, want %d", len(got), len(want))
	}
}

func TestPrealloc(t *testing.T) {
	tcs := []struct {
		n, want int
	}{
		{n: -1, want: 0},
		{n: 0, want: 0},
		{n: 12, want: 12},
		{n: 1<<31 - 1, want: MaxPrealloc},
	}
	for _, tc := range tcs {
		if got := Prealloc(tc.n); got != tc.want {
			t.Errorf("Prealloc(%d): got %d, want %d", tc.n, got, tc.want)
		}
	}
}
