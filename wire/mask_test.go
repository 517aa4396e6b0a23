package wire

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestUpdateMaskEncoding(t *testing.T) {
	var m UpdateMask
	m.Set(0, 0x11)
	m.Set(33, 0x22)

	want := []byte{
		0x02,                   // blocks
		0x01, 0x00, 0x00, 0x00, // keys 0..31
		0x02, 0x00, 0x00, 0x00, // keys 32..63
		0x11, 0x00, 0x00, 0x00,
		0x22, 0x00, 0x00, 0x00,
	}
	got := m.AppendTo(nil)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
	if m.Size() != len(want) {
		t.Errorf("Size: got %d, want %d", m.Size(), len(want))
	}

	var decoded UpdateMask
	r := NewFrameReader(got)
	if err := decoded.Decode(&r); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, m) {
		t.Errorf("round trip: got %v, want %v", decoded.Keys(), m.Keys())
	}
}

func TestUpdateMaskBlockCount(t *testing.T) {
	tcs := []struct {
		desc string
		keys []int
		want int
	}{
		{desc: "Empty", keys: nil, want: 0},
		{desc: "Key zero", keys: []int{0}, want: 1},
		{desc: "Last key of block", keys: []int{31}, want: 1},
		{desc: "First key of second block", keys: []int{32}, want: 2},
		{desc: "Sparse high key", keys: []int{3, 200}, want: 7},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			var m UpdateMask
			for _, k := range tc.keys {
				m.Set(k, uint32(k))
			}
			if got := m.BlockCount(); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}

			b := m.AppendTo(nil)
			if int(b[0]) != tc.want {
				t.Errorf("encoded block count %d, want %d", b[0], tc.want)
			}

			var decoded UpdateMask
			r := NewFrameReader(b)
			if err := decoded.Decode(&r); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(decoded.Keys(), m.Keys()) {
				t.Errorf("keys: got %v, want %v", decoded.Keys(), m.Keys())
			}
		})
	}
}

func TestUpdateMaskKeyRange(t *testing.T) {
	var m UpdateMask
	if err := m.Set(UpdateMaskMaxKeys, 1); !errors.Is(err, ErrMaskKeyRange) {
		t.Errorf("got %v, want %v", err, ErrMaskKeyRange)
	}
	if err := m.Set(UpdateMaskMaxKeys-1, 1); err != nil {
		t.Errorf("last key: %v", err)
	}
}

func TestVanillaAuraMask(t *testing.T) {
	var m VanillaAuraMask
	m.Set(1, 0x1234)
	m.Set(31, 0x0001)

	want := []byte{
		0x02, 0x00, 0x00, 0x80,
		0x34, 0x12,
		0x01, 0x00,
	}
	got := m.AppendTo(nil)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
	if m.Size() != len(want) {
		t.Errorf("Size: got %d, want %d", m.Size(), len(want))
	}

	var decoded VanillaAuraMask
	r := NewFrameReader(got)
	if err := decoded.Decode(&r); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, m) {
		t.Errorf("round trip mismatch: %v", decoded.Slots())
	}
	if err := m.Set(32, 1); !errors.Is(err, ErrMaskKeyRange) {
		t.Errorf("slot 32: got %v", err)
	}
}

func TestTbcAuraMask(t *testing.T) {
	var m TbcAuraMask
	m.Set(63, Aura[uint16]{Spell: 0xBEEF, Flags: 0x19})

	got := m.AppendTo(nil)
	want := []byte{0, 0, 0, 0, 0, 0, 0, 0x80, 0xEF, 0xBE, 0x19}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
	if m.Size() != len(want) {
		t.Errorf("Size: got %d, want %d", m.Size(), len(want))
	}

	var decoded TbcAuraMask
	r := NewFrameReader(got)
	if err := decoded.Decode(&r); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, m) {
		t.Errorf("round trip mismatch")
	}
}

func TestWrathAuraMask(t *testing.T) {
	var m WrathAuraMask
	m.Set(0, Aura[uint32]{Spell: 48438, Flags: 1})
	m.Set(40, Aura[uint32]{Spell: 1, Flags: 0})

	got := m.AppendTo(nil)
	if len(got) != m.Size() || m.Size() != 8+2*5 {
		t.Fatalf("encoded %d bytes, Size %d", len(got), m.Size())
	}

	var decoded WrathAuraMask
	r := NewFrameReader(got)
	if err := decoded.Decode(&r); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, m) {
		t.Errorf("round trip mismatch")
	}
	if r.Remaining() != 0 {
		t.Errorf("%d bytes left", r.Remaining())
	}
}
