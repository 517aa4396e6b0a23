package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestNullHeaderCrypto(t *testing.T) {
	var h NullHeaderCrypto

	server := make([]byte, ServerHeaderSize+4)
	PutServerHeader(server, h, 0x01EC)
	if want := []byte{0x00, 0x06, 0xEC, 0x01}; !bytes.Equal(server[:ServerHeaderSize], want) {
		t.Errorf("server header: got %x, want %x", server[:ServerHeaderSize], want)
	}

	client := make([]byte, ClientHeaderSize+10)
	PutClientHeader(client, h, 0x01ED)
	if want := []byte{0x00, 0x0E, 0xED, 0x01, 0x00, 0x00}; !bytes.Equal(client[:ClientHeaderSize], want) {
		t.Errorf("client header: got %x, want %x", client[:ClientHeaderSize], want)
	}

	r := NewFrameReader(client)
	opcode, bodySize, err := ReadClientHeader(&r, h)
	if err != nil {
		t.Fatal(err)
	}
	if opcode != 0x01ED || bodySize != 10 {
		t.Errorf("got opcode %#x, body %d", opcode, bodySize)
	}

	r = NewFrameReader(server)
	sop, bodySize, err := ReadServerHeader(&r, h)
	if err != nil {
		t.Fatal(err)
	}
	if sop != 0x01EC || bodySize != 4 {
		t.Errorf("got opcode %#x, body %d", sop, bodySize)
	}
}

func TestHeaderSizeUnderflow(t *testing.T) {
	r := NewFrameReader([]byte{0x00, 0x01, 0xDC, 0x01})
	if _, _, err := ReadServerHeader(&r, NullHeaderCrypto{}); !errors.Is(err, ErrHeaderSize) {
		t.Errorf("got %v, want %v", err, ErrHeaderSize)
	}
}

func TestHeaderTooLarge(t *testing.T) {
	tcs := []struct {
		desc      string
		body      int
		expectErr error
	}{
		{desc: "Largest server body", body: MaxHeaderSize - ServerOpcodeSize},
		{desc: "Server body past size field", body: MaxHeaderSize - ServerOpcodeSize + 1, expectErr: ErrMessageTooLarge},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			msg := make([]byte, ServerHeaderSize+tc.body)
			err := PutServerHeader(msg, NullHeaderCrypto{}, 0x0143)
			if !errors.Is(err, tc.expectErr) {
				t.Fatalf("got error %v, want %v", err, tc.expectErr)
			}
			if tc.expectErr != nil {
				if !bytes.Equal(msg[:ServerHeaderSize], make([]byte, ServerHeaderSize)) {
					t.Errorf("header written: %x", msg[:ServerHeaderSize])
				}
				return
			}
			if size := int(msg[0])<<8 | int(msg[1]); size != MaxHeaderSize {
				t.Errorf("size field: got %d", size)
			}
		})
	}

	client := make([]byte, ClientHeaderSize+MaxHeaderSize)
	if err := PutClientHeader(client, NullHeaderCrypto{}, 0x01ED); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("client: got error %v, want %v", err, ErrMessageTooLarge)
	}
}

// xorHeader stands in for a session cipher.
type xorHeader struct{ key byte }

func (x xorHeader) EncryptClientHeader(size uint16, opcode uint32) (h [ClientHeaderSize]byte) {
	h = NullHeaderCrypto{}.EncryptClientHeader(size, opcode)
	for i := range h {
		h[i] ^= x.key
	}
	return
}

func (x xorHeader) EncryptServerHeader(size uint16, opcode uint16) (h [ServerHeaderSize]byte) {
	h = NullHeaderCrypto{}.EncryptServerHeader(size, opcode)
	for i := range h {
		h[i] ^= x.key
	}
	return
}

func (x xorHeader) DecryptClientHeader(h [ClientHeaderSize]byte) (uint16, uint32) {
	for i := range h {
		h[i] ^= x.key
	}
	return NullHeaderCrypto{}.DecryptClientHeader(h)
}

func (x xorHeader) DecryptServerHeader(h [ServerHeaderSize]byte) (uint16, uint16) {
	for i := range h {
		h[i] ^= x.key
	}
	return NullHeaderCrypto{}.DecryptServerHeader(h)
}

func TestEncryptedHeaderRoundTrip(t *testing.T) {
	var h HeaderCrypto = xorHeader{key: 0x5A}

	b := make([]byte, ServerHeaderSize+300)
	PutServerHeader(b, h, 0x0143)

	r := NewFrameReader(b)
	opcode, bodySize, err := ReadServerHeader(&r, h)
	if err != nil {
		t.Fatal(err)
	}
	if opcode != 0x0143 || bodySize != 300 {
		t.Fatalf("got opcode %#x, body %d", opcode, bodySize)
	}

	body, err := ReadBody(&r, bodySize)
	if err != nil {
		t.Fatal(err)
	}
	if body.Remaining() != 300 || r.Remaining() != 0 {
		t.Errorf("body %d, stream %d", body.Remaining(), r.Remaining())
	}
}
