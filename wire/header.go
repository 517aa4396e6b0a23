package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// ClientHeaderSize is a u16 size followed by a u32 opcode.
	ClientHeaderSize = 6
	// ServerHeaderSize is a u16 size followed by a u16 opcode.
	ServerHeaderSize = 4

	ClientOpcodeSize = 4
	ServerOpcodeSize = 2

	// MaxHeaderSize is the largest size field a header can carry. The size
	// counts the opcode as well as the body.
	MaxHeaderSize = 0xFFFF
)

var (
	ErrHeaderSize      = errors.New("header size smaller than its opcode")
	ErrMessageTooLarge = errors.New("message too large for its header")
)

// HeaderEncrypter turns a world message size and opcode into header bytes.
// Implementations usually carry per-connection cipher state.
type HeaderEncrypter interface {
	EncryptClientHeader(size uint16, opcode uint32) [ClientHeaderSize]byte
	EncryptServerHeader(size uint16, opcode uint16) [ServerHeaderSize]byte
}

// HeaderDecrypter recovers the size and opcode from raw header bytes.
type HeaderDecrypter interface {
	DecryptClientHeader(h [ClientHeaderSize]byte) (size uint16, opcode uint32)
	DecryptServerHeader(h [ServerHeaderSize]byte) (size uint16, opcode uint16)
}

type HeaderCrypto interface {
	HeaderEncrypter
	HeaderDecrypter
}

// NullHeaderCrypto is the plaintext header format used before a session key
// is negotiated: big-endian size, little-endian opcode.
type NullHeaderCrypto struct{}

func (NullHeaderCrypto) EncryptClientHeader(size uint16, opcode uint32) (h [ClientHeaderSize]byte) {
	binary.BigEndian.PutUint16(h[0:], size)
	binary.LittleEndian.PutUint32(h[2:], opcode)
	return
}

func (NullHeaderCrypto) EncryptServerHeader(size uint16, opcode uint16) (h [ServerHeaderSize]byte) {
	binary.BigEndian.PutUint16(h[0:], size)
	binary.LittleEndian.PutUint16(h[2:], opcode)
	return
}

func (NullHeaderCrypto) DecryptClientHeader(h [ClientHeaderSize]byte) (size uint16, opcode uint32) {
	return binary.BigEndian.Uint16(h[0:]), binary.LittleEndian.Uint32(h[2:])
}

func (NullHeaderCrypto) DecryptServerHeader(h [ServerHeaderSize]byte) (size uint16, opcode uint16) {
	return binary.BigEndian.Uint16(h[0:]), binary.LittleEndian.Uint16(h[2:])
}

// ReadClientHeader reads a client header and returns the opcode and the body
// length, which is the header size minus the opcode width.
func ReadClientHeader(r Reader, h HeaderDecrypter) (opcode uint32, bodySize int, err error) {
	b, err := r.Read(ClientHeaderSize)
	if err != nil {
		return
	}

	size, opcode := h.DecryptClientHeader([ClientHeaderSize]byte(b))
	if size < ClientOpcodeSize {
		err = ErrHeaderSize
		return
	}
	bodySize = int(size) - ClientOpcodeSize
	return
}

func ReadServerHeader(r Reader, h HeaderDecrypter) (opcode uint16, bodySize int, err error) {
	b, err := r.Read(ServerHeaderSize)
	if err != nil {
		return
	}

	size, opcode := h.DecryptServerHeader([ServerHeaderSize]byte(b))
	if size < ServerOpcodeSize {
		err = ErrHeaderSize
		return
	}
	bodySize = int(size) - ServerOpcodeSize
	return
}

// PutClientHeader fills the header reserved at the front of msg. The rest of
// msg is the body. A body the size field cannot describe leaves msg
// untouched and fails with ErrMessageTooLarge.
func PutClientHeader(msg []byte, h HeaderEncrypter, opcode uint32) error {
	size := len(msg) - ClientHeaderSize + ClientOpcodeSize
	if size > MaxHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}
	header := h.EncryptClientHeader(uint16(size), opcode)
	copy(msg, header[:])
	return nil
}

func PutServerHeader(msg []byte, h HeaderEncrypter, opcode uint16) error {
	size := len(msg) - ServerHeaderSize + ServerOpcodeSize
	if size > MaxHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}
	header := h.EncryptServerHeader(uint16(size), opcode)
	copy(msg, header[:])
	return nil
}

// ReadBody reads a whole message body so that decoding stays aligned to the
// next header even if the decoder consumes fewer bytes.
func ReadBody(r Reader, bodySize int) (body FrameReader, err error) {
	b, err := r.Read(bodySize)
	if err != nil {
		return
	}
	body = NewFrameReader(b)
	return
}
