package wowproto

import (
	"errors"
	"io"

	"github.com/gstoney/wowproto/wire"
)

var ErrNotExhausted = errors.New("not exhausted")

// WorldFrameReader bounds reads to one world message at a time. It keeps the
// stream aligned to message headers even when a decoder stops early.
//
// Next decrypts the following header. The reads in between never cross the
// body of the current message.
type WorldFrameReader struct {
	src wire.Reader
	h   wire.HeaderDecrypter
	// server selects the 4 byte server header layout.
	server    bool
	remaining int
}

// NewWorldFrameReader reads server messages when server is set, client
// messages otherwise.
func NewWorldFrameReader(src wire.Reader, h wire.HeaderDecrypter, server bool) *WorldFrameReader {
	if h == nil {
		h = wire.NullHeaderCrypto{}
	}
	return &WorldFrameReader{src: src, h: h, server: server}
}

// SetDecrypter swaps the header cipher, typically once the session key is
// known. It applies from the next header on.
func (f *WorldFrameReader) SetDecrypter(h wire.HeaderDecrypter) {
	f.h = h
}

func (f *WorldFrameReader) Next() (opcode uint32, bodySize int, err error) {
	if f.remaining > 0 {
		return 0, f.remaining, ErrNotExhausted
	}

	if f.server {
		var op uint16
		op, bodySize, err = wire.ReadServerHeader(f.src, f.h)
		opcode = uint32(op)
	} else {
		opcode, bodySize, err = wire.ReadClientHeader(f.src, f.h)
	}
	if err == nil {
		f.remaining = bodySize
	}
	return
}

func (f *WorldFrameReader) ReadByte() (byte, error) {
	if f.remaining <= 0 {
		return 0, io.ErrUnexpectedEOF
	}
	v, err := f.src.ReadByte()
	if err == nil {
		f.remaining--
	}
	return v, err
}

func (f *WorldFrameReader) Read(n int) ([]byte, error) {
	if n > f.remaining {
		return nil, io.ErrUnexpectedEOF
	}
	b, err := f.src.Read(n)
	if err == nil {
		f.remaining -= n
	}
	return b, err
}

// ReadUntil fails without consuming anything past the body when delim is
// absent, but the bytes read up to that point are lost.
func (f *WorldFrameReader) ReadUntil(delim byte) ([]byte, error) {
	var out []byte
	for f.remaining > 0 {
		c, err := f.ReadByte()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		if c == delim {
			return out, nil
		}
	}
	return nil, io.ErrUnexpectedEOF
}

// Skip discards the unread part of the current body.
func (f *WorldFrameReader) Skip() (n int, err error) {
	n = f.remaining
	if _, err = f.src.Read(n); err == nil {
		f.remaining = 0
	}
	return
}

func (f *WorldFrameReader) Remaining() int {
	return f.remaining
}
