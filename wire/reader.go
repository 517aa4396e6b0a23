package wire

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"slices"
)

// Reader is the byte source consumed by generated decoders.
//
// Read returns exactly n bytes or fails. ReadUntil returns every byte up to
// and including delim, failing if the source ends first.
type Reader interface {
	io.ByteReader
	Read(n int) ([]byte, error)
	ReadUntil(delim byte) ([]byte, error)
}

var ErrNegativeLength = errors.New("negative length")

// MaxPrealloc caps the capacity reserved for elements whose count comes
// off the wire. Larger counts grow the slice as elements actually decode.
const MaxPrealloc = 256

// Prealloc is the initial capacity for a slice of n decoded elements.
func Prealloc(n int) int {
	return min(max(n, 0), MaxPrealloc)
}

// streamChunk bounds each allocation of StreamReader.Read.
const streamChunk = 4096

// FrameReader reads from a single in-memory message body.
type FrameReader struct {
	buf []byte
	off int
}

func NewFrameReader(buf []byte) FrameReader {
	return FrameReader{
		buf: buf,
		off: 0,
	}
}

func (r FrameReader) Remaining() int {
	return len(r.buf) - r.off
}

// Consumed reports how many bytes have been read so far.
func (r FrameReader) Consumed() int {
	return r.off
}

func (r *FrameReader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *FrameReader) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if r.off+n > len(r.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *FrameReader) ReadUntil(delim byte) ([]byte, error) {
	i := bytes.IndexByte(r.buf[r.off:], delim)
	if i < 0 {
		r.off = len(r.buf)
		return nil, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+i+1]
	r.off += i + 1
	return b, nil
}

// StreamReader adapts a buffered stream, such as a connection, to Reader.
// Slices returned by Read are freshly allocated and owned by the caller.
type StreamReader struct {
	br *bufio.Reader
}

// NewStreamReader wraps r with bufio unless it already is a *bufio.Reader.
func NewStreamReader(r io.Reader) *StreamReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &StreamReader{br: br}
}

func (s *StreamReader) ReadByte() (byte, error) {
	return s.br.ReadByte()
}

func (s *StreamReader) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	// Buffer only what has arrived so a bogus length fails at EOF
	// instead of allocating it all up front.
	b := make([]byte, 0, min(n, streamChunk))
	for len(b) < n {
		k := min(n-len(b), streamChunk)
		b = slices.Grow(b, k)
		m, err := io.ReadFull(s.br, b[len(b):len(b)+k])
		b = b[:len(b)+m]
		if err != nil {
			if err == io.EOF && len(b) > 0 {
				err = io.ErrUnexpectedEOF
			}
			return b, err
		}
	}
	return b, nil
}

func (s *StreamReader) ReadUntil(delim byte) ([]byte, error) {
	b, err := s.br.ReadBytes(delim)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return b, err
}
