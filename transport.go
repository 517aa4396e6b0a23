package wowproto

import (
	"bufio"
	"errors"
	"io"

	"github.com/gstoney/wowproto/wire"
)

var ErrPacketTooBig = errors.New("packet too big")

type TransportConfig struct {
	// MaxReadLen caps a single read, which bounds what a malicious length
	// field can make the decoder allocate. Zero means 1 << 16.
	MaxReadLen int
}

// Transport provides buffered read and write access to a connection.
// It does not decode messages; generated decoders consume Reader and
// generated encoders write to Writer.
type Transport struct {
	reader *wire.StreamReader
	writer *bufio.Writer

	cfg TransportConfig
}

func NewTransport(r io.Reader, w io.Writer, cfg TransportConfig) *Transport {
	if cfg.MaxReadLen <= 0 {
		cfg.MaxReadLen = 1 << 16
	}

	t := &Transport{cfg: cfg}
	if r != nil {
		t.reader = wire.NewStreamReader(r)
	}
	if w != nil {
		bw, ok := w.(*bufio.Writer)
		if !ok {
			bw = bufio.NewWriter(w)
		}
		t.writer = bw
	}
	return t
}

type limitedReader struct {
	*wire.StreamReader
	max int
}

func (l limitedReader) Read(n int) ([]byte, error) {
	if n > l.max {
		return nil, ErrPacketTooBig
	}
	return l.StreamReader.Read(n)
}

// Reader returns the inbound stream as a wire.Reader.
func (t *Transport) Reader() wire.Reader {
	return limitedReader{t.reader, t.cfg.MaxReadLen}
}

// WorldFrames returns a frame reader over the inbound stream for messages
// sent by the server when server is set.
func (t *Transport) WorldFrames(h wire.HeaderDecrypter, server bool) *WorldFrameReader {
	return NewWorldFrameReader(t.Reader(), h, server)
}

// Send writes one complete encoded message and flushes it.
func (t *Transport) Send(b []byte) error {
	if _, err := t.writer.Write(b); err != nil {
		return err
	}
	return t.writer.Flush()
}

func (t *Transport) Flush() error {
	return t.writer.Flush()
}

// Writer adapts Send to io.Writer for the generated Encode methods, which
// hand over each message in a single Write.
func (t *Transport) Writer() io.Writer {
	return sendWriter{t}
}

type sendWriter struct{ t *Transport }

func (s sendWriter) Write(b []byte) (int, error) {
	if err := s.t.Send(b); err != nil {
		return 0, err
	}
	return len(b), nil
}
