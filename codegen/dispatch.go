package codegen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gstoney/wowproto/schema"
)

type dispatchCase struct {
	Opcode string
	Type   string
}

type dispatchData struct {
	Client []dispatchCase
	Server []dispatchCase
}

var loginDispatchTemplate = template.Must(template.New("login").Parse(`
// ClientMessage is any message a client sends in this revision.
type ClientMessage interface {
	LoginClientMessage()
	Opcode() uint8
	Encode(w io.Writer) error
}

// ServerMessage is any message a server sends in this revision.
type ServerMessage interface {
	LoginServerMessage()
	Opcode() uint8
	Encode(w io.Writer) error
}
{{range $dir := .}}
// Read{{$dir.Name}}Message reads an opcode byte and the message it introduces.
func Read{{$dir.Name}}Message(r wire.Reader) ({{$dir.Name}}Message, error) {
	opcode, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch opcode {
{{- range $dir.Cases}}
	case {{.Opcode}}:
		var m {{.Type}}
		if err = m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
{{- end}}
	}
	return nil, &wire.OpcodeError{Opcode: uint32(opcode), Direction: "{{$dir.Lower}}"}
}

// Expect{{$dir.Name}}Message reads the next message and reports whether it
// is a T.
func Expect{{$dir.Name}}Message[T {{$dir.Name}}Message](r wire.Reader) (v T, ok bool, err error) {
	m, err := Read{{$dir.Name}}Message(r)
	if err != nil {
		return
	}
	v, ok = m.(T)
	return
}
{{end}}`))

var worldDispatchTemplate = template.Must(template.New("world").Parse(`
// ClientMessage is any message a client sends in this revision.
type ClientMessage interface {
	WorldClientMessage()
	Opcode() uint16
}

// ServerMessage is any message a server sends in this revision.
type ServerMessage interface {
	WorldServerMessage()
	Opcode() uint16
}
{{range $dir := .}}
// Read{{$dir.Name}}MessageUnencrypted reads a message with a plaintext header.
func Read{{$dir.Name}}MessageUnencrypted(r wire.Reader) ({{$dir.Name}}Message, error) {
	return Read{{$dir.Name}}MessageEncrypted(r, wire.NullHeaderCrypto{})
}

// Read{{$dir.Name}}MessageEncrypted reads a header through h, then the whole
// body, and decodes the message the opcode names. Unknown opcodes are an
// error, but their body has been consumed.
func Read{{$dir.Name}}MessageEncrypted(r wire.Reader, h wire.HeaderDecrypter) ({{$dir.Name}}Message, error) {
	opcode, bodySize, err := wire.Read{{$dir.Name}}Header(r, h)
	if err != nil {
		return nil, err
	}
	body, err := wire.ReadBody(r, bodySize)
	if err != nil {
		return nil, err
	}

{{- if not $dir.Cases}}
	_ = body
{{- end}}
	switch opcode {
{{- range $dir.Cases}}
	case {{.Opcode}}:
		var m {{.Type}}
		if err = m.Decode(&body, bodySize); err != nil {
			return nil, err
		}
		return m, nil
{{- end}}
	}
	return nil, &wire.OpcodeError{Opcode: uint32(opcode), Direction: "{{$dir.Lower}}"}
}

func Expect{{$dir.Name}}MessageUnencrypted[T {{$dir.Name}}Message](r wire.Reader) (v T, ok bool, err error) {
	return Expect{{$dir.Name}}MessageEncrypted[T](r, wire.NullHeaderCrypto{})
}

// Expect{{$dir.Name}}MessageEncrypted reads the next message and reports
// whether it is a T.
func Expect{{$dir.Name}}MessageEncrypted[T {{$dir.Name}}Message](r wire.Reader, h wire.HeaderDecrypter) (v T, ok bool, err error) {
	m, err := Read{{$dir.Name}}MessageEncrypted(r, h)
	if err != nil {
		return
	}
	v, ok = m.(T)
	return
}
{{end}}`))

type direction struct {
	Name  string
	Lower string
	Cases []dispatchCase
}

// dispatchCases splits the unit's messages by the side that sends them.
// Bidirectional messages appear in both tables.
func dispatchCases(messages []*schema.Container, login bool) (d dispatchData) {
	for _, c := range messages {
		var op string
		if login {
			op = fmt.Sprintf("0x%02X", c.Object.Opcode)
		} else {
			op = fmt.Sprintf("0x%04X", c.Object.Opcode)
		}
		dc := dispatchCase{Opcode: op, Type: c.Name}
		switch c.Object.Kind {
		case schema.KindCLogin, schema.KindCMsg:
			d.Client = append(d.Client, dc)
		case schema.KindSLogin, schema.KindSMsg:
			d.Server = append(d.Server, dc)
		case schema.KindMsg:
			d.Client = append(d.Client, dc)
			d.Server = append(d.Server, dc)
		}
	}
	return
}

func emitDispatch(w *writer, d dispatchData, login bool) error {
	dirs := []direction{
		{Name: "Client", Lower: "client", Cases: d.Client},
		{Name: "Server", Lower: "server", Cases: d.Server},
	}
	t := worldDispatchTemplate
	if login {
		t = loginDispatchTemplate
	}

	var sb strings.Builder
	if err := t.Execute(&sb, dirs); err != nil {
		return err
	}
	w.sb.WriteString(strings.TrimLeft(sb.String(), "\n"))
	return nil
}
