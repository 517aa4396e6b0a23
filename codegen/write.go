package codegen

import (
	"fmt"

	"github.com/gstoney/wowproto/schema"
)

func (g *containerGen) writeAppend(w *writer) error {
	w.open("func (v %s) AppendTo(b []byte) []byte", g.c.Name)
	if err := g.appendMembers(w, g.c.Members); err != nil {
		return err
	}
	w.ln("return b")
	w.close()
	return nil
}

func (g *containerGen) appendMembers(w *writer, members []schema.StructMember) error {
	for _, m := range members {
		switch m := m.(type) {
		case *schema.Definition:
			if err := g.appendDefinition(w, m); err != nil {
				return fmt.Errorf("field %s: %w", m.Name, err)
			}
		case *schema.IfStatement:
			err := g.branches(w, m, func(ms []schema.StructMember) error {
				return g.appendMembers(w, ms)
			})
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: member %T", schema.ErrUnhandledVariant, m)
		}
	}
	return nil
}

func (g *containerGen) appendDefinition(w *writer, d *schema.Definition) error {
	if d.Stored() {
		f := g.byName[d.Name]
		return g.appendValue(w, f, d.Type)
	}

	t, ok := backingInt(d.Type)
	if !ok {
		return fmt.Errorf("%w: unstored %T", ErrUnsupported, d.Type)
	}
	gt, err := intGoType(t)
	if err != nil {
		return err
	}
	_, isBool := d.Type.(schema.Bool)

	switch {
	case d.Constant != nil && isBool:
		w.ln("b = wire.AppendBool(b, %t, %d)", *d.Constant == 1, t.Size())
	case d.Constant != nil:
		w.ln("b = wire.Append%s(b, %d)", t, *d.Constant)
	case isBool:
		return fmt.Errorf("%w: bool length field", ErrUnsupported)
	case d.UsedAsSizeIn != "":
		arr := g.byName[d.UsedAsSizeIn]
		if arr == nil {
			return fmt.Errorf("%w: array %s", ErrUnresolved, d.UsedAsSizeIn)
		}
		// Unlike AppendString nothing is cut here. A count wider than its
		// prefix wraps, so callers keep slices within the prefix range.
		w.ln("b = wire.Append%s(b, %s(len(v.%s)))", t, gt, arr.name)
	case d.SizeOfFieldsBeforeSize:
		w.ln("b = wire.Append%s(b, %s(v.Size()))", t, gt)
	}
	return nil
}

func (g *containerGen) appendValue(w *writer, f *field, dt schema.DataType) error {
	val := f.value()
	switch dt := dt.(type) {
	case schema.Integer:
		w.ln("b = wire.Append%s(b, %s)", dt.Type, val)
	case schema.NamedInteger:
		w.ln("b = wire.Append%s(b, %s)", dt.Type, val)
	case schema.Bool:
		w.ln("b = wire.AppendBool(b, %s, %d)", val, dt.Type.Size())
	case schema.String:
		w.ln("b = wire.AppendString(b, %s)", val)
	case schema.CString:
		w.ln("b = wire.AppendCString(b, %s)", val)
	case schema.SizedCString:
		w.ln("b = wire.AppendSizedCString(b, %s)", val)
	case schema.FloatingPoint, schema.Population:
		w.ln("b = wire.AppendF32(b, %s)", val)
	case schema.IPAddress:
		w.ln("b = wire.AppendIPv4(b, %s)", val)
	case schema.Guid:
		w.ln("b = wire.AppendU64(b, %s)", val)
	case schema.PackedGuid:
		w.ln("b = wire.AppendPackedGuid(b, %s)", val)
	case schema.Enum, schema.Flag, schema.StructRef, schema.UpdateMask, schema.AuraMask:
		w.ln("b = %s.AppendTo(b)", val)
	case schema.Array:
		return g.appendArray(w, f, dt)
	default:
		return fmt.Errorf("%w: data type %T", schema.ErrUnhandledVariant, dt)
	}
	return nil
}

func (g *containerGen) appendArray(w *writer, f *field, a schema.Array) error {
	_, fixed := a.Size.(schema.FixedSize)
	if isByteArray(a) && !f.ptr {
		if fixed {
			w.ln("b = append(b, v.%s[:]...)", f.name)
		} else {
			w.ln("b = append(b, v.%s...)", f.name)
		}
		return nil
	}

	w.open("for _, e := range %s", f.value())
	defer w.close()

	switch at := a.Inner.(type) {
	case schema.ArrayInteger:
		if at.Type == schema.U8 {
			w.ln("b = append(b, e)")
		} else {
			w.ln("b = wire.Append%s(b, e)", at.Type)
		}
	case schema.ArrayCString:
		w.ln("b = wire.AppendCString(b, e)")
	case schema.ArrayGuid:
		w.ln("b = wire.AppendU64(b, e)")
	case schema.ArrayPackedGuid:
		w.ln("b = wire.AppendPackedGuid(b, e)")
	case schema.ArrayStruct:
		w.ln("b = e.AppendTo(b)")
	default:
		return fmt.Errorf("%w: array type %T", schema.ErrUnhandledVariant, a.Inner)
	}
	return nil
}

// bootstrapMessages are exchanged before the session key exists and are only
// ever sent with a plaintext header.
var bootstrapMessages = map[string]bool{
	"CMSG_AUTH_SESSION":   true,
	"SMSG_AUTH_CHALLENGE": true,
}

// encodedSize is the expression for the full body length, used to size the
// output buffer.
func (g *containerGen) encodedSize(static bool) string {
	if static {
		return sizeConstName(g.c.Name)
	}
	if sub := g.c.ManualSizeSubtraction; sub != 0 {
		return fmt.Sprintf("v.Size()+%d", sub)
	}
	return "v.Size()"
}

func (g *containerGen) writeMessage(w *writer, static bool) error {
	name, op := g.c.Name, g.c.Object.Opcode
	switch g.c.Object.Kind {
	case schema.KindCLogin, schema.KindSLogin:
		if op > 0xFF {
			return fmt.Errorf("%w: login opcode %#x", ErrUnsupported, op)
		}
		g.imports["io"] = true
		w.ln("func (%s) Opcode() uint8 { return 0x%02X }", name, op)
		w.blank()
		w.open("func (v %s) Encode(w io.Writer) error", name)
		w.ln("b := make([]byte, 0, 1+%s)", g.encodedSize(static))
		w.ln("b = append(b, 0x%02X)", op)
		w.ln("b = v.AppendTo(b)")
		w.ln("_, err := w.Write(b)")
		w.ln("return err")
		w.close()
		w.blank()
		if g.c.Object.Kind == schema.KindCLogin {
			w.ln("func (%s) LoginClientMessage() {}", name)
		} else {
			w.ln("func (%s) LoginServerMessage() {}", name)
		}
		return nil
	}

	if op > 0xFFFF {
		return fmt.Errorf("%w: world opcode %#x", ErrUnsupported, op)
	}
	g.imports["io"] = true
	w.ln("func (%s) Opcode() uint16 { return 0x%04X }", name, op)

	client := g.c.Object.Kind == schema.KindCMsg || g.c.Object.Kind == schema.KindMsg
	server := g.c.Object.Kind == schema.KindSMsg || g.c.Object.Kind == schema.KindMsg
	size := g.encodedSize(static)

	switch {
	case bootstrapMessages[name]:
		g.writeWorldEncode(w, "EncodeUnencrypted(w io.Writer)", "wire.NullHeaderCrypto{}", client, size)
	case g.c.Object.Kind == schema.KindMsg:
		g.writeWorldEncode(w, "EncodeClientEncrypted(w io.Writer, h wire.HeaderEncrypter)", "h", true, size)
		g.writeWorldEncode(w, "EncodeServerEncrypted(w io.Writer, h wire.HeaderEncrypter)", "h", false, size)
	default:
		g.writeWorldEncode(w, "EncodeEncrypted(w io.Writer, h wire.HeaderEncrypter)", "h", client, size)
	}

	if client {
		w.blank()
		w.ln("func (%s) WorldClientMessage() {}", name)
	}
	if server {
		w.blank()
		w.ln("func (%s) WorldServerMessage() {}", name)
	}
	return nil
}

func (g *containerGen) writeWorldEncode(w *writer, sig, crypto string, client bool, size string) {
	header, put := "wire.ServerHeaderSize", "wire.PutServerHeader"
	if client {
		header, put = "wire.ClientHeaderSize", "wire.PutClientHeader"
	}

	w.blank()
	w.open("func (v %s) %s error", g.c.Name, sig)
	w.ln("b := make([]byte, %s, %s+%s)", header, header, size)
	w.ln("b = v.AppendTo(b)")
	w.open("if err := %s(b, %s, 0x%04X); err != nil", put, crypto, g.c.Object.Opcode)
	w.ln("return err")
	w.close()
	w.ln("_, err := w.Write(b)")
	w.ln("return err")
	w.close()
}
