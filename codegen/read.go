package codegen

import (
	"fmt"
	"strings"

	"github.com/gstoney/wowproto/schema"
)

func (g *containerGen) writeDecode(w *writer) error {
	if g.world {
		w.open("func (p *%s) Decode(r wire.Reader, bodySize int) (err error)", g.c.Name)
	} else {
		w.open("func (p *%s) Decode(r wire.Reader) (err error)", g.c.Name)
	}
	w.ln("var v %s", g.c.Name)
	if len(g.order) > 0 {
		w.ln("var (")
		w.indent++
		for _, l := range g.order {
			w.ln("%s %s", l.name, l.typ)
		}
		w.indent--
		w.ln(")")
	}
	w.blank()

	if err := g.readMembers(w, g.c.Members, true); err != nil {
		return err
	}

	w.blank()
	w.ln("*p = v")
	w.ln("return")
	w.close()
	return nil
}

// consumesRest reports whether d reads up to the end of the message body.
func consumesRest(d *schema.Definition) bool {
	if d.Compressed {
		return true
	}
	a, ok := d.Type.(schema.Array)
	if !ok {
		return false
	}
	_, endless := a.Size.(schema.EndlessSize)
	return endless
}

func (g *containerGen) readMembers(w *writer, members []schema.StructMember, top bool) error {
	for i, m := range members {
		switch m := m.(type) {
		case *schema.Definition:
			if !consumesRest(m) {
				if err := g.readDefinition(w, m); err != nil {
					return err
				}
				continue
			}
			if !g.world || !top || i != len(members)-1 {
				return fmt.Errorf("%w: %s must be the last member of a world message", ErrUnsupported, m.Name)
			}
			if err := g.readRest(w, m, members[:i]); err != nil {
				return err
			}
		case *schema.IfStatement:
			err := g.branches(w, m, func(ms []schema.StructMember) error {
				return g.readMembers(w, ms, false)
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

func (g *containerGen) readDefinition(w *writer, d *schema.Definition) error {
	if !d.Stored() {
		l := g.locals[d.Name]
		if err := g.readValue(w, l.name, l.typ, false, d.Type); err != nil {
			return fmt.Errorf("field %s: %w", d.Name, err)
		}
		if d.Constant != nil || d.SizeOfFieldsBeforeSize {
			w.ln("_ = %s", l.name)
		}
		return nil
	}

	f := g.byName[d.Name]
	target := "v." + f.name
	if f.ptr {
		w.ln("%s = new(%s)", target, f.typ)
	}
	if err := g.readValue(w, target, f.typ, f.ptr, d.Type); err != nil {
		return fmt.Errorf("field %s: %w", d.Name, err)
	}
	return nil
}

// readValue decodes dt into target. When ptr is set target is a pointer that
// already points at a zero value.
func (g *containerGen) readValue(w *writer, target, typ string, ptr bool, dt schema.DataType) error {
	switch dt := dt.(type) {
	case schema.Enum, schema.Flag, schema.StructRef, schema.UpdateMask, schema.AuraMask:
		w.check("err = %s.Decode(r)", target)
		return nil
	case schema.Array:
		return g.readArray(w, target, typ, dt)
	}

	call, err := readCall(dt)
	if err != nil {
		return err
	}
	if ptr {
		target = "*" + target
	}
	w.check("%s, err = %s", target, call)
	return nil
}

func readCall(dt schema.DataType) (string, error) {
	switch dt := dt.(type) {
	case schema.Integer:
		return "wire.Read" + string(dt.Type) + "(r)", nil
	case schema.NamedInteger:
		return "wire.Read" + string(dt.Type) + "(r)", nil
	case schema.Bool:
		return fmt.Sprintf("wire.ReadBool(r, %d)", dt.Type.Size()), nil
	case schema.String:
		return "wire.ReadString(r)", nil
	case schema.CString:
		return "wire.ReadCString(r)", nil
	case schema.SizedCString:
		return "wire.ReadSizedCString(r)", nil
	case schema.FloatingPoint, schema.Population:
		return "wire.ReadF32(r)", nil
	case schema.IPAddress:
		return "wire.ReadIPv4(r)", nil
	case schema.Guid:
		return "wire.ReadU64(r)", nil
	case schema.PackedGuid:
		return "wire.ReadPackedGuid(r)", nil
	case schema.Unsupported:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, dt.Tag)
	}
	return "", fmt.Errorf("%w: data type %T", schema.ErrUnhandledVariant, dt)
}

func elemReadCall(at schema.ArrayType) (string, error) {
	switch at := at.(type) {
	case schema.ArrayInteger:
		return "wire.Read" + string(at.Type) + "(r)", nil
	case schema.ArrayCString:
		return "wire.ReadCString(r)", nil
	case schema.ArrayGuid:
		return "wire.ReadU64(r)", nil
	case schema.ArrayPackedGuid:
		return "wire.ReadPackedGuid(r)", nil
	}
	return "", fmt.Errorf("%w: array type %T", schema.ErrUnhandledVariant, at)
}

func (g *containerGen) readElem(w *writer, target string, at schema.ArrayType) error {
	if _, ok := at.(schema.ArrayStruct); ok {
		w.check("err = %s.Decode(r)", target)
		return nil
	}
	call, err := elemReadCall(at)
	if err != nil {
		return err
	}
	w.check("%s, err = %s", target, call)
	return nil
}

// countExpr is the element count of a variable array, taken from the
// already decoded length field.
func (g *containerGen) countExpr(name string) (string, error) {
	if l, ok := g.locals[name]; ok {
		return "int(" + l.name + ")", nil
	}
	if f, ok := g.byName[name]; ok {
		return "int(" + f.value() + ")", nil
	}
	return "", fmt.Errorf("%w: length field %s", ErrUnresolved, name)
}

func (g *containerGen) readArray(w *writer, target, typ string, a schema.Array) error {
	switch size := a.Size.(type) {
	case schema.FixedSize:
		if isByteArray(a) {
			w.check("err = wire.ReadInto(r, %s[:])", target)
			return nil
		}
	case schema.VariableSize:
		count, err := g.countExpr(size.Field)
		if err != nil {
			return err
		}
		if isByteArray(a) {
			w.check("%s, err = wire.ReadBytes(r, %s)", target, count)
			return nil
		}
		return g.readAppend(w, target, typ, count, a.Inner)
	case schema.EndlessSize:
		return fmt.Errorf("%w: endless array %s outside the message tail", ErrUnsupported, target)
	default:
		return fmt.Errorf("%w: array size %T", schema.ErrUnhandledVariant, a.Size)
	}

	w.open("for i := range %s", target)
	if err := g.readElem(w, target+"[i]", a.Inner); err != nil {
		return err
	}
	w.close()
	return nil
}

// readAppend decodes count elements, growing target as each one arrives.
// The count comes off the wire, so only a bounded capacity is reserved.
func (g *containerGen) readAppend(w *writer, target, typ, count string, at schema.ArrayType) error {
	w.ln("%s = make(%s, 0, wire.Prealloc(%s))", target, typ, count)
	w.open("for range %s", count)
	w.ln("var e %s", strings.TrimPrefix(typ, "[]"))
	if err := g.readElem(w, "e", at); err != nil {
		return err
	}
	w.ln("%s = append(%s, e)", target, target)
	w.close()
	return nil
}

// readRest decodes a member that runs to the end of the body. The bytes
// already consumed are recomputed from the members decoded before it.
func (g *containerGen) readRest(w *writer, d *schema.Definition, before []schema.StructMember) error {
	f := g.byName[d.Name]
	if f == nil {
		return fmt.Errorf("%w: unstored field %s consumes the body", ErrUnsupported, d.Name)
	}

	if err := g.writeAccumulator(w, "consumed", before); err != nil {
		return err
	}
	w.ln("var rest int")
	w.check("rest, err = wire.Remainder(bodySize, consumed)")

	target := "v." + f.name
	a, isArray := d.Type.(schema.Array)
	if !isArray {
		return fmt.Errorf("%w: %s of %T consumes the body", ErrUnsupported, d.Name, d.Type)
	}
	if isByteArray(a) {
		w.check("%s, err = wire.ReadBytes(r, rest)", target)
		return nil
	}

	width, ok := g.s.elemSize(a.Inner)
	if !ok {
		return fmt.Errorf("%w: endless array %s of variable width elements", ErrUnsupported, d.Name)
	}
	w.ln("%s = make(%s, rest/%d)", target, f.typ, width)
	w.open("for i := range %s", target)
	if err := g.readElem(w, target+"[i]", a.Inner); err != nil {
		return err
	}
	w.close()
	return nil
}
