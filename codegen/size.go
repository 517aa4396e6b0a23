package codegen

import (
	"fmt"

	"github.com/gstoney/wowproto/schema"
)

func (g *containerGen) writeSize(w *writer, n int, static bool) error {
	w.open("func (v %s) Size() int", g.c.Name)
	defer w.close()

	sub := ""
	if g.c.ManualSizeSubtraction != 0 {
		sub = fmt.Sprintf(" - %d", g.c.ManualSizeSubtraction)
	}
	if static {
		w.ln("return %d%s", n, sub)
		return nil
	}

	if err := g.writeAccumulator(w, "size", g.c.Members); err != nil {
		return err
	}
	w.ln("return size%s", sub)
	return nil
}

// writeAccumulator declares acc and adds the encoded size of members to it.
func (g *containerGen) writeAccumulator(w *writer, acc string, members []schema.StructMember) error {
	body := &writer{indent: w.indent}
	n, err := g.sizeMembers(body, acc, members)
	if err != nil {
		return err
	}
	w.ln("%s := %d", acc, n)
	w.sb.WriteString(body.String())
	return nil
}

// sizeMembers writes the value dependent part of the size of members and
// returns the sum of their fixed widths.
func (g *containerGen) sizeMembers(w *writer, acc string, members []schema.StructMember) (static int, err error) {
	for _, m := range members {
		switch m := m.(type) {
		case *schema.Definition:
			if n, ok := g.s.staticSize(m.Type); ok && !m.Compressed {
				static += n
				continue
			}
			if err = g.sizeDefinition(w, acc, m); err != nil {
				return
			}
		case *schema.IfStatement:
			err = g.branches(w, m, func(ms []schema.StructMember) error {
				body := &writer{indent: w.indent}
				n, err := g.sizeMembers(body, acc, ms)
				if err != nil {
					return err
				}
				if n > 0 {
					w.ln("%s += %d", acc, n)
				}
				w.sb.WriteString(body.String())
				return nil
			})
			if err != nil {
				return
			}
		default:
			err = fmt.Errorf("%w: member %T", schema.ErrUnhandledVariant, m)
			return
		}
	}
	return
}

// structSize is the full encoded size of a nested container value.
func (g *containerGen) structSize(name, val string) string {
	if c := g.s.structs[name]; c != nil && c.ManualSizeSubtraction != 0 {
		return fmt.Sprintf("%s.Size() + %d", val, c.ManualSizeSubtraction)
	}
	return val + ".Size()"
}

func (g *containerGen) sizeDefinition(w *writer, acc string, d *schema.Definition) error {
	f := g.byName[d.Name]
	if f == nil {
		return fmt.Errorf("%w: unstored field %s has no fixed width", ErrUnsupported, d.Name)
	}

	val := f.value()
	switch dt := d.Type.(type) {
	case schema.String:
		w.ln("%s += wire.StringSize(%s)", acc, val)
	case schema.CString:
		w.ln("%s += len(%s) + 1", acc, val)
	case schema.SizedCString:
		w.ln("%s += len(%s) + 5", acc, val)
	case schema.PackedGuid:
		w.ln("%s += wire.PackedGuidSize(%s)", acc, val)
	case schema.StructRef:
		w.ln("%s += %s", acc, g.structSize(dt.Name, val))
	case schema.UpdateMask, schema.AuraMask:
		w.ln("%s += %s.Size()", acc, val)
	case schema.Array:
		return g.sizeArray(w, acc, f, dt)
	default:
		return fmt.Errorf("%w: size of %T", schema.ErrUnhandledVariant, d.Type)
	}
	return nil
}

func (g *containerGen) sizeArray(w *writer, acc string, f *field, a schema.Array) error {
	if width, ok := g.s.elemSize(a.Inner); ok {
		if width == 1 {
			w.ln("%s += len(v.%s)", acc, f.name)
		} else {
			w.ln("%s += len(v.%s) * %d", acc, f.name, width)
		}
		return nil
	}

	var elem string
	switch at := a.Inner.(type) {
	case schema.ArrayCString:
		elem = "len(e) + 1"
	case schema.ArrayPackedGuid:
		elem = "wire.PackedGuidSize(e)"
	case schema.ArrayStruct:
		elem = g.structSize(at.Name, "e")
	default:
		return fmt.Errorf("%w: size of array of %T", schema.ErrUnhandledVariant, a.Inner)
	}

	w.open("for _, e := range %s", f.value())
	w.ln("%s += %s", acc, elem)
	w.close()
	return nil
}
