package codegen

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/gstoney/wowproto/schema"
)

// field is a definition stored on the generated struct.
type field struct {
	def  *schema.Definition
	name string
	typ  string
	// ptr is set for conditional fields that are not slices. nil means the
	// branch holding the field was not taken.
	ptr bool
}

// value is the field's expression inside a method with receiver or local v,
// dereferenced to the zero value when absent.
func (f *field) value() string {
	if f.ptr {
		return "wire.Value(v." + f.name + ")"
	}
	return "v." + f.name
}

type local struct {
	name string
	typ  string
}

// containerGen emits one struct or message.
type containerGen struct {
	s     *scope
	c     *schema.Container
	world bool

	fields []*field
	byName map[string]*field
	locals map[string]*local
	order  []*local
	used   map[string]string

	imports map[string]bool
}

func newContainerGen(s *scope, c *schema.Container) (*containerGen, error) {
	g := &containerGen{
		s:       s,
		c:       c,
		world:   isWorldMessage(c.Object.Kind),
		byName:  make(map[string]*field),
		locals:  make(map[string]*local),
		used:    make(map[string]string),
		imports: make(map[string]bool),
	}
	if err := g.collect(c.Members, false); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *containerGen) collect(members []schema.StructMember, cond bool) error {
	for _, m := range members {
		switch m := m.(type) {
		case *schema.Definition:
			if err := g.addDefinition(m, cond); err != nil {
				return err
			}
		case *schema.IfStatement:
			if err := g.collectIf(m); err != nil {
				return err
			}
		case *schema.Optional:
			return fmt.Errorf("%w: optional block %s", ErrUnsupported, m.Name)
		default:
			return fmt.Errorf("%w: member %T", schema.ErrUnhandledVariant, m)
		}
	}
	return nil
}

func (g *containerGen) collectIf(s *schema.IfStatement) error {
	if err := g.collect(s.Members, true); err != nil {
		return err
	}
	for _, e := range s.ElseIfs {
		if err := g.collectIf(e); err != nil {
			return err
		}
	}
	return g.collect(s.ElseMembers, true)
}

// claim reserves a Go identifier for a schema name.
func (g *containerGen) claim(ident, schemaName string) error {
	if prev, ok := g.used[ident]; ok && prev != schemaName {
		return fmt.Errorf("%w: %s and %s both map to %s", ErrDuplicate, prev, schemaName, ident)
	}
	g.used[ident] = schemaName
	return nil
}

func (g *containerGen) addDefinition(d *schema.Definition, cond bool) error {
	typ, err := g.s.goType(d.Type)
	if err != nil {
		return fmt.Errorf("field %s: %w", d.Name, err)
	}
	if _, ok := d.Type.(schema.IPAddress); ok {
		g.imports[netipImport] = true
	}

	if !d.Stored() {
		if l, ok := g.locals[d.Name]; ok {
			if l.typ != typ {
				return fmt.Errorf("%w: %s redeclared as %s", ErrUnsupported, d.Name, typ)
			}
			return nil
		}
		l := &local{name: localName(d.Name), typ: typ}
		if err := g.claim(l.name, d.Name); err != nil {
			return err
		}
		g.locals[d.Name] = l
		g.order = append(g.order, l)
		return nil
	}

	slice := false
	if a, ok := d.Type.(schema.Array); ok {
		_, fixed := a.Size.(schema.FixedSize)
		slice = !fixed
	}
	ptr := cond && !slice

	if f, ok := g.byName[d.Name]; ok {
		if f.typ != typ {
			return fmt.Errorf("%w: %s redeclared as %s", ErrUnsupported, d.Name, typ)
		}
		f.ptr = f.ptr || ptr
		return nil
	}
	f := &field{def: d, name: fieldName(d.Name), typ: typ, ptr: ptr}
	if err := g.claim(f.name, d.Name); err != nil {
		return err
	}
	g.byName[d.Name] = f
	g.fields = append(g.fields, f)
	return nil
}

func (g *containerGen) writeType(w *writer) {
	if len(g.fields) == 0 {
		w.ln("type %s struct{}", g.c.Name)
		return
	}
	w.open("type %s struct", g.c.Name)
	for _, f := range g.fields {
		star := ""
		if f.ptr {
			star = "*"
		}
		w.ln("%s %s%s", f.name, star, f.typ)
	}
	w.close()
}

// condition renders the guard of an if statement. The same expression is
// used on decode, encode and size so the three take the same branch.
func (g *containerGen) condition(c schema.Conditional) (string, error) {
	f := g.byName[c.Variable]
	if f == nil {
		if _, ok := g.locals[c.Variable]; ok {
			return "", fmt.Errorf("%w: condition on unstored field %s", ErrUnsupported, c.Variable)
		}
		return "", fmt.Errorf("%w: condition variable %s", ErrUnresolved, c.Variable)
	}

	val := f.value()
	switch eq := c.Equation.(type) {
	case schema.Equals:
		lit, err := g.conditionValue(f, eq.Values)
		if err != nil {
			return "", err
		}
		return val + " == " + lit, nil
	case schema.BitwiseAnd:
		lit, err := g.conditionValue(f, eq.Values)
		if err != nil {
			return "", err
		}
		return val + "&" + lit + " != 0", nil
	case schema.NotEquals:
		lit, err := g.conditionValue(f, []string{eq.Value})
		if err != nil {
			return "", err
		}
		return val + " != " + lit, nil
	}
	return "", fmt.Errorf("%w: equation %T", schema.ErrUnhandledVariant, c.Equation)
}

func (g *containerGen) conditionValue(f *field, values []string) (string, error) {
	if len(values) != 1 {
		return "", fmt.Errorf("%w: condition on %s with %d values", ErrNotImplemented, f.def.Name, len(values))
	}
	value := values[0]

	var d *schema.Definer
	switch dt := f.def.Type.(type) {
	case schema.Enum:
		d = g.s.enums[dt.Name]
	case schema.Flag:
		d = g.s.flags[dt.Name]
	case schema.Integer, schema.NamedInteger:
		if _, err := strconv.ParseInt(value, 0, 64); err != nil {
			return "", fmt.Errorf("%w: %s compared with %q", ErrUnsupported, f.def.Name, value)
		}
		return value, nil
	default:
		return "", fmt.Errorf("%w: condition on %s of %T", ErrUnsupported, f.def.Name, f.def.Type)
	}

	if d == nil {
		return "", fmt.Errorf("%w: type of %s", ErrUnresolved, f.def.Name)
	}
	if !slices.ContainsFunc(d.Fields, func(df schema.DefinerField) bool { return df.Name == value }) {
		return "", fmt.Errorf("%w: %s has no value %s", ErrUnresolved, d.Name, value)
	}
	return constName(d.Name, value), nil
}

// branches writes an if/else if/else chain, calling body for each branch.
func (g *containerGen) branches(w *writer, s *schema.IfStatement, body func([]schema.StructMember) error) error {
	cond, err := g.condition(s.Condition)
	if err != nil {
		return err
	}
	w.open("if %s", cond)
	if err = body(s.Members); err != nil {
		return err
	}
	for _, e := range s.ElseIfs {
		if cond, err = g.condition(e.Condition); err != nil {
			return err
		}
		w.reopen("else if %s", cond)
		if err = body(e.Members); err != nil {
			return err
		}
	}
	if len(s.ElseMembers) > 0 {
		w.reopen("else")
		if err = body(s.ElseMembers); err != nil {
			return err
		}
	}
	w.close()
	return nil
}

// hasSizeField reports whether c carries a size-of-fields-before-size member.
func hasSizeField(c *schema.Container) (found bool) {
	schema.WalkDefinitions(c.Members, func(d *schema.Definition) {
		found = found || d.SizeOfFieldsBeforeSize
	})
	return
}

// emit writes the type declaration and every method of the container.
func (g *containerGen) emit(w *writer) error {
	g.writeType(w)

	n, static := g.s.containerSize(g.c)
	if static {
		w.blank()
		w.ln("const %s = %d", sizeConstName(g.c.Name), n)
	}

	w.blank()
	if err := g.writeDecode(w); err != nil {
		return err
	}
	w.blank()
	if err := g.writeAppend(w); err != nil {
		return err
	}
	if !static || hasSizeField(g.c) || g.c.ManualSizeSubtraction != 0 {
		w.blank()
		if err := g.writeSize(w, n, static); err != nil {
			return err
		}
	}
	if g.c.Object.IsMessage() {
		w.blank()
		return g.writeMessage(w, static)
	}
	return nil
}
