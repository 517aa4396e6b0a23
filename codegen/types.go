package codegen

import (
	"fmt"

	"github.com/gstoney/wowproto/schema"
)

const netipImport = "net/netip"

var intGoTypes = map[schema.IntegerType]string{
	schema.U8:  "uint8",
	schema.I8:  "int8",
	schema.U16: "uint16",
	schema.I16: "int16",
	schema.U32: "uint32",
	schema.I32: "int32",
	schema.U48: "uint64",
	schema.U64: "uint64",
	schema.I64: "int64",
}

func intGoType(t schema.IntegerType) (string, error) {
	if s, ok := intGoTypes[t]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", schema.ErrUnknownInteger, t)
}

// backingInt is the integer a data type is encoded as, for types that are
// written as a plain integer.
func backingInt(dt schema.DataType) (schema.IntegerType, bool) {
	switch dt := dt.(type) {
	case schema.Integer:
		return dt.Type, true
	case schema.NamedInteger:
		return dt.Type, true
	case schema.Enum:
		return dt.Type, true
	case schema.Flag:
		return dt.Type, true
	case schema.Bool:
		return dt.Type, true
	}
	return "", false
}

// goType is the Go type a definition is stored as, without the pointer
// added for conditional fields.
func (s *scope) goType(dt schema.DataType) (string, error) {
	switch dt := dt.(type) {
	case schema.Integer:
		return intGoType(dt.Type)
	case schema.NamedInteger:
		return intGoType(dt.Type)
	case schema.Bool:
		return "bool", nil
	case schema.String, schema.CString, schema.SizedCString:
		return "string", nil
	case schema.FloatingPoint, schema.Population:
		return "float32", nil
	case schema.IPAddress:
		return "netip.Addr", nil
	case schema.Guid, schema.PackedGuid:
		return "uint64", nil
	case schema.Enum:
		if s.enums[dt.Name] == nil {
			return "", fmt.Errorf("%w: enum %s", ErrUnresolved, dt.Name)
		}
		return dt.Name, nil
	case schema.Flag:
		if s.flags[dt.Name] == nil {
			return "", fmt.Errorf("%w: flag %s", ErrUnresolved, dt.Name)
		}
		return dt.Name, nil
	case schema.StructRef:
		if s.structs[dt.Name] == nil {
			return "", fmt.Errorf("%w: struct %s", ErrUnresolved, dt.Name)
		}
		return dt.Name, nil
	case schema.Array:
		elem, err := s.elemType(dt.Inner)
		if err != nil {
			return "", err
		}
		if fixed, ok := dt.Size.(schema.FixedSize); ok {
			return fmt.Sprintf("[%d]%s", fixed.N, elem), nil
		}
		return "[]" + elem, nil
	case schema.UpdateMask:
		return "UpdateMask", nil
	case schema.AuraMask:
		return "AuraMask", nil
	case schema.Unsupported:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, dt.Tag)
	}
	return "", fmt.Errorf("%w: data type %T", schema.ErrUnhandledVariant, dt)
}

func (s *scope) elemType(at schema.ArrayType) (string, error) {
	switch at := at.(type) {
	case schema.ArrayInteger:
		if at.Type == schema.U8 {
			return "byte", nil
		}
		return intGoType(at.Type)
	case schema.ArrayStruct:
		if s.structs[at.Name] == nil {
			return "", fmt.Errorf("%w: struct %s", ErrUnresolved, at.Name)
		}
		return at.Name, nil
	case schema.ArrayCString:
		return "string", nil
	case schema.ArrayGuid, schema.ArrayPackedGuid:
		return "uint64", nil
	}
	return "", fmt.Errorf("%w: array type %T", schema.ErrUnhandledVariant, at)
}

func isByteArray(a schema.Array) bool {
	i, ok := a.Inner.(schema.ArrayInteger)
	return ok && i.Type == schema.U8
}

// staticSize is the encoded width of dt when it never depends on the value.
func (s *scope) staticSize(dt schema.DataType) (int, bool) {
	switch dt := dt.(type) {
	case schema.Integer, schema.NamedInteger, schema.Enum, schema.Flag, schema.Bool:
		t, _ := backingInt(dt)
		return t.Size(), t.Valid()
	case schema.FloatingPoint, schema.Population, schema.IPAddress:
		return 4, true
	case schema.Guid:
		return 8, true
	case schema.StructRef:
		c := s.structs[dt.Name]
		if c == nil {
			return 0, false
		}
		return s.containerSize(c)
	case schema.Array:
		fixed, ok := dt.Size.(schema.FixedSize)
		if !ok {
			return 0, false
		}
		n, ok := s.elemSize(dt.Inner)
		return n * fixed.N, ok
	}
	return 0, false
}

func (s *scope) elemSize(at schema.ArrayType) (int, bool) {
	switch at := at.(type) {
	case schema.ArrayInteger:
		return at.Type.Size(), at.Type.Valid()
	case schema.ArrayGuid:
		return 8, true
	case schema.ArrayStruct:
		c := s.structs[at.Name]
		if c == nil {
			return 0, false
		}
		return s.containerSize(c)
	}
	return 0, false
}

// containerSize reports the fixed encoded size of c, before any manual
// subtraction, when every member has a static width.
func (s *scope) containerSize(c *schema.Container) (int, bool) {
	if info, ok := s.sizes[c]; ok {
		return info.n, info.static
	}
	// Guard against self reference while the size is being computed.
	s.sizes[c] = sizeInfo{}

	n, static := 0, true
	for _, m := range c.Members {
		d, ok := m.(*schema.Definition)
		if !ok || d.Compressed {
			static = false
			break
		}
		w, ok := s.staticSize(d.Type)
		if !ok {
			static = false
			break
		}
		n += w
	}
	if !static {
		n = 0
	}
	s.sizes[c] = sizeInfo{n: n, static: static}
	return n, static
}

// scope is the set of named types visible in one unit.
type scope struct {
	enums   map[string]*schema.Definer
	flags   map[string]*schema.Definer
	structs map[string]*schema.Container
	sizes   map[*schema.Container]sizeInfo
}

type sizeInfo struct {
	n      int
	static bool
}
