// Package schema holds the in-memory form of the message intermediate
// representation and the version rules that decide which objects exist in
// which protocol revision.
package schema

import (
	"errors"
	"fmt"
)

var (
	ErrUnhandledVariant = errors.New("unhandled variant")
	ErrUnknownInteger   = errors.New("unknown integer type")
)

// IntegerType is the wire width and signedness of an integer.
type IntegerType string

const (
	U8  IntegerType = "U8"
	I8  IntegerType = "I8"
	U16 IntegerType = "U16"
	I16 IntegerType = "I16"
	U32 IntegerType = "U32"
	I32 IntegerType = "I32"
	U48 IntegerType = "U48"
	U64 IntegerType = "U64"
	I64 IntegerType = "I64"
)

// Size is the encoded width in bytes.
func (t IntegerType) Size() int {
	switch t {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32:
		return 4
	case U48:
		return 6
	case U64, I64:
		return 8
	}
	return 0
}

func (t IntegerType) Valid() bool {
	return t.Size() != 0
}

func (t IntegerType) Signed() bool {
	return t == I8 || t == I16 || t == I32 || t == I64
}

// DataType is the closed set of wire types a Definition may carry.
type DataType interface {
	dataType()
}

type (
	Integer struct{ Type IntegerType }
	// Bool is an integer of Type where only 1 means true.
	Bool          struct{ Type IntegerType }
	String        struct{}
	CString       struct{}
	SizedCString  struct{}
	FloatingPoint struct{}
	// Population is a realm load indicator stored as a float.
	Population struct{}
	IPAddress  struct{}
	Guid       struct{}
	PackedGuid struct{}
	// NamedInteger is an integer with a domain name, such as Gold or Level.
	NamedInteger struct {
		Tag  string
		Type IntegerType
	}
	Enum struct {
		Name string
		Type IntegerType
	}
	Flag struct {
		Name string
		Type IntegerType
	}
	StructRef struct{ Name string }
	Array     struct {
		Inner ArrayType
		Size  ArraySize
	}
	UpdateMask struct{}
	AuraMask   struct{}
	// Unsupported is a type that has no encoding rule. Containers using it
	// are excluded from generation.
	Unsupported struct{ Tag string }
)

func (Integer) dataType()       {}
func (Bool) dataType()          {}
func (String) dataType()        {}
func (CString) dataType()       {}
func (SizedCString) dataType()  {}
func (FloatingPoint) dataType() {}
func (Population) dataType()    {}
func (IPAddress) dataType()     {}
func (Guid) dataType()          {}
func (PackedGuid) dataType()    {}
func (NamedInteger) dataType()  {}
func (Enum) dataType()          {}
func (Flag) dataType()          {}
func (StructRef) dataType()     {}
func (Array) dataType()         {}
func (UpdateMask) dataType()    {}
func (AuraMask) dataType()      {}
func (Unsupported) dataType()   {}

// ArrayType is the element type of an Array.
type ArrayType interface {
	arrayType()
}

type (
	ArrayInteger    struct{ Type IntegerType }
	ArrayStruct     struct{ Name string }
	ArrayCString    struct{}
	ArrayGuid       struct{}
	ArrayPackedGuid struct{}
)

func (ArrayInteger) arrayType()    {}
func (ArrayStruct) arrayType()     {}
func (ArrayCString) arrayType()    {}
func (ArrayGuid) arrayType()       {}
func (ArrayPackedGuid) arrayType() {}

// ArraySize is how an Array knows its element count.
type ArraySize interface {
	arraySize()
}

type (
	FixedSize struct{ N int }
	// VariableSize takes the count from an earlier sibling field.
	VariableSize struct{ Field string }
	// EndlessSize consumes the rest of the message body.
	EndlessSize struct{}
)

func (FixedSize) arraySize()    {}
func (VariableSize) arraySize() {}
func (EndlessSize) arraySize()  {}

// StructMember is one entry of a container's ordered member list.
type StructMember interface {
	structMember()
}

// Definition is a named, typed field.
type Definition struct {
	Name string
	Type DataType

	// UsedAsSizeIn names the array whose length this field carries.
	UsedAsSizeIn string
	// SizeOfFieldsBeforeSize marks a field holding the container's own size.
	SizeOfFieldsBeforeSize bool
	Constant               *uint64
	Compressed             bool
}

// Stored reports whether the field is kept on the decoded value. Length,
// size and constant fields are recomputed on write.
func (d *Definition) Stored() bool {
	return d.UsedAsSizeIn == "" && !d.SizeOfFieldsBeforeSize && d.Constant == nil
}

type IfStatement struct {
	Condition    Conditional
	Members      []StructMember
	ElseIfs      []*IfStatement
	ElseMembers  []StructMember
	OriginalType DataType
}

// Optional is an all-or-nothing group at the tail of a container.
type Optional struct {
	Name    string
	Members []StructMember
}

func (*Definition) structMember()  {}
func (*IfStatement) structMember() {}
func (*Optional) structMember()    {}

type Conditional struct {
	Variable string
	Equation Equation
}

// Equation is the comparison of a Conditional.
type Equation interface {
	equation()
}

type (
	Equals     struct{ Values []string }
	BitwiseAnd struct{ Values []string }
	NotEquals  struct{ Value string }
)

func (Equals) equation()     {}
func (BitwiseAnd) equation() {}
func (NotEquals) equation()  {}

type ObjectKind int

const (
	KindStruct ObjectKind = iota
	KindCLogin
	KindSLogin
	KindCMsg
	KindSMsg
	KindMsg
)

var objectKindNames = map[ObjectKind]string{
	KindStruct: "Struct",
	KindCLogin: "CLogin",
	KindSLogin: "SLogin",
	KindCMsg:   "CMsg",
	KindSMsg:   "SMsg",
	KindMsg:    "Msg",
}

func (k ObjectKind) String() string {
	if s, ok := objectKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ObjectKind(%d)", int(k))
}

type ObjectType struct {
	Kind   ObjectKind
	Opcode uint32
}

func (o ObjectType) IsMessage() bool {
	return o.Kind != KindStruct
}

// Tags carry the version applicability of an object.
type Tags struct {
	Version    Versions
	Compressed bool
}

type Definer struct {
	Name   string
	Type   IntegerType
	Fields []DefinerField
	Tags   Tags
}

type DefinerField struct {
	Name  string
	Value uint64
}

type Container struct {
	Name    string
	Object  ObjectType
	Members []StructMember
	Tags    Tags

	// ManualSizeSubtraction is taken off the computed size, for size fields
	// that do not count their own header.
	ManualSizeSubtraction int
}

// Objects is one protocol family's namespace.
type Objects struct {
	Enums    []*Definer
	Flags    []*Definer
	Structs  []*Container
	Messages []*Container
}

func findDefiner(ds []*Definer, name string) *Definer {
	for _, d := range ds {
		if d.Name == name {
			return d
		}
	}
	return nil
}

func findContainer(cs []*Container, name string) *Container {
	for _, c := range cs {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (o *Objects) Enum(name string) *Definer     { return findDefiner(o.Enums, name) }
func (o *Objects) Flag(name string) *Definer     { return findDefiner(o.Flags, name) }
func (o *Objects) Struct(name string) *Container { return findContainer(o.Structs, name) }

// MaskFamily selects the aura and update mask layout of a world revision.
type MaskFamily string

const (
	FamilyVanilla MaskFamily = "vanilla"
	FamilyTbc     MaskFamily = "tbc"
	FamilyWrath   MaskFamily = "wrath"
)

// WorldTarget is a concrete world revision that receives an output unit.
type WorldTarget struct {
	Name    string
	Version WorldVersion
	Family  MaskFamily
}

// UpdateMaskField is a named offset into an object's update fields.
type UpdateMaskField struct {
	Object string
	Name   string
	Offset int
	Size   int
	Type   string
}

type IR struct {
	Login Objects
	World Objects

	LoginVersions []int
	WorldTargets  []WorldTarget
	UpdateMasks   map[MaskFamily][]UpdateMaskField
}

func intPtr(v int) *int { return &v }

// DefaultWorldTargets are the revisions generated when the IR lists none.
func DefaultWorldTargets() []WorldTarget {
	return []WorldTarget{
		{Name: "vanilla", Version: WorldVersion{1, intPtr(12), intPtr(1), intPtr(5875)}, Family: FamilyVanilla},
		{Name: "tbc", Version: WorldVersion{2, intPtr(4), intPtr(3), intPtr(8606)}, Family: FamilyTbc},
		{Name: "wrath", Version: WorldVersion{3, intPtr(3), intPtr(5), intPtr(12340)}, Family: FamilyWrath},
	}
}

// WalkDefinitions calls fn for every Definition in members, descending into
// every branch of if statements and optional blocks.
func WalkDefinitions(members []StructMember, fn func(*Definition)) {
	for _, m := range members {
		switch m := m.(type) {
		case *Definition:
			fn(m)
		case *IfStatement:
			walkIf(m, fn)
		case *Optional:
			WalkDefinitions(m.Members, fn)
		}
	}
}

func walkIf(s *IfStatement, fn func(*Definition)) {
	WalkDefinitions(s.Members, fn)
	for _, e := range s.ElseIfs {
		walkIf(e, fn)
	}
	WalkDefinitions(s.ElseMembers, fn)
}

// FindDefinition returns the first definition named name anywhere in members.
func FindDefinition(members []StructMember, name string) (found *Definition) {
	WalkDefinitions(members, func(d *Definition) {
		if found == nil && d.Name == name {
			found = d
		}
	})
	return
}
