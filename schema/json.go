package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var ErrMalformed = errors.New("malformed intermediate representation")

type rawIR struct {
	Login         rawObjects       `json:"login"`
	World         rawObjects       `json:"world"`
	LoginVersions []int            `json:"distinct_login_versions_other_than_all"`
	WorldVersions []rawWorldTarget `json:"world_versions"`

	VanillaUpdateMask []rawUpdateMaskField `json:"vanilla_update_mask"`
	TbcUpdateMask     []rawUpdateMaskField `json:"tbc_update_mask"`
	WrathUpdateMask   []rawUpdateMaskField `json:"wrath_update_mask"`
}

type rawObjects struct {
	Enums    rawList[rawDefiner]   `json:"enums"`
	Flags    rawList[rawDefiner]   `json:"flags"`
	Structs  rawList[rawContainer] `json:"structs"`
	Messages rawList[rawContainer] `json:"messages"`
}

type rawList[T any] struct {
	Value []T `json:"value"`
}

type rawWorldTarget struct {
	Name    string          `json:"name"`
	Version rawWorldVersion `json:"version"`
	Family  MaskFamily      `json:"family"`
}

type rawWorldVersion struct {
	Major int  `json:"major"`
	Minor *int `json:"minor"`
	Patch *int `json:"patch"`
	Build *int `json:"build"`
}

type rawUpdateMaskField struct {
	Object string `json:"object_name"`
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
	Type   string `json:"data_type"`
}

type rawDefiner struct {
	Name   string        `json:"name"`
	Type   IntegerType   `json:"integer_type"`
	Fields []rawDefField `json:"fields"`
	Tags   rawTags       `json:"tags"`
}

type rawDefField struct {
	Name  string `json:"name"`
	Value struct {
		Int      numeric `json:"int"`
		Original string  `json:"original"`
	} `json:"value"`
}

type rawContainer struct {
	Name       string `json:"name"`
	ObjectType struct {
		Tag    string `json:"container_type_tag"`
		Opcode uint32 `json:"opcode"`
	} `json:"object_type"`
	Members               []rawMember `json:"members"`
	Tags                  rawTags     `json:"tags"`
	ManualSizeSubtraction *int        `json:"manual_size_subtraction"`
}

type rawTags struct {
	Version *struct {
		Tag  string          `json:"version_tag"`
		Type json.RawMessage `json:"version_type"`
	} `json:"version"`
	Compressed presence `json:"compressed"`
}

type rawMember struct {
	Tag     string          `json:"struct_member_tag"`
	Content json.RawMessage `json:"struct_member_content"`
}

type rawDefinition struct {
	Name          string      `json:"name"`
	DataType      rawDataType `json:"data_type"`
	UsedAsSizeIn  string      `json:"used_as_size_in"`
	SizeOfFields  presence    `json:"size_of_fields_before_size"`
	ConstantValue *struct {
		Value numeric `json:"value"`
	} `json:"constant_value"`
	Tags struct {
		Compressed presence `json:"compressed"`
	} `json:"tags"`
}

type rawIf struct {
	Conditional struct {
		Variable  string `json:"variable_name"`
		Equations struct {
			Tag    string   `json:"conditional_equations_tag"`
			Values []string `json:"values"`
			Value  string   `json:"value"`
		} `json:"equations"`
	} `json:"conditional"`
	Members      []rawMember  `json:"members"`
	ElseIfs      []rawIf      `json:"else_if_statements"`
	ElseMembers  []rawMember  `json:"else_members"`
	OriginalType *rawDataType `json:"original_type"`
}

type rawOptional struct {
	Name    string      `json:"name"`
	Members []rawMember `json:"members"`
}

type rawDataType struct {
	Tag     string          `json:"data_type_tag"`
	Content json.RawMessage `json:"content"`
}

type rawTypeName struct {
	Type IntegerType `json:"integer_type"`
	Name string      `json:"type_name"`
}

type rawArray struct {
	Inner struct {
		Tag     string          `json:"array_type_tag"`
		Content json.RawMessage `json:"content"`
	} `json:"inner_type"`
	Size struct {
		Tag  string  `json:"array_size_tag"`
		Size numeric `json:"size"`
	} `json:"size"`
}

// presence is true for any value other than null or false, matching tags
// that are either absent or carry a payload.
type presence bool

func (p *presence) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*p = presence(!bytes.Equal(b, []byte("null")) && !bytes.Equal(b, []byte("false")))
	return nil
}

// numeric accepts a JSON number or a string holding one. The raw text is
// kept for string sizes that name a field.
type numeric struct {
	Value uint64
	Text  string
	IsNum bool
}

func (n *numeric) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = string(bytes.TrimSpace(b))
	}
	n.Text = s
	v, err := strconv.ParseUint(s, 0, 64)
	if err == nil {
		n.Value, n.IsNum = v, true
	}
	return nil
}

// Parse decodes an intermediate representation document.
func Parse(data []byte) (*IR, error) {
	var raw rawIR
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	ir := &IR{
		LoginVersions: raw.LoginVersions,
		UpdateMasks: map[MaskFamily][]UpdateMaskField{
			FamilyVanilla: convertMaskFields(raw.VanillaUpdateMask),
			FamilyTbc:     convertMaskFields(raw.TbcUpdateMask),
			FamilyWrath:   convertMaskFields(raw.WrathUpdateMask),
		},
	}

	var err error
	if ir.Login, err = convertObjects(raw.Login); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if ir.World, err = convertObjects(raw.World); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	for _, t := range raw.WorldVersions {
		ir.WorldTargets = append(ir.WorldTargets, WorldTarget{
			Name:    t.Name,
			Version: WorldVersion(t.Version),
			Family:  t.Family,
		})
	}
	if len(ir.WorldTargets) == 0 {
		ir.WorldTargets = DefaultWorldTargets()
	}
	return ir, nil
}

func convertMaskFields(raw []rawUpdateMaskField) []UpdateMaskField {
	fields := make([]UpdateMaskField, 0, len(raw))
	for _, f := range raw {
		fields = append(fields, UpdateMaskField(f))
	}
	return fields
}

func convertObjects(raw rawObjects) (o Objects, err error) {
	for _, d := range raw.Enums.Value {
		var def *Definer
		if def, err = convertDefiner(d); err != nil {
			return
		}
		o.Enums = append(o.Enums, def)
	}
	for _, d := range raw.Flags.Value {
		var def *Definer
		if def, err = convertDefiner(d); err != nil {
			return
		}
		o.Flags = append(o.Flags, def)
	}
	for _, c := range raw.Structs.Value {
		var con *Container
		if con, err = convertContainer(c); err != nil {
			return
		}
		o.Structs = append(o.Structs, con)
	}
	for _, c := range raw.Messages.Value {
		var con *Container
		if con, err = convertContainer(c); err != nil {
			return
		}
		o.Messages = append(o.Messages, con)
	}
	return
}

func convertDefiner(raw rawDefiner) (*Definer, error) {
	if !raw.Type.Valid() {
		return nil, fmt.Errorf("%s: %w %q", raw.Name, ErrUnknownInteger, raw.Type)
	}
	tags, err := convertTags(raw.Tags)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", raw.Name, err)
	}

	d := &Definer{Name: raw.Name, Type: raw.Type, Tags: tags}
	for _, f := range raw.Fields {
		if !f.Value.Int.IsNum {
			return nil, fmt.Errorf("%s.%s: %w: value %q", raw.Name, f.Name, ErrMalformed, f.Value.Int.Text)
		}
		d.Fields = append(d.Fields, DefinerField{Name: f.Name, Value: f.Value.Int.Value})
	}
	return d, nil
}

var containerKinds = map[string]ObjectKind{
	"Struct": KindStruct,
	"CLogin": KindCLogin,
	"SLogin": KindSLogin,
	"CMsg":   KindCMsg,
	"SMsg":   KindSMsg,
	"Msg":    KindMsg,
}

func convertContainer(raw rawContainer) (*Container, error) {
	kind, ok := containerKinds[raw.ObjectType.Tag]
	if !ok {
		return nil, fmt.Errorf("%s: %w: container type %q", raw.Name, ErrUnhandledVariant, raw.ObjectType.Tag)
	}
	tags, err := convertTags(raw.Tags)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", raw.Name, err)
	}
	members, err := convertMembers(raw.Members)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", raw.Name, err)
	}

	c := &Container{
		Name:    raw.Name,
		Object:  ObjectType{Kind: kind, Opcode: raw.ObjectType.Opcode},
		Members: members,
		Tags:    tags,
	}
	if raw.ManualSizeSubtraction != nil {
		c.ManualSizeSubtraction = *raw.ManualSizeSubtraction
	}
	return c, nil
}

func convertTags(raw rawTags) (t Tags, err error) {
	t.Compressed = bool(raw.Compressed)
	if raw.Version == nil {
		return
	}

	var vt struct {
		LoginTag string          `json:"login_version_tag"`
		WorldTag string          `json:"world_version_tag"`
		Versions json.RawMessage `json:"versions"`
	}
	if err = json.Unmarshal(raw.Version.Type, &vt); err != nil {
		return t, fmt.Errorf("%w: version type: %w", ErrMalformed, err)
	}

	switch raw.Version.Tag {
	case "Login":
		lv := LoginVersions{All: vt.LoginTag == "All"}
		if !lv.All {
			if err = json.Unmarshal(vt.Versions, &lv.Versions); err != nil {
				return t, fmt.Errorf("%w: login versions: %w", ErrMalformed, err)
			}
		}
		t.Version = lv
	case "World":
		wv := WorldVersions{All: vt.WorldTag == "All"}
		if !wv.All {
			var vs []rawWorldVersion
			if err = json.Unmarshal(vt.Versions, &vs); err != nil {
				return t, fmt.Errorf("%w: world versions: %w", ErrMalformed, err)
			}
			for _, v := range vs {
				wv.Versions = append(wv.Versions, WorldVersion(v))
			}
		}
		t.Version = wv
	default:
		err = fmt.Errorf("%w: version tag %q", ErrUnhandledVariant, raw.Version.Tag)
	}
	return
}

func convertMembers(raw []rawMember) ([]StructMember, error) {
	members := make([]StructMember, 0, len(raw))
	for _, m := range raw {
		member, err := convertMember(m)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

func convertMember(raw rawMember) (StructMember, error) {
	switch raw.Tag {
	case "Definition":
		var d rawDefinition
		if err := json.Unmarshal(raw.Content, &d); err != nil {
			return nil, fmt.Errorf("%w: definition: %w", ErrMalformed, err)
		}
		return convertDefinition(d)
	case "IfStatement":
		var s rawIf
		if err := json.Unmarshal(raw.Content, &s); err != nil {
			return nil, fmt.Errorf("%w: if statement: %w", ErrMalformed, err)
		}
		return convertIf(s)
	case "Optional":
		var o rawOptional
		if err := json.Unmarshal(raw.Content, &o); err != nil {
			return nil, fmt.Errorf("%w: optional: %w", ErrMalformed, err)
		}
		members, err := convertMembers(o.Members)
		if err != nil {
			return nil, err
		}
		return &Optional{Name: o.Name, Members: members}, nil
	}
	return nil, fmt.Errorf("%w: struct member %q", ErrUnhandledVariant, raw.Tag)
}

func convertDefinition(raw rawDefinition) (*Definition, error) {
	ty, err := convertDataType(raw.DataType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", raw.Name, err)
	}

	d := &Definition{
		Name:                   raw.Name,
		Type:                   ty,
		UsedAsSizeIn:           raw.UsedAsSizeIn,
		SizeOfFieldsBeforeSize: bool(raw.SizeOfFields),
		Compressed:             bool(raw.Tags.Compressed),
	}
	if raw.ConstantValue != nil {
		if !raw.ConstantValue.Value.IsNum {
			return nil, fmt.Errorf("%s: %w: constant %q", raw.Name, ErrMalformed, raw.ConstantValue.Value.Text)
		}
		v := raw.ConstantValue.Value.Value
		d.Constant = &v
	}
	return d, nil
}

func convertIf(raw rawIf) (*IfStatement, error) {
	s := &IfStatement{Condition: Conditional{Variable: raw.Conditional.Variable}}

	eq := raw.Conditional.Equations
	values := eq.Values
	if len(values) == 0 && eq.Value != "" {
		values = []string{eq.Value}
	}
	switch eq.Tag {
	case "Equals":
		s.Condition.Equation = Equals{Values: values}
	case "BitwiseAnd":
		s.Condition.Equation = BitwiseAnd{Values: values}
	case "NotEquals":
		if len(values) != 1 {
			return nil, fmt.Errorf("%w: not-equals on %s needs one value", ErrMalformed, raw.Conditional.Variable)
		}
		s.Condition.Equation = NotEquals{Value: values[0]}
	default:
		return nil, fmt.Errorf("%w: conditional equation %q", ErrUnhandledVariant, eq.Tag)
	}

	var err error
	if s.Members, err = convertMembers(raw.Members); err != nil {
		return nil, err
	}
	if s.ElseMembers, err = convertMembers(raw.ElseMembers); err != nil {
		return nil, err
	}
	for _, e := range raw.ElseIfs {
		var elseIf *IfStatement
		if elseIf, err = convertIf(e); err != nil {
			return nil, err
		}
		s.ElseIfs = append(s.ElseIfs, elseIf)
	}
	if raw.OriginalType != nil {
		if s.OriginalType, err = convertDataType(*raw.OriginalType); err != nil {
			return nil, err
		}
	}
	return s, nil
}

var namedIntegers = map[string]IntegerType{
	"DateTime":     U32,
	"Gold":         U32,
	"Seconds":      U32,
	"Milliseconds": U32,
	"Level":        U8,
	"Level16":      U16,
	"Level32":      U32,
}

var unsupportedTypes = map[string]bool{
	"NamedGuid":                  true,
	"MonsterMoveSpline":          true,
	"AchievementDoneArray":       true,
	"AchievementInProgressArray": true,
	"EnchantMask":                true,
	"InspectTalentGearMask":      true,
	"VariableItemRandomProperty": true,
	"AddonArray":                 true,
}

func convertDataType(raw rawDataType) (DataType, error) {
	intContent := func() (IntegerType, error) {
		var it IntegerType
		if err := json.Unmarshal(raw.Content, &it); err != nil {
			return "", fmt.Errorf("%w: %s content: %w", ErrMalformed, raw.Tag, err)
		}
		if !it.Valid() {
			return "", fmt.Errorf("%w %q", ErrUnknownInteger, it)
		}
		return it, nil
	}
	named := func() (rawTypeName, error) {
		var tn rawTypeName
		if err := json.Unmarshal(raw.Content, &tn); err != nil {
			return tn, fmt.Errorf("%w: %s content: %w", ErrMalformed, raw.Tag, err)
		}
		return tn, nil
	}

	switch raw.Tag {
	case "Integer":
		it, err := intContent()
		return Integer{Type: it}, err
	case "Bool":
		it, err := intContent()
		return Bool{Type: it}, err
	case "String":
		return String{}, nil
	case "CString":
		return CString{}, nil
	case "SizedCString":
		return SizedCString{}, nil
	case "FloatingPoint":
		return FloatingPoint{}, nil
	case "Population":
		return Population{}, nil
	case "IpAddress":
		return IPAddress{}, nil
	case "Guid":
		return Guid{}, nil
	case "PackedGuid":
		return PackedGuid{}, nil
	case "UpdateMask":
		return UpdateMask{}, nil
	case "AuraMask":
		return AuraMask{}, nil
	case "Enum", "Flag":
		tn, err := named()
		if err != nil {
			return nil, err
		}
		if !tn.Type.Valid() {
			return nil, fmt.Errorf("%s %s: %w %q", raw.Tag, tn.Name, ErrUnknownInteger, tn.Type)
		}
		if raw.Tag == "Enum" {
			return Enum{Name: tn.Name, Type: tn.Type}, nil
		}
		return Flag{Name: tn.Name, Type: tn.Type}, nil
	case "Struct":
		tn, err := named()
		return StructRef{Name: tn.Name}, err
	case "Array":
		return convertArray(raw.Content)
	}

	if it, ok := namedIntegers[raw.Tag]; ok {
		return NamedInteger{Tag: raw.Tag, Type: it}, nil
	}
	if unsupportedTypes[raw.Tag] {
		return Unsupported{Tag: raw.Tag}, nil
	}
	return nil, fmt.Errorf("%w: data type %q", ErrUnhandledVariant, raw.Tag)
}

func convertArray(content json.RawMessage) (DataType, error) {
	var raw rawArray
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: array: %w", ErrMalformed, err)
	}

	var a Array
	switch raw.Inner.Tag {
	case "Integer":
		var it IntegerType
		if err := json.Unmarshal(raw.Inner.Content, &it); err != nil || !it.Valid() {
			return nil, fmt.Errorf("%w: array element integer %s", ErrMalformed, raw.Inner.Content)
		}
		a.Inner = ArrayInteger{Type: it}
	case "Struct":
		var tn rawTypeName
		if err := json.Unmarshal(raw.Inner.Content, &tn); err != nil {
			return nil, fmt.Errorf("%w: array element struct: %w", ErrMalformed, err)
		}
		a.Inner = ArrayStruct{Name: tn.Name}
	case "CString":
		a.Inner = ArrayCString{}
	case "Guid":
		a.Inner = ArrayGuid{}
	case "PackedGuid":
		a.Inner = ArrayPackedGuid{}
	default:
		return nil, fmt.Errorf("%w: array element %q", ErrUnhandledVariant, raw.Inner.Tag)
	}

	switch raw.Size.Tag {
	case "Fixed":
		if !raw.Size.Size.IsNum {
			return nil, fmt.Errorf("%w: fixed array size %q", ErrMalformed, raw.Size.Size.Text)
		}
		a.Size = FixedSize{N: int(raw.Size.Size.Value)}
	case "Variable":
		a.Size = VariableSize{Field: raw.Size.Size.Text}
	case "Endless":
		a.Size = EndlessSize{}
	default:
		return nil, fmt.Errorf("%w: array size %q", ErrUnhandledVariant, raw.Size.Tag)
	}
	return a, nil
}
