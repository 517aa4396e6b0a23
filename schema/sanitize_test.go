package schema

import "testing"

func TestSanitize(t *testing.T) {
	c := &Container{
		Name: "CharacterInfo",
		Members: []StructMember{
			&Definition{Name: "class", Type: Enum{Name: "Class", Type: U8}},
			&Definition{Name: "range", Type: Integer{Type: U8}, UsedAsSizeIn: "type"},
			&Definition{Name: "type", Type: Array{Inner: ArrayInteger{Type: U8}, Size: VariableSize{Field: "range"}}},
			&IfStatement{
				Condition: Conditional{Variable: "class", Equation: Equals{Values: []string{"WARRIOR"}}},
				Members:   []StructMember{&Definition{Name: "rage", Type: Integer{Type: U32}}},
			},
		},
	}
	ir := &IR{World: Objects{Structs: []*Container{c}}}

	Sanitize(ir)

	if d := c.Members[0].(*Definition); d.Name != "class_type" {
		t.Errorf("class: got %q", d.Name)
	}
	if d := c.Members[1].(*Definition); d.Name != "range_type" || d.UsedAsSizeIn != "type_type" {
		t.Errorf("length field: got %q used in %q", d.Name, d.UsedAsSizeIn)
	}
	arr := c.Members[2].(*Definition)
	if size := arr.Type.(Array).Size.(VariableSize); size.Field != "range_type" {
		t.Errorf("array size: got %q", size.Field)
	}
	if s := c.Members[3].(*IfStatement); s.Condition.Variable != "class_type" {
		t.Errorf("condition: got %q", s.Condition.Variable)
	}
	if d := FindDefinition(c.Members, "rage"); d == nil {
		t.Errorf("unreserved name was changed")
	}
}
