package codegen

import (
	"testing"

	"github.com/gstoney/wowproto/schema"
)

func TestExclusion(t *testing.T) {
	endless := func(inner schema.ArrayType) schema.DataType {
		return schema.Array{Inner: inner, Size: schema.EndlessSize{}}
	}
	msg := schema.ObjectType{Kind: schema.KindSMsg, Opcode: 1}
	login := schema.ObjectType{Kind: schema.KindSLogin, Opcode: 1}

	tcs := []struct {
		desc     string
		object   schema.ObjectType
		tags     schema.Tags
		member   schema.StructMember
		excluded bool
	}{
		{
			desc:   "Plain integer",
			object: msg,
			member: &schema.Definition{Name: "a", Type: schema.Integer{Type: schema.U32}},
		},
		{
			desc:     "Compressed container",
			object:   msg,
			tags:     schema.Tags{Compressed: true},
			member:   &schema.Definition{Name: "a", Type: schema.Integer{Type: schema.U32}},
			excluded: true,
		},
		{
			desc:     "Unsupported type",
			object:   msg,
			member:   &schema.Definition{Name: "a", Type: schema.Unsupported{Tag: "AddonArray"}},
			excluded: true,
		},
		{
			desc:     "Optional block",
			object:   msg,
			member:   &schema.Optional{Name: "extra"},
			excluded: true,
		},
		{
			desc:   "Endless guids in a world message",
			object: msg,
			member: &schema.Definition{Name: "a", Type: endless(schema.ArrayGuid{})},
		},
		{
			desc:     "Endless structs",
			object:   msg,
			member:   &schema.Definition{Name: "a", Type: endless(schema.ArrayStruct{Name: "Item"})},
			excluded: true,
		},
		{
			desc:     "Endless array in a login message",
			object:   login,
			member:   &schema.Definition{Name: "a", Type: endless(schema.ArrayInteger{Type: schema.U8})},
			excluded: true,
		},
		{
			desc:   "Opaque struct inside a branch",
			object: msg,
			member: &schema.IfStatement{
				Condition: schema.Conditional{Variable: "a", Equation: schema.Equals{Values: []string{"X"}}},
				Members:   []schema.StructMember{&schema.Definition{Name: "m", Type: schema.StructRef{Name: "MonsterMove"}}},
			},
			excluded: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			c := &schema.Container{Name: "X", Object: tc.object, Tags: tc.tags, Members: []schema.StructMember{tc.member}}
			reason := exclusion(c)
			if excluded := reason != ""; excluded != tc.excluded {
				t.Errorf("excluded: got %v (%q), want %v", excluded, reason, tc.excluded)
			}
		})
	}
}
