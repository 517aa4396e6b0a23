package codegen

import (
	"fmt"

	"github.com/gstoney/wowproto/schema"
)

// opaqueStructs are referenced by the IR but have no encoding rule.
var opaqueStructs = map[string]bool{
	"Object":      true,
	"MonsterMove": true,
}

func isWorldMessage(k schema.ObjectKind) bool {
	return k == schema.KindCMsg || k == schema.KindSMsg || k == schema.KindMsg
}

// exclusion returns why c cannot be generated in any unit, or "" when it can.
// Exclusions are silent: they are reported but are not failures.
func exclusion(c *schema.Container) string {
	if c.Tags.Compressed {
		return "compressed container"
	}
	if hasOptional(c.Members) {
		return "optional block"
	}

	var reason string
	schema.WalkDefinitions(c.Members, func(d *schema.Definition) {
		if reason == "" {
			reason = definitionExclusion(c, d)
		}
	})
	return reason
}

func hasOptional(members []schema.StructMember) bool {
	for _, m := range members {
		switch m := m.(type) {
		case *schema.Optional:
			return true
		case *schema.IfStatement:
			if ifHasOptional(m) {
				return true
			}
		}
	}
	return false
}

func ifHasOptional(s *schema.IfStatement) bool {
	if hasOptional(s.Members) || hasOptional(s.ElseMembers) {
		return true
	}
	for _, e := range s.ElseIfs {
		if ifHasOptional(e) {
			return true
		}
	}
	return false
}

func definitionExclusion(c *schema.Container, d *schema.Definition) string {
	world := isWorldMessage(c.Object.Kind)
	if d.Compressed && !world {
		return fmt.Sprintf("compressed field %s outside a world message", d.Name)
	}

	switch dt := d.Type.(type) {
	case schema.Unsupported:
		return fmt.Sprintf("field %s has unsupported type %s", d.Name, dt.Tag)
	case schema.StructRef:
		if opaqueStructs[dt.Name] {
			return fmt.Sprintf("field %s uses %s", d.Name, dt.Name)
		}
	case schema.Array:
		if s, ok := dt.Inner.(schema.ArrayStruct); ok && opaqueStructs[s.Name] {
			return fmt.Sprintf("field %s uses %s", d.Name, s.Name)
		}
		if _, ok := dt.Size.(schema.EndlessSize); !ok {
			break
		}
		if !world {
			return fmt.Sprintf("endless array %s outside a world message", d.Name)
		}
		if d.Compressed {
			break
		}
		switch dt.Inner.(type) {
		case schema.ArrayInteger, schema.ArrayGuid:
		default:
			return fmt.Sprintf("endless array %s of %T", d.Name, dt.Inner)
		}
	}
	return ""
}

// refs are the named objects a container depends on.
type refs struct {
	enums   []string
	flags   []string
	structs []string
	aura    bool
}

func containerRefs(c *schema.Container) (r refs) {
	schema.WalkDefinitions(c.Members, func(d *schema.Definition) {
		switch dt := d.Type.(type) {
		case schema.Enum:
			r.enums = append(r.enums, dt.Name)
		case schema.Flag:
			r.flags = append(r.flags, dt.Name)
		case schema.StructRef:
			r.structs = append(r.structs, dt.Name)
		case schema.AuraMask:
			r.aura = true
		case schema.Array:
			if s, ok := dt.Inner.(schema.ArrayStruct); ok {
				r.structs = append(r.structs, s.Name)
			}
		}
	})
	return
}
