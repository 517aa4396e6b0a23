package schema

// reservedNames are member names renamed before generation: the Go keywords,
// which collide once used as locals, and class.
var reservedNames = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
	"class": true,
}

// SanitizedName returns the identifier used in place of a reserved member name.
func SanitizedName(name string) string {
	if reservedNames[name] {
		return name + "_type"
	}
	return name
}

// Sanitize renames reserved member names in every container and updates the
// references to them. Wire order and types are left untouched.
func Sanitize(ir *IR) {
	for _, o := range []*Objects{&ir.Login, &ir.World} {
		for _, c := range o.Structs {
			sanitizeContainer(c)
		}
		for _, c := range o.Messages {
			sanitizeContainer(c)
		}
	}
}

func sanitizeContainer(c *Container) {
	WalkDefinitions(c.Members, func(d *Definition) {
		d.Name = SanitizedName(d.Name)
		if d.UsedAsSizeIn != "" {
			d.UsedAsSizeIn = SanitizedName(d.UsedAsSizeIn)
		}
		if a, ok := d.Type.(Array); ok {
			if vs, ok := a.Size.(VariableSize); ok {
				a.Size = VariableSize{Field: SanitizedName(vs.Field)}
				d.Type = a
			}
		}
	})
	sanitizeConditions(c.Members)
}

func sanitizeConditions(members []StructMember) {
	for _, m := range members {
		switch m := m.(type) {
		case *IfStatement:
			sanitizeIf(m)
		case *Optional:
			sanitizeConditions(m.Members)
		}
	}
}

func sanitizeIf(s *IfStatement) {
	s.Condition.Variable = SanitizedName(s.Condition.Variable)
	sanitizeConditions(s.Members)
	for _, e := range s.ElseIfs {
		sanitizeIf(e)
	}
	sanitizeConditions(s.ElseMembers)
}
