package codegen

import (
	"github.com/gstoney/wowproto/schema"
)

// owner returns the earlier unit that first defined obj, or nil when obj is
// defined by u itself.
func (g *Generator) owner(u *unit, tags schema.Tags) *unit {
	if u.login {
		first, err := tags.FirstLoginVersion()
		if err != nil {
			return nil
		}
		for _, o := range g.units {
			if o == u {
				return nil
			}
			if o.login && o.loginVersion == first {
				return o
			}
		}
		return nil
	}

	first, err := tags.FirstWorldTarget(g.ir.WorldTargets)
	if err != nil || first < 0 || first >= u.targetIndex {
		return nil
	}
	for _, o := range g.units {
		if !o.login && o.targetIndex == first {
			return o
		}
	}
	return nil
}

// linkable reports whether u can alias obj from o instead of emitting it.
// That holds when o produced the same definition and every type it refers to
// resolves to the same definition in both units. Aura masks differ between
// families, so objects using one only link within a family.
func linkable(u, o *unit, obj any) bool {
	return sameIn(u, o, obj, make(map[any]bool))
}

func sameIn(u, o *unit, obj any, seen map[any]bool) bool {
	if seen[obj] {
		return true
	}
	seen[obj] = true
	if !o.available[obj] {
		return false
	}

	c, ok := obj.(*schema.Container)
	if !ok {
		return true
	}

	r := containerRefs(c)
	if r.aura && u.target.Family != o.target.Family {
		return false
	}
	for _, n := range r.enums {
		if e := u.scope.enums[n]; e == nil || e != o.scope.enums[n] || !sameIn(u, o, e, seen) {
			return false
		}
	}
	for _, n := range r.flags {
		if f := u.scope.flags[n]; f == nil || f != o.scope.flags[n] || !sameIn(u, o, f, seen) {
			return false
		}
	}
	for _, n := range r.structs {
		if s := u.scope.structs[n]; s == nil || s != o.scope.structs[n] || !sameIn(u, o, s, seen) {
			return false
		}
	}
	return true
}

func writeDefinerAlias(w *writer, d *schema.Definer, pkg string) {
	w.ln("type %s = %s.%s", d.Name, pkg, d.Name)
	if len(d.Fields) == 0 {
		return
	}
	w.blank()
	w.ln("const (")
	w.indent++
	for _, f := range d.Fields {
		c := constName(d.Name, f.Name)
		w.ln("%s = %s.%s", c, pkg, c)
	}
	w.indent--
	w.ln(")")
}

func writeContainerAlias(w *writer, s *scope, c *schema.Container, pkg string) {
	w.ln("type %s = %s.%s", c.Name, pkg, c.Name)
	if _, static := s.containerSize(c); static {
		name := sizeConstName(c.Name)
		w.blank()
		w.ln("const %s = %s.%s", name, pkg, name)
	}
}
