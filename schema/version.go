package schema

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	ErrVersionCategory = errors.New("version tag of the wrong protocol family")
	ErrEmptyVersions   = errors.New("explicit version list is empty")
	ErrNoVersion       = errors.New("object has no version tag")
)

// Versions is the applicability of an object: every revision or an explicit
// list, for either the login or world family.
type Versions interface {
	versions()
}

type LoginVersions struct {
	All      bool
	Versions []int
}

type WorldVersions struct {
	All      bool
	Versions []WorldVersion
}

func (LoginVersions) versions() {}
func (WorldVersions) versions() {}

// WorldVersion is a client revision. Minor, Patch and Build may be left
// unset on schema tags, where they match any value.
type WorldVersion struct {
	Major int
	Minor *int
	Patch *int
	Build *int
}

func (v WorldVersion) String() string {
	s := strconv.Itoa(v.Major)
	for _, p := range []*int{v.Minor, v.Patch, v.Build} {
		if p == nil {
			return s + ".*"
		}
		s += "." + strconv.Itoa(*p)
	}
	return s
}

// Satisfies reports whether the schema tag applies to target. Majors must
// match; minor, patch and build are compared in turn, where a field unset on
// the tag matches anything and a field unset only on the target fails.
func Satisfies(target, tag WorldVersion) bool {
	if target.Major != tag.Major {
		return false
	}

	for _, pair := range [][2]*int{
		{target.Minor, tag.Minor},
		{target.Patch, tag.Patch},
		{target.Build, tag.Build},
	} {
		t, o := pair[0], pair[1]
		switch {
		case t == nil && o == nil:
			return true
		case t == nil:
			return false
		case o == nil:
			return true
		case *t != *o:
			return false
		}
	}
	return true
}

func (t Tags) loginVersions() (LoginVersions, error) {
	switch v := t.Version.(type) {
	case LoginVersions:
		if !v.All && len(v.Versions) == 0 {
			return v, ErrEmptyVersions
		}
		return v, nil
	case WorldVersions:
		return LoginVersions{}, fmt.Errorf("%w: world tag in login namespace", ErrVersionCategory)
	case nil:
		return LoginVersions{}, ErrNoVersion
	}
	return LoginVersions{}, fmt.Errorf("%w: %T", ErrUnhandledVariant, t.Version)
}

func (t Tags) worldVersions() (WorldVersions, error) {
	switch v := t.Version.(type) {
	case WorldVersions:
		if !v.All && len(v.Versions) == 0 {
			return v, ErrEmptyVersions
		}
		return v, nil
	case LoginVersions:
		return WorldVersions{}, fmt.Errorf("%w: login tag in world namespace", ErrVersionCategory)
	case nil:
		return WorldVersions{}, ErrNoVersion
	}
	return WorldVersions{}, fmt.Errorf("%w: %T", ErrUnhandledVariant, t.Version)
}

// MatchesLogin reports whether the object exists in login revision v.
// Revision 0 is the shared unit and only holds objects tagged for all.
func (t Tags) MatchesLogin(v int) (bool, error) {
	lv, err := t.loginVersions()
	if err != nil {
		return false, err
	}
	if lv.All {
		return true, nil
	}
	return slices.Contains(lv.Versions, v), nil
}

// FirstLoginVersion is the unit that owns the object's definition: 0 for
// objects tagged for all revisions, else the lowest listed revision.
func (t Tags) FirstLoginVersion() (int, error) {
	lv, err := t.loginVersions()
	if err != nil {
		return 0, err
	}
	if lv.All {
		return 0, nil
	}
	return slices.Min(lv.Versions), nil
}

func (t Tags) MatchesWorld(v WorldVersion) (bool, error) {
	wv, err := t.worldVersions()
	if err != nil {
		return false, err
	}
	if wv.All {
		return true, nil
	}
	for _, tag := range wv.Versions {
		if Satisfies(v, tag) {
			return true, nil
		}
	}
	return false, nil
}

// FirstWorldTarget returns the index of the earliest target the object
// applies to, or -1 when it applies to none.
func (t Tags) FirstWorldTarget(targets []WorldTarget) (int, error) {
	for i, target := range targets {
		ok, err := t.MatchesWorld(target.Version)
		if err != nil {
			return -1, err
		}
		if ok {
			return i, nil
		}
	}
	return -1, nil
}
