package schema

import (
	"errors"
	"testing"
)

func wv(major int, rest ...int) WorldVersion {
	v := WorldVersion{Major: major}
	fields := []**int{&v.Minor, &v.Patch, &v.Build}
	for i, r := range rest {
		*fields[i] = intPtr(r)
	}
	return v
}

func TestSatisfies(t *testing.T) {
	vanilla := wv(1, 12, 1, 5875)

	tcs := []struct {
		desc   string
		target WorldVersion
		tag    WorldVersion
		want   bool
	}{
		{desc: "Exact", target: vanilla, tag: wv(1, 12, 1, 5875), want: true},
		{desc: "Major only tag", target: vanilla, tag: wv(1), want: true},
		{desc: "Major and minor tag", target: vanilla, tag: wv(1, 12), want: true},
		{desc: "Wildcard build", target: vanilla, tag: wv(1, 12, 1), want: true},
		{desc: "Other major", target: vanilla, tag: wv(2), want: false},
		{desc: "Other minor", target: vanilla, tag: wv(1, 11), want: false},
		{desc: "Other patch", target: vanilla, tag: wv(1, 12, 2), want: false},
		{desc: "Other build", target: vanilla, tag: wv(1, 12, 1, 5876), want: false},
		{desc: "Tag more specific than target", target: wv(1, 12), tag: wv(1, 12, 1), want: false},
		{desc: "Both stop at minor", target: wv(1, 12), tag: wv(1, 12), want: true},
		{desc: "Both major only", target: wv(3), tag: wv(3), want: true},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			if got := Satisfies(tc.target, tc.tag); got != tc.want {
				t.Errorf("Satisfies(%s, %s) = %v, want %v", tc.target, tc.tag, got, tc.want)
			}
		})
	}
}

func TestMatchesLogin(t *testing.T) {
	all := Tags{Version: LoginVersions{All: true}}
	some := Tags{Version: LoginVersions{Versions: []int{3, 2, 8}}}

	for _, v := range []int{0, 2, 3, 8} {
		if ok, err := all.MatchesLogin(v); err != nil || !ok {
			t.Errorf("all tag, version %d: got %v, %v", v, ok, err)
		}
	}

	tcs := []struct {
		v    int
		want bool
	}{{0, false}, {2, true}, {3, true}, {5, false}, {8, true}}
	for _, tc := range tcs {
		ok, err := some.MatchesLogin(tc.v)
		if err != nil {
			t.Fatal(err)
		}
		if ok != tc.want {
			t.Errorf("version %d: got %v, want %v", tc.v, ok, tc.want)
		}
	}

	if first, _ := some.FirstLoginVersion(); first != 2 {
		t.Errorf("FirstLoginVersion: got %d, want 2", first)
	}
	if first, _ := all.FirstLoginVersion(); first != 0 {
		t.Errorf("FirstLoginVersion of all: got %d, want 0", first)
	}
}

func TestMatchesWorld(t *testing.T) {
	targets := DefaultWorldTargets()

	tcs := []struct {
		desc  string
		tags  Tags
		first int
		tbc   bool
	}{
		{desc: "All", tags: Tags{Version: WorldVersions{All: true}}, first: 0, tbc: true},
		{desc: "Vanilla only", tags: Tags{Version: WorldVersions{Versions: []WorldVersion{wv(1, 12)}}}, first: 0, tbc: false},
		{desc: "Tbc and wrath", tags: Tags{Version: WorldVersions{Versions: []WorldVersion{wv(2, 4, 3), wv(3)}}}, first: 1, tbc: true},
		{desc: "Unreleased", tags: Tags{Version: WorldVersions{Versions: []WorldVersion{wv(4)}}}, first: -1, tbc: false},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			first, err := tc.tags.FirstWorldTarget(targets)
			if err != nil {
				t.Fatal(err)
			}
			if first != tc.first {
				t.Errorf("first: got %d, want %d", first, tc.first)
			}
			ok, _ := tc.tags.MatchesWorld(targets[1].Version)
			if ok != tc.tbc {
				t.Errorf("tbc: got %v, want %v", ok, tc.tbc)
			}
		})
	}
}

func TestVersionCategory(t *testing.T) {
	world := Tags{Version: WorldVersions{All: true}}
	if _, err := world.MatchesLogin(2); !errors.Is(err, ErrVersionCategory) {
		t.Errorf("world tag in login: got %v", err)
	}

	login := Tags{Version: LoginVersions{All: true}}
	if _, err := login.MatchesWorld(wv(1, 12, 1, 5875)); !errors.Is(err, ErrVersionCategory) {
		t.Errorf("login tag in world: got %v", err)
	}

	empty := Tags{Version: LoginVersions{}}
	if _, err := empty.FirstLoginVersion(); !errors.Is(err, ErrEmptyVersions) {
		t.Errorf("empty list: got %v", err)
	}

	if _, err := (Tags{}).MatchesLogin(0); !errors.Is(err, ErrNoVersion) {
		t.Errorf("missing tag: got %v", err)
	}
}

func TestWorldVersionString(t *testing.T) {
	if got := wv(1, 12, 1, 5875).String(); got != "1.12.1.5875" {
		t.Errorf("got %q", got)
	}
	if got := wv(2, 4).String(); got != "2.4.*" {
		t.Errorf("got %q", got)
	}
}
