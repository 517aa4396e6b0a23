package codegen

import "testing"

func TestNames(t *testing.T) {
	tcs := []struct {
		desc string
		fn   func(string) string
		in   string
		want string
	}{
		{desc: "Field", fn: fieldName, in: "server_public_key", want: "ServerPublicKey"},
		{desc: "Field colliding with a method", fn: fieldName, in: "size", want: "SizeValue"},
		{desc: "Field starting with a digit", fn: fieldName, in: "3d_position", want: "F3dPosition"},
		{desc: "Local", fn: localName, in: "number_of_realms", want: "numberOfRealms"},
		{desc: "Local shadowing a builtin", fn: localName, in: "len", want: "len_"},
		{desc: "Local shadowing a method variable", fn: localName, in: "size", want: "sizeValue"},
		{desc: "Local shadowing the reader", fn: localName, in: "r", want: "r_"},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			if got := tc.fn(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSizeConstName(t *testing.T) {
	if got := sizeConstName("Vector3d"); got != "Vector3dSize" {
		t.Errorf("got %q", got)
	}
	if got := sizeConstName("CMSG_PING"); got != "CMSG_PING_Size" {
		t.Errorf("got %q", got)
	}
}
