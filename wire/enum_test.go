package wire

import (
	"errors"
	"testing"
)

func TestFlagString(t *testing.T) {
	names := []FlagName{
		{Value: 0, Name: "NONE"},
		{Value: 0x01, Name: "INVALID"},
		{Value: 0x02, Name: "OFFLINE"},
	}

	tcs := []struct {
		v    uint64
		want string
	}{
		{0, "NONE"},
		{0x01, "INVALID"},
		{0x03, "INVALID|OFFLINE"},
		{0x12, "OFFLINE|0x10"},
		{0x80, "0x80"},
	}
	for _, tc := range tcs {
		if got := FlagString(tc.v, names); got != tc.want {
			t.Errorf("FlagString(%#x): got %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestEnumError(t *testing.T) {
	var err error = &EnumError{Type: "LoginResult", Value: 0xFE}
	if !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("EnumError does not wrap ErrInvalidEnum")
	}

	var ee *EnumError
	if !errors.As(err, &ee) || ee.Value != 0xFE {
		t.Errorf("errors.As: got %v", ee)
	}
}

func TestRemainder(t *testing.T) {
	if n, err := Remainder(10, 4); err != nil || n != 6 {
		t.Errorf("got %d, %v", n, err)
	}
	if _, err := Remainder(3, 4); !errors.Is(err, ErrBodyUnderflow) {
		t.Errorf("got %v, want %v", err, ErrBodyUnderflow)
	}
}
