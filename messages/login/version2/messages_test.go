package version2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"net/netip"
	"reflect"
	"testing"

	"github.com/gstoney/wowproto/wire"
)

func TestChallengeClient(t *testing.T) {
	want := CMD_AUTH_LOGON_CHALLENGE_Client{
		ProtocolVersion:   ProtocolVersion_THREE,
		Version:           Version{Major: 1, Minor: 12, Patch: 1, Build: 5875},
		Platform:          0x00783836,
		Os:                0x0057696E,
		Locale:            0x656E5553,
		UtcTimezoneOffset: 60,
		ClientIpAddress:   netip.MustParseAddr("127.0.0.1"),
		AccountName:       "A",
	}

	var buf bytes.Buffer
	if err := want.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()

	if len(b) != 35 || len(b) != 1+want.Size()+3 {
		t.Fatalf("encoded %d bytes, size %d", len(b), want.Size())
	}
	if b[0] != 0x00 || b[1] != 0x03 {
		t.Errorf("opcode/protocol: got %x", b[:2])
	}
	if size := binary.LittleEndian.Uint16(b[2:4]); int(size) != len(b)-4 {
		t.Errorf("size field: got %d, want %d", size, len(b)-4)
	}
	if !bytes.Equal(b[4:8], []byte("WoW\x00")) {
		t.Errorf("game name: got %q", b[4:8])
	}
	if !bytes.Equal(b[29:33], []byte{127, 0, 0, 1}) {
		t.Errorf("address: got %x", b[29:33])
	}

	r := wire.NewFrameReader(b)
	got, ok, err := ExpectClientMessage[CMD_AUTH_LOGON_CHALLENGE_Client](&r)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("dispatch returned another message")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if r.Remaining() != 0 {
		t.Errorf("%d bytes left unread", r.Remaining())
	}
}

func TestRealmList(t *testing.T) {
	want := CMD_REALM_LIST_Server{
		Realms: []Realm{{
			RealmType:                 RealmType_PLAYER_VS_PLAYER,
			Flag:                      RealmFlag_OFFLINE | RealmFlag_FORCE_RED_FULL,
			Name:                      "Test",
			Address:                   "localhost:8085",
			Population:                1.5,
			NumberOfCharactersOnRealm: 2,
			Category:                  1,
			RealmId:                   3,
		}},
	}

	var buf bytes.Buffer
	if err := want.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()

	if want.Realms[0].Size() != 32 {
		t.Errorf("realm size: got %d", want.Realms[0].Size())
	}
	if want.Size() != 39 || len(b) != 42 {
		t.Fatalf("size %d, encoded %d bytes", want.Size(), len(b))
	}
	if size := binary.LittleEndian.Uint16(b[1:3]); size != 39 {
		t.Errorf("size field: got %d", size)
	}
	if b[7] != 1 {
		t.Errorf("realm count: got %d", b[7])
	}
	if !bytes.Equal(b[len(b)-2:], []byte{0, 0}) {
		t.Errorf("footer: got %x", b[len(b)-2:])
	}

	r := wire.NewFrameReader(b)
	m, err := ReadServerMessage(&r)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := m.(CMD_REALM_LIST_Server)
	if !ok {
		t.Fatalf("got %T", m)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.Realms[0].Flag.Has(RealmFlag_OFFLINE) || got.Realms[0].Flag.Has(RealmFlag_INVALID) {
		t.Errorf("flag: got %s", got.Realms[0].Flag)
	}
}

func TestChallengeServer(t *testing.T) {
	key := [32]byte{1, 2, 3}
	salt := [32]byte{4, 5, 6}
	crc := [16]byte{7, 8}

	tcs := []struct {
		desc string
		v    CMD_AUTH_LOGON_CHALLENGE_Server
		len  int
	}{
		{
			desc: "Success",
			v: CMD_AUTH_LOGON_CHALLENGE_Server{
				Result:          LoginResult_SUCCESS,
				ServerPublicKey: &key,
				Generator:       []byte{7},
				LargeSafePrime:  bytes.Repeat([]byte{0xB7}, 32),
				Salt:            &salt,
				CrcSalt:         &crc,
			},
			len: 1 + 2 + 82 + 1 + 32,
		},
		{
			desc: "Failure carries no key material",
			v:    CMD_AUTH_LOGON_CHALLENGE_Server{Result: LoginResult_FAIL_BANNED},
			len:  3,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.v.Encode(&buf); err != nil {
				t.Fatal(err)
			}
			if buf.Len() != tc.len || buf.Len() != 1+tc.v.Size() {
				t.Fatalf("encoded %d bytes, size %d, want %d", buf.Len(), tc.v.Size(), tc.len)
			}

			r := wire.NewFrameReader(buf.Bytes())
			got, ok, err := ExpectServerMessage[CMD_AUTH_LOGON_CHALLENGE_Server](&r)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("dispatch returned another message")
			}
			if !reflect.DeepEqual(got, tc.v) {
				t.Errorf("got %+v, want %+v", got, tc.v)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tcs := []struct {
		desc      string
		ser       []byte
		expectErr error
	}{
		{
			desc:      "Unknown opcode",
			ser:       []byte{0x7F, 0x00},
			expectErr: wire.ErrUnknownOpcode,
		},
		{
			desc:      "Invalid result",
			ser:       []byte{0x00, 0x00, 0xFE},
			expectErr: wire.ErrInvalidEnum,
		},
		{
			desc:      "Realm count past end",
			ser:       []byte{0x10, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF},
			expectErr: io.ErrUnexpectedEOF,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			r := wire.NewFrameReader(tc.ser)
			if _, err := ReadServerMessage(&r); !errors.Is(err, tc.expectErr) {
				t.Errorf("got error %v, want %v", err, tc.expectErr)
			}
		})
	}
}

func TestExpectMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := (CMD_REALM_LIST_Client{}).Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 1+CMD_REALM_LIST_Client_Size {
		t.Fatalf("encoded %d bytes", buf.Len())
	}

	r := wire.NewFrameReader(buf.Bytes())
	_, ok, err := ExpectClientMessage[CMD_AUTH_LOGON_PROOF_Client](&r)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("realm list request matched a proof")
	}
}

func TestTelemetryCountPastEnd(t *testing.T) {
	b := CMD_AUTH_LOGON_PROOF_Client{}.AppendTo([]byte{0x01})
	b[len(b)-1] = 0xFF
	b = append(b, 0x01)

	for _, tc := range []struct {
		desc string
		r    wire.Reader
	}{
		{desc: "Frame", r: func() wire.Reader { r := wire.NewFrameReader(b); return &r }()},
		{desc: "Stream", r: wire.NewStreamReader(bytes.NewReader(b))},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			if _, err := ReadClientMessage(tc.r); !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("got error %v, want %v", err, io.ErrUnexpectedEOF)
			}
		})
	}
}
