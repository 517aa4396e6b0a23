package codegen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gstoney/wowproto/schema"
)

func loginTags(versions ...int) schema.Tags {
	if len(versions) == 0 {
		return schema.Tags{Version: schema.LoginVersions{All: true}}
	}
	return schema.Tags{Version: schema.LoginVersions{Versions: versions}}
}

func worldTags(major int) schema.Tags {
	if major == 0 {
		return schema.Tags{Version: schema.WorldVersions{All: true}}
	}
	return schema.Tags{Version: schema.WorldVersions{Versions: []schema.WorldVersion{{Major: major}}}}
}

func u8Array(n int) schema.Array {
	return schema.Array{Inner: schema.ArrayInteger{Type: schema.U8}, Size: schema.FixedSize{N: n}}
}

func loginIR() *schema.IR {
	result := &schema.Definition{Name: "result", Type: schema.Enum{Name: "LoginResult", Type: schema.U8}}
	return &schema.IR{
		LoginVersions: []int{3, 8, 2},
		WorldTargets:  schema.DefaultWorldTargets(),
		Login: schema.Objects{
			Enums: []*schema.Definer{{
				Name:   "LoginResult",
				Type:   schema.U8,
				Fields: []schema.DefinerField{{Name: "SUCCESS", Value: 0}, {Name: "FAIL_BANNED", Value: 3}},
				Tags:   loginTags(),
			}},
			Flags: []*schema.Definer{{
				Name:   "SecurityFlag",
				Type:   schema.U8,
				Fields: []schema.DefinerField{{Name: "NONE", Value: 0}, {Name: "PIN", Value: 1}},
				Tags:   loginTags(3),
			}},
			Messages: []*schema.Container{
				{
					Name:   "CMD_TEST_Server",
					Object: schema.ObjectType{Kind: schema.KindSLogin, Opcode: 1},
					Tags:   loginTags(2, 3, 8),
					Members: []schema.StructMember{
						result,
						&schema.IfStatement{
							Condition: schema.Conditional{Variable: "result", Equation: schema.Equals{Values: []string{"SUCCESS"}}},
							Members:   []schema.StructMember{&schema.Definition{Name: "key", Type: u8Array(4)}},
						},
					},
				},
				{
					Name:   "CMD_PIN_Server",
					Object: schema.ObjectType{Kind: schema.KindSLogin, Opcode: 2},
					Tags:   loginTags(3),
					Members: []schema.StructMember{
						&schema.Definition{Name: "flag", Type: schema.Flag{Name: "SecurityFlag", Type: schema.U8}},
						&schema.IfStatement{
							Condition: schema.Conditional{Variable: "flag", Equation: schema.BitwiseAnd{Values: []string{"PIN"}}},
							Members:   []schema.StructMember{&schema.Definition{Name: "salt", Type: u8Array(16)}},
						},
					},
				},
				{
					Name:   "CMD_BAD_Client",
					Object: schema.ObjectType{Kind: schema.KindCLogin, Opcode: 3},
					Tags:   loginTags(2),
					Members: []schema.StructMember{
						result,
						&schema.IfStatement{
							Condition: schema.Conditional{Variable: "result", Equation: schema.Equals{Values: []string{"SUCCESS", "FAIL_BANNED"}}},
							Members:   []schema.StructMember{&schema.Definition{Name: "key", Type: u8Array(4)}},
						},
					},
				},
			},
		},
	}
}

func generate(t *testing.T, ir *schema.IR) (map[string]string, *Result) {
	t.Helper()
	g := New(Config{ImportPath: "example.com/out"}, zerolog.Nop())
	res, err := g.Generate(ir)
	if err != nil {
		t.Fatal(err)
	}
	files := make(map[string]string)
	for _, f := range res.Files {
		files[f.Unit] = string(f.Source)
	}
	return files, res
}

func assertContains(t *testing.T, src string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(src, w) {
			t.Errorf("missing %q in:\n%s", w, src)
		}
	}
}

func assertMissing(t *testing.T, src string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(src, w) {
			t.Errorf("unexpected %q in:\n%s", w, src)
		}
	}
}

func TestGenerateLoginUnits(t *testing.T) {
	files, res := generate(t, loginIR())

	for _, unit := range []string{"login/all", "login/version2", "login/version3", "login/version8", "world/vanilla", "world/tbc", "world/wrath"} {
		if _, ok := files[unit]; !ok {
			t.Errorf("unit %s was not generated", unit)
		}
	}

	all := files["login/all"]
	assertContains(t, all,
		"// Code generated by wowgen; DO NOT EDIT.",
		"package all",
		"type LoginResult uint8",
		"func (e *LoginResult) Decode(r wire.Reader) (err error) {",
		`return &wire.EnumError{Type: "LoginResult", Value: uint64(raw)}`,
	)
	assertMissing(t, all, "ReadClientMessage", "CMD_TEST_Server")

	v2 := files["login/version2"]
	assertContains(t, v2,
		`"example.com/out/login/all"`,
		"type LoginResult = all.LoginResult",
		"func (p *CMD_TEST_Server) Decode(r wire.Reader) (err error) {",
		"if v.Result == LoginResult_SUCCESS {",
		"v.Key = new([4]byte)",
		"func (CMD_TEST_Server) LoginServerMessage() {}",
		"func ReadServerMessage(r wire.Reader) (ServerMessage, error) {",
		"case 0x01:",
	)
	assertMissing(t, v2, "CMD_BAD_Client", "SecurityFlag")

	v3 := files["login/version3"]
	assertContains(t, v3,
		"type CMD_TEST_Server = version2.CMD_TEST_Server",
		"type SecurityFlag uint8",
		"if v.Flag&SecurityFlag_PIN != 0 {",
		"v.Salt = new([16]byte)",
		"for _, e := range wire.Value(v.Salt) {",
		"b := make([]byte, 0, 1+v.Size())",
		"case 0x02:",
	)

	// Revision 8 skips 3 and still links to the unit that first defined
	// each object.
	v8 := files["login/version8"]
	assertContains(t, v8,
		`"example.com/out/login/version2"`,
		"type LoginResult = all.LoginResult",
		"type CMD_TEST_Server = version2.CMD_TEST_Server",
		"func ReadServerMessage(r wire.Reader) (ServerMessage, error) {",
	)
	assertMissing(t, v8, "version3", "SecurityFlag", "CMD_PIN_Server", "CMD_BAD_Client")

	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics: got %v", res.Diagnostics)
	}
	if d := res.Diagnostics[0]; d.Unit != "login/version2" || d.Object != "CMD_BAD_Client" {
		t.Errorf("diagnostic: got %v", d)
	}
	if err := res.Diagnostics.Err(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("got %v, want %v", err, ErrNotImplemented)
	}
}

func worldIR() *schema.IR {
	return &schema.IR{
		WorldTargets: schema.DefaultWorldTargets(),
		World: schema.Objects{
			Structs: []*schema.Container{
				{
					Name: "Vector3d",
					Tags: worldTags(0),
					Members: []schema.StructMember{
						&schema.Definition{Name: "x", Type: schema.FloatingPoint{}},
						&schema.Definition{Name: "y", Type: schema.FloatingPoint{}},
						&schema.Definition{Name: "z", Type: schema.FloatingPoint{}},
					},
				},
				{
					Name:    "Legacy",
					Tags:    worldTags(0),
					Members: []schema.StructMember{&schema.Optional{Name: "extra"}},
				},
			},
			Messages: []*schema.Container{
				{
					Name:   "CMSG_AUTH_SESSION",
					Object: schema.ObjectType{Kind: schema.KindCMsg, Opcode: 0x1ED},
					Tags:   worldTags(0),
					Members: []schema.StructMember{
						&schema.Definition{Name: "build", Type: schema.Integer{Type: schema.U32}},
						&schema.Definition{Name: "server_id", Type: schema.Integer{Type: schema.U32}},
						&schema.Definition{Name: "username", Type: schema.CString{}},
						&schema.Definition{Name: "client_seed", Type: schema.Integer{Type: schema.U32}},
						&schema.Definition{Name: "client_proof", Type: u8Array(20)},
						&schema.Definition{Name: "decompressed_addon_info_size", Type: schema.Integer{Type: schema.U32}},
						&schema.Definition{
							Name:       "addon_info",
							Type:       schema.Array{Inner: schema.ArrayInteger{Type: schema.U8}, Size: schema.EndlessSize{}},
							Compressed: true,
						},
					},
				},
				{
					Name:   "SMSG_AURA_TEST",
					Object: schema.ObjectType{Kind: schema.KindSMsg, Opcode: 0x100},
					Tags:   worldTags(0),
					Members: []schema.StructMember{
						&schema.Definition{Name: "guid", Type: schema.PackedGuid{}},
						&schema.Definition{Name: "auras", Type: schema.AuraMask{}},
					},
				},
				{
					Name:   "SMSG_PATH_TEST",
					Object: schema.ObjectType{Kind: schema.KindSMsg, Opcode: 0x102},
					Tags:   worldTags(0),
					Members: []schema.StructMember{
						&schema.Definition{Name: "amount_of_points", Type: schema.Integer{Type: schema.U32}},
						&schema.Definition{
							Name: "points",
							Type: schema.Array{Inner: schema.ArrayStruct{Name: "Vector3d"}, Size: schema.VariableSize{Field: "amount_of_points"}},
						},
					},
				},
				{
					Name:   "SMSG_MOVE_TEST",
					Object: schema.ObjectType{Kind: schema.KindSMsg, Opcode: 0x101},
					Tags:   worldTags(1),
					Members: []schema.StructMember{
						&schema.Definition{Name: "position", Type: schema.StructRef{Name: "Vector3d"}},
						&schema.Definition{Name: "legacy", Type: schema.StructRef{Name: "Legacy"}},
					},
				},
			},
		},
	}
}

func TestGenerateWorldUnits(t *testing.T) {
	files, res := generate(t, worldIR())
	if len(res.Diagnostics) != 0 {
		t.Fatalf("diagnostics: %v", res.Diagnostics)
	}

	vanilla := files["world/vanilla"]
	assertContains(t, vanilla,
		"type AuraMask = wire.VanillaAuraMask",
		"type UpdateMask = wire.UpdateMask",
		"const Vector3dSize = 12",
		"func (p *CMSG_AUTH_SESSION) Decode(r wire.Reader, bodySize int) (err error) {",
		"consumed := 36",
		"consumed += len(v.Username) + 1",
		"if rest, err = wire.Remainder(bodySize, consumed); err != nil {",
		"if v.AddonInfo, err = wire.ReadBytes(r, rest); err != nil {",
		"func (v CMSG_AUTH_SESSION) EncodeUnencrypted(w io.Writer) error {",
		"wire.PutClientHeader(b, wire.NullHeaderCrypto{}, 0x01ED)",
		"size += wire.PackedGuidSize(v.Guid)",
		"size += v.Auras.Size()",
		"func (v SMSG_AURA_TEST) EncodeEncrypted(w io.Writer, h wire.HeaderEncrypter) error {",
		"func ReadClientMessageEncrypted(r wire.Reader, h wire.HeaderDecrypter) (ClientMessage, error) {",
		"case 0x01ED:",
	)
	assertMissing(t, vanilla, "SMSG_MOVE_TEST", "type Legacy")

	// Counts read off the wire never size an allocation directly.
	assertContains(t, vanilla,
		"v.Points = make([]Vector3d, 0, wire.Prealloc(int(amountOfPoints)))",
		"for range int(amountOfPoints) {",
		"if err = e.Decode(r); err != nil {",
		"v.Points = append(v.Points, e)",
	)
	assertMissing(t, vanilla, "make([]Vector3d, int(amountOfPoints))")

	tbc := files["world/tbc"]
	assertContains(t, tbc,
		`"example.com/out/world/vanilla"`,
		"type AuraMask = wire.TbcAuraMask",
		"type Vector3d = vanilla.Vector3d",
		"const Vector3dSize = vanilla.Vector3dSize",
		"type CMSG_AUTH_SESSION = vanilla.CMSG_AUTH_SESSION",
		"func (p *SMSG_AURA_TEST) Decode(r wire.Reader, bodySize int) (err error) {",
	)
	assertMissing(t, tbc, "vanilla.SMSG_AURA_TEST")

	for _, u := range res.Units {
		if u.Unit == "world/vanilla" && u.Excluded != 2 {
			t.Errorf("vanilla excluded: got %d, want 2", u.Excluded)
		}
	}
}

func TestGenerateUnresolvedReference(t *testing.T) {
	ir := worldIR()
	ir.World.Messages = append(ir.World.Messages, &schema.Container{
		Name:    "SMSG_BROKEN",
		Object:  schema.ObjectType{Kind: schema.KindSMsg, Opcode: 0x102},
		Tags:    worldTags(0),
		Members: []schema.StructMember{&schema.Definition{Name: "kind", Type: schema.Enum{Name: "Missing", Type: schema.U8}}},
	})

	files, res := generate(t, ir)
	if !errors.Is(res.Diagnostics.Err(), ErrUnresolved) {
		t.Errorf("got %v, want %v", res.Diagnostics.Err(), ErrUnresolved)
	}
	if len(res.Diagnostics) != len(ir.WorldTargets) {
		t.Errorf("diagnostics: got %d, want one per world unit", len(res.Diagnostics))
	}
	assertContains(t, files["world/vanilla"], "type SMSG_AURA_TEST struct {")
}

func TestGenerateVersionCategory(t *testing.T) {
	ir := loginIR()
	ir.Login.Enums[0].Tags = worldTags(1)

	_, res := generate(t, ir)
	if !errors.Is(res.Diagnostics.Err(), schema.ErrVersionCategory) {
		t.Errorf("got %v, want %v", res.Diagnostics.Err(), schema.ErrVersionCategory)
	}
}

func TestGenerateConfig(t *testing.T) {
	g := New(Config{}, zerolog.Nop())
	if _, err := g.Generate(loginIR()); !errors.Is(err, ErrConfig) {
		t.Errorf("got %v, want %v", err, ErrConfig)
	}
}

func TestWriteFiles(t *testing.T) {
	_, res := generate(t, loginIR())

	dir := t.TempDir()
	if err := res.WriteFiles(dir); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "login", "version3", "zz_generated_messages.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "// Code generated by wowgen; DO NOT EDIT.") {
		t.Errorf("unexpected header: %q", b[:40])
	}
}
