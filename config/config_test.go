package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	p := writeFile(t, dir, "gen.toml", `
schema = "proto/ir.json"
import_path = "example.com/proto/messages"
surprise = true

[log]
level = "debug"
`)

	t.Setenv("WOWGEN_OUTPUT", "out")

	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Schema != "proto/ir.json" || cfg.ImportPath != "example.com/proto/messages" {
		t.Errorf("file values: got %+v", cfg)
	}
	if cfg.Output != "out" {
		t.Errorf("env override: got %q", cfg.Output)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Console {
		t.Errorf("log: got %+v", cfg.Log)
	}
	if cfg.FileName != "zz_generated_messages.go" {
		t.Errorf("default kept: got %q", cfg.FileName)
	}
	if len(cfg.undecoded) != 1 || cfg.undecoded[0] != "surprise" {
		t.Errorf("undecoded: got %v", cfg.undecoded)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "WOWGEN_LOG_LEVEL=warn\n")
	t.Cleanup(func() { os.Unsetenv("WOWGEN_LOG_LEVEL") })

	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("got %q", cfg.Log.Level)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := Load(DefaultPath); err != nil {
		t.Errorf("default path: %v", err)
	}
	if _, err := Load("nope.toml"); err == nil {
		t.Error("explicit path: expected an error")
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "ir.json", "{}")

	tcs := []struct {
		desc   string
		modify func(*Config)
		errors []string
		warns  []string
	}{
		{
			desc:   "Defaults",
			modify: func(*Config) {},
		},
		{
			desc:   "Missing schema",
			modify: func(c *Config) { c.Schema = filepath.Join(dir, "missing.json") },
			errors: []string{"schema"},
		},
		{
			desc:   "Shared directories",
			modify: func(c *Config) { c.WorldDir = c.LoginDir },
			errors: []string{"world_dir"},
		},
		{
			desc:   "Unclean directory",
			modify: func(c *Config) { c.LoginDir = "a/../login" },
			errors: []string{"login_dir"},
		},
		{
			desc:   "Not a go file",
			modify: func(c *Config) { c.FileName = "messages.txt" },
			errors: []string{"file_name"},
		},
		{
			desc: "Warnings only",
			modify: func(c *Config) {
				c.Log.Level = "loud"
				c.undecoded = []string{"extra"}
			},
			warns: []string{"log.level", "extra"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := Default()
			cfg.Schema = schema
			tc.modify(cfg)

			res := Validate(cfg)
			if res.IsValid() != (len(tc.errors) == 0) {
				t.Fatalf("valid: got %v with %v", res.IsValid(), res.Errors)
			}
			if got := fields(res.Errors); !equal(got, tc.errors) {
				t.Errorf("errors: got %v, want %v", got, tc.errors)
			}
			if got := fields(res.Warnings); !equal(got, tc.warns) {
				t.Errorf("warnings: got %v, want %v", got, tc.warns)
			}
		})
	}
}

func fields(errs []ValidationError) (out []string) {
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
