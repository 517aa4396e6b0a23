// Package config loads the wowgen settings from a TOML file, a .env file and
// WOWGEN_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/gstoney/wowproto/codegen"
	"github.com/gstoney/wowproto/logging"
)

const DefaultPath = "wowgen.toml"

type Config struct {
	// Schema is the path of the JSON IR.
	Schema string `toml:"schema"`
	// Output is the directory that receives one package per unit.
	Output string `toml:"output"`
	// ImportPath is the Go import path of Output.
	ImportPath string `toml:"import_path"`
	WireImport string `toml:"wire_import"`
	LoginDir   string `toml:"login_dir"`
	WorldDir   string `toml:"world_dir"`
	FileName   string `toml:"file_name"`

	Log logging.Config `toml:"log"`

	// undecoded holds file keys that matched no field.
	undecoded []string
}

func Default() *Config {
	return &Config{
		Schema:     "ir/wow.json",
		Output:     "messages",
		ImportPath: "github.com/gstoney/wowproto/messages",
		WireImport: "github.com/gstoney/wowproto/wire",
		LoginDir:   "login",
		WorldDir:   "world",
		FileName:   "zz_generated_messages.go",
		Log: logging.Config{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads path over the defaults. A missing file is only an error when
// path is not DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		case err != nil:
			return nil, fmt.Errorf("load config %s: %w", path, err)
		default:
			for _, k := range md.Undecoded() {
				cfg.undecoded = append(cfg.undecoded, k.String())
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	for key, dst := range map[string]*string{
		"WOWGEN_SCHEMA":      &c.Schema,
		"WOWGEN_OUTPUT":      &c.Output,
		"WOWGEN_IMPORT_PATH": &c.ImportPath,
		"WOWGEN_WIRE_IMPORT": &c.WireImport,
		"WOWGEN_LOG_LEVEL":   &c.Log.Level,
		"WOWGEN_LOG_FILE":    &c.Log.File,
	} {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
}

// Codegen is the generator configuration derived from c.
func (c *Config) Codegen() codegen.Config {
	return codegen.Config{
		ImportPath: c.ImportPath,
		WireImport: c.WireImport,
		LoginDir:   c.LoginDir,
		WorldDir:   c.WorldDir,
		FileName:   c.FileName,
	}
}
