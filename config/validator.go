package config

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config [%s]: %s", e.Field, e.Message)
}

type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) AddError(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

func (r *ValidationResult) AddWarning(field, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Message: message})
}

func Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}

	if strings.TrimSpace(cfg.Schema) == "" {
		result.AddError("schema", "schema path is required")
	} else if _, err := os.Stat(cfg.Schema); err != nil {
		result.AddError("schema", err.Error())
	}

	if strings.TrimSpace(cfg.Output) == "" {
		result.AddError("output", "output directory is required")
	}
	if strings.TrimSpace(cfg.ImportPath) == "" {
		result.AddError("import_path", "import path of the output directory is required")
	}
	if strings.TrimSpace(cfg.WireImport) == "" {
		result.AddWarning("wire_import", "empty, the bundled wire package is used")
	}

	for field, dir := range map[string]string{"login_dir": cfg.LoginDir, "world_dir": cfg.WorldDir} {
		if dir != "" && path.Clean(dir) != dir {
			result.AddError(field, fmt.Sprintf("%q is not a clean relative path", dir))
		}
	}
	if cfg.LoginDir != "" && cfg.LoginDir == cfg.WorldDir {
		result.AddError("world_dir", "login and world units would share a directory")
	}

	if cfg.FileName != "" && !strings.HasSuffix(cfg.FileName, ".go") {
		result.AddError("file_name", fmt.Sprintf("%q is not a Go file", cfg.FileName))
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		result.AddWarning("log.level", fmt.Sprintf("unknown level %q, using info", cfg.Log.Level))
	}

	for _, k := range cfg.undecoded {
		result.AddWarning(k, "unknown key")
	}

	return result
}
