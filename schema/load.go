package schema

import (
	"fmt"
	"os"
)

// Load reads, parses and sanitizes the document at path.
func Load(path string) (*IR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	ir, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	Sanitize(ir)
	return ir, nil
}
