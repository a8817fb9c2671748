package rlspolicy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk shape of a registry declaration:
//
//	tables:
//	  - table: projects
//	    isolation: org
//	  - table: notes
//	    isolation: user
//	    user_column: author_id
type registryFile struct {
	Tables []Entry `yaml:"tables"`
}

// Parse builds a registry from a YAML declaration. A duplicate table in the
// document fails with ErrDuplicateTable.
func Parse(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("rlspolicy: parse registry: %w", err)
	}
	reg := NewRegistry()
	for _, entry := range file.Tables {
		if err := reg.Register(entry); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// LoadFile reads and parses a registry declaration from path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rlspolicy: read registry file: %w", err)
	}
	return Parse(data)
}
