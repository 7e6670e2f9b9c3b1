// File: loader.go
// Title: Profile File Loader
// Description: Loads language profiles from declarative TOML or YAML
//              files. The format is auto-detected from the file extension.
//              Loaded profiles are validated before they are returned.
// Version: v0.1.0
// Created: 2025-11-15

package profile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	lokaerror "github.com/lokascript/semantic-go/core/error"
)

// LoadFile loads and validates a single profile from a TOML or YAML file
func LoadFile(path string) (*Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, lokaerror.Wrap(err, "failed to read profile file").
			WithCode(lokaerror.CodeProfileLoad).
			WithOperation("profile.LoadFile").
			WithDetail("path", path)
	}

	var p Profile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &p); err != nil {
			return nil, lokaerror.Wrap(err, "YAML profile parse error").
				WithCode(lokaerror.CodeProfileLoad).
				WithOperation("profile.LoadFile").
				WithDetail("path", path)
		}
	case ".toml":
		if err := toml.Unmarshal(content, &p); err != nil {
			return nil, lokaerror.Wrap(err, "TOML profile parse error").
				WithCode(lokaerror.CodeProfileLoad).
				WithOperation("profile.LoadFile").
				WithDetail("path", path)
		}
	default:
		return nil, lokaerror.Newf("unsupported profile file extension: %s", filepath.Ext(path)).
			WithCode(lokaerror.CodeProfileLoad).
			WithOperation("profile.LoadFile").
			WithDetail("path", path)
	}

	if err := p.Validate(); err != nil {
		return nil, lokaerror.Wrap(err, "invalid profile file").
			WithCode(lokaerror.CodeInvalidProfile).
			WithOperation("profile.LoadFile").
			WithDetail("path", path)
	}

	return &p, nil
}

// LoadDirectory loads every .toml/.yaml/.yml profile file in a directory,
// sorted by file name for deterministic registration order
func LoadDirectory(dir string) ([]*Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, lokaerror.Wrap(err, "failed to read profile directory").
			WithCode(lokaerror.CodeProfileLoad).
			WithOperation("profile.LoadDirectory").
			WithDetail("dir", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".toml", ".yaml", ".yml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	profiles := make([]*Profile, 0, len(names))
	for _, name := range names {
		p, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
