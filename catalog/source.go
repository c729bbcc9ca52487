// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=source.go -destination=mocks/mock_source.go -package=mocks RawSource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// RawSource produces the ordered raw entries of a catalog build.
type RawSource interface {
	Read(ctx context.Context) ([]RawSkill, error)
}

// DefaultPatterns are the FileSource patterns used when none are configured.
var DefaultPatterns = []string{"**/*.json", "**/*.yaml", "**/*.yml"}

// FileSource reads catalog documents from FS.
//
// Files matching any of Patterns are read in lexical path order and their
// entries are concatenated, so the catalog order is stable across runs.
// Files ending in .json are decoded as JSON; .yaml and .yml as YAML.
type FileSource struct {
	FS       fs.FS
	Patterns []string
}

var _ RawSource = FileSource{}

// Read implements RawSource.
func (s FileSource) Read(ctx context.Context) ([]RawSkill, error) {
	if s.FS == nil {
		return nil, errors.New("file source has no filesystem")
	}
	files, err := s.files()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files match %s", strings.Join(s.patterns(), ", "))
	}

	var out []RawSkill
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := s.readFile(name)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

func (s FileSource) patterns() []string {
	if len(s.Patterns) == 0 {
		return DefaultPatterns
	}
	return s.Patterns
}

func (s FileSource) files() ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range s.patterns() {
		matches, err := doublestar.Glob(s.FS, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok || decoderFor(m) == nil {
				continue
			}
			info, err := fs.Stat(s.FS, m)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", m, err)
			}
			if info.IsDir() {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	slices.Sort(files)
	return files, nil
}

func (s FileSource) readFile(name string) ([]RawSkill, error) {
	data, err := fs.ReadFile(s.FS, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	entries, err := decoderFor(name)(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return entries, nil
}

func decoderFor(name string) func([]byte) ([]RawSkill, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return DecodeJSON
	case ".yaml", ".yml":
		return DecodeYAML
	default:
		return nil
	}
}

// StaticSource serves a fixed list of entries.
type StaticSource []RawSkill

var _ RawSource = StaticSource(nil)

// Read returns a copy of the entries.
func (s StaticSource) Read(context.Context) ([]RawSkill, error) {
	out := make([]RawSkill, len(s))
	for i, r := range s {
		r.Triggers = slices.Clone(r.Triggers)
		out[i] = r
	}
	return out, nil
}
