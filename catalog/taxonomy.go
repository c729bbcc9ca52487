// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var validNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateName checks a category or source name: lowercase alphanumerics,
// underscores and dashes, starting with a letter or digit.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name cannot be empty or consist only of whitespace")
	}
	if strings.Contains(name, "\x00") {
		return errors.New("name cannot contain null bytes")
	}
	if name != strings.ToLower(name) {
		return fmt.Errorf("name must be lowercase: %q", name)
	}
	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("name can only contain lowercase alphanumeric characters, underscores and dashes: %q", name)
	}
	return nil
}

// Taxonomy is the closed set of categories and sources a catalog may reference.
type Taxonomy struct {
	categories []Category
	sources    []SourceTag
	catSet     map[Category]struct{}
	srcSet     map[SourceTag]struct{}
}

// taxonomyFile is the YAML form read by LoadTaxonomy.
type taxonomyFile struct {
	Categories []string `yaml:"categories"`
	Sources    []string `yaml:"sources"`
}

// NewTaxonomy builds a Taxonomy from category and source names.
// Every name must pass ValidateName and appear once per list.
func NewTaxonomy(categories, sources []string) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, errors.New("taxonomy must declare at least one category")
	}
	if len(sources) == 0 {
		return nil, errors.New("taxonomy must declare at least one source")
	}

	t := &Taxonomy{
		catSet: make(map[Category]struct{}, len(categories)),
		srcSet: make(map[SourceTag]struct{}, len(sources)),
	}

	var msgs []string
	for _, name := range categories {
		if err := ValidateName(name); err != nil {
			msgs = append(msgs, fmt.Sprintf("category: %v", err))
			continue
		}
		if _, dup := t.catSet[Category(name)]; dup {
			msgs = append(msgs, fmt.Sprintf("category %q declared more than once", name))
			continue
		}
		t.catSet[Category(name)] = struct{}{}
		t.categories = append(t.categories, Category(name))
	}
	for _, name := range sources {
		if err := ValidateName(name); err != nil {
			msgs = append(msgs, fmt.Sprintf("source: %v", err))
			continue
		}
		if _, dup := t.srcSet[SourceTag(name)]; dup {
			msgs = append(msgs, fmt.Sprintf("source %q declared more than once", name))
			continue
		}
		t.srcSet[SourceTag(name)] = struct{}{}
		t.sources = append(t.sources, SourceTag(name))
	}
	if err := formatNumberedErrors("invalid taxonomy", msgs); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTaxonomy decodes a YAML document with "categories" and "sources" lists.
func LoadTaxonomy(r io.Reader) (*Taxonomy, error) {
	var f taxonomyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("taxonomy document is empty")
		}
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}
	return NewTaxonomy(f.Categories, f.Sources)
}

// LoadTaxonomyFile reads a taxonomy from a YAML file.
func LoadTaxonomyFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	t, err := LoadTaxonomy(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Category resolves s to a declared category. Surrounding whitespace is ignored.
func (t *Taxonomy) Category(s string) (Category, bool) {
	c := Category(strings.TrimSpace(s))
	_, ok := t.catSet[c]
	return c, ok
}

// Source resolves s to a declared source tag. Surrounding whitespace is ignored.
func (t *Taxonomy) Source(s string) (SourceTag, bool) {
	st := SourceTag(strings.TrimSpace(s))
	_, ok := t.srcSet[st]
	return st, ok
}

// Categories returns the declared categories in declaration order.
func (t *Taxonomy) Categories() []Category {
	return slices.Clone(t.categories)
}

// Sources returns the declared sources in declaration order.
func (t *Taxonomy) Sources() []SourceTag {
	return slices.Clone(t.sources)
}
