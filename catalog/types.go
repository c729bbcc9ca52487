// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"slices"

	"github.com/stacklok/skillcatalog/content"
)

// Category is a validated member of a Taxonomy's category enumeration.
type Category string

// SourceTag is a validated member of a Taxonomy's source enumeration.
type SourceTag string

// RawSkill is one skill definition as produced by the catalog build.
type RawSkill struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string   `json:"category" yaml:"category"`
	Source      string   `json:"source" yaml:"source"`
	Triggers    []string `json:"triggers" yaml:"triggers"`
	Priority    int      `json:"priority" yaml:"priority"`
	Content     string   `json:"content,omitempty" yaml:"content,omitempty"`
}

// SkillRecord is the resident metadata of a loaded skill.
// The content payload lives in the content store behind ContentRef.
type SkillRecord struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    Category       `json:"category"`
	Source      SourceTag      `json:"source"`
	Triggers    []string       `json:"triggers"`
	Priority    int            `json:"priority"`
	ContentRef  content.Handle `json:"contentRef"`
}

// HasTrigger reports whether the record declares the normalized token tok.
func (r *SkillRecord) HasTrigger(tok string) bool {
	return slices.Contains(r.Triggers, tok)
}

// Clone returns a copy of the record that shares no memory with r.
func (r *SkillRecord) Clone() SkillRecord {
	out := *r
	out.Triggers = slices.Clone(r.Triggers)
	return out
}
