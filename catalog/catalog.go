// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/stacklok/skillcatalog/content"
	"github.com/stacklok/skillcatalog/index"
)

// Catalog is one immutable generation of loaded skills.
// All methods are safe for concurrent use.
type Catalog struct {
	generation uuid.UUID
	loadedAt   time.Time

	records    []SkillRecord
	byID       map[string]int
	triggers   *index.TriggerIndex
	categories *index.GroupIndex[Category]
	sources    *index.GroupIndex[SourceTag]

	taxonomy *Taxonomy
	store    content.Store
	warnings []LoadError
}

// Stats summarizes the size of a Catalog.
type Stats struct {
	Records    int `json:"records"`
	Tokens     int `json:"tokens"`
	Categories int `json:"categories"`
	Sources    int `json:"sources"`
}

// Generation identifies the Load run that produced the Catalog.
func (c *Catalog) Generation() uuid.UUID {
	return c.generation
}

// LoadedAt returns when the Catalog finished building.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns copies of all records in input order.
func (c *Catalog) Records() []SkillRecord {
	out := make([]SkillRecord, len(c.records))
	for i := range c.records {
		out[i] = c.records[i].Clone()
	}
	return out
}

// All iterates over the records in input order without copying them.
// Callers must not modify the yielded records.
func (c *Catalog) All() iter.Seq[*SkillRecord] {
	return func(yield func(*SkillRecord) bool) {
		for i := range c.records {
			if !yield(&c.records[i]) {
				return
			}
		}
	}
}

// Record returns a copy of the record with the given id.
func (c *Catalog) Record(id string) (SkillRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return SkillRecord{}, false
	}
	return c.records[i].Clone(), true
}

// Priority returns the priority of the record with the given id.
func (c *Catalog) Priority(id string) (int, bool) {
	i, ok := c.byID[id]
	if !ok {
		return 0, false
	}
	return c.records[i].Priority, true
}

// Postings iterates the ids of the records declaring token, in input order.
func (c *Catalog) Postings(token string) iter.Seq[string] {
	return c.triggers.Postings(token)
}

// Lookup returns the ids of the records declaring token, in input order.
func (c *Catalog) Lookup(token string) []string {
	return c.triggers.Lookup(token)
}

// ByCategory returns the records of a category in input order.
func (c *Catalog) ByCategory(cat Category) []SkillRecord {
	return c.collect(c.categories.Lookup(cat))
}

// BySource returns the records of a source in input order.
func (c *Catalog) BySource(src SourceTag) []SkillRecord {
	return c.collect(c.sources.Lookup(src))
}

// Categories returns the categories that have at least one record, in first-seen order.
func (c *Catalog) Categories() []Category {
	return c.categories.Keys()
}

// Sources returns the sources that have at least one record, in first-seen order.
func (c *Catalog) Sources() []SourceTag {
	return c.sources.Keys()
}

// Content reads the content payload of the record with the given id.
func (c *Catalog) Content(ctx context.Context, id string) (string, error) {
	i, ok := c.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSkillNotFound, id)
	}
	text, err := c.store.Get(ctx, c.records[i].ContentRef)
	if err != nil {
		return "", fmt.Errorf("reading content of %s: %w", id, err)
	}
	return text, nil
}

// Taxonomy returns the taxonomy the Catalog was validated against.
func (c *Catalog) Taxonomy() *Taxonomy {
	return c.taxonomy
}

// Store returns the content store holding the payloads of this generation.
func (c *Catalog) Store() content.Store {
	return c.store
}

// Warnings returns the non-fatal load problems of this generation.
func (c *Catalog) Warnings() []LoadError {
	return slices.Clone(c.warnings)
}

// Stats returns the size of the Catalog.
func (c *Catalog) Stats() Stats {
	return Stats{
		Records:    len(c.records),
		Tokens:     c.triggers.Len(),
		Categories: c.categories.Len(),
		Sources:    c.sources.Len(),
	}
}

func (c *Catalog) collect(ids []string) []SkillRecord {
	out := make([]SkillRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.records[c.byID[id]].Clone())
	}
	return out
}
