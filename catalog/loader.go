// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stacklok/skillcatalog/content"
	"github.com/stacklok/skillcatalog/index"
)

// StoreFactory returns the content store a Load run writes into.
type StoreFactory func(ctx context.Context) (content.Store, error)

// Loader validates raw entries and builds Catalogs.
// A Loader holds no per-run state and may be reused.
type Loader struct {
	taxonomy *Taxonomy
	newStore StoreFactory
	logger   *slog.Logger
	now      func() time.Time
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithStore makes every Load write into s. Stores that address payloads by
// skill id, such as content.MemoryStore, can only serve one Load.
func WithStore(s content.Store) LoaderOption {
	return func(l *Loader) {
		l.newStore = func(context.Context) (content.Store, error) { return s, nil }
	}
}

// WithStoreFactory sets how each Load obtains its content store.
// The default creates a new content.MemoryStore per Load.
func WithStoreFactory(f StoreFactory) LoaderOption {
	return func(l *Loader) {
		l.newStore = f
	}
}

// WithLogger sets the logger for load warnings and summaries.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader returns a Loader validating against tax.
func NewLoader(tax *Taxonomy, opts ...LoaderOption) *Loader {
	l := &Loader{
		taxonomy: tax,
		newStore: func(context.Context) (content.Store, error) { return content.NewMemoryStore(), nil },
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load validates raw and builds a Catalog from it.
//
// All problems in the batch are collected. If any of them is fatal, Load
// returns a *LoadErrors listing every problem and no Catalog; nothing is
// written to the content store in that case. Otherwise the content of each
// entry is written to the store, the indexes are built and the non-fatal
// problems are available from Catalog.Warnings. raw is not modified.
func (l *Loader) Load(ctx context.Context, raw []RawSkill) (*Catalog, error) {
	if l.taxonomy == nil {
		return nil, errors.New("loader has no taxonomy")
	}

	records, issues := l.validate(raw)
	if hasFatal(issues) {
		l.logger.Error("catalog load rejected", "entries", len(raw), "problems", len(issues))
		return nil, &LoadErrors{Errors: issues}
	}

	store, err := l.newStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating content store: %w", err)
	}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h, err := store.Put(ctx, records[i].ID, raw[records[i].index].Content)
		if err != nil {
			issues = append(issues, LoadError{
				Kind:  KindContentStore,
				Index: records[i].index,
				ID:    records[i].ID,
				Err:   err,
			})
			continue
		}
		records[i].ContentRef = h
	}
	if hasFatal(issues) {
		l.logger.Error("catalog load failed while storing content", "entries", len(raw))
		return nil, &LoadErrors{Errors: issues}
	}

	c := l.build(records, store, issues)
	for _, w := range c.warnings {
		l.logger.Warn("catalog load warning",
			"kind", string(w.Kind), "index", w.Index, "id", w.ID, "value", w.Value)
	}
	l.logger.Info("catalog loaded",
		"generation", c.generation.String(),
		"records", len(c.records),
		"tokens", c.triggers.Len(),
		"categories", c.categories.Len(),
		"sources", c.sources.Len(),
		"warnings", len(c.warnings),
	)
	return c, nil
}

// pending is a validated record still waiting for its content handle.
type pending struct {
	SkillRecord
	index int
}

func (l *Loader) validate(raw []RawSkill) ([]pending, []LoadError) {
	var issues []LoadError

	counts := make(map[string]int, len(raw))
	for _, r := range raw {
		if id := strings.TrimSpace(r.ID); id != "" {
			counts[id]++
		}
	}

	records := make([]pending, 0, len(raw))
	for i, r := range raw {
		id := strings.TrimSpace(r.ID)
		name := strings.TrimSpace(r.Name)
		before := len(issues)

		if id == "" {
			issues = append(issues, LoadError{Kind: KindEmptyID, Index: i})
		} else if counts[id] > 1 {
			issues = append(issues, LoadError{Kind: KindDuplicateID, Index: i, ID: id, Value: id})
		}
		if name == "" {
			issues = append(issues, LoadError{Kind: KindEmptyName, Index: i, ID: id})
		}
		cat, ok := l.taxonomy.Category(r.Category)
		if !ok {
			issues = append(issues, LoadError{Kind: KindUnknownCategory, Index: i, ID: id, Value: r.Category})
		}
		src, ok := l.taxonomy.Source(r.Source)
		if !ok {
			issues = append(issues, LoadError{Kind: KindUnknownSource, Index: i, ID: id, Value: r.Source})
		}

		triggers := normalizeTriggers(r.Triggers)
		if len(triggers) == 0 {
			issues = append(issues, LoadError{Kind: KindNoTriggers, Index: i, ID: id})
		}
		for _, tok := range triggers {
			if !index.IsQueryToken(tok) {
				issues = append(issues, LoadError{Kind: KindUnreachableTrigger, Index: i, ID: id, Value: tok})
			}
		}

		if hasFatal(issues[before:]) {
			continue
		}
		records = append(records, pending{
			SkillRecord: SkillRecord{
				ID:          id,
				Name:        name,
				Description: strings.TrimSpace(r.Description),
				Category:    cat,
				Source:      src,
				Triggers:    triggers,
				Priority:    r.Priority,
			},
			index: i,
		})
	}
	return records, issues
}

func (l *Loader) build(pend []pending, store content.Store, warnings []LoadError) *Catalog {
	records := make([]SkillRecord, len(pend))
	byID := make(map[string]int, len(pend))
	entries := make([]index.Entry, len(pend))
	cats := make([]index.GroupEntry[Category], len(pend))
	srcs := make([]index.GroupEntry[SourceTag], len(pend))

	for i := range pend {
		rec := pend[i].SkillRecord
		records[i] = rec
		byID[rec.ID] = i
		entries[i] = index.Entry{ID: rec.ID, Triggers: rec.Triggers}
		cats[i] = index.GroupEntry[Category]{ID: rec.ID, Key: rec.Category}
		srcs[i] = index.GroupEntry[SourceTag]{ID: rec.ID, Key: rec.Source}
	}

	return &Catalog{
		generation: uuid.New(),
		loadedAt:   l.now(),
		records:    records,
		byID:       byID,
		triggers:   index.BuildTriggerIndex(entries),
		categories: index.BuildGroupIndex(cats),
		sources:    index.BuildGroupIndex(srcs),
		taxonomy:   l.taxonomy,
		store:      store,
		warnings:   warnings,
	}
}

// normalizeTriggers lowercases and trims triggers, dropping blanks and duplicates.
func normalizeTriggers(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		tok := index.NormalizeToken(t)
		if tok == "" || slices.Contains(out, tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func hasFatal(issues []LoadError) bool {
	for _, e := range issues {
		if e.Kind.Fatal() {
			return true
		}
	}
	return false
}
