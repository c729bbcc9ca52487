// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/stacklok/skillcatalog/catalog"
	"github.com/stacklok/skillcatalog/content"
	"github.com/stacklok/skillcatalog/filter"
	"github.com/stacklok/skillcatalog/search"
)

// Registry serves reads against the current catalog.Catalog.
// All methods are safe for concurrent use.
type Registry struct {
	current atomic.Pointer[catalog.Catalog]
	filters *filter.Engine
	logger  *slog.Logger

	closeOnce sync.Once
	closers   []io.Closer
	closeErr  error
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for swap events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFilterEngine sets the engine compiling Filter expressions.
func WithFilterEngine(e *filter.Engine) Option {
	return func(r *Registry) {
		if e != nil {
			r.filters = e
		}
	}
}

// withClosers registers resources released by Close.
func withClosers(closers ...io.Closer) Option {
	return func(r *Registry) {
		r.closers = append(r.closers, closers...)
	}
}

// New returns a Registry serving c. It fails with catalog.ErrNotReady for a nil catalog.
func New(c *catalog.Catalog, opts ...Option) (*Registry, error) {
	if c == nil {
		return nil, catalog.ErrNotReady
	}
	r := &Registry{
		filters: filter.NewEngine(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.current.Store(c)
	return r, nil
}

// Catalog returns the catalog currently served.
func (r *Registry) Catalog() *catalog.Catalog {
	return r.current.Load()
}

// Swap atomically replaces the served catalog and returns the previous one.
// Calls already running keep using the catalog they started with.
func (r *Registry) Swap(c *catalog.Catalog) (*catalog.Catalog, error) {
	if c == nil {
		return nil, catalog.ErrNotReady
	}
	old := r.current.Swap(c)
	r.logger.Info("catalog swapped",
		"old_generation", old.Generation().String(),
		"new_generation", c.Generation().String(),
		"records", c.Len(),
	)
	return old, nil
}

// GetByID returns the metadata of the skill with the given id.
func (r *Registry) GetByID(id string) (catalog.SkillRecord, error) {
	rec, ok := r.current.Load().Record(id)
	if !ok {
		return catalog.SkillRecord{}, newNotFound("skill", id, catalog.ErrSkillNotFound)
	}
	return rec, nil
}

// ListByCategory returns the skills of a category in catalog order.
func (r *Registry) ListByCategory(category catalog.Category) []catalog.SkillRecord {
	return r.current.Load().ByCategory(category)
}

// ListBySource returns the skills of a source in catalog order.
func (r *Registry) ListBySource(source catalog.SourceTag) []catalog.SkillRecord {
	return r.current.Load().BySource(source)
}

// List returns every skill in catalog order.
func (r *Registry) List() []catalog.SkillRecord {
	return r.current.Load().Records()
}

// Search ranks the skills matching query. topK <= 0 returns every match.
func (r *Registry) Search(query string, topK int) []search.RankedResult {
	return search.Search(r.current.Load(), query, topK)
}

// GetContent reads the content payload of the skill with the given id.
func (r *Registry) GetContent(ctx context.Context, id string) (string, error) {
	c := r.current.Load()
	if _, ok := c.Record(id); !ok {
		return "", newNotFound("skill", id, catalog.ErrSkillNotFound)
	}
	text, err := c.Content(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return "", newNotFound("content", id, err)
		}
		return "", err
	}
	return text, nil
}

// Filter returns the skills for which the CEL expression expr is true, in catalog order.
func (r *Registry) Filter(expr string) ([]catalog.SkillRecord, error) {
	compiled, err := r.filters.Compile(expr)
	if err != nil {
		return nil, err
	}
	var out []catalog.SkillRecord
	for rec := range r.current.Load().All() {
		ok, err := compiled.Match(rec)
		if err != nil {
			return nil, fmt.Errorf("skill %s: %w", rec.ID, err)
		}
		if ok {
			out = append(out, rec.Clone())
		}
	}
	if out == nil {
		out = []catalog.SkillRecord{}
	}
	return out, nil
}

// Stats describes the catalog currently served.
func (r *Registry) Stats() catalog.Stats {
	return r.current.Load().Stats()
}

// Close releases the resources the Registry was opened with.
// It is safe to call more than once.
func (r *Registry) Close() error {
	r.closeOnce.Do(func() {
		var errs []error
		for i := len(r.closers) - 1; i >= 0; i-- {
			if err := r.closers[i].Close(); err != nil {
				errs = append(errs, err)
			}
		}
		r.closeErr = errors.Join(errs...)
	})
	return r.closeErr
}
