// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/stacklok/skillcatalog/catalog"
	"github.com/stacklok/skillcatalog/config"
	"github.com/stacklok/skillcatalog/content"
	"github.com/stacklok/skillcatalog/logging"
)

// Open builds the first catalog described by cfg and returns a Registry serving
// it together with its Reloader. When cfg.Reload.Schedule is set the Reloader
// is already started. Closing the Registry stops the schedule and closes the
// content store. A nil logger selects one built from cfg.Logging.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Registry, *Reloader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = logging.New(cfg.LogOptions()...)
	}

	tax, err := catalog.LoadTaxonomyFile(cfg.TaxonomyPath())
	if err != nil {
		return nil, nil, err
	}

	storeOpt, closer, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		if closer != nil {
			_ = closer.Close()
		}
	}

	loader := catalog.NewLoader(tax, storeOpt, catalog.WithLogger(logger))
	source := catalog.FileSource{FS: os.DirFS(cfg.Catalog.Root), Patterns: cfg.Catalog.Patterns}

	c, err := Build(ctx, loader, source)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	var closers []io.Closer
	if closer != nil {
		closers = append(closers, closer)
	}
	reg, err := New(c, WithLogger(logger), withClosers(closers...))
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	rl := NewReloader(reg, loader, source, WithReloadLogger(logger))
	reg.closers = append(reg.closers, rl)
	if cfg.Reload.Schedule != "" {
		if err := rl.Start(cfg.Reload.Schedule); err != nil {
			return nil, nil, errors.Join(err, reg.Close())
		}
	}

	logger.Info("skill registry opened",
		"root", cfg.Catalog.Root,
		"backend", string(cfg.Content.Backend),
		"records", c.Len(),
	)
	return reg, rl, nil
}

// openStore returns the loader option selecting the configured content backend
// and the resource to close with the registry, if any.
func openStore(ctx context.Context, cfg *config.Config) (catalog.LoaderOption, io.Closer, error) {
	switch cfg.Content.Backend {
	case config.BackendOCI:
		store, err := content.NewOCIStore(cfg.ContentDir(), content.WithCompression(cfg.Content.Compress))
		if err != nil {
			return nil, nil, err
		}
		return catalog.WithStore(store), nil, nil
	case config.BackendSQLite:
		store, err := content.NewSQLiteStore(ctx, cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return catalog.WithStore(store), store, nil
	case config.BackendMemory:
		return catalog.WithStoreFactory(func(context.Context) (content.Store, error) {
			return content.NewMemoryStore(), nil
		}), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown content backend %q", cfg.Content.Backend)
	}
}
