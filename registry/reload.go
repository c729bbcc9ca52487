// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/stacklok/skillcatalog/catalog"
)

// ErrReloaderRunning is returned by Start when a schedule is already active.
var ErrReloaderRunning = errors.New("reloader already started")

// DefaultReloadTimeout bounds one scheduled rebuild.
const DefaultReloadTimeout = 5 * time.Minute

// Reloader rebuilds the catalog of a Registry from a RawSource.
// Rebuilds never overlap; a failed rebuild leaves the served catalog untouched.
type Reloader struct {
	registry *Registry
	loader   *catalog.Loader
	source   catalog.RawSource
	logger   *slog.Logger
	timeout  time.Duration

	mu sync.Mutex // serializes rebuilds

	cronMu sync.Mutex
	cron   *cron.Cron
}

// ReloaderOption configures a Reloader.
type ReloaderOption func(*Reloader)

// WithReloadLogger sets the logger for reload results.
func WithReloadLogger(logger *slog.Logger) ReloaderOption {
	return func(rl *Reloader) {
		if logger != nil {
			rl.logger = logger
		}
	}
}

// WithReloadTimeout bounds each scheduled rebuild.
func WithReloadTimeout(d time.Duration) ReloaderOption {
	return func(rl *Reloader) {
		rl.timeout = d
	}
}

// NewReloader returns a Reloader feeding reg.
func NewReloader(reg *Registry, loader *catalog.Loader, source catalog.RawSource, opts ...ReloaderOption) *Reloader {
	rl := &Reloader{
		registry: reg,
		loader:   loader,
		source:   source,
		logger:   slog.Default(),
		timeout:  DefaultReloadTimeout,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Build reads source and loads a new catalog without serving it.
func Build(ctx context.Context, loader *catalog.Loader, source catalog.RawSource) (*catalog.Catalog, error) {
	raw, err := source.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog source: %w", err)
	}
	return loader.Load(ctx, raw)
}

// Reload builds a new catalog and swaps it in.
// On failure the error is logged and returned and the current catalog keeps serving.
func (rl *Reloader) Reload(ctx context.Context) (*catalog.Catalog, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	start := time.Now()
	c, err := Build(ctx, rl.loader, rl.source)
	if err != nil {
		rl.logger.Error("catalog reload failed, keeping current catalog",
			"generation", rl.registry.Catalog().Generation().String(),
			"error", err,
		)
		return nil, err
	}
	if _, err := rl.registry.Swap(c); err != nil {
		return nil, err
	}
	rl.logger.Debug("catalog reloaded", "duration", time.Since(start).String())
	return c, nil
}

// Start schedules Reload with a standard five-field cron spec or descriptor such as "@hourly".
func (rl *Reloader) Start(schedule string) error {
	rl.cronMu.Lock()
	defer rl.cronMu.Unlock()
	if rl.cron != nil {
		return ErrReloaderRunning
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, rl.runScheduled)
	if err != nil {
		return fmt.Errorf("invalid reload schedule %q: %w", schedule, err)
	}
	c.Start()
	rl.cron = c
	rl.logger.Info("catalog reload scheduled", "schedule", schedule)
	return nil
}

// runScheduled performs one scheduled rebuild. A panic in the source or
// loader is logged and swallowed so the scheduler keeps running.
func (rl *Reloader) runScheduled() {
	defer func() {
		if r := recover(); r != nil {
			rl.logger.Error("catalog reload panicked",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), rl.timeout)
	defer cancel()
	_, _ = rl.Reload(ctx)
}

// Stop cancels the schedule and waits for a running rebuild to finish.
func (rl *Reloader) Stop() {
	rl.cronMu.Lock()
	c := rl.cron
	rl.cron = nil
	rl.cronMu.Unlock()
	if c == nil {
		return
	}
	<-c.Stop().Done()
}

// Close implements io.Closer by calling Stop.
func (rl *Reloader) Close() error {
	rl.Stop()
	return nil
}
