// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/skillcatalog/catalog"
	"github.com/stacklok/skillcatalog/content"
	"github.com/stacklok/skillcatalog/env"
	"github.com/stacklok/skillcatalog/logging"
)

// Environment variables overriding file values.
const (
	EnvCatalogRoot    = "SKILLCATALOG_CATALOG_ROOT"
	EnvTaxonomy       = "SKILLCATALOG_CATALOG_TAXONOMY"
	EnvContentBackend = "SKILLCATALOG_CONTENT_BACKEND"
	EnvContentDir     = "SKILLCATALOG_CONTENT_DIR"
	EnvReloadSchedule = "SKILLCATALOG_RELOAD_SCHEDULE"
)

// Backend selects the content store implementation.
type Backend string

// Content backends.
const (
	BackendMemory Backend = "memory"
	BackendOCI    Backend = "oci"
	BackendSQLite Backend = "sqlite"
)

// sqliteFileName is the database file created inside the content directory.
const sqliteFileName = "content.db"

var backends = []Backend{BackendMemory, BackendOCI, BackendSQLite}

// Config is the complete skill catalog configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Content ContentConfig `yaml:"content"`
	Reload  ReloadConfig  `yaml:"reload"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig locates the raw catalog and its taxonomy.
type CatalogConfig struct {
	// Root is the directory catalog files are read from.
	Root string `yaml:"root"`
	// Patterns are doublestar globs relative to Root.
	Patterns []string `yaml:"patterns"`
	// Taxonomy is the path of the category and source enumeration file.
	Taxonomy string `yaml:"taxonomy"`
}

// ContentConfig selects where skill content is kept.
type ContentConfig struct {
	Backend  Backend `yaml:"backend"`
	Dir      string  `yaml:"dir"`
	Compress bool    `yaml:"compress"`
}

// ReloadConfig controls scheduled catalog rebuilds.
type ReloadConfig struct {
	// Schedule is a standard five-field cron spec. Empty disables scheduled reloads.
	Schedule string `yaml:"schedule"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Root:     ".",
			Patterns: slices.Clone(catalog.DefaultPatterns),
			Taxonomy: "taxonomy.yaml",
		},
		Content: ContentConfig{Backend: BackendMemory},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load reads the YAML file at path over Default, applies environment
// overrides from r and validates the result. An empty path skips the file.
func Load(path string, r env.Reader) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if r != nil {
		cfg.applyEnv(r)
	}
	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(r env.Reader) {
	set := func(dst *string, key string) {
		if v := r.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Catalog.Root, EnvCatalogRoot)
	set(&c.Catalog.Taxonomy, EnvTaxonomy)
	set(&c.Content.Dir, EnvContentDir)
	set(&c.Reload.Schedule, EnvReloadSchedule)
	set(&c.Logging.Level, logging.EnvLevel)
	set(&c.Logging.Format, logging.EnvFormat)
	if v := r.Getenv(EnvContentBackend); v != "" {
		c.Content.Backend = Backend(strings.ToLower(v))
	}
}

func (c *Config) expandPaths() {
	c.Catalog.Root = expandHome(c.Catalog.Root)
	c.Catalog.Taxonomy = expandHome(c.Catalog.Taxonomy)
	c.Content.Dir = expandHome(c.Content.Dir)
}

func expandHome(p string) string {
	if p == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(xdg.Home, p[2:])
	}
	return p
}

// Validate reports every invalid setting as one numbered error.
func (c *Config) Validate() error {
	var msgs []string
	if strings.TrimSpace(c.Catalog.Root) == "" {
		msgs = append(msgs, "catalog.root is required")
	}
	if strings.TrimSpace(c.Catalog.Taxonomy) == "" {
		msgs = append(msgs, "catalog.taxonomy is required")
	}
	if len(c.Catalog.Patterns) == 0 {
		msgs = append(msgs, "catalog.patterns must not be empty")
	}
	for _, p := range c.Catalog.Patterns {
		if !doublestar.ValidatePattern(p) {
			msgs = append(msgs, fmt.Sprintf("catalog.patterns: invalid pattern %q", p))
		}
	}
	if !slices.Contains(backends, c.Content.Backend) {
		msgs = append(msgs, fmt.Sprintf("content.backend: unknown backend %q (expected memory, oci or sqlite)", c.Content.Backend))
	}
	if c.Content.Compress && c.Content.Backend != BackendOCI {
		msgs = append(msgs, "content.compress is only supported by the oci backend")
	}
	if c.Reload.Schedule != "" {
		if _, err := cron.ParseStandard(c.Reload.Schedule); err != nil {
			msgs = append(msgs, fmt.Sprintf("reload.schedule: %v", err))
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		msgs = append(msgs, fmt.Sprintf("logging.level: %v", err))
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		msgs = append(msgs, fmt.Sprintf("logging.format: %v", err))
	}
	return formatNumberedErrors("invalid configuration", msgs)
}

// ContentDir returns the directory disk backings write to.
func (c *Config) ContentDir() string {
	if c.Content.Dir != "" {
		return c.Content.Dir
	}
	return content.DefaultStoreRoot()
}

// SQLitePath returns the database file of the sqlite backend.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.ContentDir(), sqliteFileName)
}

// TaxonomyPath resolves the taxonomy path against the catalog root when relative.
func (c *Config) TaxonomyPath() string {
	if filepath.IsAbs(c.Catalog.Taxonomy) {
		return c.Catalog.Taxonomy
	}
	return filepath.Join(c.Catalog.Root, c.Catalog.Taxonomy)
}

// LogOptions returns the logging options for the configured level and format.
// It assumes the configuration has been validated.
func (c *Config) LogOptions() []logging.Option {
	lvl, _ := logging.ParseLevel(c.Logging.Level)
	f, _ := logging.ParseFormat(c.Logging.Format)
	return []logging.Option{logging.WithLevel(lvl), logging.WithFormat(f)}
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
