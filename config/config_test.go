// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/skillcatalog/content"
	"github.com/stacklok/skillcatalog/env/mocks"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "skillcatalog.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func emptyEnv(t *testing.T) *mocks.MockReader {
	t.Helper()
	reader := mocks.NewMockReader(gomock.NewController(t))
	reader.EXPECT().Getenv(gomock.Any()).Return("").AnyTimes()
	return reader
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("", emptyEnv(t))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Catalog.Root)
	assert.Equal(t, []string{"**/*.json", "**/*.yaml", "**/*.yml"}, cfg.Catalog.Patterns)
	assert.Equal(t, BackendMemory, cfg.Content.Backend)
	assert.Equal(t, content.DefaultStoreRoot(), cfg.ContentDir())
	assert.Equal(t, filepath.Join(content.DefaultStoreRoot(), "content.db"), cfg.SQLitePath())
	assert.Equal(t, "taxonomy.yaml", cfg.TaxonomyPath())
	assert.Len(t, cfg.LogOptions(), 2)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
catalog:
  root: /srv/skills
  patterns: ["**/*.yaml"]
  taxonomy: meta/taxonomy.yaml
content:
  backend: oci
  dir: ~/skill-content
  compress: true
reload:
  schedule: "*/15 * * * *"
logging:
  level: debug
  format: text
`)

	cfg, err := Load(path, emptyEnv(t))
	require.NoError(t, err)

	assert.Equal(t, "/srv/skills", cfg.Catalog.Root)
	assert.Equal(t, []string{"**/*.yaml"}, cfg.Catalog.Patterns)
	assert.Equal(t, "/srv/skills/meta/taxonomy.yaml", cfg.TaxonomyPath())
	assert.Equal(t, BackendOCI, cfg.Content.Backend)
	assert.Equal(t, filepath.Join(xdg.Home, "skill-content"), cfg.ContentDir())
	assert.True(t, cfg.Content.Compress)
	assert.Equal(t, "*/15 * * * *", cfg.Reload.Schedule)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "content:\n  backend: oci\n")

	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	values := map[string]string{
		EnvCatalogRoot:    "/data/skills",
		EnvTaxonomy:       "/etc/skillcatalog/taxonomy.yaml",
		EnvContentBackend: "SQLite",
		EnvContentDir:     "/var/lib/skillcatalog",
		EnvReloadSchedule: "@hourly",
	}
	reader.EXPECT().Getenv(gomock.Any()).DoAndReturn(func(key string) string {
		return values[key]
	}).AnyTimes()

	cfg, err := Load(path, reader)
	require.NoError(t, err)

	assert.Equal(t, "/data/skills", cfg.Catalog.Root)
	assert.Equal(t, "/etc/skillcatalog/taxonomy.yaml", cfg.TaxonomyPath())
	assert.Equal(t, BackendSQLite, cfg.Content.Backend)
	assert.Equal(t, "/var/lib/skillcatalog/content.db", cfg.SQLitePath())
	assert.Equal(t, "@hourly", cfg.Reload.Schedule)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "unknown key", body: "catalog:\n  roots: x\n", wantErr: "field roots not found"},
		{name: "bad backend", body: "content:\n  backend: s3\n", wantErr: `unknown backend "s3"`},
		{name: "bad schedule", body: "reload:\n  schedule: every minute\n", wantErr: "reload.schedule"},
		{name: "empty patterns", body: "catalog:\n  patterns: []\n", wantErr: "catalog.patterns must not be empty"},
		{name: "bad pattern", body: "catalog:\n  patterns: [\"[a-\"]\n", wantErr: "invalid pattern"},
		{name: "compress without oci", body: "content:\n  compress: true\n", wantErr: "only supported by the oci backend"},
		{
			name:    "several problems",
			body:    "content:\n  backend: s3\nlogging:\n  level: loud\n  format: xml\n",
			wantErr: "invalid configuration with 3 errors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.body), emptyEnv(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, ""), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, xdg.Home, expandHome("~"))
	assert.Equal(t, filepath.Join(xdg.Home, "a", "b"), expandHome("~/a/b"))
	assert.Equal(t, "/abs", expandHome("/abs"))
	assert.Equal(t, "~user/x", expandHome("~user/x"))
}
