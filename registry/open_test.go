// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/skillcatalog/catalog"
	"github.com/stacklok/skillcatalog/config"
	"github.com/stacklok/skillcatalog/logging"
)

const taxonomyYAML = `categories: [documents, design]
sources: [anthropic, community]
`

const documentsJSON = `[
  {"id": "a", "name": "Alpha", "category": "documents", "source": "anthropic",
   "triggers": ["docx", "word"], "priority": 5, "content": "content a"},
  {"id": "b", "name": "Bravo", "category": "documents", "source": "community",
   "triggers": ["docx"], "priority": 10, "content": "content b"}
]`

const designYAML = `- id: c
  name: Charlie
  category: design
  source: anthropic
  triggers: [css]
  priority: 1
  content: content c
`

func writeCatalogTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"taxonomy.yaml":            taxonomyYAML,
		"skills/documents.json":    documentsJSON,
		"skills/design/skills.yml": designYAML,
	}
	for name, body := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	}
	return root
}

func testConfig(t *testing.T, backend config.Backend) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Catalog.Root = writeCatalogTree(t)
	cfg.Catalog.Patterns = []string{"skills/**/*.json", "skills/**/*.yml"}
	cfg.Content.Backend = backend
	cfg.Content.Dir = filepath.Join(t.TempDir(), "content")
	return cfg
}

func TestOpen_Backends(t *testing.T) {
	t.Parallel()

	for _, backend := range []config.Backend{config.BackendMemory, config.BackendOCI, config.BackendSQLite} {
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			reg, rl, err := Open(context.Background(), testConfig(t, backend), logging.New(logging.WithOutput(&logs)))
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, reg.Close()) })
			require.NotNil(t, rl)

			assert.Equal(t, 3, reg.Catalog().Len())
			got := reg.Search("docx word", 0)
			require.Len(t, got, 2)
			assert.Equal(t, "a", got[0].ID)

			text, err := reg.GetContent(context.Background(), "c")
			require.NoError(t, err)
			assert.Equal(t, "content c", text)

			// Reloading into the same backing works for every backend.
			_, err = rl.Reload(context.Background())
			require.NoError(t, err)
			text, err = reg.GetContent(context.Background(), "a")
			require.NoError(t, err)
			assert.Equal(t, "content a", text)

			assert.Contains(t, logs.String(), "skill registry opened")
		})
	}
}

func TestOpen_OCICompressed(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, config.BackendOCI)
	cfg.Content.Compress = true

	reg, _, err := Open(context.Background(), cfg, logging.New(logging.WithOutput(&bytes.Buffer{})))
	require.NoError(t, err)
	defer reg.Close()

	text, err := reg.GetContent(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "content b", text)
}

func TestOpen_Scheduled(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, config.BackendMemory)
	cfg.Reload.Schedule = "@hourly"

	reg, rl, err := Open(context.Background(), cfg, logging.New(logging.WithOutput(&bytes.Buffer{})))
	require.NoError(t, err)
	require.ErrorIs(t, rl.Start("@hourly"), ErrReloaderRunning)
	require.NoError(t, reg.Close())
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig(t, "s3")
		_, _, err := Open(context.Background(), cfg, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown backend")
	})

	t.Run("missing taxonomy", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig(t, config.BackendMemory)
		cfg.Catalog.Taxonomy = "nope.yaml"
		_, _, err := Open(context.Background(), cfg, logging.New(logging.WithOutput(&bytes.Buffer{})))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read taxonomy file")
	})

	t.Run("rejected catalog", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig(t, config.BackendSQLite)
		bad := filepath.Join(cfg.Catalog.Root, "skills", "zz-bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`[{"id":"a","name":"Dup","category":"documents","source":"anthropic","triggers":["x"],"priority":0}]`), 0o600))

		_, _, err := Open(context.Background(), cfg, logging.New(logging.WithOutput(&bytes.Buffer{})))
		require.ErrorIs(t, err, catalog.ErrLoadFailed)
	})
}
