// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skillJSON(id string) string {
	return `[{"id":"` + id + `","name":"` + id + `","category":"documents","source":"anthropic","triggers":["` + id + `"],"priority":1}]`
}

func TestFileSource_Read(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"skills/b/pdf.json":              {Data: []byte(skillJSON("pdf"))},
		"skills/a/docx.json":             {Data: []byte(skillJSON("docx"))},
		"skills/c/xlsx.yaml":             {Data: []byte("- {id: xlsx, name: xlsx, category: documents, source: anthropic, triggers: [xlsx], priority: 1}\n")},
		"skills/README.md":               {Data: []byte("# not a catalog")},
		"other/ignored.json":             {Data: []byte(skillJSON("ignored"))},
		"skills/d/nested.json/inner.txt": {Data: []byte("a directory named like a catalog file")},
	}

	src := FileSource{FS: fsys, Patterns: []string{"skills/**/*.yaml", "skills/**/*.json"}}
	raw, err := src.Read(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(raw))
	for _, r := range raw {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"docx", "pdf", "xlsx"}, ids, "files are read in lexical path order")
}

func TestFileSource_DefaultPatterns(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"one.json":      {Data: []byte(skillJSON("one"))},
		"deep/two.yml":  {Data: []byte("- {id: two, name: two, category: documents, source: anthropic, triggers: [two], priority: 1}\n")},
		"notes/three.t": {Data: []byte("ignored")},
	}

	raw, err := FileSource{FS: fsys}.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, "two", raw[0].ID)
	assert.Equal(t, "one", raw[1].ID)
}

func TestFileSource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     FileSource
		wantErr string
	}{
		{name: "no filesystem", src: FileSource{}, wantErr: "no filesystem"},
		{
			name:    "no matches",
			src:     FileSource{FS: fstest.MapFS{"a.txt": {}}, Patterns: []string{"*.json"}},
			wantErr: "no catalog files match *.json",
		},
		{
			name:    "bad pattern",
			src:     FileSource{FS: fstest.MapFS{"a.json": {}}, Patterns: []string{"[a-"}},
			wantErr: "invalid catalog pattern",
		},
		{
			name:    "invalid document",
			src:     FileSource{FS: fstest.MapFS{"bad.json": {Data: []byte(`[{"id":"x"}]`)}}},
			wantErr: "bad.json: skill catalog schema validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.src.Read(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStaticSource_ReturnsCopy(t *testing.T) {
	t.Parallel()

	src := StaticSource(sampleRaw())
	first, err := src.Read(context.Background())
	require.NoError(t, err)

	first[0].ID = "changed"
	first[0].Triggers[0] = "changed"

	second, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleRaw(), second)
}
