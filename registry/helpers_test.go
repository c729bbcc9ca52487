// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stacklok/skillcatalog/catalog"
)

func testTaxonomy(t *testing.T) *catalog.Taxonomy {
	t.Helper()
	tax, err := catalog.NewTaxonomy([]string{"documents", "design"}, []string{"anthropic", "community"})
	require.NoError(t, err)
	return tax
}

func rawSkills() []catalog.RawSkill {
	return []catalog.RawSkill{
		{ID: "a", Name: "Alpha", Category: "documents", Source: "anthropic", Triggers: []string{"docx", "word"}, Priority: 5, Content: "content a"},
		{ID: "b", Name: "Bravo", Category: "documents", Source: "community", Triggers: []string{"docx"}, Priority: 10, Content: "content b"},
		{ID: "c", Name: "Charlie", Category: "design", Source: "anthropic", Triggers: []string{"css"}, Priority: 1, Content: "content c"},
	}
}

func loadCatalog(t *testing.T, raw []catalog.RawSkill, opts ...catalog.LoaderOption) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewLoader(testTaxonomy(t), opts...).Load(context.Background(), raw)
	require.NoError(t, err)
	return c
}

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := New(loadCatalog(t, rawSkills()))
	require.NoError(t, err)
	return reg
}
