// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testTaxonomy(t *testing.T) *Taxonomy {
	t.Helper()
	tax, err := NewTaxonomy(
		[]string{"documents", "development", "design"},
		[]string{"anthropic", "community"},
	)
	require.NoError(t, err)
	return tax
}

func sampleRaw() []RawSkill {
	return []RawSkill{
		{
			ID:          "docx",
			Name:        "Word documents",
			Description: "Create and edit .docx files",
			Category:    "documents",
			Source:      "anthropic",
			Triggers:    []string{"docx", "Word", " document "},
			Priority:    5,
			Content:     "# DOCX\n\nUse python-docx.",
		},
		{
			ID:          "pdf",
			Name:        "PDF",
			Description: "Read and fill PDF forms",
			Category:    "documents",
			Source:      "community",
			Triggers:    []string{"pdf", "document"},
			Priority:    10,
			Content:     "# PDF\n\nUse pypdf.",
		},
		{
			ID:          "frontend",
			Name:        "Frontend design",
			Description: "Build polished web interfaces",
			Category:    "design",
			Source:      "anthropic",
			Triggers:    []string{"css", "html", "ui"},
			Priority:    0,
			Content:     "# Frontend",
		},
	}
}
