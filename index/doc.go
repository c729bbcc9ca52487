// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package index provides the read-only lookup structures derived from a skill
catalog: an inverted trigger index and insertion-ordered grouping indexes.

Both structures are built once from the full record set and never mutated
afterwards. A change to the underlying records requires building a new index,
which makes every index safe for concurrent readers without locking.

# Tokens

Triggers declared by skills and words typed by users meet in the same
normalized token space:

	index.NormalizeToken("  DOCX ") // "docx"
	index.Tokenize("Edit a Word-doc") // ["edit", "a", "word", "doc"]

# Trigger Index

	ti := index.BuildTriggerIndex([]index.Entry{
		{ID: "docx", Triggers: []string{"docx", "word"}},
		{ID: "pdf", Triggers: []string{"pdf"}},
	})
	ti.Lookup("word") // ["docx"]
	ti.Lookup("xlsx") // [] (unknown tokens are not an error)

Posting lists keep the insertion order of the records, never hash order.

# Group Index

	gi := index.BuildGroupIndex([]index.GroupEntry[string]{
		{ID: "docx", Key: "documents"},
		{ID: "pdf", Key: "documents"},
	})
	gi.Lookup("documents") // ["docx", "pdf"]
*/
package index
