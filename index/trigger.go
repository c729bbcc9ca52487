// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"iter"
	"slices"
	"sort"
)

// Entry is the per-record input of BuildTriggerIndex.
type Entry struct {
	ID       string
	Triggers []string
}

// TriggerIndex maps a normalized token to the ids of the records declaring it.
type TriggerIndex struct {
	postings map[string][]string
}

// BuildTriggerIndex builds the inverted index for entries.
// Triggers are expected to be normalized already; empty tokens are skipped and
// a token repeated within one entry is posted once.
func BuildTriggerIndex(entries []Entry) *TriggerIndex {
	postings := make(map[string][]string)
	for _, e := range entries {
		for _, tok := range e.Triggers {
			if tok == "" {
				continue
			}
			list := postings[tok]
			if n := len(list); n > 0 && list[n-1] == e.ID {
				continue
			}
			postings[tok] = append(list, e.ID)
		}
	}
	for tok, list := range postings {
		postings[tok] = slices.Clip(list)
	}
	return &TriggerIndex{postings: postings}
}

// Lookup returns a copy of the posting list for token.
// Unknown tokens yield an empty, non-nil slice.
func (ti *TriggerIndex) Lookup(token string) []string {
	list := ti.postings[token]
	if len(list) == 0 {
		return []string{}
	}
	return slices.Clone(list)
}

// Postings iterates the posting list for token without copying it.
func (ti *TriggerIndex) Postings(token string) iter.Seq[string] {
	return slices.Values(ti.postings[token])
}

// Len returns the number of distinct tokens.
func (ti *TriggerIndex) Len() int {
	return len(ti.postings)
}

// Tokens returns every indexed token in lexical order.
func (ti *TriggerIndex) Tokens() []string {
	out := make([]string, 0, len(ti.postings))
	for tok := range ti.postings {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
