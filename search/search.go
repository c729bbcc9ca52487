// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"cmp"
	"slices"

	"github.com/stacklok/skillcatalog/catalog"
	"github.com/stacklok/skillcatalog/index"
)

// HitWeight is the score contribution of one matched query token.
const HitWeight = 1000

// RankedResult is one search hit.
type RankedResult struct {
	ID string `json:"id"`
	// Score is TriggerHits*HitWeight + Priority.
	Score int `json:"score"`
	// TriggerHits is the number of distinct query tokens the record declares.
	TriggerHits int `json:"triggerHits"`
	Priority    int `json:"priority"`
}

// Search returns the records of c matching any token of query.
// A blank query yields an empty result. topK <= 0 returns every candidate.
// c must be a loaded Catalog.
func Search(c *catalog.Catalog, query string, topK int) []RankedResult {
	if c == nil {
		panic("search: nil catalog")
	}

	tokens := index.Tokenize(query)
	if len(tokens) == 0 {
		return []RankedResult{}
	}

	hits := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		for id := range c.Postings(tok) {
			if hits[id] == 0 {
				order = append(order, id)
			}
			hits[id]++
		}
	}

	results := make([]RankedResult, 0, len(order))
	for _, id := range order {
		priority, _ := c.Priority(id)
		results = append(results, RankedResult{
			ID:          id,
			Score:       hits[id]*HitWeight + priority,
			TriggerHits: hits[id],
			Priority:    priority,
		})
	}
	SortResults(results)

	if topK > 0 && len(results) > topK {
		results = slices.Clip(results[:topK])
	}
	return results
}

// SortResults orders results by trigger hits, then priority (both descending), then id.
func SortResults(results []RankedResult) {
	slices.SortFunc(results, compare)
}

func compare(a, b RankedResult) int {
	if c := cmp.Compare(b.TriggerHits, a.TriggerHits); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
