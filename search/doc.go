// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package search matches free-text queries against a catalog's trigger index.

A query is tokenized the same way triggers are normalized. Every record that
declares at least one of the query tokens is a candidate. Candidates are
ordered by the number of distinct query tokens they declare, then by priority,
then by id, so the order is fully deterministic:

	results := search.Search(c, "edit a word docx", 5)
	for _, r := range results {
		fmt.Println(r.ID, r.TriggerHits, r.Score)
	}

Search only reads metadata. Content payloads are never touched.
*/
package search
