// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package index

import "slices"

// GroupEntry assigns one record id to one group key.
type GroupEntry[K comparable] struct {
	ID  string
	Key K
}

// GroupIndex groups record ids by key, preserving insertion order within each group.
type GroupIndex[K comparable] struct {
	groups map[K][]string
	keys   []K
}

// BuildGroupIndex builds a GroupIndex from entries in order.
func BuildGroupIndex[K comparable](entries []GroupEntry[K]) *GroupIndex[K] {
	gi := &GroupIndex[K]{groups: make(map[K][]string)}
	for _, e := range entries {
		if _, ok := gi.groups[e.Key]; !ok {
			gi.keys = append(gi.keys, e.Key)
		}
		gi.groups[e.Key] = append(gi.groups[e.Key], e.ID)
	}
	return gi
}

// Lookup returns the ids grouped under key in insertion order.
// Unknown keys yield an empty, non-nil slice.
func (gi *GroupIndex[K]) Lookup(key K) []string {
	ids := gi.groups[key]
	if len(ids) == 0 {
		return []string{}
	}
	return slices.Clone(ids)
}

// Keys returns the group keys in first-seen order.
func (gi *GroupIndex[K]) Keys() []K {
	return slices.Clone(gi.keys)
}

// Len returns the number of groups.
func (gi *GroupIndex[K]) Len() int {
	return len(gi.keys)
}
