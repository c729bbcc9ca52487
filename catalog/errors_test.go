// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	tests := []struct {
		name string
		err  LoadError
		want string
	}{
		{name: "empty id", err: LoadError{Kind: KindEmptyID, Index: 0}, want: "entry 0: id is empty"},
		{name: "duplicate", err: LoadError{Kind: KindDuplicateID, Index: 3, ID: "pdf", Value: "pdf"}, want: `entry 3 (pdf): duplicate id "pdf"`},
		{name: "category", err: LoadError{Kind: KindUnknownCategory, Index: 1, ID: "x", Value: "food"}, want: `entry 1 (x): unknown category "food"`},
		{name: "content", err: LoadError{Kind: KindContentStore, Index: 2, ID: "y", Err: cause}, want: "entry 2 (y): storing content failed: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestLoadErrorKind_Fatal(t *testing.T) {
	t.Parallel()

	for _, k := range []LoadErrorKind{KindEmptyID, KindEmptyName, KindDuplicateID, KindUnknownCategory, KindUnknownSource, KindContentStore} {
		assert.True(t, k.Fatal(), k)
	}
	for _, k := range []LoadErrorKind{KindNoTriggers, KindUnreachableTrigger} {
		assert.False(t, k.Fatal(), k)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cause := errors.New("write failed")
	errs := &LoadErrors{Errors: []LoadError{
		{Kind: KindDuplicateID, Index: 0, ID: "a", Value: "a"},
		{Kind: KindNoTriggers, Index: 1, ID: "b"},
		{Kind: KindContentStore, Index: 2, ID: "c", Err: cause},
	}}

	assert.ErrorIs(t, errs, ErrLoadFailed)
	assert.ErrorIs(t, errs, cause)
	assert.Len(t, errs.Fatal(), 2)
	assert.Equal(t, []string{"b"}, errs.IDs(KindNoTriggers))
	assert.Equal(t,
		"catalog load failed with 3 errors:\n"+
			"  1. error: entry 0 (a): duplicate id \"a\"\n"+
			"  2. warning: entry 1 (b): no triggers, skill is unreachable by search\n"+
			"  3. error: entry 2 (c): storing content failed: write failed",
		errs.Error())

	single := &LoadErrors{Errors: []LoadError{{Kind: KindEmptyName, Index: 4, ID: "d"}}}
	assert.Equal(t, "catalog load failed: error: entry 4 (d): name is empty", single.Error())
}
