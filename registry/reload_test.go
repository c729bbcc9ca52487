// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/skillcatalog/catalog"
	"github.com/stacklok/skillcatalog/catalog/mocks"
)

func TestReloader_Reload(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	first := reg.Catalog()

	raw := rawSkills()
	raw = append(raw, catalog.RawSkill{
		ID: "d", Name: "Delta", Category: "design", Source: "community", Triggers: []string{"figma"},
	})
	rl := NewReloader(reg, catalog.NewLoader(testTaxonomy(t)), catalog.StaticSource(raw))

	c, err := rl.Reload(context.Background())
	require.NoError(t, err)
	assert.Same(t, c, reg.Catalog())
	assert.NotEqual(t, first.Generation(), c.Generation())

	got := reg.Search("figma", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "d", got[0].ID)
}

func TestReloader_FailedBuildKeepsServing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(src *mocks.MockRawSource)
		check func(t *testing.T, err error)
	}{
		{
			name: "source error",
			setup: func(src *mocks.MockRawSource) {
				src.EXPECT().Read(gomock.Any()).Return(nil, errors.New("permission denied"))
			},
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.Contains(t, err.Error(), "reading catalog source")
			},
		},
		{
			name: "invalid catalog",
			setup: func(src *mocks.MockRawSource) {
				raw := append(rawSkills(), rawSkills()[0])
				src.EXPECT().Read(gomock.Any()).Return(raw, nil)
			},
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.ErrorIs(t, err, catalog.ErrLoadFailed)
				var loadErrs *catalog.LoadErrors
				require.ErrorAs(t, err, &loadErrs)
				assert.Equal(t, []string{"a", "a"}, loadErrs.IDs(catalog.KindDuplicateID))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := newRegistry(t)
			before := reg.Catalog()

			src := mocks.NewMockRawSource(gomock.NewController(t))
			tt.setup(src)

			rl := NewReloader(reg, catalog.NewLoader(testTaxonomy(t)), src)
			c, err := rl.Reload(context.Background())
			require.Error(t, err)
			assert.Nil(t, c)
			tt.check(t, err)

			assert.Same(t, before, reg.Catalog(), "the current catalog keeps serving")
			assert.Len(t, reg.Search("docx", 0), 2)
		})
	}
}

// countingSource counts reads and serves the same entries every time.
type countingSource struct {
	reads atomic.Int32
	raw   []catalog.RawSkill
}

func (s *countingSource) Read(ctx context.Context) ([]catalog.RawSkill, error) {
	s.reads.Add(1)
	return catalog.StaticSource(s.raw).Read(ctx)
}

func TestReloader_Schedule(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	first := reg.Catalog()
	src := &countingSource{raw: rawSkills()}

	rl := NewReloader(reg, catalog.NewLoader(testTaxonomy(t)), src, WithReloadTimeout(10*time.Second))
	require.NoError(t, rl.Start("@every 1s"))
	require.ErrorIs(t, rl.Start("@every 1s"), ErrReloaderRunning)

	require.Eventually(t, func() bool {
		return reg.Catalog() != first
	}, 5*time.Second, 50*time.Millisecond)

	rl.Stop()
	reads := src.reads.Load()
	assert.GreaterOrEqual(t, reads, int32(1))

	require.NoError(t, rl.Close(), "stopping twice is a no-op")
}

func TestReloader_ScheduledPanicRecovered(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	before := reg.Catalog()

	src := mocks.NewMockRawSource(gomock.NewController(t))
	src.EXPECT().Read(gomock.Any()).DoAndReturn(func(context.Context) ([]catalog.RawSkill, error) {
		panic("source exploded")
	})
	src.EXPECT().Read(gomock.Any()).Return(nil, errors.New("offline"))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rl := NewReloader(reg, catalog.NewLoader(testTaxonomy(t)), src, WithReloadLogger(logger))

	require.NotPanics(t, rl.runScheduled)
	assert.Contains(t, buf.String(), "catalog reload panicked")
	assert.Contains(t, buf.String(), "source exploded")
	assert.Same(t, before, reg.Catalog())

	// the rebuild lock was released by the deferred unlock
	_, err := rl.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
}

func TestReloader_InvalidSchedule(t *testing.T) {
	t.Parallel()

	rl := NewReloader(newRegistry(t), catalog.NewLoader(testTaxonomy(t)), catalog.StaticSource(rawSkills()))
	err := rl.Start("every now and then")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reload schedule")

	rl.Stop()
}
