// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package content

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=store.go -destination=mocks/mock_store.go -package=mocks Store

import (
	"context"
	"errors"
)

// Sentinel errors returned by every Store implementation.
var (
	// ErrNotFound is returned by Get when no payload exists for a handle.
	ErrNotFound = errors.New("content not found")

	// ErrExists is returned by Put when an id-addressed store already holds the id.
	ErrExists = errors.New("content already stored")

	// ErrInvalidHandle is returned when a handle or id cannot address the store.
	ErrInvalidHandle = errors.New("invalid content handle")
)

// MaxContentSize is the largest payload a disk-backed store will read back (16MB).
const MaxContentSize = 16 * 1024 * 1024

// Handle is an opaque reference to a stored payload.
// Only the Store that produced a Handle can resolve it.
type Handle string

// String returns the handle in its serialized form.
func (h Handle) String() string {
	return string(h)
}

// Store holds immutable skill content payloads.
// Implementations must be safe for concurrent Get calls.
type Store interface {
	// Put stores the payload of skill id and returns the handle to read it back.
	Put(ctx context.Context, id, payload string) (Handle, error)

	// Get returns the payload referenced by h, or an error wrapping ErrNotFound.
	Get(ctx context.Context, h Handle) (string, error)
}
