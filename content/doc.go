// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package content provides the key-value stores that hold skill content
payloads apart from the always-resident skill metadata.

A payload is written once with [Store.Put], which returns an opaque [Handle],
and read back with [Store.Get]. Entries are immutable: there is no update
operation, a changed skill belongs to a new catalog generation.

# Backings

  - [MemoryStore]: a map keyed by skill id. Suitable for small catalogs and
    tests; one store per catalog generation.
  - [OCIStore]: blobs in an OCI Image Layout on disk, addressed by sha256
    digest and read on demand. Optionally gzip-compressed.
  - [SQLiteStore]: a single SQLite file, also addressed by digest.

The disk backings are content-addressed, so successive catalog generations
can share one store and identical payloads are stored once.

# Basic Usage

	store := content.NewMemoryStore()
	h, err := store.Put(ctx, "docx", body)
	if err != nil {
		// handle error
	}
	text, err := store.Get(ctx, h)
	if errors.Is(err, content.ErrNotFound) {
		// stale handle
	}

# Testing

A generated mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Put(gomock.Any(), "docx", gomock.Any()).Return(content.Handle("docx"), nil)
*/
package content
