// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2/content/oci"
	"oras.land/oras-go/v2/errdef"
)

// Media types of skill content blobs.
const (
	// MediaTypeSkillContent identifies an uncompressed skill content blob.
	MediaTypeSkillContent = "application/vnd.stacklok.skillcatalog.content.v1+text"

	// MediaTypeSkillContentGzip identifies a gzip-compressed skill content blob.
	MediaTypeSkillContentGzip = "application/vnd.stacklok.skillcatalog.content.v1+gzip"
)

// AnnotationSkillID records which skill a blob was first written for.
const AnnotationSkillID = "dev.stacklok.skillcatalog.id"

// lockFileName is the writer lock kept at the store root.
const lockFileName = ".writer.lock"

var _ Store = (*OCIStore)(nil)

// OCIStore keeps payloads as blobs in an OCI Image Layout on disk.
// Handles are sha256 digests; payloads are only read when Get is called.
type OCIStore struct {
	root     string
	inner    *oci.Store
	lock     *flock.Flock
	mu       sync.Mutex
	compress bool
}

// OCIOption configures an OCIStore.
type OCIOption func(*OCIStore)

// WithCompression gzips blobs before they are written.
func WithCompression(enabled bool) OCIOption {
	return func(s *OCIStore) {
		s.compress = enabled
	}
}

// NewOCIStore opens or creates an OCI content store at root.
// The directory is initialized as an OCI Image Layout with blobs/, oci-layout, and index.json.
func NewOCIStore(root string, opts ...OCIOption) (*OCIStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating content store root %s: %w", root, err)
	}
	inner, err := oci.New(root)
	if err != nil {
		return nil, fmt.Errorf("creating OCI store at %s: %w", root, err)
	}

	s := &OCIStore{
		root:  root,
		inner: inner,
		lock:  flock.New(filepath.Join(root, lockFileName)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// StoreRoot returns the content store root within the given data home directory.
// This is the injectable, testable form. For the standard XDG location, use DefaultStoreRoot.
func StoreRoot(dataHome string) string {
	return filepath.Join(dataHome, "skillcatalog", "content")
}

// DefaultStoreRoot returns the default content store root using XDG base directory conventions.
func DefaultStoreRoot() string {
	return StoreRoot(xdg.DataHome)
}

// Root returns the store root directory.
func (s *OCIStore) Root() string {
	return s.root
}

// Put writes payload as a blob and returns its digest as the handle.
// Writing a payload that is already present is a no-op returning the same handle.
//
// Writes hold an exclusive file lock on the store root so that two processes
// building catalog generations into one directory never interleave.
func (s *OCIStore) Put(ctx context.Context, id, payload string) (Handle, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrInvalidHandle)
	}

	data := []byte(payload)
	mediaType := MediaTypeSkillContent
	if s.compress {
		compressed, err := compress(data)
		if err != nil {
			return "", fmt.Errorf("compressing content for %s: %w", id, err)
		}
		data = compressed
		mediaType = MediaTypeSkillContentGzip
	}

	d := digest.FromBytes(data)
	desc := ocispec.Descriptor{
		MediaType:   mediaType,
		Digest:      d,
		Size:        int64(len(data)),
		Annotations: map[string]string{AnnotationSkillID: id},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.lock.Lock(); err != nil {
		return "", fmt.Errorf("locking content store %s: %w", s.root, err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := s.inner.Push(ctx, desc, bytes.NewReader(data)); err != nil {
		if errors.Is(err, errdef.ErrAlreadyExists) {
			return Handle(d.String()), nil
		}
		return "", fmt.Errorf("writing content for %s: %w", id, err)
	}
	return Handle(d.String()), nil
}

// Get reads the blob referenced by h, decompressing it when needed.
func (s *OCIStore) Get(ctx context.Context, h Handle) (string, error) {
	d, err := digest.Parse(string(h))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidHandle, h, err)
	}

	// oci.Store's Fetch only uses the Digest field to locate blobs in blobs/<algo>/<hex>.
	rc, err := s.inner.Fetch(ctx, ocispec.Descriptor{Digest: d})
	if err != nil {
		if errors.Is(err, errdef.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, h)
		}
		return "", fmt.Errorf("reading content %s: %w", h, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, MaxContentSize+1))
	if err != nil {
		return "", fmt.Errorf("reading content %s: %w", h, err)
	}
	if isCompressed(data) {
		return decodeCompressed(h, data)
	}
	if int64(len(data)) > MaxContentSize {
		return "", fmt.Errorf("content %s exceeds maximum size of %d bytes", h, MaxContentSize)
	}
	return string(data), nil
}

func decodeCompressed(h Handle, data []byte) (string, error) {
	out, err := decompress(data, MaxContentSize)
	if err != nil {
		return "", fmt.Errorf("decompressing content %s: %w", h, err)
	}
	return string(out), nil
}
