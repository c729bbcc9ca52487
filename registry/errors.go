// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stacklok/skillcatalog/catalog"
	"github.com/stacklok/skillcatalog/filter"
)

// NotFoundError is returned by lookups of an id the current catalog does not serve.
type NotFoundError struct {
	// Resource is "skill" for metadata lookups and "content" for payload reads.
	Resource string
	ID       string
	err      error
}

func newNotFound(resource, id string, cause error) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id, err: cause}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Unwrap returns the underlying sentinel, such as catalog.ErrSkillNotFound.
func (e *NotFoundError) Unwrap() error {
	return e.err
}

// StatusCode returns http.StatusNotFound.
func (*NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// IsNotFound reports whether err contains a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// StatusCode maps err to an HTTP status code.
// It returns http.StatusOK for nil and http.StatusInternalServerError for
// errors it does not recognize.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		return coded.StatusCode()
	}
	switch {
	case errors.Is(err, catalog.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, filter.ErrExpressionCheck):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
