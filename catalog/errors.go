// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLoadFailed is matched by every *LoadErrors returned from Load.
	ErrLoadFailed = errors.New("catalog load failed")

	// ErrNotReady is returned when an operation needs a Catalog that has not been built.
	ErrNotReady = errors.New("catalog not ready")

	// ErrSkillNotFound is returned for lookups of an id the Catalog does not contain.
	ErrSkillNotFound = errors.New("skill not found")
)

// LoadErrorKind classifies a problem found while loading raw entries.
type LoadErrorKind string

// Load error kinds.
const (
	KindEmptyID            LoadErrorKind = "empty_id"
	KindEmptyName          LoadErrorKind = "empty_name"
	KindDuplicateID        LoadErrorKind = "duplicate_id"
	KindUnknownCategory    LoadErrorKind = "unknown_category"
	KindUnknownSource      LoadErrorKind = "unknown_source"
	KindContentStore       LoadErrorKind = "content_store"
	KindNoTriggers         LoadErrorKind = "no_triggers"
	KindUnreachableTrigger LoadErrorKind = "unreachable_trigger"
)

// Fatal reports whether a problem of this kind prevents the Catalog from being built.
func (k LoadErrorKind) Fatal() bool {
	switch k {
	case KindNoTriggers, KindUnreachableTrigger:
		return false
	default:
		return true
	}
}

// LoadError describes one problem with one raw entry.
type LoadError struct {
	Kind LoadErrorKind
	// Index is the position of the entry in the loader input.
	Index int
	ID    string
	// Value is the offending field value, if any.
	Value string
	Err   error
}

// Error implements the error interface.
func (e LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "entry %d", e.Index)
	if e.ID != "" {
		fmt.Fprintf(&b, " (%s)", e.ID)
	}
	b.WriteString(": ")
	switch e.Kind {
	case KindEmptyID:
		b.WriteString("id is empty")
	case KindEmptyName:
		b.WriteString("name is empty")
	case KindDuplicateID:
		fmt.Fprintf(&b, "duplicate id %q", e.Value)
	case KindUnknownCategory:
		fmt.Fprintf(&b, "unknown category %q", e.Value)
	case KindUnknownSource:
		fmt.Fprintf(&b, "unknown source %q", e.Value)
	case KindNoTriggers:
		b.WriteString("no triggers, skill is unreachable by search")
	case KindUnreachableTrigger:
		fmt.Fprintf(&b, "trigger %q contains characters no query can produce", e.Value)
	case KindContentStore:
		b.WriteString("storing content failed")
	default:
		b.WriteString(string(e.Kind))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e LoadError) Unwrap() error {
	return e.Err
}

// LoadErrors is the batch of problems that made a Load fail.
// It includes the non-fatal warnings found in the same run.
type LoadErrors struct {
	Errors []LoadError
}

// Error implements the error interface.
func (e *LoadErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, le := range e.Errors {
		severity := "warning"
		if le.Kind.Fatal() {
			severity = "error"
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", severity, le.Error()))
	}
	err := formatNumberedErrors(ErrLoadFailed.Error(), msgs)
	if err == nil {
		return ErrLoadFailed.Error()
	}
	return err.Error()
}

// Unwrap returns ErrLoadFailed followed by every collected problem,
// so errors.Is matches both the sentinel and the underlying causes.
func (e *LoadErrors) Unwrap() []error {
	out := make([]error, 0, len(e.Errors)+1)
	out = append(out, ErrLoadFailed)
	for _, le := range e.Errors {
		out = append(out, le)
	}
	return out
}

// Fatal returns the fatal problems in input order.
func (e *LoadErrors) Fatal() []LoadError {
	var out []LoadError
	for _, le := range e.Errors {
		if le.Kind.Fatal() {
			out = append(out, le)
		}
	}
	return out
}

// IDs returns the ids of the entries with problems of the given kind, in input order.
func (e *LoadErrors) IDs(kind LoadErrorKind) []string {
	var out []string
	for _, le := range e.Errors {
		if le.Kind == kind {
			out = append(out, le.ID)
		}
	}
	return out
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
