// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package catalog turns raw skill definitions into an immutable Catalog.
//
// A Catalog holds the normalized SkillRecord metadata, the trigger, category
// and source indexes derived from it, and a handle into the content.Store that
// holds the (potentially large) skill content payloads. A Catalog is never
// modified after Load returns; a changed input produces a new Catalog.
//
// # Loading
//
//	tax, _ := catalog.NewTaxonomy(
//		[]string{"documents", "development"},
//		[]string{"anthropic", "community"},
//	)
//	c, err := catalog.NewLoader(tax).Load(ctx, raw)
//	var loadErrs *catalog.LoadErrors
//	if errors.As(err, &loadErrs) {
//		for _, e := range loadErrs.Errors {
//			fmt.Println(e)
//		}
//	}
//
// Validation problems are collected for the whole batch rather than stopping at
// the first bad entry. Duplicate ids, empty ids or names, unknown categories or
// sources and content store failures are fatal. Entries without triggers and
// triggers that no query can produce are reported as warnings and stay loadable.
//
// # Input
//
// Raw entries come from a RawSource. FileSource reads JSON or YAML documents
// matching doublestar patterns from an fs.FS; every document is validated against
// an embedded JSON Schema before it is decoded:
//
//	src := catalog.FileSource{FS: os.DirFS("skills"), Patterns: []string{"**/*.json"}}
//	raw, err := src.Read(ctx)
package catalog
