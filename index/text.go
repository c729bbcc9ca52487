// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// lower returns a fresh lowercasing transformer.
// A cases.Caser keeps state between calls and must not be shared between goroutines.
func lower() cases.Caser {
	return cases.Lower(language.Und)
}

// NormalizeToken trims and lowercases a declared trigger keyword.
// It returns an empty string for blank input.
func NormalizeToken(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))
	if s == "" {
		return ""
	}
	return lower().String(s)
}

// Tokenize splits a query into lowercase alphanumeric tokens.
// Tokens are deduplicated and returned in first-seen order; a blank query yields nil.
func Tokenize(query string) []string {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	q = lower().String(norm.NFC.String(q))

	fields := strings.FieldsFunc(q, func(r rune) bool { return !isTokenRune(r) })
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// IsQueryToken reports whether tok could be produced by Tokenize.
// A normalized trigger failing this check can never be matched by a query.
func IsQueryToken(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !isTokenRune(r) {
			return false
		}
	}
	return true
}

// isTokenRune keeps combining marks attached to their letters so that
// lowercased forms such as "i̇" stay a single token.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
