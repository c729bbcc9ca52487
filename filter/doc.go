// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package filter selects skill records with CEL boolean expressions.

Expressions see one variable, skill, with the fields id, name, description,
category, source, triggers and priority:

	engine := filter.NewEngine()
	expr, err := engine.Compile(`skill.category == "documents" && skill.priority >= 5`)
	if err != nil {
	    // *filter.ParseError or *filter.CheckError
	}
	ok, err := expr.Match(&record)

Expressions must evaluate to a bool. Compilation rejects other result types,
and evaluation is bounded by a runtime cost limit:

	engine := filter.NewEngine().
	    WithMaxExpressionLength(2000).
	    WithCostLimit(100000)

Engine and Expression are safe for concurrent use. Filtering only reads
record metadata; content payloads are never loaded.
*/
package filter
