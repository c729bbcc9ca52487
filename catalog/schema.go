// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/skills.schema.json
var skillsSchema []byte

// SchemaJSON returns the JSON Schema raw catalog documents are validated against.
func SchemaJSON() []byte {
	out := make([]byte, len(skillsSchema))
	copy(out, skillsSchema)
	return out
}

// ValidateRawJSON validates a raw catalog document against the skills schema.
func ValidateRawJSON(data []byte) error {
	const errPrefix = "skill catalog schema validation failed"

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(skillsSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errPrefix, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors(errPrefix, msgs)
}
