// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// wireSkill mirrors RawSkill with a priority that accepts integral floats such as 5.0.
type wireSkill struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Source      string      `json:"source"`
	Triggers    []string    `json:"triggers"`
	Priority    json.Number `json:"priority"`
	Content     string      `json:"content"`
}

// DecodeJSON validates and decodes a JSON array of raw skills, keeping document order.
func DecodeJSON(data []byte) ([]RawSkill, error) {
	if err := ValidateRawJSON(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var wire []wireSkill
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode skill catalog: %w", err)
	}

	out := make([]RawSkill, len(wire))
	for i, w := range wire {
		p, err := parsePriority(w.Priority)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, w.ID, err)
		}
		out[i] = RawSkill{
			ID:          w.ID,
			Name:        w.Name,
			Description: w.Description,
			Category:    w.Category,
			Source:      w.Source,
			Triggers:    w.Triggers,
			Priority:    p,
			Content:     w.Content,
		}
	}
	return out, nil
}

// DecodeYAML decodes a YAML sequence of raw skills.
// The document is converted to JSON and validated with the same schema as DecodeJSON.
func DecodeYAML(data []byte) ([]RawSkill, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse skill catalog YAML: %w", err)
	}
	if doc == nil {
		doc = []any{}
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert skill catalog YAML: %w", err)
	}
	return DecodeJSON(asJSON)
}

func parsePriority(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0, fmt.Errorf("priority %s out of range", n)
		}
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("priority %s is not an integer", n)
	}
	return int(f), nil
}
