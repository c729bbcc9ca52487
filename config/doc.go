// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the skill catalog configuration.
//
// Configuration is read from a YAML file and then overridden by environment
// variables:
//
//	catalog:
//	  root: ./skills
//	  patterns: ["**/*.json"]
//	  taxonomy: ./taxonomy.yaml
//	content:
//	  backend: oci        # memory, oci or sqlite
//	  dir: ~/.local/share/skillcatalog/content
//	  compress: true
//	reload:
//	  schedule: "*/15 * * * *"
//	logging:
//	  level: info
//	  format: json
//
//	cfg, err := config.Load("skillcatalog.yaml", &env.OSReader{})
//
// An empty content.dir resolves to the XDG data directory.
package config
