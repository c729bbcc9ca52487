// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// DotEnvReader reads variables from the process environment and falls back
// to values parsed from .env files. The process environment always wins.
type DotEnvReader struct {
	values map[string]string
}

// NewDotEnvReader parses the given .env files. Later files override earlier ones.
// Files that do not exist are skipped.
func NewDotEnvReader(paths ...string) (*DotEnvReader, error) {
	values := make(map[string]string)
	for _, p := range paths {
		parsed, err := godotenv.Read(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read env file %s: %w", p, err)
		}
		for k, v := range parsed {
			values[k] = v
		}
	}
	return &DotEnvReader{values: values}, nil
}

// Getenv returns the process value of key if set, else the .env value.
func (r *DotEnvReader) Getenv(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return r.values[key]
}
