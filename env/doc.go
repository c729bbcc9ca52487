// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("SKILLCATALOG_CONTENT_BACKEND")

Use DotEnvReader to layer .env files under the process environment:

	reader, err := env.NewDotEnvReader(".env", ".env.local")
	value := reader.Getenv("SKILLCATALOG_CATALOG_ROOT")

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("SKILLCATALOG_LOG_LEVEL").Return("debug")
*/
package env
