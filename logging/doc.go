// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides the [log/slog.Logger] factory used by the catalog
loader, the registry and the reloader.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)
	logger.Info("catalog loaded", "records", 42)

# Environment

FromEnv maps SKILLCATALOG_LOG_LEVEL (debug, info, warn, error) and
SKILLCATALOG_LOG_FORMAT (json, text) to options:

	opts, err := logging.FromEnv(&env.OSReader{})
	if err != nil {
		return err
	}
	logger := logging.New(opts...)

# Testing

Inject a buffer to capture log output in tests:

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf))
*/
package logging
