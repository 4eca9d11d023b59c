// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger inside a context.Context.
//
// The shell owns standard output, so every logger built here writes to
// standard error. The shared LevelVar defaults to WARN and is set from the
// STOOP_LOG_LEVEL environment variable or the --log-level flag, which accept
// "DEBUG", "INFO", "WARN" or "ERROR".
package ctxlog
