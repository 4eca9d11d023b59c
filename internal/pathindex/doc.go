// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pathindex maps executable names to the first search path directory
// that contains them.
//
// The index is built once from a PATH-style list and is read-only afterwards,
// so it can be shared without locking. Only exact names are matched: there is
// no extension inference and no executable-bit check, and a directory entry
// that happens to be a directory is indexed like any other name.
package pathindex
