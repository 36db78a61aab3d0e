// SPDX-License-Identifier: MIT

// Package history persists solved problems in SQLite (modernc.org/sqlite,
// no cgo). One table, problem_history, holds the problem text, its type
// ("text", "image", "pdf"), the solution document as JSON and the creation
// time. Listing returns at most MaxList rows, newest first.
package history
