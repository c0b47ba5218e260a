// Package sqliteexternal provides the optional CGO SQLite driver.
//
// To use the CGO driver (github.com/mattn/go-sqlite3) for SQLite
// dictionaries, build with:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/mathlog
//
// By default mathlog uses the pure Go driver from modernc.org/sqlite so the
// binary cross-compiles without a C toolchain. See core/sqlite.
package sqliteexternal
