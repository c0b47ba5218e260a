package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/core/sqlite"
)

const createIdentsTable = `CREATE TABLE IF NOT EXISTS idents (
	path     TEXT PRIMARY KEY,
	fragment TEXT NOT NULL
)`

// readSQLite loads the idents table, one dotted path per row.
func readSQLite(ctx context.Context, path string) (*Dictionary, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT path, fragment FROM idents ORDER BY path`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query idents")
	}
	defer rows.Close()

	d := New()
	for rows.Next() {
		var key, fragment string
		if err := rows.Scan(&key, &fragment); err != nil {
			return nil, errors.Wrap(err, "failed to scan ident")
		}
		if err := d.Insert(strings.Split(key, "."), fragment); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read idents")
	}
	return d, nil
}

// saveSQLite builds the database beside path and renames it into place.
func saveSQLite(ctx context.Context, path string, d *Dictionary) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIO("create directory", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, ".dictionary-*.db")
	if err != nil {
		return errors.NewIO("create temp file", dir, err)
	}
	tempPath := tempFile.Name()
	tempFile.Close()

	if err := writeSQLite(ctx, tempPath, d); err != nil {
		os.Remove(tempPath)
		return err
	}

	// Rename to final path (atomic on POSIX)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.NewIO("rename", path, err)
	}
	return nil
}

func writeSQLite(ctx context.Context, path string, d *Dictionary) error {
	db, err := sqlite.Open(path)
	if err != nil {
		return errors.NewIO("open", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createIdentsTable); err != nil {
		return errors.Wrap(err, "failed to create idents table")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO idents (path, fragment) VALUES (?, ?)`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare insert")
	}
	defer stmt.Close()

	err = d.Walk(func(p []string, fragment string) error {
		_, err := stmt.ExecContext(ctx, JoinPath(p), fragment)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to insert ident")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit idents")
	}
	return nil
}
