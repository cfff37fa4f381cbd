package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/teledex/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists the record collection in a single SQLite table.
// It keeps the same snapshot contract as the CSV adapter: Save replaces
// the whole table inside one transaction rather than updating rows in
// place, so the database always holds a complete, self-consistent copy.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// ensures the records table exists. The table layout is generated from
// models.Schema plus a pos column preserving insertion order.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(createTableStmt()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create records table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the full collection in insertion order. A freshly created
// database loads as an empty collection.
func (s *SQLiteStore) Load() ([]models.Record, error) {
	query := fmt.Sprintf("SELECT %s FROM records ORDER BY pos", quotedColumns())
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []models.Record{}
	for rows.Next() {
		cells := make([]string, len(models.Schema))
		dest := make([]any, len(cells))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec, err := models.FromRow(cells)
		if err != nil {
			return nil, fmt.Errorf("bad row in records table: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

// Save replaces the table contents with the given collection in one
// transaction: delete everything, reinsert every row in order.
func (s *SQLiteStore) Save(records []models.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear records: %w", err)
	}

	stmt, err := tx.Prepare(insertStmt())
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for pos, rec := range records {
		args := make([]any, 0, len(models.Schema)+1)
		args = append(args, pos)
		for _, cell := range rec.Row() {
			args = append(args, cell)
		}
		if _, err := stmt.Exec(args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert record %d: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// quotedColumns renders the schema as quoted SQL identifiers. The header
// names contain spaces and non-ASCII letters, so every identifier is
// double-quoted.
func quotedColumns() string {
	quoted := make([]string, len(models.Schema))
	for i, col := range models.Schema {
		quoted[i] = `"` + col + `"`
	}
	return strings.Join(quoted, ", ")
}

func createTableStmt() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS records (pos INTEGER PRIMARY KEY")
	for i, col := range models.Schema {
		typ := "TEXT"
		if i == 0 {
			typ = "INTEGER"
		}
		fmt.Fprintf(&b, ", %q %s NOT NULL", col, typ)
	}
	b.WriteString(")")
	return b.String()
}

func insertStmt() string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(models.Schema)+1), ", ")
	return fmt.Sprintf("INSERT INTO records (pos, %s) VALUES (%s)", quotedColumns(), placeholders)
}
