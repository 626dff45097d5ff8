package transcript

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

// DuckDBStore persists a transcript registry in a DuckDB database, so
// large transcript sets can be converted once and reloaded without
// re-parsing TSV input. Use an empty path for an in-memory database.
type DuckDBStore struct {
	db   *sql.DB
	path string
}

// OpenDuckDB opens or creates a DuckDB database at the given path.
func OpenDuckDB(path string) (*DuckDBStore, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &DuckDBStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *DuckDBStore) Close() error {
	return s.db.Close()
}

// CreateSchema creates the transcripts table if it does not exist.
func (s *DuckDBStore) CreateSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS transcripts (
		name VARCHAR PRIMARY KEY,
		chrom VARCHAR,
		start_ BIGINT,
		cigar VARCHAR,
		strand TINYINT
	)`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Insert writes a single transcript.
func (s *DuckDBStore) Insert(t *Transcript) error {
	_, err := s.db.Exec(
		`INSERT INTO transcripts (name, chrom, start_, cigar, strand) VALUES (?, ?, ?, ?, ?)`,
		t.Name, t.Chrom, t.Start, t.CIGAR, t.Strand,
	)
	if err != nil {
		return fmt.Errorf("insert transcript %s: %w", t.Name, err)
	}
	return nil
}

// Load reads all stored transcripts into the registry.
func (s *DuckDBStore) Load(r *Registry) error {
	rows, err := s.db.Query(`
		SELECT name, chrom, start_, cigar, strand
		FROM transcripts
		ORDER BY chrom, start_
	`)
	if err != nil {
		return fmt.Errorf("query transcripts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name, chrom, cigar string
			start              int64
			strand             int8
		)
		if err := rows.Scan(&name, &chrom, &start, &cigar, &strand); err != nil {
			return fmt.Errorf("scan transcript: %w", err)
		}
		if err := r.Add(New(name, chrom, start, cigar, strand)); err != nil {
			return err
		}
	}

	return rows.Err()
}

// Count returns the number of stored transcripts.
func (s *DuckDBStore) Count() (int64, error) {
	var count int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM transcripts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transcripts: %w", err)
	}
	return count, nil
}
