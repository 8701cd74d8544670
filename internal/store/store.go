package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"tessera/internal/config"
	"tessera/internal/corpus"
)

// ErrDuplicateText indicates a text with the same URN and content checksum
// already exists in the store.
var ErrDuplicateText = errors.New("duplicate text")

// Store manages tokenizer persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the token database and verifies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// InsertText records a new corpus text and assigns it an identifier.
// A text with the same URN and checksum returns ErrDuplicateText.
func (s *Store) InsertText(ctx context.Context, text *corpus.Text) error {
	if text == nil {
		return errors.New("text is nil")
	}
	if text.Checksum == "" {
		return errors.New("text checksum is required")
	}

	existing, err := s.findTextByContent(ctx, text.URN, text.Checksum)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s (checksum %s)", ErrDuplicateText, text.URN, text.Checksum)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO texts (id, urn, language, author, title, year, path, checksum, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		text.URN,
		text.Language,
		text.Author,
		text.Title,
		nullableInt(text.Year),
		text.Path,
		text.Checksum,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert text: %w", err)
	}
	text.ID = id
	return nil
}

func (s *Store) findTextByContent(ctx context.Context, urn, checksum string) (*corpus.Text, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+textColumns+` FROM texts WHERE urn = ? AND checksum = ? LIMIT 1`,
		urn, checksum,
	)
	text, err := scanText(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find text: %w", err)
	}
	return text, nil
}

// GetText fetches a text by identifier, or nil when absent.
func (s *Store) GetText(ctx context.Context, id string) (*corpus.Text, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+textColumns+` FROM texts WHERE id = ?`, id)
	text, err := scanText(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get text: %w", err)
	}
	return text, nil
}

// TextFilter narrows ListTexts output. Empty fields match everything.
type TextFilter struct {
	URN      string
	Language string
	Author   string
	Title    string
}

// ListTexts returns texts matching the filter, ordered by insertion time.
func (s *Store) ListTexts(ctx context.Context, filter TextFilter) ([]*corpus.Text, error) {
	query := `SELECT ` + textColumns + ` FROM texts`
	var clauses []string
	var args []any
	add := func(column, value string) {
		if value == "" {
			return
		}
		clauses = append(clauses, column+" = ?")
		args = append(args, value)
	}
	add("urn", filter.URN)
	add("language", filter.Language)
	add("author", filter.Author)
	add("title", filter.Title)
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list texts: %w", err)
	}
	defer rows.Close()

	var texts []*corpus.Text
	for rows.Next() {
		text, err := scanText(rows)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, rows.Err()
}

// Stats returns row counts per table for diagnostic output.
func (s *Store) Stats(ctx context.Context) (map[string]int, error) {
	stats := make(map[string]int, 4)
	for _, table := range []string{"texts", "feature_sets", "tokens", "frequencies"} {
		var count int
		row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM `+table)
		if err := row.Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		stats[table] = count
	}
	return stats, nil
}

const textColumns = "id, urn, language, author, title, year, path, checksum"

func scanText(scanner interface{ Scan(dest ...any) error }) (*corpus.Text, error) {
	var (
		id       string
		urn      string
		lang     string
		author   string
		title    string
		year     sql.NullInt64
		path     string
		checksum string
	)
	if err := scanner.Scan(&id, &urn, &lang, &author, &title, &year, &path, &checksum); err != nil {
		return nil, err
	}
	text := &corpus.Text{
		ID:       id,
		URN:      urn,
		Language: lang,
		Author:   author,
		Title:    title,
		Path:     path,
		Checksum: checksum,
	}
	if year.Valid {
		text.Year = int(year.Int64)
	}
	return text, nil
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
