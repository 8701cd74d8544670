package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"tessera/internal/tokenizer"
)

// FindFeatureSets returns every stored feature set for the given language.
// It implements tokenizer.FeatureSetSource, the per-call seed lookup.
func (s *Store) FindFeatureSets(ctx context.Context, language string) ([]*tokenizer.FeatureSet, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT form, language, features_json FROM feature_sets WHERE language = ? ORDER BY id`,
		language,
	)
	if err != nil {
		return nil, fmt.Errorf("find feature sets: %w", err)
	}
	defer rows.Close()

	var sets []*tokenizer.FeatureSet
	for rows.Next() {
		var form, lang, featuresJSON string
		if err := rows.Scan(&form, &lang, &featuresJSON); err != nil {
			return nil, fmt.Errorf("scan feature set: %w", err)
		}
		features := tokenizer.FeatureBundle{}
		if err := json.Unmarshal([]byte(featuresJSON), &features); err != nil {
			return nil, fmt.Errorf("decode features for %q: %w", form, err)
		}
		sets = append(sets, &tokenizer.FeatureSet{Form: form, Language: lang, Features: features})
	}
	return sets, rows.Err()
}

// SaveRun persists one tokenize call's output for a text: the newly created
// feature sets, the per-call frequencies, and every token, in one
// transaction. Feature sets already persisted are referenced, not rewritten.
func (s *Store) SaveRun(ctx context.Context, textID string, result *tokenizer.Result) error {
	if result == nil {
		return errors.New("result is nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	featureSetIDs := make(map[*tokenizer.FeatureSet]int64, len(result.NewFeatureSets))
	for _, fs := range result.NewFeatureSets {
		featuresJSON, err := json.Marshal(fs.Features)
		if err != nil {
			return fmt.Errorf("encode features for %q: %w", fs.Form, err)
		}
		res, err := tx.ExecContext(
			ctx,
			`INSERT INTO feature_sets (form, language, features_json) VALUES (?, ?, ?)`,
			fs.Form, fs.Language, string(featuresJSON),
		)
		if err != nil {
			return fmt.Errorf("insert feature set %q: %w", fs.Form, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("feature set id: %w", err)
		}
		featureSetIDs[fs] = id
	}

	resolveFeatureSet := func(fs *tokenizer.FeatureSet) (sql.NullInt64, error) {
		if fs == nil {
			return sql.NullInt64{}, nil
		}
		if id, ok := featureSetIDs[fs]; ok {
			return sql.NullInt64{Int64: id, Valid: true}, nil
		}
		var id int64
		row := tx.QueryRowContext(
			ctx,
			`SELECT id FROM feature_sets WHERE form = ? AND language = ?`,
			fs.Form, fs.Language,
		)
		if err := row.Scan(&id); err != nil {
			return sql.NullInt64{}, fmt.Errorf("resolve feature set %q: %w", fs.Form, err)
		}
		featureSetIDs[fs] = id
		return sql.NullInt64{Int64: id, Valid: true}, nil
	}

	frequencyIDs := make(map[*tokenizer.Frequency]int64, len(result.Frequencies))
	for _, freq := range result.Frequencies {
		fsID, err := resolveFeatureSet(freq.FeatureSet)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(
			ctx,
			`INSERT INTO frequencies (text_id, feature_set_id, frequency) VALUES (?, ?, ?)`,
			nullableString(textID), fsID, freq.Count,
		)
		if err != nil {
			return fmt.Errorf("insert frequency: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("frequency id: %w", err)
		}
		frequencyIDs[freq] = id
	}

	for _, token := range result.Tokens {
		fsID, err := resolveFeatureSet(token.FeatureSet)
		if err != nil {
			return err
		}
		var freqID sql.NullInt64
		if token.Frequency != nil {
			id, ok := frequencyIDs[token.Frequency]
			if !ok {
				return fmt.Errorf("token %d references an unsaved frequency", token.Index)
			}
			freqID = sql.NullInt64{Int64: id, Valid: true}
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO tokens (text_id, idx, display, feature_set_id, frequency_id)
             VALUES (?, ?, ?, ?, ?)`,
			nullableString(textID), token.Index, token.Display, fsID, freqID,
		); err != nil {
			return fmt.Errorf("insert token %d: %w", token.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// TokenCount returns the number of stored tokens for a text.
func (s *Store) TokenCount(ctx context.Context, textID string) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM tokens WHERE text_id = ?`, textID)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count tokens: %w", err)
	}
	return count, nil
}
