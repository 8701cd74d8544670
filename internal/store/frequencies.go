package store

import (
	"context"
	"fmt"
)

// FormFrequencies returns per-form occurrence totals for a text, summed
// across its recorded runs.
func (s *Store) FormFrequencies(ctx context.Context, textID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT fs.form, SUM(f.frequency)
         FROM frequencies f
         JOIN feature_sets fs ON fs.id = f.feature_set_id
         WHERE f.text_id = ?
         GROUP BY fs.form`,
		textID,
	)
	if err != nil {
		return nil, fmt.Errorf("form frequencies: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var form string
		var count int
		if err := rows.Scan(&form, &count); err != nil {
			return nil, fmt.Errorf("scan form frequency: %w", err)
		}
		counts[form] = count
	}
	return counts, rows.Err()
}
