package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLitePickCounter keeps global pick counts in the pick_counts table.
type SQLitePickCounter struct {
	conn *sql.DB
}

func NewSQLitePickCounter(conn *sql.DB) *SQLitePickCounter {
	return &SQLitePickCounter{
		conn: conn,
	}
}

func (that *SQLitePickCounter) Increment(ctx context.Context, pokemon string) (int64, error) {
	query := `INSERT INTO pick_counts (pokemon, count) VALUES (?, 1)
		ON CONFLICT(pokemon) DO UPDATE SET count = count + 1
		RETURNING count`

	var count int64
	if err := that.conn.QueryRowContext(ctx, query, pokemon).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't increment pick count: %w", err)
	}

	return count, nil
}

func (that *SQLitePickCounter) Count(ctx context.Context, pokemon string) (int64, error) {
	query := `SELECT count FROM pick_counts WHERE pokemon = ?`

	var count int64
	err := that.conn.QueryRowContext(ctx, query, pokemon).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("can't get pick count: %w", err)
	}

	return count, nil
}

func (that *SQLitePickCounter) Counts(ctx context.Context, pokemon []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(pokemon))
	if len(pokemon) == 0 {
		return counts, nil
	}

	args := make([]any, 0, len(pokemon))
	for _, name := range pokemon {
		counts[name] = 0
		args = append(args, name)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(pokemon)), ",")
	query := `SELECT pokemon, count FROM pick_counts WHERE pokemon IN (` + placeholders + `)`

	rows, err := that.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("can't get pick counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			count int64
		)

		if err = rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("can't scan pick count: %w", err)
		}

		counts[name] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read pick counts: %w", err)
	}

	return counts, nil
}
