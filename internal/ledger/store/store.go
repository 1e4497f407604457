package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/adrnf/catet/internal/ledger"
)

// Store persists ledger entries in a single postgres table. Expenses and
// cashflows use two Stores pointed at different tables.
type Store struct {
	db    *sql.DB
	table string
}

func New(db *sql.DB, table string) *Store {
	return &Store{db: db, table: table}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const entryColumns = `id, user_id, name, amount, account, type, transaction_timestamp, created_at, updated_at, deleted_at`

func scanEntry(s scanner) (*ledger.Entry, error) {
	var e ledger.Entry

	var typ int16

	if err := s.Scan(
		&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Account, &typ,
		&e.OccurredAt, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	); err != nil {
		return nil, err
	}

	e.Type = ledger.TxType(typ)

	return &e, nil
}

func (s *Store) CreateEntry(ctx context.Context, e *ledger.Entry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, amount, account, type, transaction_timestamp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`, s.table)

	err := s.db.QueryRowContext(ctx, query,
		e.UserID,
		e.Name,
		e.Amount,
		e.Account,
		int16(e.Type),
		e.OccurredAt,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating entry: %w", err)
	}

	return nil
}

func (s *Store) ListEntries(ctx context.Context, userID string, filter ledger.ListFilter) ([]*ledger.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 AND deleted_at IS NULL`, entryColumns, s.table)

	args := []any{userID}
	argIdx := 2

	if filter.From != nil {
		query += fmt.Sprintf(" AND transaction_timestamp >= $%d", argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND transaction_timestamp <= $%d", argIdx)

		args = append(args, *filter.To)
		argIdx++
	}

	query += " ORDER BY transaction_timestamp DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry rows: %w", err)
	}

	return entries, nil
}

func (s *Store) UpdateEntry(ctx context.Context, id int64, userID string, patch ledger.Patch) error {
	set := []string{"updated_at = NOW()"}

	var args []any

	argIdx := 1

	if patch.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", argIdx))

		args = append(args, *patch.Name)
		argIdx++
	}

	if patch.Amount != nil {
		set = append(set, fmt.Sprintf("amount = $%d", argIdx))

		args = append(args, *patch.Amount)
		argIdx++
	}

	if patch.Account != nil {
		set = append(set, fmt.Sprintf("account = $%d", argIdx))

		args = append(args, *patch.Account)
		argIdx++
	}

	if patch.Type != nil {
		set = append(set, fmt.Sprintf("type = $%d", argIdx))

		args = append(args, int16(*patch.Type))
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE id = $%d AND user_id = $%d AND deleted_at IS NULL
	`, s.table, strings.Join(set, ", "), argIdx, argIdx+1)

	args = append(args, id, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}

	if affected == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) SoftDeleteEntry(ctx context.Context, id int64, userID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`, s.table)

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}

	if affected == 0 {
		return ledger.ErrNotFound
	}

	return nil
}
