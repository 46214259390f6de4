package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// lockKey derives the advisory lock key for an account. Kind and id are
// separated by a NUL so distinct refs cannot collide by concatenation.
func lockKey(a fund.Ref) int64 {
	h := fnv.New64a()
	h.Write([]byte(a.Kind))
	h.Write([]byte{0})
	h.Write([]byte(a.ID.String()))

	return int64(h.Sum64())
}

// lockAccounts takes transaction-scoped advisory locks on every account,
// in sorted key order so concurrent transfers cannot deadlock.
func lockAccounts(ctx context.Context, tx *sql.Tx, accounts ...fund.Ref) error {
	keys := make([]int64, len(accounts))
	for i, a := range accounts {
		keys[i] = lockKey(a)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", k); err != nil {
			return fmt.Errorf("locking account: %w", err)
		}
	}

	return nil
}

// Recorder writes ledger rows inside an open database transaction. It is the
// only type that inserts into the transactions table; the approval workflows
// obtain one bound to their decision transaction so the status flip and the
// ledger write commit together.
type Recorder struct {
	tx *sql.Tx
}

func NewRecorder(tx *sql.Tx) *Recorder {
	return &Recorder{tx: tx}
}

func (r *Recorder) RecordDeposit(ctx context.Context, to fund.Ref, amount decimal.Decimal, note, createdBy string, sourceID uuid.UUID) (*ledger.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	if err := lockAccounts(ctx, r.tx, to); err != nil {
		return nil, err
	}

	t := &ledger.Transaction{
		Kind:      ledger.KindDeposit,
		To:        &to,
		Amount:    amount,
		Note:      note,
		CreatedBy: createdBy,
		SourceID:  &sourceID,
	}

	return t, insertTransaction(ctx, r.tx, t)
}

func (r *Recorder) RecordExpense(ctx context.Context, from fund.Ref, amount decimal.Decimal, note, createdBy string, sourceID uuid.UUID) (*ledger.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	if err := lockAccounts(ctx, r.tx, from); err != nil {
		return nil, err
	}

	if err := ensureFunds(ctx, r.tx, from, amount); err != nil {
		return nil, err
	}

	t := &ledger.Transaction{
		Kind:      ledger.KindExpense,
		From:      &from,
		Amount:    amount,
		Note:      note,
		CreatedBy: createdBy,
		SourceID:  &sourceID,
	}

	return t, insertTransaction(ctx, r.tx, t)
}

func (r *Recorder) RecordTransfer(ctx context.Context, from, to fund.Ref, amount decimal.Decimal, note, createdBy string) (*ledger.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	if err := lockAccounts(ctx, r.tx, from, to); err != nil {
		return nil, err
	}

	if err := ensureFunds(ctx, r.tx, from, amount); err != nil {
		return nil, err
	}

	t := &ledger.Transaction{
		Kind:      ledger.KindTransfer,
		From:      &from,
		To:        &to,
		Amount:    amount,
		Note:      note,
		CreatedBy: createdBy,
	}

	return t, insertTransaction(ctx, r.tx, t)
}

// ensureFunds re-reads the balance under the account lock. The central fund
// is an unconstrained clearing account and skips the check.
func ensureFunds(ctx context.Context, q querier, from fund.Ref, amount decimal.Decimal) error {
	if from.IsCentral() {
		return nil
	}

	balance, err := balanceOf(ctx, q, from)
	if err != nil {
		return err
	}

	if balance.LessThan(amount) {
		return &ledger.InsufficientFundsError{
			Account:   from,
			Available: balance,
			Requested: amount,
		}
	}

	return nil
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertTransaction(ctx context.Context, q querier, t *ledger.Transaction) error {
	const query = `
		INSERT INTO transactions (kind, from_kind, from_id, to_kind, to_id, amount, note, created_by, source_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	var fromKind, toKind *string

	var fromID, toID uuid.NullUUID

	if t.From != nil {
		k := string(t.From.Kind)
		fromKind = &k
		fromID = uuid.NullUUID{UUID: t.From.ID, Valid: true}
	}

	if t.To != nil {
		k := string(t.To.Kind)
		toKind = &k
		toID = uuid.NullUUID{UUID: t.To.ID, Valid: true}
	}

	var sourceID uuid.NullUUID
	if t.SourceID != nil {
		sourceID = uuid.NullUUID{UUID: *t.SourceID, Valid: true}
	}

	err := q.QueryRowContext(ctx, query,
		t.Kind,
		fromKind,
		fromID,
		toKind,
		toID,
		t.Amount,
		t.Note,
		t.CreatedBy,
		sourceID,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	return nil
}

// withTx runs fn in one database transaction, committing only on success.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) (*ledger.Transaction, error)) (*ledger.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := fn(tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return t, nil
}

func (s *Store) RecordDeposit(ctx context.Context, to fund.Ref, amount decimal.Decimal, note, createdBy string, sourceID uuid.UUID) (*ledger.Transaction, error) {
	return s.withTx(ctx, func(tx *sql.Tx) (*ledger.Transaction, error) {
		return NewRecorder(tx).RecordDeposit(ctx, to, amount, note, createdBy, sourceID)
	})
}

func (s *Store) RecordExpense(ctx context.Context, from fund.Ref, amount decimal.Decimal, note, createdBy string, sourceID uuid.UUID) (*ledger.Transaction, error) {
	return s.withTx(ctx, func(tx *sql.Tx) (*ledger.Transaction, error) {
		return NewRecorder(tx).RecordExpense(ctx, from, amount, note, createdBy, sourceID)
	})
}

func (s *Store) RecordTransfer(ctx context.Context, from, to fund.Ref, amount decimal.Decimal, note, createdBy string) (*ledger.Transaction, error) {
	return s.withTx(ctx, func(tx *sql.Tx) (*ledger.Transaction, error) {
		return NewRecorder(tx).RecordTransfer(ctx, from, to, amount, note, createdBy)
	})
}

func balanceOf(ctx context.Context, q querier, account fund.Ref) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(
			CASE WHEN to_kind = $1 AND to_id = $2 THEN amount ELSE -amount END
		), 0)
		FROM transactions
		WHERE (to_kind = $1 AND to_id = $2) OR (from_kind = $1 AND from_id = $2)
	`

	var balance decimal.Decimal

	if err := q.QueryRowContext(ctx, query, string(account.Kind), account.ID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("computing balance: %w", err)
	}

	return balance, nil
}

func (s *Store) BalanceOf(ctx context.Context, account fund.Ref) (decimal.Decimal, error) {
	return balanceOf(ctx, s.db, account)
}

func (s *Store) TotalsOf(ctx context.Context, account fund.Ref) (ledger.Totals, error) {
	const query = `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE to_kind = $1 AND to_id = $2), 0),
			COALESCE(SUM(amount) FILTER (WHERE from_kind = $1 AND from_id = $2), 0),
			COALESCE(SUM(amount) FILTER (WHERE to_kind = $1 AND to_id = $2 AND kind = 'deposit'), 0),
			COALESCE(SUM(amount) FILTER (WHERE from_kind = $1 AND from_id = $2 AND kind = 'expense'), 0)
		FROM transactions
		WHERE (to_kind = $1 AND to_id = $2) OR (from_kind = $1 AND from_id = $2)
	`

	var t ledger.Totals

	err := s.db.QueryRowContext(ctx, query, string(account.Kind), account.ID).
		Scan(&t.In, &t.Out, &t.Deposits, &t.Expenses)
	if err != nil {
		return ledger.Totals{}, fmt.Errorf("computing totals: %w", err)
	}

	return t, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, kind, from_kind, from_id, to_kind, to_id, amount, note, created_by, source_id, created_at
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var t ledger.Transaction

	var kind string

	var fromKind, toKind sql.NullString

	var fromID, toID, sourceID uuid.NullUUID

	if err := s.Scan(
		&t.ID, &kind, &fromKind, &fromID, &toKind, &toID,
		&t.Amount, &t.Note, &t.CreatedBy, &sourceID, &t.CreatedAt,
	); err != nil {
		return nil, err
	}

	t.Kind = ledger.Kind(kind)

	if fromKind.Valid && fromID.Valid {
		t.From = &fund.Ref{Kind: fund.Kind(fromKind.String), ID: fromID.UUID}
	}

	if toKind.Valid && toID.Valid {
		t.To = &fund.Ref{Kind: fund.Kind(toKind.String), ID: toID.UUID}
	}

	if sourceID.Valid {
		id := sourceID.UUID
		t.SourceID = &id
	}

	return &t, nil
}

const selectTransactionColumns = `
	t.id, t.kind, t.from_kind, t.from_id, t.to_kind, t.to_id,
	t.amount, t.note, t.created_by, t.source_id, t.created_at
`

func (s *Store) History(ctx context.Context, account fund.Ref, page ledger.Page) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE (t.to_kind = $1 AND t.to_id = $2) OR (t.from_kind = $1 AND t.from_id = $2)`

	args := []any{string(account.Kind), account.ID}
	argIdx := 3

	if page.After != nil {
		// Resolve the cursor row first so an unknown cursor is an error
		// rather than a silently empty page.
		var cursorAt time.Time

		err := s.db.QueryRowContext(ctx,
			"SELECT created_at FROM transactions WHERE id = $1", *page.After,
		).Scan(&cursorAt)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cursor %s: %w", *page.After, ledger.ErrNotFound)
		}

		if err != nil {
			return nil, fmt.Errorf("resolving cursor: %w", err)
		}

		query += fmt.Sprintf(" AND (t.created_at, t.id) < ($%d, $%d)", argIdx, argIdx+1)

		args = append(args, cursorAt, *page.After)
		argIdx += 2
	}

	query += fmt.Sprintf(" ORDER BY t.created_at DESC, t.id DESC LIMIT $%d", argIdx)
	args = append(args, page.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}

	return txs, nil
}
