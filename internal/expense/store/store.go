package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/expense"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
	ledgerstore "github.com/openvol/fundledger/internal/ledger/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectExpenseColumns = `
	e.id, e.entity_kind, e.entity_id, e.title, e.description, e.amount,
	e.category, e.invoice_image_ref, e.status, e.created_by, e.approved_by,
	e.reviewed_at, e.created_at
`

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var entityKind, status string

	var approvedBy sql.NullString

	if err := s.Scan(
		&e.ID, &entityKind, &e.Entity.ID, &e.Title, &e.Description, &e.Amount,
		&e.Category, &e.InvoiceImageRef, &status, &e.CreatedBy, &approvedBy,
		&e.ReviewedAt, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	e.Entity.Kind = fund.Kind(entityKind)
	e.Status = expense.Status(status)
	e.ApprovedBy = approvedBy.String

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	const query = `
		INSERT INTO expenses (entity_kind, entity_id, title, description, amount, category, invoice_image_ref, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		string(e.Entity.Kind),
		e.Entity.ID,
		e.Title,
		e.Description,
		e.Amount,
		e.Category,
		e.InvoiceImageRef,
		string(e.Status),
		e.CreatedBy,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses e WHERE e.id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses e WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND e.status = $%d", argIdx)

		args = append(args, string(*filter.Status))
		argIdx++
	}

	if filter.Entity != nil {
		query += fmt.Sprintf(" AND e.entity_kind = $%d AND e.entity_id = $%d", argIdx, argIdx+1)

		args = append(args, string(filter.Entity.Kind), filter.Entity.ID)
		argIdx += 2
	}

	if filter.OldestFirst {
		query += " ORDER BY e.created_at ASC"
	} else {
		query += " ORDER BY e.created_at DESC"
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var es []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		es = append(es, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return es, nil
}

func (s *Store) PendingTotal(ctx context.Context, entity fund.Ref) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE status = 'pending' AND entity_kind = $1 AND entity_id = $2
	`

	var total decimal.Decimal

	if err := s.db.QueryRowContext(ctx, query, string(entity.Kind), entity.ID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("summing pending expenses: %w", err)
	}

	return total, nil
}

type decisionTx struct {
	tx       *sql.Tx
	e        *expense.Expense
	recorder *ledgerstore.Recorder
}

// BeginDecision opens the atomic unit for one decision: a database
// transaction with the expense row locked FOR UPDATE.
func (s *Store) BeginDecision(ctx context.Context, id uuid.UUID) (expense.DecisionTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning decision tx: %w", err)
	}

	query := `SELECT ` + selectExpenseColumns + ` FROM expenses e WHERE e.id = $1 FOR UPDATE`

	e, err := scanExpense(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		tx.Rollback()

		if errors.Is(err, sql.ErrNoRows) {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("locking expense: %w", err)
	}

	return &decisionTx{tx: tx, e: e, recorder: ledgerstore.NewRecorder(tx)}, nil
}

func (dtx *decisionTx) Expense() *expense.Expense { return dtx.e }

func (dtx *decisionTx) Ledger() ledger.Recorder { return dtx.recorder }

func (dtx *decisionTx) Commit() error   { return dtx.tx.Commit() }
func (dtx *decisionTx) Rollback() error { return dtx.tx.Rollback() }

func (dtx *decisionTx) Approve(ctx context.Context, reviewerID string) error {
	if err := dtx.decide(ctx, expense.StatusApproved, reviewerID); err != nil {
		return err
	}

	// Display counter; the ledger stays the source of truth.
	const query = `
		INSERT INTO fund_counters (kind, id, raised, spent)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (kind, id) DO UPDATE SET spent = fund_counters.spent + EXCLUDED.spent
	`

	if _, err := dtx.tx.ExecContext(ctx, query, string(dtx.e.Entity.Kind), dtx.e.Entity.ID, dtx.e.Amount); err != nil {
		return fmt.Errorf("updating spent counter: %w", err)
	}

	return nil
}

func (dtx *decisionTx) Reject(ctx context.Context, reviewerID string) error {
	return dtx.decide(ctx, expense.StatusRejected, reviewerID)
}

func (dtx *decisionTx) decide(ctx context.Context, status expense.Status, reviewerID string) error {
	const query = `
		UPDATE expenses
		SET status = $1, approved_by = $2, reviewed_at = NOW()
		WHERE id = $3 AND status = 'pending'
		RETURNING reviewed_at
	`

	var reviewedAt time.Time

	err := dtx.tx.QueryRowContext(ctx, query, string(status), reviewerID, dtx.e.ID).Scan(&reviewedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return expense.ErrAlreadyProcessed
	}

	if err != nil {
		return fmt.Errorf("updating expense status: %w", err)
	}

	dtx.e.Status = status
	dtx.e.ApprovedBy = reviewerID
	dtx.e.ReviewedAt = &reviewedAt

	return nil
}
