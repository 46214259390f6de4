package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/donation"
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

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectDonationColumns = `
	d.id, d.target_kind, d.target_id, d.donor_name, d.anonymous, d.phone,
	d.amount, d.payment_method, d.external_ref, d.status, d.reviewed_by,
	d.reviewed_at, d.created_at
`

func scanDonation(s scanner) (*donation.Donation, error) {
	var d donation.Donation

	var targetKind, status string

	var reviewedBy sql.NullString

	if err := s.Scan(
		&d.ID, &targetKind, &d.Target.ID, &d.DonorName, &d.Anonymous, &d.Phone,
		&d.Amount, &d.PaymentMethod, &d.ExternalRef, &status, &reviewedBy,
		&d.ReviewedAt, &d.CreatedAt,
	); err != nil {
		return nil, err
	}

	d.Target.Kind = fund.Kind(targetKind)
	d.Status = donation.Status(status)
	d.ReviewedBy = reviewedBy.String

	return &d, nil
}

func (s *Store) CreateDonation(ctx context.Context, d *donation.Donation) error {
	const query = `
		INSERT INTO donations (target_kind, target_id, donor_name, anonymous, phone, amount, payment_method, external_ref, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		string(d.Target.Kind),
		d.Target.ID,
		d.DonorName,
		d.Anonymous,
		d.Phone,
		d.Amount,
		d.PaymentMethod,
		d.ExternalRef,
		string(d.Status),
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating donation: %w", err)
	}

	return nil
}

func (s *Store) GetDonation(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	query := `SELECT ` + selectDonationColumns + ` FROM donations d WHERE d.id = $1`

	d, err := scanDonation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donation.ErrNotFound
		}

		return nil, fmt.Errorf("getting donation: %w", err)
	}

	return d, nil
}

func (s *Store) ListDonations(ctx context.Context, filter donation.ListFilter) ([]*donation.Donation, error) {
	query := `SELECT ` + selectDonationColumns + ` FROM donations d WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND d.status = $%d", argIdx)

		args = append(args, string(*filter.Status))
		argIdx++
	}

	if filter.Target != nil {
		query += fmt.Sprintf(" AND d.target_kind = $%d AND d.target_id = $%d", argIdx, argIdx+1)

		args = append(args, string(filter.Target.Kind), filter.Target.ID)
		argIdx += 2
	}

	if filter.OldestFirst {
		query += " ORDER BY d.created_at ASC"
	} else {
		query += " ORDER BY d.created_at DESC"
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing donations: %w", err)
	}
	defer rows.Close()

	var ds []*donation.Donation

	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning donation: %w", err)
		}

		ds = append(ds, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating donation rows: %w", err)
	}

	return ds, nil
}

func (s *Store) PendingTotal(ctx context.Context, target fund.Ref) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM donations
		WHERE status = 'pending' AND target_kind = $1 AND target_id = $2
	`

	var total decimal.Decimal

	if err := s.db.QueryRowContext(ctx, query, string(target.Kind), target.ID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("summing pending donations: %w", err)
	}

	return total, nil
}

type decisionTx struct {
	tx       *sql.Tx
	d        *donation.Donation
	recorder *ledgerstore.Recorder
}

// BeginDecision opens the atomic unit for one decision: a database
// transaction with the donation row locked FOR UPDATE. A concurrent decision
// on the same donation blocks here and then observes the terminal status.
func (s *Store) BeginDecision(ctx context.Context, id uuid.UUID) (donation.DecisionTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning decision tx: %w", err)
	}

	query := `SELECT ` + selectDonationColumns + ` FROM donations d WHERE d.id = $1 FOR UPDATE`

	d, err := scanDonation(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		tx.Rollback()

		if errors.Is(err, sql.ErrNoRows) {
			return nil, donation.ErrNotFound
		}

		return nil, fmt.Errorf("locking donation: %w", err)
	}

	return &decisionTx{tx: tx, d: d, recorder: ledgerstore.NewRecorder(tx)}, nil
}

func (dtx *decisionTx) Donation() *donation.Donation { return dtx.d }

func (dtx *decisionTx) Ledger() ledger.Recorder { return dtx.recorder }

func (dtx *decisionTx) Commit() error   { return dtx.tx.Commit() }
func (dtx *decisionTx) Rollback() error { return dtx.tx.Rollback() }

func (dtx *decisionTx) Approve(ctx context.Context, reviewerID string) error {
	if err := dtx.decide(ctx, donation.StatusApproved, reviewerID); err != nil {
		return err
	}

	// Display counter; the ledger stays the source of truth.
	const query = `
		INSERT INTO fund_counters (kind, id, raised, spent)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (kind, id) DO UPDATE SET raised = fund_counters.raised + EXCLUDED.raised
	`

	if _, err := dtx.tx.ExecContext(ctx, query, string(dtx.d.Target.Kind), dtx.d.Target.ID, dtx.d.Amount); err != nil {
		return fmt.Errorf("updating raised counter: %w", err)
	}

	return nil
}

func (dtx *decisionTx) Reject(ctx context.Context, reviewerID string) error {
	return dtx.decide(ctx, donation.StatusRejected, reviewerID)
}

func (dtx *decisionTx) decide(ctx context.Context, status donation.Status, reviewerID string) error {
	const query = `
		UPDATE donations
		SET status = $1, reviewed_by = $2, reviewed_at = NOW()
		WHERE id = $3 AND status = 'pending'
		RETURNING reviewed_at
	`

	var reviewedAt time.Time

	err := dtx.tx.QueryRowContext(ctx, query, string(status), reviewerID, dtx.d.ID).Scan(&reviewedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return donation.ErrAlreadyProcessed
	}

	if err != nil {
		return fmt.Errorf("updating donation status: %w", err)
	}

	dtx.d.Status = status
	dtx.d.ReviewedBy = reviewerID
	dtx.d.ReviewedAt = &reviewedAt

	return nil
}
