package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
)

// Store reads the denormalized display counters.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Counters(ctx context.Context, account fund.Ref) (decimal.Decimal, decimal.Decimal, error) {
	const query = `SELECT raised, spent FROM fund_counters WHERE kind = $1 AND id = $2`

	var raised, spent decimal.Decimal

	err := s.db.QueryRowContext(ctx, query, string(account.Kind), account.ID).Scan(&raised, &spent)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, decimal.Zero, nil
	}

	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("reading counters: %w", err)
	}

	return raised, spent, nil
}
