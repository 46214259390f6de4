package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger

// Recorder is the sole write surface of the ledger. Implementations run
// each call as one atomic unit: preconditions (positive amount, sufficient
// balance for non-central debits) are re-checked inside the same database
// transaction that inserts the row, under a lock on the touched account(s).
type Recorder interface {
	RecordDeposit(ctx context.Context, to fund.Ref, amount decimal.Decimal, note, createdBy string, sourceID uuid.UUID) (*Transaction, error)
	RecordExpense(ctx context.Context, from fund.Ref, amount decimal.Decimal, note, createdBy string, sourceID uuid.UUID) (*Transaction, error)
	RecordTransfer(ctx context.Context, from, to fund.Ref, amount decimal.Decimal, note, createdBy string) (*Transaction, error)
}

type Repository interface {
	Recorder

	BalanceOf(ctx context.Context, account fund.Ref) (decimal.Decimal, error)
	TotalsOf(ctx context.Context, account fund.Ref) (Totals, error)
	History(ctx context.Context, account fund.Ref, page Page) ([]*Transaction, error)
}

// Page selects a slice of an account's history, newest first. After is the
// id of the last transaction already seen; nil starts from the top. A cursor
// matching no transaction yields ErrNotFound, not an empty page.
type Page struct {
	After *uuid.UUID
	Limit int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) RecordDeposit(ctx context.Context, to fund.Ref, amount decimal.Decimal, note, createdBy string, sourceID uuid.UUID) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return s.repo.RecordDeposit(ctx, to, amount, note, createdBy, sourceID)
}

func (s *Service) RecordExpense(ctx context.Context, from fund.Ref, amount decimal.Decimal, note, createdBy string, sourceID uuid.UUID) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return s.repo.RecordExpense(ctx, from, amount, note, createdBy, sourceID)
}

func (s *Service) RecordTransfer(ctx context.Context, from, to fund.Ref, amount decimal.Decimal, note, createdBy string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return s.repo.RecordTransfer(ctx, from, to, amount, note, createdBy)
}

func (s *Service) BalanceOf(ctx context.Context, account fund.Ref) (decimal.Decimal, error) {
	return s.repo.BalanceOf(ctx, account)
}

func (s *Service) TotalsOf(ctx context.Context, account fund.Ref) (Totals, error) {
	return s.repo.TotalsOf(ctx, account)
}

func (s *Service) History(ctx context.Context, account fund.Ref, page Page) ([]*Transaction, error) {
	if page.Limit <= 0 {
		page.Limit = defaultPageSize
	}

	if page.Limit > maxPageSize {
		page.Limit = maxPageSize
	}

	return s.repo.History(ctx, account, page)
}
