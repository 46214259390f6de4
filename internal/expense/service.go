package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/activity"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense

type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	PendingTotal(ctx context.Context, entity fund.Ref) (decimal.Decimal, error)

	BeginDecision(ctx context.Context, id uuid.UUID) (DecisionTx, error)
}

// DecisionTx is one atomic decision over a single expense; see the donation
// counterpart. The ledger write and the status flip share the transaction,
// so an insufficient-funds failure rolls everything back and the expense
// stays pending.
type DecisionTx interface {
	Expense() *Expense
	Approve(ctx context.Context, reviewerID string) error
	Reject(ctx context.Context, reviewerID string) error
	Ledger() ledger.Recorder
	Commit() error
	Rollback() error
}

type ListFilter struct {
	Status      *Status
	Entity      *fund.Ref
	Limit       int
	OldestFirst bool
}

type SubmitParams struct {
	Entity          fund.Ref
	Title           string
	Description     string
	Amount          decimal.Decimal
	Category        string
	InvoiceImageRef string
	CreatedBy       string
}

type Service struct {
	repo     Repository
	registry *fund.Registry
	activity activity.Sink
}

func NewService(repo Repository, registry *fund.Registry, sink activity.Sink) *Service {
	return &Service{repo: repo, registry: registry, activity: sink}
}

// Submit records a pending expense claim. The balance is not checked here;
// it is checked at approval time, inside the atomic unit that debits it.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (*Expense, error) {
	if !params.Amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	if _, err := s.registry.Resolve(ctx, params.Entity.Kind, params.Entity.ID); err != nil {
		return nil, err
	}

	e := &Expense{
		Entity:          params.Entity,
		Title:           params.Title,
		Description:     params.Description,
		Amount:          params.Amount,
		Category:        params.Category,
		InvoiceImageRef: params.InvoiceImageRef,
		Status:          StatusPending,
		CreatedBy:       params.CreatedBy,
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Decide settles a pending expense. Approval may fail with
// *ledger.InsufficientFundsError, in which case nothing is written and the
// expense remains pending.
func (s *Service) Decide(ctx context.Context, id uuid.UUID, decision Decision, reviewerID string) (*Expense, error) {
	if !decision.Valid() {
		return nil, ErrInvalidDecision
	}

	dtx, err := s.repo.BeginDecision(ctx, id)
	if err != nil {
		return nil, err
	}
	defer dtx.Rollback()

	e := dtx.Expense()
	if e.Status != StatusPending {
		return nil, ErrAlreadyProcessed
	}

	switch decision {
	case DecisionApprove:
		if _, err := dtx.Ledger().RecordExpense(ctx, e.Entity, e.Amount, e.Title, reviewerID, e.ID); err != nil {
			return nil, err
		}

		if err := dtx.Approve(ctx, reviewerID); err != nil {
			return nil, err
		}
	case DecisionReject:
		if err := dtx.Reject(ctx, reviewerID); err != nil {
			return nil, err
		}
	}

	if err := dtx.Commit(); err != nil {
		return nil, fmt.Errorf("committing decision: %w", err)
	}

	if decision == DecisionApprove {
		s.activity.Notify(ctx, activity.Event{
			Kind:    activity.KindExpenseApproved,
			Account: e.Entity,
			Amount:  e.Amount,
			ActorID: reviewerID,
			RefID:   e.ID,
		})
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

// ListPending is the reviewer queue, oldest claims first.
func (s *Service) ListPending(ctx context.Context, limit int) ([]*Expense, error) {
	status := StatusPending

	return s.repo.ListExpenses(ctx, ListFilter{Status: &status, Limit: limit, OldestFirst: true})
}

// PendingTotal sums pending expense amounts claimed against the account.
func (s *Service) PendingTotal(ctx context.Context, entity fund.Ref) (decimal.Decimal, error) {
	return s.repo.PendingTotal(ctx, entity)
}
