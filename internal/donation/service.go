package donation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/activity"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=donation

type Repository interface {
	CreateDonation(ctx context.Context, d *Donation) error
	GetDonation(ctx context.Context, id uuid.UUID) (*Donation, error)
	ListDonations(ctx context.Context, filter ListFilter) ([]*Donation, error)
	PendingTotal(ctx context.Context, target fund.Ref) (decimal.Decimal, error)

	BeginDecision(ctx context.Context, id uuid.UUID) (DecisionTx, error)
}

// DecisionTx is one atomic decision over a single donation: the row is
// locked for the duration, and the ledger recorder writes in the same
// database transaction, so the status flip and the deposit commit together
// or not at all.
type DecisionTx interface {
	Donation() *Donation
	Approve(ctx context.Context, reviewerID string) error
	Reject(ctx context.Context, reviewerID string) error
	Ledger() ledger.Recorder
	Commit() error
	Rollback() error
}

type ListFilter struct {
	Status      *Status
	Target      *fund.Ref
	Limit       int
	OldestFirst bool
}

type SubmitParams struct {
	Target        fund.Ref
	DonorName     string
	Anonymous     bool
	Phone         string
	Amount        decimal.Decimal
	PaymentMethod string
	ExternalRef   string
}

type Service struct {
	repo     Repository
	registry *fund.Registry
	activity activity.Sink
}

func NewService(repo Repository, registry *fund.Registry, sink activity.Sink) *Service {
	return &Service{repo: repo, registry: registry, activity: sink}
}

// Submit records a pending donation. No ledger effect until a reviewer
// approves it.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (*Donation, error) {
	if !params.Amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	if _, err := s.registry.Resolve(ctx, params.Target.Kind, params.Target.ID); err != nil {
		return nil, err
	}

	d := &Donation{
		Target:        params.Target,
		DonorName:     params.DonorName,
		Anonymous:     params.Anonymous,
		Phone:         params.Phone,
		Amount:        params.Amount,
		PaymentMethod: params.PaymentMethod,
		ExternalRef:   params.ExternalRef,
		Status:        StatusPending,
	}

	if err := s.repo.CreateDonation(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// Decide settles a pending donation. Exactly one decision wins: concurrent
// reviewers race on the row lock and the loser gets ErrAlreadyProcessed.
func (s *Service) Decide(ctx context.Context, id uuid.UUID, decision Decision, reviewerID string) (*Donation, error) {
	if !decision.Valid() {
		return nil, ErrInvalidDecision
	}

	dtx, err := s.repo.BeginDecision(ctx, id)
	if err != nil {
		return nil, err
	}
	defer dtx.Rollback()

	d := dtx.Donation()
	if d.Status != StatusPending {
		return nil, ErrAlreadyProcessed
	}

	switch decision {
	case DecisionApprove:
		if err := dtx.Approve(ctx, reviewerID); err != nil {
			return nil, err
		}

		note := fmt.Sprintf("donation from %s", d.DisplayName())
		if _, err := dtx.Ledger().RecordDeposit(ctx, d.Target, d.Amount, note, reviewerID, d.ID); err != nil {
			return nil, fmt.Errorf("recording deposit: %w", err)
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
			Kind:    activity.KindDonationApproved,
			Account: d.Target,
			Amount:  d.Amount,
			ActorID: reviewerID,
			RefID:   d.ID,
		})
	}

	return d, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Donation, error) {
	return s.repo.GetDonation(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Donation, error) {
	return s.repo.ListDonations(ctx, filter)
}

// ListPending is the reviewer queue, oldest submissions first.
func (s *Service) ListPending(ctx context.Context, limit int) ([]*Donation, error) {
	status := StatusPending

	return s.repo.ListDonations(ctx, ListFilter{Status: &status, Limit: limit, OldestFirst: true})
}

// PendingTotal sums pending donation amounts targeting the account.
func (s *Service) PendingTotal(ctx context.Context, target fund.Ref) (decimal.Decimal, error) {
	return s.repo.PendingTotal(ctx, target)
}
