package transfer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/activity"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
)

var ErrSameAccount = errors.New("cannot transfer to the same account")

type Params struct {
	FromKind  fund.Kind
	FromID    uuid.UUID
	ToKind    fund.Kind
	ToID      uuid.UUID
	Amount    decimal.Decimal
	Note      string
	CreatedBy string
}

// Service moves funds directly between two accounts. It holds no state:
// validation happens here, but the balance check and the write live in the
// ledger's atomic unit, so a concurrent drain cannot slip past.
type Service struct {
	registry *fund.Registry
	ledger   *ledger.Service
	activity activity.Sink
}

func NewService(registry *fund.Registry, ledgerSvc *ledger.Service, sink activity.Sink) *Service {
	return &Service{registry: registry, ledger: ledgerSvc, activity: sink}
}

func (s *Service) Transfer(ctx context.Context, params Params) (*ledger.Transaction, error) {
	if !params.Amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	from, err := s.registry.Resolve(ctx, params.FromKind, params.FromID)
	if err != nil {
		return nil, err
	}

	to, err := s.registry.Resolve(ctx, params.ToKind, params.ToID)
	if err != nil {
		return nil, err
	}

	if from.Ref == to.Ref {
		return nil, ErrSameAccount
	}

	t, err := s.ledger.RecordTransfer(ctx, from.Ref, to.Ref, params.Amount, params.Note, params.CreatedBy)
	if err != nil {
		return nil, err
	}

	s.activity.Notify(ctx, activity.Event{
		Kind:    activity.KindTransferRecorded,
		Account: from.Ref,
		Amount:  params.Amount,
		ActorID: params.CreatedBy,
		RefID:   t.ID,
	})

	return t, nil
}
