package activity

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
)

// Event describes something the rest of the platform may want to surface
// (feeds, notifications). Delivery is best-effort and never affects the
// operation that produced it.
type Event struct {
	Kind    string
	Account fund.Ref
	Amount  decimal.Decimal
	ActorID string
	RefID   uuid.UUID
}

const (
	KindDonationApproved = "donation_approved"
	KindExpenseApproved  = "expense_approved"
	KindTransferRecorded = "transfer_recorded"
)

type Sink interface {
	Notify(ctx context.Context, e Event)
}

// LogSink writes events to the service log.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(_ context.Context, e Event) {
	s.log.Info().
		Str("event", e.Kind).
		Str("account", e.Account.String()).
		Str("amount", e.Amount.String()).
		Str("actor", e.ActorID).
		Str("ref", e.RefID.String()).
		Msg("activity")
}
