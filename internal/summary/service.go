package summary

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=reader_mock.go -package=summary

// LedgerReader is the read-side slice of the ledger this package needs.
type LedgerReader interface {
	TotalsOf(ctx context.Context, account fund.Ref) (ledger.Totals, error)
}

// PendingReader sums the pending amounts a workflow holds for an account.
type PendingReader interface {
	PendingTotal(ctx context.Context, account fund.Ref) (decimal.Decimal, error)
}

// CounterReader exposes the cached display counters, zero when absent.
type CounterReader interface {
	Counters(ctx context.Context, account fund.Ref) (raised, spent decimal.Decimal, err error)
}

// Summary is the consistent read-side view of one account.
type Summary struct {
	Account              fund.Ref
	Balance              decimal.Decimal
	TotalIn              decimal.Decimal
	TotalOut             decimal.Decimal
	PendingDonationTotal decimal.Decimal
	PendingExpenseTotal  decimal.Decimal
}

// Service aggregates the ledger and the pending workflow subsets. It also
// cross-checks the cached display counters: a divergence means some code
// path updated a counter outside a ledger transaction, which is a bug worth
// alerting on, so it is logged and the ledger-derived numbers are served.
type Service struct {
	ledger    LedgerReader
	donations PendingReader
	expenses  PendingReader
	counters  CounterReader
	log       zerolog.Logger
}

func NewService(ledgerReader LedgerReader, donations, expenses PendingReader, counters CounterReader, log zerolog.Logger) *Service {
	return &Service{
		ledger:    ledgerReader,
		donations: donations,
		expenses:  expenses,
		counters:  counters,
		log:       log,
	}
}

func (s *Service) Summarize(ctx context.Context, account fund.Ref) (*Summary, error) {
	totals, err := s.ledger.TotalsOf(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("reading ledger totals: %w", err)
	}

	pendingDonations, err := s.donations.PendingTotal(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("reading pending donations: %w", err)
	}

	pendingExpenses, err := s.expenses.PendingTotal(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("reading pending expenses: %w", err)
	}

	s.checkCounters(ctx, account, totals)

	return &Summary{
		Account:              account,
		Balance:              totals.Balance(),
		TotalIn:              totals.In,
		TotalOut:             totals.Out,
		PendingDonationTotal: pendingDonations,
		PendingExpenseTotal:  pendingExpenses,
	}, nil
}

func (s *Service) checkCounters(ctx context.Context, account fund.Ref, totals ledger.Totals) {
	raised, spent, err := s.counters.Counters(ctx, account)
	if err != nil {
		s.log.Warn().Err(err).Str("account", account.String()).Msg("reading display counters")
		return
	}

	if !raised.Equal(totals.Deposits) {
		s.log.Warn().
			Str("account", account.String()).
			Str("counter", raised.String()).
			Str("ledger", totals.Deposits.String()).
			Msg("raised counter diverged from ledger")
	}

	if !spent.Equal(totals.Expenses) {
		s.log.Warn().
			Str("account", account.String()).
			Str("counter", spent.String()).
			Str("ledger", totals.Expenses.String()).
			Msg("spent counter diverged from ledger")
	}
}
