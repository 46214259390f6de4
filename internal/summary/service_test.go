package summary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
	"github.com/openvol/fundledger/internal/summary"
)

type fixture struct {
	ledger    *summary.MockLedgerReader
	donations *summary.MockPendingReader
	expenses  *summary.MockPendingReader
	counters  *summary.MockCounterReader
	svc       *summary.Service
}

func newFixture(ctrl *gomock.Controller) fixture {
	ledgerReader := summary.NewMockLedgerReader(ctrl)
	donations := summary.NewMockPendingReader(ctrl)
	expenses := summary.NewMockPendingReader(ctrl)
	counters := summary.NewMockCounterReader(ctrl)

	return fixture{
		ledger:    ledgerReader,
		donations: donations,
		expenses:  expenses,
		counters:  counters,
		svc:       summary.NewService(ledgerReader, donations, expenses, counters, zerolog.Nop()),
	}
}

func TestService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	account := fund.Ref{Kind: fund.KindWing, ID: uuid.New()}

	totals := ledger.Totals{
		In:       decimal.NewFromInt(900),
		Out:      decimal.NewFromInt(350),
		Deposits: decimal.NewFromInt(700),
		Expenses: decimal.NewFromInt(300),
	}

	f.ledger.EXPECT().TotalsOf(gomock.Any(), account).Return(totals, nil)
	f.donations.EXPECT().PendingTotal(gomock.Any(), account).Return(decimal.NewFromInt(120), nil)
	f.expenses.EXPECT().PendingTotal(gomock.Any(), account).Return(decimal.NewFromInt(80), nil)
	f.counters.EXPECT().Counters(gomock.Any(), account).
		Return(decimal.NewFromInt(700), decimal.NewFromInt(300), nil)

	got, err := f.svc.Summarize(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, account, got.Account)
	assert.True(t, decimal.NewFromInt(550).Equal(got.Balance))
	assert.True(t, totals.In.Equal(got.TotalIn))
	assert.True(t, totals.Out.Equal(got.TotalOut))
	assert.True(t, decimal.NewFromInt(120).Equal(got.PendingDonationTotal))
	assert.True(t, decimal.NewFromInt(80).Equal(got.PendingExpenseTotal))
}

func TestService_Summarize_CounterDriftStillServesLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	account := fund.Ref{Kind: fund.KindCampaign, ID: uuid.New()}

	totals := ledger.Totals{
		In:       decimal.NewFromInt(100),
		Out:      decimal.Zero,
		Deposits: decimal.NewFromInt(100),
	}

	f.ledger.EXPECT().TotalsOf(gomock.Any(), account).Return(totals, nil)
	f.donations.EXPECT().PendingTotal(gomock.Any(), account).Return(decimal.Zero, nil)
	f.expenses.EXPECT().PendingTotal(gomock.Any(), account).Return(decimal.Zero, nil)

	// Diverged counter: the summary must still report the ledger-derived
	// numbers.
	f.counters.EXPECT().Counters(gomock.Any(), account).
		Return(decimal.NewFromInt(250), decimal.Zero, nil)

	got, err := f.svc.Summarize(context.Background(), account)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Balance))
}

func TestService_Summarize_CounterErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	account := fund.Central

	f.ledger.EXPECT().TotalsOf(gomock.Any(), account).Return(ledger.Totals{}, nil)
	f.donations.EXPECT().PendingTotal(gomock.Any(), account).Return(decimal.Zero, nil)
	f.expenses.EXPECT().PendingTotal(gomock.Any(), account).Return(decimal.Zero, nil)
	f.counters.EXPECT().Counters(gomock.Any(), account).
		Return(decimal.Zero, decimal.Zero, errors.New("table missing"))

	_, err := f.svc.Summarize(context.Background(), account)
	require.NoError(t, err)
}

func TestService_Summarize_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	account := fund.Ref{Kind: fund.KindWing, ID: uuid.New()}

	f.ledger.EXPECT().TotalsOf(gomock.Any(), account).Return(ledger.Totals{}, errors.New("db down"))

	got, err := f.svc.Summarize(context.Background(), account)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestService_Summarize_PendingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	account := fund.Ref{Kind: fund.KindWing, ID: uuid.New()}

	f.ledger.EXPECT().TotalsOf(gomock.Any(), account).Return(ledger.Totals{}, nil)
	f.donations.EXPECT().PendingTotal(gomock.Any(), account).Return(decimal.Zero, errors.New("db down"))

	_, err := f.svc.Summarize(context.Background(), account)
	require.Error(t, err)
}
