package ledger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
)

func TestService_RecordDeposit(t *testing.T) {
	to := fund.Ref{Kind: fund.KindWing, ID: uuid.New()}
	sourceID := uuid.New()

	type testCase struct {
		name      string
		amount    decimal.Decimal
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			amount: decimal.NewFromInt(100),
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					RecordDeposit(gomock.Any(), to, decimal.NewFromInt(100), "donation", "reviewer-1", sourceID).
					Return(&ledger.Transaction{ID: uuid.New(), Kind: ledger.KindDeposit}, nil)
			},
		},
		{
			name:    "ZeroAmount",
			amount:  decimal.Zero,
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "NegativeAmount",
			amount:  decimal.NewFromInt(-5),
			wantErr: ledger.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.RecordDeposit(context.Background(), to, tt.amount, "donation", "reviewer-1", sourceID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, ledger.KindDeposit, got.Kind)
		})
	}
}

func TestService_RecordExpense_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	from := fund.Ref{Kind: fund.KindCampaign, ID: uuid.New()}
	got, err := svc.RecordExpense(context.Background(), from, decimal.Zero, "supplies", "reviewer-1", uuid.New())

	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	assert.Nil(t, got)
}

func TestService_RecordTransfer_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	from := fund.Central
	to := fund.Ref{Kind: fund.KindWing, ID: uuid.New()}
	got, err := svc.RecordTransfer(context.Background(), from, to, decimal.NewFromInt(-1), "", "admin-1")

	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	assert.Nil(t, got)
}

func TestService_History_ClampsLimit(t *testing.T) {
	account := fund.Ref{Kind: fund.KindWing, ID: uuid.New()}

	type testCase struct {
		name      string
		limit     int
		wantLimit int
	}

	tests := []testCase{
		{name: "DefaultWhenZero", limit: 0, wantLimit: 20},
		{name: "DefaultWhenNegative", limit: -3, wantLimit: 20},
		{name: "CappedAtMax", limit: 500, wantLimit: 100},
		{name: "Passthrough", limit: 50, wantLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			repo.EXPECT().
				History(gomock.Any(), account, ledger.Page{Limit: tt.wantLimit}).
				Return([]*ledger.Transaction{}, nil)

			svc := ledger.NewService(repo)
			_, err := svc.History(context.Background(), account, ledger.Page{Limit: tt.limit})
			require.NoError(t, err)
		})
	}
}

func TestInsufficientFundsError_Shortfall(t *testing.T) {
	err := &ledger.InsufficientFundsError{
		Account:   fund.Ref{Kind: fund.KindWing, ID: uuid.Nil},
		Available: decimal.NewFromInt(30),
		Requested: decimal.NewFromInt(100),
	}

	assert.True(t, decimal.NewFromInt(70).Equal(err.Shortfall()))
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestTotals_Balance(t *testing.T) {
	totals := ledger.Totals{
		In:  decimal.NewFromInt(250),
		Out: decimal.NewFromInt(100),
	}

	assert.True(t, decimal.NewFromInt(150).Equal(totals.Balance()))
}
