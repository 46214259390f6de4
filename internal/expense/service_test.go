package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openvol/fundledger/internal/activity"
	"github.com/openvol/fundledger/internal/expense"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
)

func newTestRegistry(ctrl *gomock.Controller, setup func(m *fund.MockDirectory)) *fund.Registry {
	dir := fund.NewMockDirectory(ctrl)
	if setup != nil {
		setup(dir)
	}

	return fund.NewRegistry(dir)
}

func nopSink() activity.Sink {
	return activity.NewLogSink(zerolog.Nop())
}

func TestService_Submit(t *testing.T) {
	entity := fund.Ref{Kind: fund.KindWing, ID: uuid.New()}

	type testCase struct {
		name      string
		params    expense.SubmitParams
		setupDir  func(m *fund.MockDirectory)
		setupRepo func(m *expense.MockRepository)
		wantErr   bool
		wantIs    error
	}

	tests := []testCase{
		{
			name: "Success",
			params: expense.SubmitParams{
				Entity:          entity,
				Title:           "First aid supplies",
				Amount:          decimal.NewFromInt(120),
				Category:        "medical",
				InvoiceImageRef: "invoices/2026/08/123.jpg",
				CreatedBy:       "member-7",
			},
			setupDir: func(m *fund.MockDirectory) {
				m.EXPECT().
					Lookup(gomock.Any(), entity.Kind, entity.ID).
					Return("North Wing", true, nil)
			},
			setupRepo: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "NonPositiveAmount",
			params: expense.SubmitParams{
				Entity: entity,
				Amount: decimal.NewFromInt(-10),
			},
			wantErr: true,
			wantIs:  ledger.ErrInvalidAmount,
		},
		{
			name: "UnknownEntity",
			params: expense.SubmitParams{
				Entity: entity,
				Amount: decimal.NewFromInt(10),
			},
			setupDir: func(m *fund.MockDirectory) {
				m.EXPECT().
					Lookup(gomock.Any(), entity.Kind, entity.ID).
					Return("", false, nil)
			},
			wantErr: true,
			wantIs:  fund.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			svc := expense.NewService(repo, newTestRegistry(ctrl, tt.setupDir), nopSink())
			got, err := svc.Submit(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIs != nil {
					assert.ErrorIs(t, err, tt.wantIs)
				}
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, expense.StatusPending, got.Status)
		})
	}
}

func TestService_Decide_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entity := fund.Ref{Kind: fund.KindCampaign, ID: uuid.New()}
	e := &expense.Expense{
		ID:     uuid.New(),
		Entity: entity,
		Title:  "Venue rental",
		Amount: decimal.NewFromInt(300),
		Status: expense.StatusPending,
	}

	repo := expense.NewMockRepository(ctrl)
	dtx := expense.NewMockDecisionTx(ctrl)
	rec := ledger.NewMockRecorder(ctrl)

	repo.EXPECT().BeginDecision(gomock.Any(), e.ID).Return(dtx, nil)
	dtx.EXPECT().Expense().Return(e)
	dtx.EXPECT().Ledger().Return(rec)
	rec.EXPECT().
		RecordExpense(gomock.Any(), entity, e.Amount, "Venue rental", "reviewer-1", e.ID).
		Return(&ledger.Transaction{ID: uuid.New(), Kind: ledger.KindExpense}, nil)
	dtx.EXPECT().Approve(gomock.Any(), "reviewer-1").Return(nil)
	dtx.EXPECT().Commit().Return(nil)
	dtx.EXPECT().Rollback().Return(nil)

	svc := expense.NewService(repo, newTestRegistry(ctrl, nil), nopSink())
	got, err := svc.Decide(context.Background(), e.ID, expense.DecisionApprove, "reviewer-1")

	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestService_Decide_InsufficientFundsLeavesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entity := fund.Ref{Kind: fund.KindWing, ID: uuid.New()}
	e := &expense.Expense{
		ID:     uuid.New(),
		Entity: entity,
		Title:  "Venue rental",
		Amount: decimal.NewFromInt(300),
		Status: expense.StatusPending,
	}

	repo := expense.NewMockRepository(ctrl)
	dtx := expense.NewMockDecisionTx(ctrl)
	rec := ledger.NewMockRecorder(ctrl)

	insufficient := &ledger.InsufficientFundsError{
		Account:   entity,
		Available: decimal.NewFromInt(120),
		Requested: decimal.NewFromInt(300),
	}

	// No Approve or Commit expectation: the failed debit must abort the
	// decision and roll the transaction back.
	repo.EXPECT().BeginDecision(gomock.Any(), e.ID).Return(dtx, nil)
	dtx.EXPECT().Expense().Return(e)
	dtx.EXPECT().Ledger().Return(rec)
	rec.EXPECT().
		RecordExpense(gomock.Any(), entity, e.Amount, "Venue rental", "reviewer-1", e.ID).
		Return(nil, insufficient)
	dtx.EXPECT().Rollback().Return(nil)

	svc := expense.NewService(repo, newTestRegistry(ctrl, nil), nopSink())
	got, err := svc.Decide(context.Background(), e.ID, expense.DecisionApprove, "reviewer-1")

	require.Error(t, err)
	assert.Nil(t, got)

	var fundsErr *ledger.InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)
	assert.True(t, decimal.NewFromInt(180).Equal(fundsErr.Shortfall()))
	assert.Equal(t, expense.StatusPending, e.Status)
}

func TestService_Decide_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := &expense.Expense{
		ID:     uuid.New(),
		Entity: fund.Ref{Kind: fund.KindWing, ID: uuid.New()},
		Amount: decimal.NewFromInt(40),
		Status: expense.StatusPending,
	}

	repo := expense.NewMockRepository(ctrl)
	dtx := expense.NewMockDecisionTx(ctrl)

	repo.EXPECT().BeginDecision(gomock.Any(), e.ID).Return(dtx, nil)
	dtx.EXPECT().Expense().Return(e)
	dtx.EXPECT().Reject(gomock.Any(), "reviewer-1").Return(nil)
	dtx.EXPECT().Commit().Return(nil)
	dtx.EXPECT().Rollback().Return(nil)

	svc := expense.NewService(repo, newTestRegistry(ctrl, nil), nopSink())
	_, err := svc.Decide(context.Background(), e.ID, expense.DecisionReject, "reviewer-1")
	require.NoError(t, err)
}

func TestService_Decide_AlreadyProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := &expense.Expense{
		ID:     uuid.New(),
		Status: expense.StatusRejected,
	}

	repo := expense.NewMockRepository(ctrl)
	dtx := expense.NewMockDecisionTx(ctrl)

	repo.EXPECT().BeginDecision(gomock.Any(), e.ID).Return(dtx, nil)
	dtx.EXPECT().Expense().Return(e)
	dtx.EXPECT().Rollback().Return(nil)

	svc := expense.NewService(repo, newTestRegistry(ctrl, nil), nopSink())
	_, err := svc.Decide(context.Background(), e.ID, expense.DecisionApprove, "reviewer-1")

	assert.ErrorIs(t, err, expense.ErrAlreadyProcessed)
}

func TestService_Decide_InvalidDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo, newTestRegistry(ctrl, nil), nopSink())

	_, err := svc.Decide(context.Background(), uuid.New(), expense.Decision("maybe"), "reviewer-1")
	assert.ErrorIs(t, err, expense.ErrInvalidDecision)
}

func TestService_ListPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().
		ListExpenses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, expense.StatusPending, *filter.Status)
			assert.True(t, filter.OldestFirst)

			return []*expense.Expense{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		})

	svc := expense.NewService(repo, newTestRegistry(ctrl, nil), nopSink())
	got, err := svc.ListPending(context.Background(), 50)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Decide_BeginError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().BeginDecision(gomock.Any(), id).Return(nil, errors.New("db down"))

	svc := expense.NewService(repo, newTestRegistry(ctrl, nil), nopSink())
	_, err := svc.Decide(context.Background(), id, expense.DecisionReject, "reviewer-1")

	require.Error(t, err)
}
