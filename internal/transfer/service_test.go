package transfer_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openvol/fundledger/internal/activity"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
	"github.com/openvol/fundledger/internal/transfer"
)

type fixture struct {
	dir  *fund.MockDirectory
	repo *ledger.MockRepository
	svc  *transfer.Service
}

func newFixture(ctrl *gomock.Controller) fixture {
	dir := fund.NewMockDirectory(ctrl)
	repo := ledger.NewMockRepository(ctrl)
	svc := transfer.NewService(
		fund.NewRegistry(dir),
		ledger.NewService(repo),
		activity.NewLogSink(zerolog.Nop()),
	)

	return fixture{dir: dir, repo: repo, svc: svc}
}

func TestService_Transfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	fromID, toID := uuid.New(), uuid.New()
	from := fund.Ref{Kind: fund.KindWing, ID: fromID}
	to := fund.Ref{Kind: fund.KindCampaign, ID: toID}
	amount := decimal.NewFromInt(500)

	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindWing, fromID).Return("North Wing", true, nil)
	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindCampaign, toID).Return("Winter Campaign", true, nil)
	f.repo.EXPECT().
		RecordTransfer(gomock.Any(), from, to, amount, "seed funding", "admin-1").
		Return(&ledger.Transaction{
			ID:     uuid.New(),
			Kind:   ledger.KindTransfer,
			From:   &from,
			To:     &to,
			Amount: amount,
		}, nil)

	got, err := f.svc.Transfer(context.Background(), transfer.Params{
		FromKind:  fund.KindWing,
		FromID:    fromID,
		ToKind:    fund.KindCampaign,
		ToID:      toID,
		Amount:    amount,
		Note:      "seed funding",
		CreatedBy: "admin-1",
	})

	require.NoError(t, err)
	assert.Equal(t, ledger.KindTransfer, got.Kind)
}

func TestService_Transfer_FromCentral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	toID := uuid.New()
	to := fund.Ref{Kind: fund.KindDirectAid, ID: toID}
	amount := decimal.NewFromInt(1000)

	// Central resolves without a directory lookup; only the destination is
	// checked.
	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindDirectAid, toID).Return("Family Support", true, nil)
	f.repo.EXPECT().
		RecordTransfer(gomock.Any(), fund.Central, to, amount, "", "admin-1").
		Return(&ledger.Transaction{ID: uuid.New(), Kind: ledger.KindTransfer}, nil)

	_, err := f.svc.Transfer(context.Background(), transfer.Params{
		FromKind:  fund.KindCentral,
		ToKind:    fund.KindDirectAid,
		ToID:      toID,
		Amount:    amount,
		CreatedBy: "admin-1",
	})

	require.NoError(t, err)
}

func TestService_Transfer_SameAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	id := uuid.New()
	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindWing, id).Return("North Wing", true, nil).Times(2)

	_, err := f.svc.Transfer(context.Background(), transfer.Params{
		FromKind: fund.KindWing,
		FromID:   id,
		ToKind:   fund.KindWing,
		ToID:     id,
		Amount:   decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, transfer.ErrSameAccount)
}

func TestService_Transfer_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	_, err := f.svc.Transfer(context.Background(), transfer.Params{
		FromKind: fund.KindWing,
		FromID:   uuid.New(),
		ToKind:   fund.KindCampaign,
		ToID:     uuid.New(),
		Amount:   decimal.Zero,
	})

	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestService_Transfer_UnknownSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	fromID := uuid.New()
	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindWing, fromID).Return("", false, nil)

	_, err := f.svc.Transfer(context.Background(), transfer.Params{
		FromKind: fund.KindWing,
		FromID:   fromID,
		ToKind:   fund.KindCampaign,
		ToID:     uuid.New(),
		Amount:   decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, fund.ErrNotFound)
}

func TestService_Transfer_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	fromID, toID := uuid.New(), uuid.New()
	from := fund.Ref{Kind: fund.KindWing, ID: fromID}
	to := fund.Ref{Kind: fund.KindCampaign, ID: toID}
	amount := decimal.NewFromInt(500)

	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindWing, fromID).Return("North Wing", true, nil)
	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindCampaign, toID).Return("Winter Campaign", true, nil)
	f.repo.EXPECT().
		RecordTransfer(gomock.Any(), from, to, amount, "", "admin-1").
		Return(nil, &ledger.InsufficientFundsError{
			Account:   from,
			Available: decimal.NewFromInt(200),
			Requested: amount,
		})

	_, err := f.svc.Transfer(context.Background(), transfer.Params{
		FromKind:  fund.KindWing,
		FromID:    fromID,
		ToKind:    fund.KindCampaign,
		ToID:      toID,
		Amount:    amount,
		CreatedBy: "admin-1",
	})

	var fundsErr *ledger.InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)
	assert.True(t, decimal.NewFromInt(300).Equal(fundsErr.Shortfall()))
}
