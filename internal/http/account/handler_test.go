package account_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/http/account"
	"github.com/openvol/fundledger/internal/ledger"
	"github.com/openvol/fundledger/internal/summary"
)

type fixture struct {
	dir        *fund.MockDirectory
	ledgerRepo *ledger.MockRepository
	router     chi.Router
}

func newFixture(ctrl *gomock.Controller) fixture {
	dir := fund.NewMockDirectory(ctrl)
	ledgerRepo := ledger.NewMockRepository(ctrl)

	summarySvc := summary.NewService(
		summary.NewMockLedgerReader(ctrl),
		summary.NewMockPendingReader(ctrl),
		summary.NewMockPendingReader(ctrl),
		summary.NewMockCounterReader(ctrl),
		zerolog.Nop(),
	)

	h := account.NewHandler(fund.NewRegistry(dir), ledger.NewService(ledgerRepo), summarySvc)

	router := chi.NewRouter()
	h.Routes(router)

	return fixture{dir: dir, ledgerRepo: ledgerRepo, router: router}
}

func TestHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	wingID := uuid.New()
	wing := fund.Ref{Kind: fund.KindWing, ID: wingID}

	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindWing, wingID).Return("North Wing", true, nil)

	txID := uuid.New()
	f.ledgerRepo.EXPECT().
		History(gomock.Any(), wing, ledger.Page{Limit: 20}).
		Return([]*ledger.Transaction{
			{ID: txID, Kind: ledger.KindDeposit, To: &wing, Amount: decimal.NewFromInt(100)},
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/wing/%s/transactions", wingID), nil)
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Transactions []struct {
			ID uuid.UUID `json:"id"`
		} `json:"transactions"`
		NextCursor *uuid.UUID `json:"next_cursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, txID, body.Transactions[0].ID)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, txID, *body.NextCursor)
}

func TestHandler_History_UnknownCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	wingID := uuid.New()
	wing := fund.Ref{Kind: fund.KindWing, ID: wingID}
	cursor := uuid.New()

	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindWing, wingID).Return("North Wing", true, nil)
	f.ledgerRepo.EXPECT().
		History(gomock.Any(), wing, ledger.Page{After: &cursor, Limit: 20}).
		Return(nil, fmt.Errorf("cursor %s: %w", cursor, ledger.ErrNotFound))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/wing/%s/transactions?cursor=%s", wingID, cursor), nil)
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestHandler_History_MalformedCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	wingID := uuid.New()
	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindWing, wingID).Return("North Wing", true, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/wing/%s/transactions?cursor=not-a-uuid", wingID), nil)
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_History_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	wingID := uuid.New()
	f.dir.EXPECT().Lookup(gomock.Any(), fund.KindWing, wingID).Return("", false, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/wing/%s/transactions", wingID), nil)
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
