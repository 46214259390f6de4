package apierror_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvol/fundledger/internal/donation"
	"github.com/openvol/fundledger/internal/expense"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/http/apierror"
	"github.com/openvol/fundledger/internal/ledger"
	"github.com/openvol/fundledger/internal/transfer"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name: "InsufficientFunds",
			err: &ledger.InsufficientFundsError{
				Account:   fund.Ref{Kind: fund.KindWing},
				Available: decimal.NewFromInt(10),
				Requested: decimal.NewFromInt(50),
			},
			wantStatus: 422,
			wantCode:   "insufficient_funds",
		},
		{name: "InvalidAmount", err: ledger.ErrInvalidAmount, wantStatus: 400, wantCode: "invalid_amount"},
		{name: "UnknownKind", err: fund.ErrUnknownKind, wantStatus: 400, wantCode: "unknown_kind"},
		{name: "SameAccount", err: transfer.ErrSameAccount, wantStatus: 400, wantCode: "same_account"},
		{name: "InvalidDonationDecision", err: donation.ErrInvalidDecision, wantStatus: 400, wantCode: "invalid_decision"},
		{name: "InvalidExpenseDecision", err: expense.ErrInvalidDecision, wantStatus: 400, wantCode: "invalid_decision"},
		{name: "FundNotFound", err: fund.ErrNotFound, wantStatus: 404, wantCode: "not_found"},
		{name: "TransactionNotFound", err: ledger.ErrNotFound, wantStatus: 404, wantCode: "not_found"},
		{name: "DonationNotFound", err: donation.ErrNotFound, wantStatus: 404, wantCode: "not_found"},
		{name: "DonationAlreadyProcessed", err: donation.ErrAlreadyProcessed, wantStatus: 409, wantCode: "already_processed"},
		{name: "ExpenseAlreadyProcessed", err: expense.ErrAlreadyProcessed, wantStatus: 409, wantCode: "already_processed"},
		{name: "Unknown", err: errors.New("boom"), wantStatus: 500, wantCode: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			apierror.From(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestFrom_WrappedError(t *testing.T) {
	rec := httptest.NewRecorder()
	apierror.From(rec, errors.Join(errors.New("recording deposit"), donation.ErrAlreadyProcessed))

	assert.Equal(t, 409, rec.Code)
}

func TestFrom_InsufficientFundsMessageIncludesAmounts(t *testing.T) {
	rec := httptest.NewRecorder()
	apierror.From(rec, &ledger.InsufficientFundsError{
		Account:   fund.Ref{Kind: fund.KindCampaign},
		Available: decimal.NewFromInt(30),
		Requested: decimal.NewFromInt(100),
	})

	assert.Contains(t, rec.Body.String(), "have 30")
	assert.Contains(t, rec.Body.String(), "need 100")
}
