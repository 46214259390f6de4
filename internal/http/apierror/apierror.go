// Package apierror maps the domain's typed errors onto the JSON error
// envelope. Every rejection carries a machine-readable code and a message
// specific enough for the UI to explain it.
package apierror

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openvol/fundledger/internal/donation"
	"github.com/openvol/fundledger/internal/expense"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/ledger"
	"github.com/openvol/fundledger/internal/transfer"
)

type envelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Write(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Code: code, Message: message})
}

// From writes the response for a domain error.
func From(w http.ResponseWriter, err error) {
	var insufficient *ledger.InsufficientFundsError
	if errors.As(err, &insufficient) {
		Write(w, http.StatusUnprocessableEntity, "insufficient_funds", insufficient.Error())
		return
	}

	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		Write(w, http.StatusBadRequest, "invalid_amount", "amount must be positive")
	case errors.Is(err, fund.ErrUnknownKind):
		Write(w, http.StatusBadRequest, "unknown_kind", err.Error())
	case errors.Is(err, transfer.ErrSameAccount):
		Write(w, http.StatusBadRequest, "same_account", err.Error())
	case errors.Is(err, donation.ErrInvalidDecision), errors.Is(err, expense.ErrInvalidDecision):
		Write(w, http.StatusBadRequest, "invalid_decision", "decision must be approve or reject")
	case errors.Is(err, fund.ErrNotFound),
		errors.Is(err, donation.ErrNotFound),
		errors.Is(err, expense.ErrNotFound),
		errors.Is(err, ledger.ErrNotFound):
		Write(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, donation.ErrAlreadyProcessed), errors.Is(err, expense.ErrAlreadyProcessed):
		Write(w, http.StatusConflict, "already_processed", err.Error())
	default:
		Write(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
