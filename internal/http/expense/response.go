package expense

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/expense"
	"github.com/openvol/fundledger/internal/fund"
)

type expenseResponse struct {
	ID              uuid.UUID       `json:"id"`
	EntityKind      fund.Kind       `json:"entity_kind"`
	EntityID        uuid.UUID       `json:"entity_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	InvoiceImageRef string          `json:"invoice_image_ref,omitempty"`
	Status          expense.Status  `json:"status"`
	CreatedBy       string          `json:"created_by"`
	ApprovedBy      string          `json:"approved_by,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:              e.ID,
		EntityKind:      e.Entity.Kind,
		EntityID:        e.Entity.ID,
		Title:           e.Title,
		Description:     e.Description,
		Amount:          e.Amount,
		Category:        e.Category,
		InvoiceImageRef: e.InvoiceImageRef,
		Status:          e.Status,
		CreatedBy:       e.CreatedBy,
		ApprovedBy:      e.ApprovedBy,
		ReviewedAt:      e.ReviewedAt,
		CreatedAt:       e.CreatedAt,
	}
}

func toResponseList(es []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(es))
	for i, e := range es {
		resp[i] = toResponse(e)
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
