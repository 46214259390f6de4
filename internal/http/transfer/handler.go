package transfer

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/http/apierror"
	"github.com/openvol/fundledger/internal/http/middleware"
	"github.com/openvol/fundledger/internal/ledger"
	"github.com/openvol/fundledger/internal/transfer"
)

type Handler struct {
	svc *transfer.Service
}

func NewHandler(svc *transfer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
}

type transferRequest struct {
	FromKind fund.Kind       `json:"from_kind"`
	FromID   uuid.UUID       `json:"from_id"`
	ToKind   fund.Kind       `json:"to_kind"`
	ToID     uuid.UUID       `json:"to_id"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

type transferResponse struct {
	ID        uuid.UUID       `json:"id"`
	FromKind  fund.Kind       `json:"from_kind"`
	FromID    uuid.UUID       `json:"from_id"`
	ToKind    fund.Kind       `json:"to_kind"`
	ToID      uuid.UUID       `json:"to_id"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	t, err := h.svc.Transfer(r.Context(), transfer.Params{
		FromKind:  req.FromKind,
		FromID:    req.FromID,
		ToKind:    req.ToKind,
		ToID:      req.ToID,
		Amount:    req.Amount,
		Note:      req.Note,
		CreatedBy: middleware.UserIDFromContext(r.Context()),
	})
	if err != nil {
		apierror.From(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toResponse(t))
}

func toResponse(t *ledger.Transaction) transferResponse {
	resp := transferResponse{
		ID:        t.ID,
		Amount:    t.Amount,
		Note:      t.Note,
		CreatedBy: t.CreatedBy,
		CreatedAt: t.CreatedAt,
	}

	if t.From != nil {
		resp.FromKind = t.From.Kind
		resp.FromID = t.From.ID
	}

	if t.To != nil {
		resp.ToKind = t.To.Kind
		resp.ToID = t.To.ID
	}

	return resp
}
