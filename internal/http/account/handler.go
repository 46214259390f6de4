package account

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/http/apierror"
	"github.com/openvol/fundledger/internal/ledger"
	"github.com/openvol/fundledger/internal/summary"
)

type Handler struct {
	registry *fund.Registry
	ledger   *ledger.Service
	summary  *summary.Service
}

func NewHandler(registry *fund.Registry, ledgerSvc *ledger.Service, summarySvc *summary.Service) *Handler {
	return &Handler{registry: registry, ledger: ledgerSvc, summary: summarySvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{kind}/{id}/summary", h.summarize)
	r.Get("/{kind}/{id}/transactions", h.history)
}

// resolveParam resolves the {kind}/{id} pair, allowing the central fund's
// well-known path /central/00000000-0000-0000-0000-000000000000.
func (h *Handler) resolveParam(r *http.Request) (*fund.Account, error) {
	kind := fund.Kind(chi.URLParam(r, "kind"))

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, fund.ErrNotFound
	}

	return h.registry.Resolve(r.Context(), kind, id)
}

type summaryResponse struct {
	Kind                 fund.Kind       `json:"kind"`
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Balance              decimal.Decimal `json:"balance"`
	TotalIn              decimal.Decimal `json:"total_in"`
	TotalOut             decimal.Decimal `json:"total_out"`
	PendingDonationTotal decimal.Decimal `json:"pending_donation_total"`
	PendingExpenseTotal  decimal.Decimal `json:"pending_expense_total"`
}

func (h *Handler) summarize(w http.ResponseWriter, r *http.Request) {
	acct, err := h.resolveParam(r)
	if err != nil {
		apierror.From(w, err)
		return
	}

	s, err := h.summary.Summarize(r.Context(), acct.Ref)
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Kind:                 acct.Ref.Kind,
		ID:                   acct.Ref.ID,
		Name:                 acct.Name,
		Balance:              s.Balance,
		TotalIn:              s.TotalIn,
		TotalOut:             s.TotalOut,
		PendingDonationTotal: s.PendingDonationTotal,
		PendingExpenseTotal:  s.PendingExpenseTotal,
	})
}

type transactionResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      ledger.Kind     `json:"kind"`
	FromKind  *fund.Kind      `json:"from_kind,omitempty"`
	FromID    *uuid.UUID      `json:"from_id,omitempty"`
	ToKind    *fund.Kind      `json:"to_kind,omitempty"`
	ToID      *uuid.UUID      `json:"to_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedBy string          `json:"created_by,omitempty"`
	SourceID  *uuid.UUID      `json:"source_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type historyResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	NextCursor   *uuid.UUID            `json:"next_cursor,omitempty"`
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	acct, err := h.resolveParam(r)
	if err != nil {
		apierror.From(w, err)
		return
	}

	page := ledger.Page{}

	if c := r.URL.Query().Get("cursor"); c != "" {
		cursor, err := uuid.Parse(c)
		if err != nil {
			apierror.Write(w, http.StatusBadRequest, "bad_request", "invalid cursor")
			return
		}

		page.After = &cursor
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			page.Limit = n
		}
	}

	txs, err := h.ledger.History(r.Context(), acct.Ref, page)
	if err != nil {
		apierror.From(w, err)
		return
	}

	resp := historyResponse{Transactions: make([]transactionResponse, len(txs))}

	for i, t := range txs {
		tr := transactionResponse{
			ID:        t.ID,
			Kind:      t.Kind,
			Amount:    t.Amount,
			Note:      t.Note,
			CreatedBy: t.CreatedBy,
			SourceID:  t.SourceID,
			CreatedAt: t.CreatedAt,
		}

		if t.From != nil {
			tr.FromKind = &t.From.Kind
			tr.FromID = &t.From.ID
		}

		if t.To != nil {
			tr.ToKind = &t.To.Kind
			tr.ToID = &t.To.ID
		}

		resp.Transactions[i] = tr
	}

	if len(txs) > 0 {
		last := txs[len(txs)-1].ID
		resp.NextCursor = &last
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
