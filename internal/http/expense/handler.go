package expense

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/expense"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/http/apierror"
	"github.com/openvol/fundledger/internal/http/middleware"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes is mounted behind authentication: expenses are submitted by entity
// managers and decided by reviewers.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.submit)
	r.Get("/", h.list)
	r.Get("/pending", h.listPending)
	r.Get("/{id}", h.get)
	r.Post("/{id}/decision", h.decide)
}

type submitRequest struct {
	EntityKind      fund.Kind       `json:"entity_kind"`
	EntityID        uuid.UUID       `json:"entity_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	InvoiceImageRef string          `json:"invoice_image_ref"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	e, err := h.svc.Submit(r.Context(), expense.SubmitParams{
		Entity:          fund.Ref{Kind: req.EntityKind, ID: req.EntityID},
		Title:           req.Title,
		Description:     req.Description,
		Amount:          req.Amount,
		Category:        req.Category,
		InvoiceImageRef: req.InvoiceImageRef,
		CreatedBy:       middleware.UserIDFromContext(r.Context()),
	})
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierror.Write(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := expense.ListFilter{Limit: 100}

	if s := r.URL.Query().Get("status"); s != "" {
		status := expense.Status(s)
		filter.Status = &status
	}

	es, err := h.svc.List(r.Context(), filter)
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(es))
}

func (h *Handler) listPending(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.ListPending(r.Context(), 100)
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(es))
}

type decideRequest struct {
	Decision expense.Decision `json:"decision"`
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierror.Write(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}

	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	reviewerID := middleware.UserIDFromContext(r.Context())

	e, err := h.svc.Decide(r.Context(), id, req.Decision, reviewerID)
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}
