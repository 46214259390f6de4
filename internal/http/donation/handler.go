package donation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/donation"
	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/http/apierror"
	"github.com/openvol/fundledger/internal/http/middleware"
)

type Handler struct {
	svc *donation.Service
}

func NewHandler(svc *donation.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes is the public surface: anyone may submit a donation or read the
// recent approved ones.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.submit)
	r.Get("/recent", h.listRecent)
	r.Get("/{id}", h.get)
}

// ReviewRoutes is mounted behind authentication.
func (h *Handler) ReviewRoutes(r chi.Router) {
	r.Get("/pending", h.listPending)
	r.Post("/{id}/decision", h.decide)
}

type submitRequest struct {
	TargetKind    fund.Kind       `json:"target_kind"`
	TargetID      uuid.UUID       `json:"target_id"`
	DonorName     string          `json:"donor_name"`
	Anonymous     bool            `json:"anonymous"`
	Phone         string          `json:"phone"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	ExternalRef   string          `json:"external_ref"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	d, err := h.svc.Submit(r.Context(), donation.SubmitParams{
		Target:        fund.Ref{Kind: req.TargetKind, ID: req.TargetID},
		DonorName:     req.DonorName,
		Anonymous:     req.Anonymous,
		Phone:         req.Phone,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		ExternalRef:   req.ExternalRef,
	})
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(d, false))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierror.Write(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(d, true))
}

func (h *Handler) listRecent(w http.ResponseWriter, r *http.Request) {
	status := donation.StatusApproved

	ds, err := h.svc.List(r.Context(), donation.ListFilter{Status: &status, Limit: 20})
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(ds, true))
}

func (h *Handler) listPending(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.ListPending(r.Context(), 100)
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(ds, false))
}

type decideRequest struct {
	Decision donation.Decision `json:"decision"`
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

	d, err := h.svc.Decide(r.Context(), id, req.Decision, reviewerID)
	if err != nil {
		apierror.From(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(d, false))
}
