package donation

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/donation"
	"github.com/openvol/fundledger/internal/fund"
)

type donationResponse struct {
	ID            uuid.UUID       `json:"id"`
	TargetKind    fund.Kind       `json:"target_kind"`
	TargetID      uuid.UUID       `json:"target_id"`
	DonorName     string          `json:"donor_name"`
	Anonymous     bool            `json:"anonymous"`
	Phone         string          `json:"phone,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	ExternalRef   string          `json:"external_ref,omitempty"`
	Status        donation.Status `json:"status"`
	ReviewedBy    string          `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// toResponse maps a donation; public views mask donor identity behind the
// anonymity flag and never expose the phone number.
func toResponse(d *donation.Donation, public bool) donationResponse {
	resp := donationResponse{
		ID:            d.ID,
		TargetKind:    d.Target.Kind,
		TargetID:      d.Target.ID,
		DonorName:     d.DonorName,
		Anonymous:     d.Anonymous,
		Phone:         d.Phone,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		ExternalRef:   d.ExternalRef,
		Status:        d.Status,
		ReviewedBy:    d.ReviewedBy,
		ReviewedAt:    d.ReviewedAt,
		CreatedAt:     d.CreatedAt,
	}

	if public {
		resp.DonorName = d.DisplayName()
		resp.Phone = ""
		resp.ExternalRef = ""
	}

	return resp
}

func toResponseList(ds []*donation.Donation, public bool) []donationResponse {
	resp := make([]donationResponse, len(ds))
	for i, d := range ds {
		resp[i] = toResponse(d, public)
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
