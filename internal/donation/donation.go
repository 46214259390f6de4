package donation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
)

// Status is the approval state of a donation. Transitions are one-shot:
// pending may move to approved or rejected, both terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decision is a reviewer's verdict on a pending donation.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Donation is an externally sourced contribution targeting one fund
// account. Submitted pending; only a reviewer decision mutates it, and a
// decided donation is retained for audit, never deleted.
type Donation struct {
	ID            uuid.UUID
	Target        fund.Ref
	DonorName     string
	Anonymous     bool
	Phone         string
	Amount        decimal.Decimal
	PaymentMethod string
	ExternalRef   string
	Status        Status
	ReviewedBy    string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
}

// DisplayName honors the donor's anonymity flag.
func (d *Donation) DisplayName() string {
	if d.Anonymous || d.DonorName == "" {
		return "anonymous donor"
	}

	return d.DonorName
}

var (
	ErrNotFound         = errors.New("donation not found")
	ErrAlreadyProcessed = errors.New("donation already processed")
	ErrInvalidDecision  = errors.New("invalid decision")
)
