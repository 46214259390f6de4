package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
)

// Status is the approval state of an expense claim. Pending may move to
// approved or rejected, both terminal. A failed approval (insufficient
// funds) leaves the claim pending so the reviewer can retry or reject.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decision is a reviewer's verdict on a pending expense.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Expense is an outgoing spend claim against one fund account.
type Expense struct {
	ID              uuid.UUID
	Entity          fund.Ref
	Title           string
	Description     string
	Amount          decimal.Decimal
	Category        string
	InvoiceImageRef string
	Status          Status
	CreatedBy       string
	ApprovedBy      string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
}

var (
	ErrNotFound         = errors.New("expense not found")
	ErrAlreadyProcessed = errors.New("expense already processed")
	ErrInvalidDecision  = errors.New("invalid decision")
)
