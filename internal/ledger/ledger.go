package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openvol/fundledger/internal/fund"
)

// Kind classifies a ledger entry.
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindExpense  Kind = "expense"
	KindTransfer Kind = "transfer"
)

// Transaction is one money movement. Rows are append-only: once written a
// transaction is never updated or deleted; corrections are new offsetting
// entries.
type Transaction struct {
	ID        uuid.UUID
	Kind      Kind
	From      *fund.Ref // nil for deposits
	To        *fund.Ref // nil for expenses
	Amount    decimal.Decimal
	Note      string
	CreatedBy string
	SourceID  *uuid.UUID // donation or expense that caused this entry
	CreatedAt time.Time
}

// Totals aggregates the signed ledger sums for one account.
type Totals struct {
	In       decimal.Decimal // all incoming: deposits + incoming transfers
	Out      decimal.Decimal // all outgoing: expenses + outgoing transfers
	Deposits decimal.Decimal // approved donations only
	Expenses decimal.Decimal // approved expenses only
}

func (t Totals) Balance() decimal.Decimal {
	return t.In.Sub(t.Out)
}

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrNotFound      = errors.New("transaction not found")
)

// InsufficientFundsError reports a debit that exceeds the source balance.
type InsufficientFundsError struct {
	Account   fund.Ref
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in %s: have %s, need %s",
		e.Account, e.Available, e.Requested)
}

// Shortfall is the amount by which the request exceeds the balance.
func (e *InsufficientFundsError) Shortfall() decimal.Decimal {
	return e.Requested.Sub(e.Available)
}
