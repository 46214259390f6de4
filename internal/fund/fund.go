package fund

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies which sort of entity holds a fund account.
type Kind string

const (
	KindWing      Kind = "wing"
	KindCampaign  Kind = "campaign"
	KindDirectAid Kind = "direct_aid"
	KindCentral   Kind = "central"
)

// Valid reports whether k is one of the four account kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindWing, KindCampaign, KindDirectAid, KindCentral:
		return true
	}

	return false
}

// Ref identifies a fund account by kind and entity id.
type Ref struct {
	Kind Kind
	ID   uuid.UUID
}

// Central is the single organization-wide clearing account. It carries the
// nil UUID; no entity row backs it.
var Central = Ref{Kind: KindCentral}

func (r Ref) IsCentral() bool {
	return r.Kind == KindCentral
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%s", r.Kind, r.ID)
}

var (
	ErrUnknownKind = errors.New("unknown account kind")
	ErrNotFound    = errors.New("account not found")
)
