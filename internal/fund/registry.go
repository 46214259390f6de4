package fund

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=registry.go -destination=directory_mock.go -package=fund

// Directory looks up fund-holding entities owned by the rest of the
// platform (wings, campaigns, direct-aid projects).
type Directory interface {
	Lookup(ctx context.Context, kind Kind, id uuid.UUID) (name string, exists bool, err error)
}

// Account is a resolved fund account.
type Account struct {
	Ref  Ref
	Name string
}

type Registry struct {
	dir Directory
}

func NewRegistry(dir Directory) *Registry {
	return &Registry{dir: dir}
}

// Resolve validates the kind and, for non-central kinds, that the referenced
// entity exists. The central fund resolves without a directory lookup.
func (r *Registry) Resolve(ctx context.Context, kind Kind, id uuid.UUID) (*Account, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if kind == KindCentral {
		return &Account{Ref: Central, Name: "Central Fund"}, nil
	}

	name, exists, err := r.dir.Lookup(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("looking up %s/%s: %w", kind, id, err)
	}

	if !exists {
		return nil, ErrNotFound
	}

	return &Account{Ref: Ref{Kind: kind, ID: id}, Name: name}, nil
}
