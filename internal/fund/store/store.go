package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openvol/fundledger/internal/fund"
)

// Store reads the platform's entity mirror so the registry can check that a
// wing/campaign/direct-aid project actually exists.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Lookup(ctx context.Context, kind fund.Kind, id uuid.UUID) (string, bool, error) {
	const query = `SELECT name FROM entities WHERE kind = $1 AND id = $2`

	var name string

	err := s.db.QueryRowContext(ctx, query, string(kind), id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("looking up entity: %w", err)
	}

	return name, true, nil
}
