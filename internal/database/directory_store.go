package database

import (
	"context"
	"fmt"

	"github.com/LukeCarrier/signin/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// SurrealDirectory implements domain.AccountDirectory over SurrealDB.
// It backs the service's own check_domain endpoint.
type SurrealDirectory struct {
	db     *surrealdb.DB
	ns     string
	dbName string
}

// NewSurrealDirectory creates a new SurrealDirectory.
func NewSurrealDirectory(db *surrealdb.DB, ns, dbName string) *SurrealDirectory {
	return &SurrealDirectory{db: db, ns: ns, dbName: dbName}
}

// FindActiveAccounts returns every account matching the username that
// is neither deleted nor suspended. Only active accounts take part in
// domain resolution; everything else is invisible to the sign-in flow.
func (s *SurrealDirectory) FindActiveAccounts(ctx context.Context, username string) ([]domain.Account, error) {
	if err := s.db.Use(ctx, s.ns, s.dbName); err != nil {
		return nil, fmt.Errorf("failed to set database scope: %w", err)
	}

	query := "SELECT * FROM account WHERE username = $username AND deleted = false AND suspended = false"
	params := map[string]any{"username": username}

	accounts, err := Query[domain.Account](ctx, s.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	return accounts, nil
}
