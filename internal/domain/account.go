package domain

import (
	"context"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Account is a directory record for a sign-in account. Only active
// accounts (not deleted, not suspended) ever reach the sign-in flow.
type Account struct {
	ID        *surrealmodels.RecordID `json:"id,omitempty"`
	Username  string                  `json:"username"`
	Email     string                  `json:"email"`
	Domain    string                  `json:"domain,omitempty"`
	Deleted   bool                    `json:"deleted"`
	Suspended bool                    `json:"suspended"`
}

// AccountDirectory is the contract for resolving usernames against the
// account store. It lives in the domain because it is a requirement OF
// the domain, not of the database implementation.
type AccountDirectory interface {
	// FindActiveAccounts returns every active account matching the
	// username. Zero results means the account has no resolvable
	// identity; more than one is a data problem the caller must report.
	FindActiveAccounts(ctx context.Context, username string) ([]Account, error)
}
