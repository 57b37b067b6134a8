// Package lookup implements the client side of the check_domain remote
// procedure: given a username, which network domain owns the account?
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LukeCarrier/signin/internal/domain"
)

// Client calls the check_domain procedure over HTTP. It satisfies
// domain.DomainResolver: one request per Lookup call, no retries.
type Client struct {
	endpoint string
	http     *http.Client
}

// New creates a lookup client for the given endpoint. The timeout bounds
// the whole round trip; there is no retry on top of it.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// checkDomainRequest is the wire format of a lookup call.
type checkDomainRequest struct {
	Input string `json:"input"`
}

// checkDomainResponse covers both outcomes of the procedure. A populated
// ErrorCode marks a structured failure; otherwise Email/Domain apply.
type checkDomainResponse struct {
	Email     *string `json:"email"`
	Domain    string  `json:"domain"`
	ErrorCode string  `json:"errorcode,omitempty"`
}

// Lookup resolves the username's owning domain. Structured remote
// failures come back as a LookupResult with a non-zero Code; only
// transport-level problems (unreachable service, malformed body) return
// an error. Callers are expected to treat that error like CodeOther.
func (c *Client) Lookup(ctx context.Context, username string) (domain.LookupResult, error) {
	body, err := json.Marshal(checkDomainRequest{Input: username})
	if err != nil {
		return domain.LookupResult{}, fmt.Errorf("encoding lookup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.LookupResult{}, fmt.Errorf("building lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.LookupResult{}, fmt.Errorf("%w: %w", domain.ErrLookupUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.LookupResult{}, fmt.Errorf("reading lookup response: %w", err)
	}

	var payload checkDomainResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.LookupResult{}, fmt.Errorf("%w: malformed response: %w", domain.ErrLookupUnavailable, err)
	}

	// The procedure reports its failures in-band. A 4xx/5xx without a
	// recognisable errorcode still maps to CodeOther so the caller can
	// fail open.
	if payload.ErrorCode != "" {
		return domain.LookupResult{Code: domain.ErrorCodeFromRemote(payload.ErrorCode)}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return domain.LookupResult{Code: domain.CodeOther}, nil
	}

	return domain.LookupResult{Email: payload.Email, Domain: payload.Domain}, nil
}
