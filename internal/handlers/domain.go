package handlers

import (
	"net/http"
	"strings"

	"github.com/LukeCarrier/signin/internal/domain"
	"github.com/LukeCarrier/signin/internal/middleware"
	"github.com/labstack/echo/v4"
)

// DomainHandler serves this instance's side of the check_domain remote
// procedure: resolve a username to the email/domain pair the sign-in
// flow routes on.
type DomainHandler struct {
	directory   domain.AccountDirectory
	brandDomain string
}

// NewDomainHandler creates a new DomainHandler.
func NewDomainHandler(directory domain.AccountDirectory, brandDomain string) *DomainHandler {
	return &DomainHandler{directory: directory, brandDomain: brandDomain}
}

// CheckDomain implements POST /local/signin/service/check_domain.
// Failures are reported in-band with the error identifiers the lookup
// client maps; the call is idempotent and read-only.
func (h *DomainHandler) CheckDomain(c echo.Context) error {
	var req CheckDomainRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, CheckDomainError{ErrorCode: domain.RemoteErrInvalidParameter})
	}
	if strings.TrimSpace(req.Input) == "" {
		return c.JSON(http.StatusBadRequest, CheckDomainError{ErrorCode: domain.RemoteErrInvalidParameter})
	}

	accounts, err := h.directory.FindActiveAccounts(c.Request().Context(), req.Input)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Account directory lookup failed", "username", req.Input, "error", err)
		return c.JSON(http.StatusInternalServerError, CheckDomainError{ErrorCode: "dbreadfailed"})
	}

	switch len(accounts) {
	case 0:
		// The account has no resolvable identity here; a null email
		// tells the flow to stay on the username step.
		return c.JSON(http.StatusOK, CheckDomainResponse{Email: nil, Domain: h.brandDomain})
	case 1:
		account := accounts[0]
		owning := account.Domain
		if owning == "" {
			owning = h.brandDomain
		}
		email := account.Email
		return c.JSON(http.StatusOK, CheckDomainResponse{Email: &email, Domain: owning})
	default:
		return c.JSON(http.StatusBadRequest, CheckDomainError{ErrorCode: domain.RemoteErrMultipleRecords})
	}
}
