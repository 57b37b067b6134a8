package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LukeCarrier/signin/internal/domain"
	"github.com/LukeCarrier/signin/internal/handlers"
	"github.com/LukeCarrier/signin/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDirectory serves a fixed account set.
type stubDirectory struct {
	accounts []domain.Account
	err      error
}

func (s *stubDirectory) FindActiveAccounts(ctx context.Context, username string) ([]domain.Account, error) {
	return s.accounts, s.err
}

func checkDomain(t *testing.T, directory *stubDirectory, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handler := handlers.NewDomainHandler(directory, "example.com")
	e.POST("/local/signin/service/check_domain", handler.CheckDomain)

	req := httptest.NewRequest(http.MethodPost, "/local/signin/service/check_domain", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCheckDomain_SingleAccount(t *testing.T) {
	directory := &stubDirectory{accounts: []domain.Account{
		{Username: "alice", Email: "a@x.com", Domain: "other.example.com"},
	}}

	rec := checkDomain(t, directory, `{"input":"alice"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"a@x.com","domain":"other.example.com"}`, rec.Body.String())
}

func TestCheckDomain_AccountWithoutDomainFallsBackToBrand(t *testing.T) {
	directory := &stubDirectory{accounts: []domain.Account{
		{Username: "bob", Email: "b@x.com"},
	}}

	rec := checkDomain(t, directory, `{"input":"bob"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"b@x.com","domain":"example.com"}`, rec.Body.String())
}

func TestCheckDomain_NoAccount(t *testing.T) {
	rec := checkDomain(t, &stubDirectory{}, `{"input":"ghost"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":null,"domain":"example.com"}`, rec.Body.String())
}

func TestCheckDomain_MultipleAccounts(t *testing.T) {
	directory := &stubDirectory{accounts: []domain.Account{
		{Username: "carol", Email: "c1@x.com"},
		{Username: "carol", Email: "c2@x.com"},
	}}

	rec := checkDomain(t, directory, `{"input":"carol"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errorcode":"multiplerecordsfound"}`, rec.Body.String())
}

func TestCheckDomain_EmptyInput(t *testing.T) {
	for _, body := range []string{`{"input":""}`, `{"input":"   "}`, `{}`} {
		rec := checkDomain(t, &stubDirectory{}, body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"errorcode":"invalidparameter"}`, rec.Body.String())
	}
}

func TestCheckDomain_Throttled(t *testing.T) {
	e := echo.New()
	handler := handlers.NewDomainHandler(&stubDirectory{}, "example.com")
	e.POST("/local/signin/service/check_domain", handler.CheckDomain, middleware.RateLimiter())

	limit := 10
	for i := 0; i < limit; i++ {
		req := httptest.NewRequest(http.MethodPost, "/local/signin/service/check_domain", strings.NewReader(`{"input":"alice"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.RemoteAddr = "192.0.2.7:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i+1)
	}

	req := httptest.NewRequest(http.MethodPost, "/local/signin/service/check_domain", strings.NewReader(`{"input":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.RemoteAddr = "192.0.2.7:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "enumeration attempts get throttled")
}

func TestCheckDomain_DirectoryFailure(t *testing.T) {
	directory := &stubDirectory{err: errors.New("connection reset")}

	rec := checkDomain(t, directory, `{"input":"alice"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"errorcode":"dbreadfailed"}`, rec.Body.String())
}
