package signin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/LukeCarrier/signin/internal/domain"
	"github.com/LukeCarrier/signin/internal/signin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver records calls and returns a canned outcome.
type fakeResolver struct {
	result       domain.LookupResult
	err          error
	calls        int
	lastUsername string
}

func (f *fakeResolver) Lookup(ctx context.Context, username string) (domain.LookupResult, error) {
	f.calls++
	f.lastUsername = username
	return f.result, f.err
}

func strptr(s string) *string { return &s }

func TestSubmitUsername_GuestBypass(t *testing.T) {
	for _, username := range []string{"guest", "Guest", "GUEST", "gUeSt"} {
		t.Run(username, func(t *testing.T) {
			resolver := &fakeResolver{}
			o := signin.New(resolver, nil)
			ctrl := signin.NewController("", "")

			intent := o.SubmitUsername(context.Background(), ctrl, username, "https:", "example.com")

			submit, ok := intent.(signin.SubmitPassword)
			require.True(t, ok, "expected SubmitPassword, got %T", intent)
			assert.Equal(t, username, submit.Username, "literal casing is carried over")
			assert.Equal(t, username, ctrl.Password.Username)
			assert.Zero(t, resolver.calls, "guest never triggers a lookup")
		})
	}
}

func TestSubmitUsername_GuestIsExactLiteral(t *testing.T) {
	resolver := &fakeResolver{result: domain.LookupResult{Email: strptr("g@x.com"), Domain: "example.com"}}
	o := signin.New(resolver, nil)
	ctrl := signin.NewController("", "")

	// Whitespace is not normalized, so " guest" is an ordinary username.
	o.SubmitUsername(context.Background(), ctrl, " guest", "https:", "example.com")
	assert.Equal(t, 1, resolver.calls)
}

func TestSubmitUsername_CrossDomainRedirect(t *testing.T) {
	resolver := &fakeResolver{result: domain.LookupResult{
		Email:  strptr("a@x.com"),
		Domain: "other.example.com",
	}}
	o := signin.New(resolver, nil)
	ctrl := signin.NewController("", "")

	intent := o.SubmitUsername(context.Background(), ctrl, "alice", "https:", "example.com")

	redirect, ok := intent.(signin.Redirect)
	require.True(t, ok, "expected Redirect, got %T", intent)
	assert.Equal(t, "https://other.example.com/local/signin/index.php?username=alice", redirect.URL)
	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, "alice", resolver.lastUsername)
}

func TestSubmitUsername_SameDomainRevealsPassword(t *testing.T) {
	resolver := &fakeResolver{result: domain.LookupResult{
		Email:  strptr("b@x.com"),
		Domain: "example.com",
	}}
	o := signin.New(resolver, nil)
	ctrl := signin.NewController("", "")
	ctrl.Username.RememberMe = true

	intent := o.SubmitUsername(context.Background(), ctrl, "bob", "https:", "example.com")

	reveal, ok := intent.(signin.RevealPassword)
	require.True(t, ok, "expected RevealPassword, got %T", intent)
	assert.Equal(t, "bob", reveal.Username)
	assert.True(t, ctrl.Password.RememberMe, "remember-me carried before the lookup")
}

func TestSubmitUsername_NoResolvableIdentity(t *testing.T) {
	resolver := &fakeResolver{result: domain.LookupResult{Email: nil, Domain: "example.com"}}
	o := signin.New(resolver, nil)
	ctrl := signin.NewController("", "")

	intent := o.SubmitUsername(context.Background(), ctrl, "ghost", "https:", "example.com")

	notify, ok := intent.(signin.Notify)
	require.True(t, ok, "expected Notify, got %T", intent)
	assert.Equal(t, signin.SeverityDanger, notify.Severity)
	assert.Equal(t, signin.KeyUserNotFound, notify.Key)
}

func TestSubmitUsername_StructuredFailures(t *testing.T) {
	tests := []struct {
		name    string
		code    domain.ErrorCode
		wantKey string
	}{
		{"invalid parameter", domain.CodeInvalidParameter, signin.KeyInvalidUser},
		{"multiple records", domain.CodeMultipleRecords, signin.KeyDuplicateField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{result: domain.LookupResult{Code: tt.code}}
			o := signin.New(resolver, nil)
			ctrl := signin.NewController("", "")

			intent := o.SubmitUsername(context.Background(), ctrl, "carol", "https:", "example.com")

			notify, ok := intent.(signin.Notify)
			require.True(t, ok, "expected Notify, got %T", intent)
			assert.Equal(t, signin.SeverityDanger, notify.Severity)
			assert.Equal(t, tt.wantKey, notify.Key)
		})
	}
}

func TestSubmitUsername_FailsOpen(t *testing.T) {
	tests := []struct {
		name     string
		resolver *fakeResolver
	}{
		{"transport failure", &fakeResolver{err: errors.New("connection refused")}},
		{"unrecognised remote failure", &fakeResolver{result: domain.LookupResult{Code: domain.CodeOther}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := signin.New(tt.resolver, nil)
			ctrl := signin.NewController("", "")

			intent := o.SubmitUsername(context.Background(), ctrl, "dave", "https:", "example.com")

			// The lookup service being down must not gate sign-in: fall
			// back to the password step without domain verification.
			reveal, ok := intent.(signin.RevealPassword)
			require.True(t, ok, "expected RevealPassword, got %T", intent)
			assert.Equal(t, "dave", reveal.Username)
		})
	}
}

func TestRedirectURL_Encoding(t *testing.T) {
	url := signin.RedirectURL("http:", "other.example.com", "a b+c")
	assert.Equal(t, "http://other.example.com/local/signin/index.php?username=a+b%2Bc", url)
}

func TestDecide_DomainMatchNeedsEmail(t *testing.T) {
	// A nil email wins over a domain mismatch: the not-found path is
	// checked first, so no redirect happens for unresolvable accounts.
	intent := signin.Decide(domain.LookupResult{Email: nil, Domain: "other.example.com"}, nil, "x", "https:", "example.com")
	_, ok := intent.(signin.Notify)
	assert.True(t, ok, "expected Notify, got %T", intent)
}
