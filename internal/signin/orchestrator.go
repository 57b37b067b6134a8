package signin

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/LukeCarrier/signin/internal/domain"
	"github.com/LukeCarrier/signin/internal/events"
)

// GuestUser is the reserved username that bypasses domain resolution.
// Matching is case-insensitive against the exact literal; surrounding
// whitespace is not normalized.
const GuestUser = "guest"

// Severity grades a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Message keys resolved through the string catalog.
const (
	KeyInvalidUser    = "invalid_user"
	KeyDuplicateField = "duplicate_field"
	KeyUserNotFound   = "form_username_not_found_valid"
)

// Intent is a decision the flow has made; the HTTP layer applies it.
type Intent interface {
	isIntent()
}

// SubmitPassword asks for the password form to be submitted directly
// with the given username populated. Guest accounts are domain-agnostic,
// so this skips the lookup entirely.
type SubmitPassword struct {
	Username string
}

// Redirect asks for a full browser navigation to another domain's
// sign-in page. Terminal for this page instance.
type Redirect struct {
	URL string
}

// RevealPassword asks for the flow to move to the password step with
// the username carried over.
type RevealPassword struct {
	Username string
}

// Notify asks for a user-facing alert and a return to the username step.
type Notify struct {
	Severity Severity
	Key      string
}

func (SubmitPassword) isIntent() {}
func (Redirect) isIntent()       {}
func (RevealPassword) isIntent() {}
func (Notify) isIntent()         {}

// IsGuest reports whether a username triggers the guest bypass.
func IsGuest(username string) bool {
	return strings.EqualFold(username, GuestUser)
}

// RedirectURL builds the cross-domain sign-in URL, preserving the
// original request scheme. scheme carries its trailing colon ("https:").
func RedirectURL(scheme, host, username string) string {
	return scheme + "//" + host + "/local/signin/index.php?username=" + url.QueryEscape(username)
}

// Decide is the pure decision function for a resolved (or failed)
// lookup. currentHost is the domain this page instance is served from.
//
// Transport failure and unrecognised remote failures both fail open:
// domain routing is an enhancement, not a gate, so sign-in falls back
// to the password step without domain verification.
func Decide(res domain.LookupResult, err error, username, scheme, currentHost string) Intent {
	if err != nil || res.Code == domain.CodeOther {
		return RevealPassword{Username: username}
	}

	switch res.Code {
	case domain.CodeInvalidParameter:
		return Notify{Severity: SeverityDanger, Key: KeyInvalidUser}
	case domain.CodeMultipleRecords:
		return Notify{Severity: SeverityDanger, Key: KeyDuplicateField}
	}

	if res.Email == nil {
		return Notify{Severity: SeverityDanger, Key: KeyUserNotFound}
	}
	if res.Domain != currentHost {
		return Redirect{URL: RedirectURL(scheme, res.Domain, username)}
	}
	return RevealPassword{Username: username}
}

// Orchestrator ties the controller, the resolver and the event recorder
// together. It is constructed once per server and shared across
// requests; per-request state lives in the Controller.
type Orchestrator struct {
	resolver domain.DomainResolver
	recorder *events.Recorder
}

// New creates an Orchestrator. recorder may be nil.
func New(resolver domain.DomainResolver, recorder *events.Recorder) *Orchestrator {
	return &Orchestrator{resolver: resolver, recorder: recorder}
}

// SubmitUsername handles a username-form submission: guest bypass, or
// carry the remember-me preference, resolve the domain, and decide.
//
// Exactly one lookup call is issued per submission; overlapping
// submissions are not coalesced, and nothing here blocks other requests
// while a lookup is in flight.
func (o *Orchestrator) SubmitUsername(ctx context.Context, ctrl *Controller, username, scheme, currentHost string) Intent {
	if IsGuest(username) {
		ctrl.Password.Username = username
		o.recorder.Record(ctx, events.TopicGuestBypass, events.GuestBypass{
			Username:   username,
			OccurredAt: time.Now().UTC(),
		})
		return SubmitPassword{Username: username}
	}

	ctrl.CarryRememberMe()

	res, err := o.resolver.Lookup(ctx, username)
	intent := Decide(res, err, username, scheme, currentHost)

	switch it := intent.(type) {
	case RevealPassword:
		if err != nil || res.Code == domain.CodeOther {
			o.recorder.Record(ctx, events.TopicLookupDegraded, events.LookupDegraded{
				Username:   username,
				Reason:     degradeReason(res, err),
				OccurredAt: time.Now().UTC(),
			})
		} else {
			o.recorder.Record(ctx, events.TopicLookupResolved, events.LookupResolved{
				Username:   username,
				Domain:     res.Domain,
				Email:      res.Email,
				OccurredAt: time.Now().UTC(),
			})
		}
	case Redirect:
		o.recorder.Record(ctx, events.TopicRedirectIssued, events.RedirectIssued{
			Username:   username,
			Domain:     res.Domain,
			URL:        it.URL,
			OccurredAt: time.Now().UTC(),
		})
	}

	return intent
}

func degradeReason(res domain.LookupResult, err error) string {
	if err != nil {
		return err.Error()
	}
	return "remote failure: " + res.Code.String()
}
