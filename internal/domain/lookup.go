package domain

import "context"

// ErrorCode classifies the structured failures the domain lookup service
// can report. Anything the remote side reports that we don't recognise
// collapses into CodeOther, which callers treat as "service unavailable".
type ErrorCode int

const (
	// CodeNone means the lookup succeeded.
	CodeNone ErrorCode = iota
	// CodeInvalidParameter means the remote side rejected the username.
	CodeInvalidParameter
	// CodeMultipleRecords means more than one account matched the username.
	CodeMultipleRecords
	// CodeOther covers every unrecognised remote failure.
	CodeOther
)

// Remote error identifiers as they appear on the wire.
const (
	RemoteErrInvalidParameter = "invalidparameter"
	RemoteErrMultipleRecords  = "multiplerecordsfound"
)

// ErrorCodeFromRemote maps a remote error identifier onto our taxonomy.
func ErrorCodeFromRemote(code string) ErrorCode {
	switch code {
	case RemoteErrInvalidParameter:
		return CodeInvalidParameter
	case RemoteErrMultipleRecords:
		return CodeMultipleRecords
	default:
		return CodeOther
	}
}

func (c ErrorCode) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeInvalidParameter:
		return RemoteErrInvalidParameter
	case CodeMultipleRecords:
		return RemoteErrMultipleRecords
	default:
		return "other"
	}
}

// LookupResult is the outcome of a single domain lookup. It is a tagged
// union: when Code is CodeNone the Email/Domain pair is meaningful, and a
// nil Email means the account has no resolvable identity on any domain.
// Structured remote failures are values here, not Go errors — only
// transport-level failure surfaces as an error from the resolver.
type LookupResult struct {
	Email  *string
	Domain string
	Code   ErrorCode
}

// Failed reports whether the remote side returned a structured failure.
func (r LookupResult) Failed() bool {
	return r.Code != CodeNone
}

// DomainResolver determines which network domain owns a username.
// Implementations issue exactly one remote call per invocation and never
// retry; transport failure is returned as an error.
type DomainResolver interface {
	Lookup(ctx context.Context, username string) (LookupResult, error)
}
