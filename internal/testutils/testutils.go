// Package testutils provides shared helpers for the package tests.
package testutils

import (
	"testing"

	"github.com/LukeCarrier/signin/internal/catalog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TestStrings is the English pack the test catalog serves. Message
// values are distinctive so assertions can match on them exactly.
var TestStrings = map[string]string{
	"invalid_user":                    "This username is invalid.",
	"duplicate_field":                 "More than one account matches this username.",
	"form_username_not_found_valid":   "We couldn't find an account for that username.",
	"form_username_label":             "Username",
	"form_username_placeholder":       "Your username",
	"form_username_button_label":      "Next",
	"form_username_remusername_label": "Remember my username",
	"form_username_forgot_label":      "Forgotten your username or password?",
	"form_password_label":             "Password",
	"form_password_button_label":      "Sign in",
	"form_password_changeuser_label":  "Sign in as a different user",
	"form_forgot_redirect_label":      "Recover your account",
}

// NewTestCatalog builds an in-memory string catalog with the full
// English pack.
func NewTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("lang/en", 0o755))

	content := "{"
	first := true
	for key, msg := range TestStrings {
		if !first {
			content += ","
		}
		first = false
		content += `"` + key + `":"` + msg + `"`
	}
	content += "}"
	require.NoError(t, afero.WriteFile(fs, "lang/en/signin.json", []byte(content), 0o644))

	c, err := catalog.New(fs, "lang", "en")
	require.NoError(t, err)
	return c
}
