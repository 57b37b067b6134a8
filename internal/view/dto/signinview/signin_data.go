package signinview

import (
	"github.com/LukeCarrier/signin/internal/signin"
	"github.com/LukeCarrier/signin/internal/view"
)

// SignInData is the View Model (DTO) for the sign-in page and its htmx
// partial. The controller carries form visibility and enablement; the
// strings map carries the resolved labels for the viewer's locale.
type SignInData struct {
	Controller *signin.Controller
	// ReturnURL is passed through opaquely to the authentication step.
	ReturnURL string
	// AuthSubmitURL is where the password form posts its credentials.
	AuthSubmitURL string
	// Alert is the single visible notification, if any.
	Alert *view.Notification
	// AutoSubmit marks the password form for immediate submission
	// (guest bypass).
	AutoSubmit bool
	// Strings maps catalog keys to localized labels.
	Strings map[string]string
}

// String returns the localized label for key, or a visible placeholder
// when the handler didn't resolve it.
func (d SignInData) String(key string) string {
	if msg, ok := d.Strings[key]; ok {
		return msg
	}
	return "[[" + key + "]]"
}
