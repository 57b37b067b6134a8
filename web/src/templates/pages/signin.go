package pages

import (
	"github.com/LukeCarrier/signin/internal/view/dto/signinview"
	"github.com/LukeCarrier/signin/web/src/templates/components"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SignIn renders the sign-in container with both forms. The same
// component serves the full page and every htmx swap, so the container
// is always replaced wholesale and state never leaks between renders.
func SignIn(d signinview.SignInData) gomponents.Node {
	return Div(
		ID("local-signin"),
		Div(Class("errors"), components.Alert(d.Alert)),
		components.UsernameForm(d),
		components.PasswordForm(d),
	)
}

// Forgot is a stub pointing at the authentication collaborator's
// password recovery.
func Forgot(d signinview.SignInData) gomponents.Node {
	return Div(
		Class("forgot_password"),
		H1(gomponents.Text(d.String("form_username_forgot_label"))),
		P(
			A(Href(d.AuthSubmitURL), gomponents.Text(d.String("form_forgot_redirect_label"))),
		),
	)
}
