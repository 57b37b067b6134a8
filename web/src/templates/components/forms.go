package components

import (
	"github.com/LukeCarrier/signin/internal/view/dto/signinview"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// formClass appends the hide marker when the form is not visible, so
// both forms are always present in the DOM and toggling is a class flip.
func formClass(base string, visible bool) gomponents.Node {
	if !visible {
		return Class(base + " hide")
	}
	return Class(base)
}

// UsernameForm is the first step: enter a username, intercepted by htmx
// and resolved against the domain lookup.
func UsernameForm(d signinview.SignInData) gomponents.Node {
	f := d.Controller.Username
	return Div(
		formClass("username_form", f.Visible),
		Form(
			Method("post"),
			// The action matters with JavaScript disabled; htmx
			// intercepts the submission otherwise.
			Action("/local/signin/username"),
			hx.Post("/local/signin/username"),
			hx.Target("#local-signin"),
			hx.Swap("outerHTML"),
			Label(For("id_username"), gomponents.Text(d.String("form_username_label"))),
			Input(
				Type("text"),
				ID("id_username"),
				Name("username"),
				Placeholder(d.String("form_username_placeholder")),
				Value(f.Input),
				gomponents.If(f.Autofocus, AutoFocus()),
			),
			Input(Type("hidden"), Name("returnurl"), Value(d.ReturnURL)),
			Div(Class("rememberme"),
				Label(
					Input(
						Type("checkbox"),
						ID("check_rememberme"),
						Name("rememberme"),
						Value("1"),
						gomponents.If(f.RememberMe, Checked()),
					),
					gomponents.Text(d.String("form_username_remusername_label")),
				),
			),
			Button(
				Type("submit"),
				ID("id_submitusername"),
				gomponents.If(!f.SubmitEnabled, Disabled()),
				gomponents.Text(d.String("form_username_button_label")),
			),
			Div(Class("forgot"),
				A(Href("/local/signin/forgot.php"), gomponents.Text(d.String("form_username_forgot_label"))),
			),
		),
	)
}

// PasswordForm is the second step. It posts natively to the
// authentication collaborator; only the change-user action goes back
// through htmx.
func PasswordForm(d signinview.SignInData) gomponents.Node {
	f := d.Controller.Password
	return Div(
		formClass("password_form", f.Visible),
		Form(
			Method("post"),
			Action(d.AuthSubmitURL),
			gomponents.If(d.AutoSubmit, gomponents.Attr("data-autosubmit", "true")),
			Input(Type("hidden"), Name("username"), Value(f.Username)),
			Input(Type("hidden"), Name("returnurl"), Value(d.ReturnURL)),
			Input(Type("hidden"), Name("rememberme"), Value(rememberValue(f.RememberMe))),
			Label(For("id_password"), gomponents.Text(d.String("form_password_label"))),
			Input(
				Type("password"),
				ID("id_password"),
				Name("password"),
				gomponents.If(f.Autofocus, AutoFocus()),
			),
			Button(
				Type("submit"),
				ID("id_submitpassword"),
				gomponents.If(!f.SubmitEnabled, Disabled()),
				gomponents.Text(d.String("form_password_button_label")),
			),
		),
		// Separate form so changing user still works without
		// JavaScript; forms cannot nest.
		Form(
			Class("changeuser"),
			Method("post"),
			Action("/local/signin/changeuser"),
			hx.Post("/local/signin/changeuser"),
			hx.Target("#local-signin"),
			hx.Swap("outerHTML"),
			Input(Type("hidden"), Name("username"), Value(f.Username)),
			Input(Type("hidden"), Name("returnurl"), Value(d.ReturnURL)),
			Input(Type("hidden"), Name("rememberme"), Value(rememberValue(f.RememberMe))),
			Button(
				Type("submit"),
				Class("linklike"),
				gomponents.Text(d.String("form_password_changeuser_label")),
			),
		),
	)
}

// rememberValue matches the original numeric coercion of the checkbox.
func rememberValue(remember bool) string {
	if remember {
		return "1"
	}
	return "0"
}
