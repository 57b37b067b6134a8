// Package signin holds the sign-in flow's decision logic: the two-form
// state model and the state machine that turns lookup outcomes into
// intents. Nothing here performs I/O; the HTTP layer applies the
// decisions.
package signin

// FormID names one of the two logical forms.
type FormID int

const (
	// FormUsername is the first step's form.
	FormUsername FormID = iota
	// FormPassword is the second step's form.
	FormPassword
)

// Form models the state of one logical form: its bound input value,
// whether it is shown, and whether its submit control is enabled.
type Form struct {
	// Input is the current value of the form's bound input field.
	Input string
	// Username mirrors the submitted username into the password form's
	// hidden field. Unused on the username form.
	Username string
	// RememberMe is the persistence preference checkbox.
	RememberMe bool
	// Visible reports whether the form's container is shown.
	Visible bool
	// SubmitEnabled reports whether the submit control is enabled.
	SubmitEnabled bool
	// Autofocus marks the form's input as the focus target.
	Autofocus bool
}

// Controller owns the two forms and the transitions between them.
// Each page instance owns its own Controller; there is no shared state.
type Controller struct {
	Username Form
	Password Form
}

// NewController builds the controller for a fresh page load, seeding
// submit enablement from any pre-filled values. A pre-filled username
// (e.g. arriving from a cross-domain redirect) starts the flow on the
// password step.
func NewController(username, password string) *Controller {
	c := &Controller{
		Username: Form{Input: username, Visible: true, Autofocus: true},
		Password: Form{Input: password},
	}
	c.InitializeVisibility()
	c.OnInputChanged(FormUsername)
	c.OnInputChanged(FormPassword)
	return c
}

// InitializeVisibility puts the forms into their startup state: the
// password form is hidden while no username is known, and shown (with
// the username carried over) when one already is.
func (c *Controller) InitializeVisibility() {
	if c.Username.Input == "" {
		c.Password.Visible = false
		c.Username.SubmitEnabled = false
		return
	}
	c.RevealPassword(c.Username.Input)
}

// OnInputChanged re-derives the submit control's enabled flag for the
// given form. It is a pure function of the current input value and safe
// to call any number of times.
func (c *Controller) OnInputChanged(form FormID) {
	switch form {
	case FormUsername:
		c.Username.SubmitEnabled = c.Username.Input != ""
	case FormPassword:
		c.Password.SubmitEnabled = c.Password.Input != ""
	}
}

// RevealPassword copies the username into the password form's mirrored
// field, hides the username form, shows the password form, and moves
// focus to the password input.
func (c *Controller) RevealPassword(username string) {
	c.Password.Username = username
	c.Username.Visible = false
	c.Username.Autofocus = false
	c.Password.Visible = true
	c.Password.Autofocus = true
}

// RevealUsername is the inverse of RevealPassword, triggered by the
// explicit "change user" action.
func (c *Controller) RevealUsername() {
	c.Password.Visible = false
	c.Password.Autofocus = false
	c.Username.Visible = true
	c.Username.Autofocus = true
}

// CarryRememberMe copies the remember-me preference from the username
// form into the password form so it survives the step transition.
func (c *Controller) CarryRememberMe() {
	c.Password.RememberMe = c.Username.RememberMe
}

// VisibleForm reports which form is currently shown.
func (c *Controller) VisibleForm() FormID {
	if c.Password.Visible {
		return FormPassword
	}
	return FormUsername
}
