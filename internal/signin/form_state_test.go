package signin_test

import (
	"testing"

	"github.com/LukeCarrier/signin/internal/signin"
	"github.com/stretchr/testify/assert"
)

func TestNewController_EmptyPage(t *testing.T) {
	c := signin.NewController("", "")

	assert.True(t, c.Username.Visible, "username form starts visible")
	assert.False(t, c.Password.Visible, "password form starts hidden without a username")
	assert.False(t, c.Username.SubmitEnabled, "empty username disables submit")
	assert.False(t, c.Password.SubmitEnabled, "empty password disables submit")
	assert.Equal(t, signin.FormUsername, c.VisibleForm())
}

func TestNewController_PrefilledUsername(t *testing.T) {
	// Arriving back from a cross-domain redirect the username is already
	// known, so the flow starts on the password step.
	c := signin.NewController("alice", "")

	assert.False(t, c.Username.Visible)
	assert.True(t, c.Password.Visible)
	assert.Equal(t, "alice", c.Password.Username)
	assert.True(t, c.Password.Autofocus)
	assert.Equal(t, signin.FormPassword, c.VisibleForm())
}

func TestOnInputChanged_Idempotent(t *testing.T) {
	c := signin.NewController("", "")

	c.Username.Input = "alice"
	for i := 0; i < 3; i++ {
		c.OnInputChanged(signin.FormUsername)
		assert.True(t, c.Username.SubmitEnabled, "repeated events must not flap")
	}

	c.Username.Input = ""
	for i := 0; i < 3; i++ {
		c.OnInputChanged(signin.FormUsername)
		assert.False(t, c.Username.SubmitEnabled)
	}
}

func TestOnInputChanged_PasswordForm(t *testing.T) {
	c := signin.NewController("alice", "")

	c.Password.Input = "hunter2"
	c.OnInputChanged(signin.FormPassword)
	assert.True(t, c.Password.SubmitEnabled)

	c.Password.Input = ""
	c.OnInputChanged(signin.FormPassword)
	assert.False(t, c.Password.SubmitEnabled)
}

func TestRevealPassword(t *testing.T) {
	c := signin.NewController("", "")
	c.Username.Input = "bob"

	c.RevealPassword("bob")

	assert.False(t, c.Username.Visible)
	assert.True(t, c.Password.Visible)
	assert.Equal(t, "bob", c.Password.Username)
	assert.True(t, c.Password.Autofocus, "focus moves to the password input")
	assert.False(t, c.Username.Autofocus)
}

func TestRevealUsername_Inverse(t *testing.T) {
	c := signin.NewController("bob", "")
	assert.Equal(t, signin.FormPassword, c.VisibleForm())

	c.RevealUsername()

	assert.True(t, c.Username.Visible)
	assert.False(t, c.Password.Visible)
	assert.Equal(t, signin.FormUsername, c.VisibleForm())
}

func TestCarryRememberMe(t *testing.T) {
	c := signin.NewController("", "")
	c.Username.RememberMe = true

	c.CarryRememberMe()
	assert.True(t, c.Password.RememberMe)

	c.Username.RememberMe = false
	c.CarryRememberMe()
	assert.False(t, c.Password.RememberMe)
}

func TestExactlyOneFormVisible(t *testing.T) {
	c := signin.NewController("", "")
	assert.NotEqual(t, c.Username.Visible, c.Password.Visible)

	c.RevealPassword("alice")
	assert.NotEqual(t, c.Username.Visible, c.Password.Visible)

	c.RevealUsername()
	assert.NotEqual(t, c.Username.Visible, c.Password.Visible)
}
