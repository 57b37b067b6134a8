package view

import (
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName     = "signin-session"
	flashKeyNotification = "notification"
	flashKeyUsername     = "form_username"
)

// Notification is a user-facing alert shown in the errors region.
// At most one is visible at a time; setting a new one dismisses the
// previous entry.
type Notification struct {
	Severity string
	Message  string
}

// SetNotification replaces the currently pending notification.
func SetNotification(c echo.Context, severity, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.Flashes(flashKeyNotification) // Drain whatever was pending.
	sess.AddFlash(severity+"|"+message, flashKeyNotification)
	_ = sess.Save(c.Request(), c.Response())
}

// GetNotification retrieves and clears the pending notification, if any.
func GetNotification(c echo.Context) (*Notification, bool) {
	sess, _ := session.Get(flashSessionName, c)
	flashes := sess.Flashes(flashKeyNotification)
	if len(flashes) == 0 {
		return nil, false
	}
	_ = sess.Save(c.Request(), c.Response())

	raw, ok := flashes[len(flashes)-1].(string)
	if !ok {
		return nil, false
	}
	severity, message, found := strings.Cut(raw, "|")
	if !found {
		return &Notification{Severity: "info", Message: raw}, true
	}
	return &Notification{Severity: severity, Message: message}, true
}

// SetNotificationAndUsername stores a notification and a preserved
// username with a single session write. Sessions emit one cookie per
// Save, and a browser only keeps the last one, so anything staged
// across multiple Saves within a request risks being dropped.
func SetNotificationAndUsername(c echo.Context, severity, message, username string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.Flashes(flashKeyNotification)
	sess.AddFlash(severity+"|"+message, flashKeyNotification)
	sess.Flashes(flashKeyUsername)
	sess.AddFlash(username, flashKeyUsername)
	_ = sess.Save(c.Request(), c.Response())
}

// DismissNotification drops any pending notification without showing it.
func DismissNotification(c echo.Context) {
	sess, _ := session.Get(flashSessionName, c)
	if len(sess.Flashes(flashKeyNotification)) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
}

// SetFormUsername preserves a submitted username for the next render.
func SetFormUsername(c echo.Context, username string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.Flashes(flashKeyUsername)
	sess.AddFlash(username, flashKeyUsername)
	_ = sess.Save(c.Request(), c.Response())
}

// GetFormUsername retrieves and clears a preserved username.
func GetFormUsername(c echo.Context) string {
	sess, _ := session.Get(flashSessionName, c)
	flashes := sess.Flashes(flashKeyUsername)
	if len(flashes) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())
	if val, ok := flashes[len(flashes)-1].(string); ok {
		return val
	}
	return ""
}
