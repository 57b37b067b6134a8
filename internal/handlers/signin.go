package handlers

import (
	"net"
	"net/http"

	"github.com/LukeCarrier/signin/internal/catalog"
	"github.com/LukeCarrier/signin/internal/rendering"
	"github.com/LukeCarrier/signin/internal/signin"
	"github.com/LukeCarrier/signin/internal/view"
	"github.com/LukeCarrier/signin/internal/view/dto/signinview"
	"github.com/LukeCarrier/signin/web/src/templates/layouts"
	"github.com/LukeCarrier/signin/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// labelKeys are the catalog keys every render of the sign-in page needs.
var labelKeys = []string{
	"form_username_label",
	"form_username_placeholder",
	"form_username_button_label",
	"form_username_remusername_label",
	"form_username_forgot_label",
	"form_password_label",
	"form_password_button_label",
	"form_password_changeuser_label",
	"form_forgot_redirect_label",
}

// SignInHandler drives the two-step sign-in flow over HTTP. The
// orchestrator makes the decisions; this layer applies them as htmx
// swaps, redirects, and alerts.
type SignInHandler struct {
	orchestrator  *signin.Orchestrator
	catalog       *catalog.Catalog
	renderer      rendering.Renderer
	authSubmitURL string
}

// NewSignInHandler creates a new SignInHandler.
func NewSignInHandler(orchestrator *signin.Orchestrator, cat *catalog.Catalog, renderer rendering.Renderer, authSubmitURL string) *SignInHandler {
	return &SignInHandler{
		orchestrator:  orchestrator,
		catalog:       cat,
		renderer:      renderer,
		authSubmitURL: authSubmitURL,
	}
}

// IndexGet renders the sign-in page. An optional username query
// parameter (set by cross-domain redirects) pre-seeds the password step.
func (h *SignInHandler) IndexGet(c echo.Context) error {
	username := c.QueryParam("username")
	preserved := view.GetFormUsername(c)
	if username == "" {
		username = preserved
	}

	ctrl := signin.NewController(username, "")
	alert, pending := view.GetNotification(c)
	if pending {
		// A pending alert means the flow bounced back to the username
		// step; keep the typed value editable instead of advancing.
		ctrl = signin.NewController("", "")
		ctrl.Username.Input = username
		ctrl.OnInputChanged(signin.FormUsername)
	}

	data := h.pageData(c, ctrl, c.QueryParam("returnurl"), alert, false)
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Page("Sign in", pages.SignIn(data)))
}

// UsernamePost intercepts the username form's submission and applies
// the orchestrator's decision.
func (h *SignInHandler) UsernamePost(c echo.Context) error {
	var req UsernameSubmission
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed submission")
	}
	if err := c.Validate(&req); err != nil {
		// The submit control is disabled while the input is empty, so
		// this only happens outside the normal flow. Re-render as-is.
		return h.renderStep(c, signin.NewController("", ""), req.ReturnURL, nil, false)
	}

	ctrl := signin.NewController("", "")
	ctrl.Username.Input = req.Username
	ctrl.Username.RememberMe = req.RememberMe == "1"
	ctrl.OnInputChanged(signin.FormUsername)

	intent := h.orchestrator.SubmitUsername(c.Request().Context(), ctrl, req.Username, requestScheme(c), requestHost(c))

	switch it := intent.(type) {
	case signin.SubmitPassword:
		ctrl.RevealPassword(it.Username)
		return h.renderStep(c, ctrl, req.ReturnURL, nil, true)

	case signin.Redirect:
		if isHTMX(c) {
			c.Response().Header().Set("HX-Redirect", it.URL)
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, it.URL)

	case signin.RevealPassword:
		view.DismissNotification(c)
		ctrl.RevealPassword(it.Username)
		return h.renderStep(c, ctrl, req.ReturnURL, nil, false)

	case signin.Notify:
		message := h.catalog.Get(acceptLanguage(c), it.Key)
		if !isHTMX(c) {
			// Plain form posts go through post/redirect/get; the alert
			// and the typed username survive in the session.
			view.SetNotificationAndUsername(c, string(it.Severity), message, req.Username)
			return c.Redirect(http.StatusSeeOther, "/local/signin/index.php")
		}
		alert := &view.Notification{Severity: string(it.Severity), Message: message}
		return h.renderStep(c, ctrl, req.ReturnURL, alert, false)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "unhandled sign-in intent")
}

// ChangeUserPost flips the flow back to the username step.
func (h *SignInHandler) ChangeUserPost(c echo.Context) error {
	var req ChangeUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed submission")
	}

	ctrl := signin.NewController(req.Username, "")
	ctrl.Username.RememberMe = req.RememberMe == "1"
	ctrl.RevealUsername()

	return h.renderStep(c, ctrl, req.ReturnURL, nil, false)
}

// ForgotGet renders the password recovery stub.
func (h *SignInHandler) ForgotGet(c echo.Context) error {
	data := h.pageData(c, signin.NewController("", ""), "", nil, false)
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Page("Forgot password", pages.Forgot(data)))
}

// renderStep renders the sign-in container: as a bare fragment for htmx
// swaps, wrapped in the document shell otherwise.
func (h *SignInHandler) renderStep(c echo.Context, ctrl *signin.Controller, returnURL string, alert *view.Notification, autoSubmit bool) error {
	data := h.pageData(c, ctrl, returnURL, alert, autoSubmit)
	component := pages.SignIn(data)

	if isHTMX(c) {
		body, err := h.renderer.RenderComponent(c.Request().Context(), component)
		if err != nil {
			return err
		}
		return c.HTMLBlob(http.StatusOK, body)
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Page("Sign in", component))
}

func (h *SignInHandler) pageData(c echo.Context, ctrl *signin.Controller, returnURL string, alert *view.Notification, autoSubmit bool) signinview.SignInData {
	strings := make(map[string]string, len(labelKeys))
	locale := acceptLanguage(c)
	for _, key := range labelKeys {
		strings[key] = h.catalog.Get(locale, key)
	}

	return signinview.SignInData{
		Controller:    ctrl,
		ReturnURL:     returnURL,
		AuthSubmitURL: h.authSubmitURL,
		Alert:         alert,
		AutoSubmit:    autoSubmit,
		Strings:       strings,
	}
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func acceptLanguage(c echo.Context) string {
	return c.Request().Header.Get("Accept-Language")
}

// requestScheme returns the request scheme with its trailing colon, the
// way it appears in a browser's location.protocol.
func requestScheme(c echo.Context) string {
	return c.Scheme() + ":"
}

// requestHost returns the request's hostname without any port, matching
// what the lookup service reports as a domain.
func requestHost(c echo.Context) string {
	host := c.Request().Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
