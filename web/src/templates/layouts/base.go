package layouts

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Sign in"
	}
	return "Sign in"
}

// Page wraps page content in the HTML document shell: htmx, the
// submit-enablement listener, and the auto-submit hook for the guest
// bypass.
func Page(title string, content gomponents.Node) gomponents.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(gomponents.Text(CalculateTitle(title))),
				Link(Rel("stylesheet"), Href("/static/signin.css")),
				Script(Src("https://unpkg.com/htmx.org@1.9.12"), Defer()),
			),
			Body(
				Main(content),
				// Mirrors the server-side submit enablement on every
				// keystroke, and fires the direct password submission
				// when a form is flagged for it. The flag arrives both
				// on full page loads and inside htmx swaps, so the
				// hook listens for both.
				Script(gomponents.Raw(`
document.addEventListener('input', function (e) {
	if (e.target.type === 'checkbox') return;
	var form = e.target.closest('form');
	if (!form) return;
	var submit = form.querySelector('button[type=submit]');
	if (submit) submit.disabled = e.target.value === '';
});
function submitFlagged() {
	var form = document.querySelector('form[data-autosubmit]');
	if (form) form.submit();
}
document.addEventListener('DOMContentLoaded', submitFlagged);
document.addEventListener('htmx:afterSwap', submitFlagged);
`)),
			),
		),
	)
}
