package components

import (
	"github.com/LukeCarrier/signin/internal/view"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Alert renders the single visible notification. A nil notification
// renders nothing, leaving the errors region empty.
func Alert(n *view.Notification) gomponents.Node {
	if n == nil {
		return nil
	}
	return Div(
		Class("alert alert-"+n.Severity+" nouser"),
		Role("alert"),
		gomponents.Text(n.Message),
	)
}
