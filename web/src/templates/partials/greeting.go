package partials

import (
	"github.com/nfrund/accountadate/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// GreetingSlotID is the element htmx swaps after a submit or a text change.
const GreetingSlotID = "greeting"

// Greeting renders the greeting slot for a render pass. The slot is always
// present so htmx has a target; it only holds text when Submit was clicked.
func Greeting(pass domain.Pass) g.Node {
	msg, ok := pass.Greeting()
	return h.Div(
		h.ID(GreetingSlotID),
		g.Attr("aria-live", "polite"),
		g.If(ok, h.P(h.Class("greeting"), g.Text(msg))),
	)
}
