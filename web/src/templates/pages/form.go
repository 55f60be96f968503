package pages

import (
	"github.com/nfrund/accountadate/internal/domain"
	"github.com/nfrund/accountadate/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Routes the form talks to.
const (
	SubmitPath  = "/"
	WidgetsPath = "/widgets"
)

// formSync queues text-change and submit requests on the form so the
// greeting slot is swapped by one response at a time, in request order.
const formSync = "closest form:queue all"

// Form renders the full form page for one render pass.
//
// Without JavaScript the form posts to SubmitPath and the whole page is
// rendered again. With htmx the submit and every text change only swap the
// greeting slot.
func Form(pass domain.Pass) g.Node {
	return h.Div(
		h.Class("card"),
		h.H1(h.Class("title"), g.Text(domain.FormTitle)),
		h.P(h.Class("description"), g.Text(domain.FormDescription)),
		h.Form(
			h.Method("post"),
			h.Action(SubmitPath),
			hx.Post(SubmitPath),
			hx.Target("#"+partials.GreetingSlotID),
			hx.Swap("outerHTML"),
			hx.Sync(formSync),
			textInput(domain.NameWidget, domain.NameLabel, pass.Entry.Name, "name", ""),
			textInput(domain.EmailWidget, domain.EmailLabel, pass.Entry.Email, "email", "email"),
			h.Button(h.Type("submit"), h.Class("button"), g.Text(domain.SubmitLabel)),
		),
		partials.Greeting(pass),
	)
}

// textInput is a labelled single-line input. Text changes are posted to
// WidgetsPath so the value is cached like any other widget edit.
func textInput(name, label, value, autocomplete, inputMode string) g.Node {
	return h.Div(
		h.Class("field"),
		h.Label(h.For(name), g.Text(label)),
		h.Input(
			h.Type("text"),
			h.ID(name),
			h.Name(name),
			h.Value(value),
			h.AutoComplete(autocomplete),
			g.If(inputMode != "", g.Attr("inputmode", inputMode)),
			hx.Post(WidgetsPath),
			hx.Trigger("change"),
			hx.Include("closest form"),
			hx.Target("#"+partials.GreetingSlotID),
			hx.Swap("outerHTML"),
			hx.Sync(formSync),
		),
	)
}
