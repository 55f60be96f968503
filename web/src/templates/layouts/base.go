package layouts

import (
	"github.com/nfrund/accountadate/internal/domain"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// htmxSrc is loaded from a CDN; the form posts normally when it is missing.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML5 document shell.
func Base(content g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    domain.FormTitle,
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
			h.Script(h.Src(htmxSrc), h.Defer()),
		},
		Body: []g.Node{
			h.Main(
				h.Class("container"),
				content,
			),
		},
	})
}
