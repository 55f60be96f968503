package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/accountadate/internal/domain"
	"github.com/nfrund/accountadate/internal/middleware"
	"github.com/nfrund/accountadate/internal/rendering"
	"github.com/nfrund/accountadate/internal/view"
	"github.com/nfrund/accountadate/web/src/templates/layouts"
	"github.com/nfrund/accountadate/web/src/templates/pages"
	"github.com/nfrund/accountadate/web/src/templates/partials"
)

// FormHandler serves the single form page. Every request is one render pass:
// a page load, a text change or a submit click.
type FormHandler struct {
	renderer rendering.Renderer
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(renderer rendering.Renderer) *FormHandler {
	return &FormHandler{renderer: renderer}
}

// FormGet renders the page with the cached widget values and no greeting.
func (h *FormHandler) FormGet(c echo.Context) error {
	pass := domain.Pass{Entry: view.LoadWidgets(c)}
	return h.renderPage(c, pass)
}

// FormPost handles a click on Submit: the posted values become the current
// widget values and the greeting is shown for this pass only.
func (h *FormHandler) FormPost(c echo.Context) error {
	pass, err := h.bindPass(c, true)
	if err != nil {
		return err
	}
	if isHTMX(c) {
		return h.renderer.RenderPage(c, http.StatusOK, partials.Greeting(pass))
	}
	return h.renderPage(c, pass)
}

// WidgetsPost handles a text-change event. The new values are cached and the
// greeting slot is cleared, since the button was not clicked in this pass.
func (h *FormHandler) WidgetsPost(c echo.Context) error {
	pass, err := h.bindPass(c, false)
	if err != nil {
		return err
	}
	if isHTMX(c) {
		return h.renderer.RenderPage(c, http.StatusOK, partials.Greeting(pass))
	}
	return h.renderPage(c, pass)
}

func (h *FormHandler) bindPass(c echo.Context, clicked bool) (domain.Pass, error) {
	var req FormRequest
	if err := c.Bind(&req); err != nil {
		return domain.Pass{}, err
	}
	entry := req.Entry()

	// Caching failures never block the render pass.
	if err := view.SaveWidgets(c, entry); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to cache widget values", "error", err)
	}
	return domain.Pass{Entry: entry, Clicked: clicked}, nil
}

func (h *FormHandler) renderPage(c echo.Context, pass domain.Pass) error {
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(pages.Form(pass)))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
