package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/accountadate/internal/domain"
)

const widgetSessionName = "widget-state"

// LoadWidgets returns the cached text of the form widgets for this browser
// session. Widgets that were never edited come back as empty strings.
func LoadWidgets(c echo.Context) domain.Entry {
	// A cookie that fails to decode still yields a fresh, empty session.
	sess, _ := session.Get(widgetSessionName, c)
	if sess == nil {
		return domain.Entry{}
	}
	return domain.Entry{
		Name:  stringValue(sess.Values[domain.NameWidget]),
		Email: stringValue(sess.Values[domain.EmailWidget]),
	}
}

// SaveWidgets caches the widget text so the next render pass shows it.
func SaveWidgets(c echo.Context, entry domain.Entry) error {
	sess, err := session.Get(widgetSessionName, c)
	if sess == nil {
		return fmt.Errorf("%w: %v", domain.ErrWidgetState, err)
	}
	sess.Values[domain.NameWidget] = entry.Name
	sess.Values[domain.EmailWidget] = entry.Email
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWidgetState, err)
	}
	return nil
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}
