package handlers

import "github.com/nfrund/accountadate/internal/domain"

// FormRequest is the payload of both a submit and a text-change event.
// Values are taken verbatim; missing fields bind as empty strings.
type FormRequest struct {
	Name  string `form:"user_name"`
	Email string `form:"user_email"`
}

// Entry converts the request into the widget values it carries.
func (r FormRequest) Entry() domain.Entry {
	return domain.Entry{Name: r.Name, Email: r.Email}
}
