package domain

// Static copy shown on every render of the form page.
const (
	FormTitle       = "AccountaDate"
	FormDescription = "Welcome to the AccountaDate app! This app allows users to connect and manage their dating experience."

	NameLabel   = "Enter your name"
	EmailLabel  = "Enter your email"
	SubmitLabel = "Submit"
)

// Widget keys. They double as the HTML form field names.
const (
	NameWidget  = "user_name"
	EmailWidget = "user_email"
)

// Entry holds the current text of the two input widgets.
// Both values are accepted verbatim, including the empty string.
type Entry struct {
	Name  string
	Email string
}

// Greeting interpolates the entry into the message shown after a submit.
func Greeting(e Entry) string {
	return "Hello " + e.Name + ", your email is " + e.Email + "."
}

// Pass describes one render of the form: the widget values it was rendered
// with and whether the Submit button was clicked during it.
type Pass struct {
	Entry   Entry
	Clicked bool
}

// Greeting returns the message for this pass. The second value is false when
// the button was not clicked, in which case nothing should be displayed.
func (p Pass) Greeting() (string, bool) {
	if !p.Clicked {
		return "", false
	}
	return Greeting(p.Entry), true
}
