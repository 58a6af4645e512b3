package email

// Template names an embedded email template.
type Template string

const (
	// TemplateWelcome is templates/welcome.html.
	TemplateWelcome Template = "welcome"
)

func (t Template) file() string {
	return string(t) + ".html"
}
