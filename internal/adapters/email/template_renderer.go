package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"eventticketing/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Each receipt kind is three files under templates/: <name>_subject.txt,
// <name>.txt and <name>.html.
var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

type templateRenderer struct{}

// NewTemplateRenderer returns a renderer over the embedded receipt templates.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{}
}

// Render fills in the receipt called templateName, e.g. "withdrawal_receipt".
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	html := htmlTemplates.Lookup(templateName + ".html")
	text := textTemplates.Lookup(templateName + ".txt")
	subj := textTemplates.Lookup(templateName + "_subject.txt")
	if html == nil || text == nil || subj == nil {
		return "", "", "", fmt.Errorf("email template %q: %w", templateName, domain.ErrNotFound)
	}

	var buf bytes.Buffer
	if err := subj.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := html.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := text.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return subject, htmlBody, buf.String(), nil
}
