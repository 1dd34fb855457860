// Package email renders and delivers outbound emails.
package email

import (
	"bytes"
	"embed"
	"html"
	htmltemplate "html/template"
	texttemplate "text/template"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/service"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const defaultSenderName = "A BuyHive user"

type shareView struct {
	SenderName string
	CartName   string
	Message    string
	Items      []shareItemView
}

type shareItemView struct {
	Name  string
	Price string
	URL   string
	Image string
	Notes string
}

// Renderer turns domain events into email messages.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "templates/share_cart.html.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse html template")
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "templates/share_cart.txt.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse text template")
	}

	return &Renderer{html: htmlTmpl, text: textTmpl}, nil
}

// RenderCartShared builds the share email for a cart snapshot.
func (r *Renderer) RenderCartShared(event *service.CartSharedEvent) (*service.EmailMessage, error) {
	if event.Snapshot.Cart == nil {
		return nil, errors.New("cart snapshot is empty")
	}

	view := newShareView(event)

	var htmlBody bytes.Buffer
	if err := r.html.Execute(&htmlBody, view); err != nil {
		return nil, errors.Wrap(err, "failed to render html body")
	}

	var textBody bytes.Buffer
	if err := r.text.Execute(&textBody, view); err != nil {
		return nil, errors.Wrap(err, "failed to render text body")
	}

	return &service.EmailMessage{
		ToEmail:  event.RecipientEmail,
		Subject:  "Your Shared Cart: " + view.CartName,
		HTMLBody: htmlBody.String(),
		TextBody: textBody.String(),
	}, nil
}

// Stored names and notes are HTML-escaped at write time; the view holds plain text
// and the html template escapes it again on output.
func newShareView(event *service.CartSharedEvent) shareView {
	sender := event.SenderName
	if sender == "" {
		sender = event.SenderEmail
	}
	if sender == "" {
		sender = defaultSenderName
	}

	view := shareView{
		SenderName: html.UnescapeString(sender),
		CartName:   html.UnescapeString(event.Snapshot.Cart.CartName),
		Message:    html.UnescapeString(event.Message),
		Items:      make([]shareItemView, 0, len(event.Snapshot.Items)),
	}
	for _, item := range event.Snapshot.Items {
		view.Items = append(view.Items, newShareItemView(item))
	}

	return view
}

func newShareItemView(item *entity.Item) shareItemView {
	return shareItemView{
		Name:  html.UnescapeString(item.Name),
		Price: item.Price,
		URL:   deref(item.URL),
		Image: deref(item.Image),
		Notes: html.UnescapeString(deref(item.Notes)),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
