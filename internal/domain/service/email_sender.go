package service

import "context"

// EmailMessage is a rendered outbound email
type EmailMessage struct {
	ToEmail  string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailSender delivers rendered emails. Delivery is fire-and-forget for callers.
type EmailSender interface {
	Send(ctx context.Context, message *EmailMessage) error
}

// EmailRenderer turns a share event into an email
type EmailRenderer interface {
	RenderCartShared(event *CartSharedEvent) (*EmailMessage, error)
}
