// Package email sends transactional mail over SMTP. Templates are
// compiled into the binary so the worker has no runtime file
// dependencies.
package email

import "context"

type Provider interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
	SendTemplate(ctx context.Context, to []string, subject, templateName string, data any) error
}

// NoOp is wired in when SMTP is not configured, so reminder and offer
// flows stay exercisable in development.
type NoOp struct{}

func (NoOp) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	return nil
}

func (NoOp) SendTemplate(ctx context.Context, to []string, subject, templateName string, data any) error {
	return nil
}
