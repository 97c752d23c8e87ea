// Package mail sends outbound notification email. Delivery goes through
// Amazon SES when a sender address is configured; otherwise messages are
// written to the log so development environments need no AWS credentials.
package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Mailer delivers a single plain-text message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SESMailer sends email through Amazon SES v2.
type SESMailer struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
}

// NewSESMailer creates an SES-backed mailer for the given region and sender.
func NewSESMailer(ctx context.Context, region, fromEmail, fromName string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESMailer{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// Send delivers the message via SES.
func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	from := m.fromEmail
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)
	}

	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send to %s: %w", to, err)
	}
	return nil
}

// ConsoleMailer writes messages to the log instead of sending them.
type ConsoleMailer struct{}

// Send logs the message.
func (ConsoleMailer) Send(_ context.Context, to, subject, body string) error {
	log.Printf("mail (console): to=%s subject=%q\n%s", to, subject, body)
	return nil
}
