package notification

import (
	"context"

	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const emailCharset = "UTF-8"

type sesClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesEmailSender struct {
	client sesClient
	source string
}

// NewSESEmailSender sends plain-text e-mail through Amazon SES from the verified source address
func NewSESEmailSender(client *ses.Client, source string) service.EmailSender {
	return &sesEmailSender{client: client, source: source}
}

func (s *sesEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.source),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String(emailCharset)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String(emailCharset)},
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
