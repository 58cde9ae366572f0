package notification

import (
	"context"

	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsSMSSender struct {
	client   snsPublisher
	senderID string
}

// NewSNSSMSSender sends transactional text messages through Amazon SNS
func NewSNSSMSSender(client *sns.Client, senderID string) service.SMSSender {
	return &snsSMSSender{client: client, senderID: senderID}
}

func (s *snsSMSSender) SendSMS(ctx context.Context, phoneNumber, message string) error {
	attributes := map[string]types.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    aws.String("String"),
			StringValue: aws.String("Transactional"),
		},
	}
	if s.senderID != "" {
		attributes["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.senderID),
		}
	}

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       aws.String(phoneNumber),
		Message:           aws.String(message),
		MessageAttributes: attributes,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish sms")
	}

	return nil
}
