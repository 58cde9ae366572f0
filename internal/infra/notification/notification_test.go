package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"foodmarket/config"
	"foodmarket/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticastClient struct {
	batches [][]string
	failAt  int
	err     error
}

func (f *fakeMulticastClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	return "projects/test/messages/" + message.Token, nil
}

func (f *fakeMulticastClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.batches = append(f.batches, message.Tokens)
	if f.err != nil {
		return nil, f.err
	}

	response := &messaging.BatchResponse{}
	for idx := range message.Tokens {
		if f.failAt >= 0 && idx == f.failAt {
			response.FailureCount++
			response.Responses = append(response.Responses, &messaging.SendResponse{Error: errors.New("quota exceeded")})

			continue
		}
		response.SuccessCount++
		response.Responses = append(response.Responses, &messaging.SendResponse{Success: true})
	}

	return response, nil
}

func makeTokens(n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	return tokens
}

func TestFirebaseService_SendBatchNotification_Chunks(t *testing.T) {
	client := &fakeMulticastClient{failAt: 0}
	svc := &firebaseService{client: client}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), makeTokens(1203), "Order ready", "Pick it up", nil)
	require.NoError(t, err)

	require.Len(t, client.batches, 3)
	assert.Len(t, client.batches[0], 500)
	assert.Len(t, client.batches[2], 203)
	assert.Equal(t, 1200, success)
	assert.Equal(t, 3, failure)
	assert.Empty(t, invalid)
}

func TestFirebaseService_SendBatchNotification_NoTokens(t *testing.T) {
	client := &fakeMulticastClient{failAt: -1}
	svc := &firebaseService{client: client}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
	assert.Empty(t, client.batches)
}

func TestFirebaseService_SendErrors(t *testing.T) {
	svc := &firebaseService{client: &fakeMulticastClient{err: errors.New("unavailable")}}

	_, _, _, err := svc.SendBatchNotification(context.Background(), makeTokens(2), "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send multicast notification")

	err = svc.SendSingleNotification(context.Background(), "token", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send notification")
}

type fakeSNS struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}

	return &sns.PublishOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSNSSMSSender_SendSMS(t *testing.T) {
	client := &fakeSNS{}
	sender := &snsSMSSender{client: client, senderID: "FOODMKT"}

	require.NoError(t, sender.SendSMS(context.Background(), "+15551234567", "Your order is ready"))

	assert.Equal(t, "+15551234567", aws.ToString(client.input.PhoneNumber))
	assert.Equal(t, "Your order is ready", aws.ToString(client.input.Message))
	assert.Equal(t, "FOODMKT", aws.ToString(client.input.MessageAttributes["AWS.SNS.SMS.SenderID"].StringValue))
	assert.Equal(t, "Transactional", aws.ToString(client.input.MessageAttributes["AWS.SNS.SMS.SMSType"].StringValue))
}

func TestSNSSMSSender_WithoutSenderIDAndError(t *testing.T) {
	client := &fakeSNS{err: errors.New("throttled")}
	sender := &snsSMSSender{client: client}

	err := sender.SendSMS(context.Background(), "+15551234567", "hi")
	require.Error(t, err)
	assert.NotContains(t, client.input.MessageAttributes, "AWS.SNS.SMS.SenderID")
}

type fakeSES struct {
	input *ses.SendEmailInput
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params

	return &ses.SendEmailOutput{MessageId: aws.String("email-1")}, nil
}

func TestSESEmailSender_SendEmail(t *testing.T) {
	client := &fakeSES{}
	sender := &sesEmailSender{client: client, source: "noreply@foodmarket.test"}

	require.NoError(t, sender.SendEmail(context.Background(), "jane@example.com", "Order update", "Your order was accepted"))

	assert.Equal(t, "noreply@foodmarket.test", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"jane@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Order update", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "Your order was accepted", aws.ToString(client.input.Message.Body.Text.Data))
}

func TestProviders_FallBackToLogOnly(t *testing.T) {
	params := Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	push, err := NewPushSender(params)
	require.NoError(t, err)
	assert.IsType(t, &logOnlySender{}, push)

	success, failure, invalid, err := push.SendBatchNotification(context.Background(), makeTokens(3), "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)

	sms, err := NewSMSSender(params)
	require.NoError(t, err)
	assert.NoError(t, sms.SendSMS(context.Background(), "+15550000000", "hi"))

	email, err := NewEmailSender(params)
	require.NoError(t, err)
	assert.NoError(t, email.SendEmail(context.Background(), "a@b.c", "s", "b"))
}
