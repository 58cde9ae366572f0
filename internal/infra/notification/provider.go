package notification

import (
	"context"
	"log/slog"

	"foodmarket/config"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/fx"
)

// Params holds dependencies for the channel senders, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender returns the Firebase sender, or a logging sender when Firebase is not configured
func NewPushSender(params Params) (service.NotificationService, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications will only be logged")

		return &logOnlySender{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, params.Config.Firebase.ProjectID, params.Config.Firebase.CredentialsPath)
}

// NewSMSSender returns the SNS sender, or a logging sender when SMS is not configured
func NewSMSSender(params Params) (service.SMSSender, error) {
	channels := params.Config.AWS
	if channels == nil || channels.SMS == nil {
		params.Logger.Info("SMS channel not configured, text messages will only be logged")

		return &logOnlySender{logger: params.Logger}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, awsconfig.WithRegion(channels.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config for sns")
	}

	return NewSNSSMSSender(sns.NewFromConfig(awsCfg), channels.SMS.SenderID), nil
}

// NewEmailSender returns the SES sender, or a logging sender when e-mail is not configured
func NewEmailSender(params Params) (service.EmailSender, error) {
	channels := params.Config.AWS
	if channels == nil || channels.Email == nil {
		params.Logger.Info("Email channel not configured, e-mails will only be logged")

		return &logOnlySender{logger: params.Logger}, nil
	}
	if channels.Email.Source == "" {
		return nil, errors.New("aws.email.source is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, awsconfig.WithRegion(channels.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config for ses")
	}

	return NewSESEmailSender(ses.NewFromConfig(awsCfg), channels.Email.Source), nil
}

// logOnlySender satisfies every channel interface by logging what would have been sent.
type logOnlySender struct {
	logger *slog.Logger
}

func (s *logOnlySender) SendBatchNotification(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.Debug("[LogOnly] Push notification",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
	)

	return len(tokens), 0, nil, nil
}

func (s *logOnlySender) SendSingleNotification(_ context.Context, _, title, _ string, _ map[string]string) error {
	s.logger.Debug("[LogOnly] Push notification", slog.String("title", title))

	return nil
}

func (s *logOnlySender) SendSMS(_ context.Context, phoneNumber, _ string) error {
	s.logger.Debug("[LogOnly] SMS", slog.String("phone", phoneNumber))

	return nil
}

func (s *logOnlySender) SendEmail(_ context.Context, to, subject, _ string) error {
	s.logger.Debug("[LogOnly] Email", slog.String("to", to), slog.String("subject", subject))

	return nil
}
