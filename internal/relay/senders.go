// internal/relay/senders.go
package relay

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Sender delivers one message to one recipient and returns the provider's
// message id. Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) (string, error)
}

// Interfaces over the AWS clients for mocking.
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SNSSender delivers SMS through AWS SNS.
type SNSSender struct {
	client   SNSService
	senderID string
}

func NewSNSSender(client SNSService, senderID string) *SNSSender {
	return &SNSSender{client: client, senderID: senderID}
}

func (s *SNSSender) Send(ctx context.Context, to, _ string, body string) (string, error) {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(body),
	}
	if s.senderID != "" {
		input.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(s.senderID),
			},
		}
	}

	out, err := s.client.Publish(ctx, input)
	if err != nil {
		return "", fmt.Errorf("sns publish to %s: %w", to, err)
	}
	return aws.ToString(out.MessageId), nil
}

// SESSender delivers plain-text email through AWS SES, for admin
// recipients configured as addresses instead of phone numbers.
type SESSender struct {
	client SESService
	from   string
}

func NewSESSender(client SESService, from string) *SESSender {
	return &SESSender{client: client, from: from}
}

func (s *SESSender) Send(ctx context.Context, to, subject, body string) (string, error) {
	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(s.from),
	})
	if err != nil {
		return "", fmt.Errorf("ses send to %s: %w", to, err)
	}
	return aws.ToString(out.MessageId), nil
}
