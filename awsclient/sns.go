package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// MaxSubjectLength is the longest subject SNS accepts.
const MaxSubjectLength = 100

type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SNSPublisher struct {
	client SNSAPI
}

func NewSNSPublisher(client SNSAPI) *SNSPublisher {
	return &SNSPublisher{client: client}
}

// Publish truncates subjects longer than MaxSubjectLength and then keeps the
// full subject at the top of the body.
func (p *SNSPublisher) Publish(ctx context.Context, topic string, subject string, body string) error {
	if runes := []rune(subject); len(runes) > MaxSubjectLength {
		body = fmt.Sprintf("%s\n\n%s", subject, body)
		subject = string(runes[:MaxSubjectLength])
	}

	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(topic),
		Subject:  aws.String(subject),
		Message:  aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}
