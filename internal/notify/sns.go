package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"gigmatch/internal/common/config"
	"gigmatch/internal/models"
)

// SNSService is the slice of the SNS client the sink needs, defined here
// for mocking.
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSink publishes each notification as a JSON message to one topic.
type SNSSink struct {
	client   SNSService
	topicARN string
}

// NewSNSSink builds a sink on the default AWS credential chain.
func NewSNSSink(ctx context.Context, cfg config.SNSConfig) (*SNSSink, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &SNSSink{
		client:   sns.NewFromConfig(awsCfg),
		topicARN: cfg.TopicARN,
	}, nil
}

// NewSNSSinkWithClient injects a client, used in tests.
func NewSNSSinkWithClient(client SNSService, topicARN string) *SNSSink {
	return &SNSSink{client: client, topicARN: topicARN}
}

func (s *SNSSink) Deliver(ctx context.Context, n models.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	_, err = s.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Subject:  aws.String(string(n.Type)),
		Message:  aws.String(string(payload)),
	})
	if err != nil {
		return fmt.Errorf("publish to sns: %w", err)
	}
	return nil
}
