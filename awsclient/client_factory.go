package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// AWSConfig selects the region and, for local testing against an emulator,
// an endpoint shared by all clients. Credentials come from the default chain.
type AWSConfig struct {
	Region   string `yaml:"region" json:"region"`
	Endpoint string `yaml:"endpoint" json:"endpoint"`
}

type ClientFactory struct {
	awsConfig aws.Config
	endpoint  string
}

func NewClientFactory(ctx context.Context, conf AWSConfig) (*ClientFactory, error) {
	var opts []func(*config.LoadOptions) error
	if conf.Region != "" {
		opts = append(opts, config.WithRegion(conf.Region))
	}
	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return &ClientFactory{awsConfig: awsConfig, endpoint: conf.Endpoint}, nil
}

func (f *ClientFactory) Region() string {
	return f.awsConfig.Region
}

func (f *ClientFactory) DynamoDB() *dynamodb.Client {
	return dynamodb.NewFromConfig(f.awsConfig, func(o *dynamodb.Options) {
		if f.endpoint != "" {
			o.BaseEndpoint = aws.String(f.endpoint)
		}
	})
}

func (f *ClientFactory) CloudWatch() *cloudwatch.Client {
	return cloudwatch.NewFromConfig(f.awsConfig, func(o *cloudwatch.Options) {
		if f.endpoint != "" {
			o.BaseEndpoint = aws.String(f.endpoint)
		}
	})
}

func (f *ClientFactory) SNS() *sns.Client {
	return sns.NewFromConfig(f.awsConfig, func(o *sns.Options) {
		if f.endpoint != "" {
			o.BaseEndpoint = aws.String(f.endpoint)
		}
	})
}
