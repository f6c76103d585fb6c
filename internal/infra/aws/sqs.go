package aws

import (
	"bdmep-api/internal/domain/gateway/queue"
	pkgsqs "bdmep-api/pkg/sqs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewSqsClient creates an SQS client; a non-empty endpoint points it at LocalStack
func NewSqsClient(cfg aws.Config, endpoint string) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// NewQueueSender exposes the SQS sender through the domain queue.Sender interface
func NewQueueSender(client pkgsqs.SQSClient) queue.Sender {
	return pkgsqs.NewSender(client)
}
