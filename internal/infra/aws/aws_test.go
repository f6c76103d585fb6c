package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestLoadConfig_StaticCredentials(t *testing.T) {
	cfg, err := LoadConfig(context.Background(), CloudConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Errorf("Region = %q", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if creds.AccessKeyID != "test" || creds.SecretAccessKey != "secret" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
}

func TestNewSqsClient_Endpoint(t *testing.T) {
	client := NewSqsClient(aws.Config{Region: "us-east-1"}, "http://localhost:4566")
	if got := aws.ToString(client.Options().BaseEndpoint); got != "http://localhost:4566" {
		t.Errorf("BaseEndpoint = %q", got)
	}

	client = NewSqsClient(aws.Config{Region: "us-east-1"}, "")
	if client.Options().BaseEndpoint != nil {
		t.Error("BaseEndpoint should be unset without endpoint")
	}
	if NewQueueSender(client) == nil {
		t.Error("NewQueueSender returned nil")
	}
}
