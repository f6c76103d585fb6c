package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type fakeSQS struct {
	mu          sync.Mutex
	urlCalls    int
	sent        []*sqs.SendMessageInput
	deleted     []string
	pending     []types.Message
	receiveErr  error
	getURLError error
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, in *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urlCalls++
	if f.getURLError != nil {
		return nil, f.getURLError
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("http://localhost/queue/" + aws.ToString(in.QueueName))}, nil
}

func (f *fakeSQS) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, in)
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	if f.receiveErr != nil {
		err := f.receiveErr
		f.mu.Unlock()
		return nil, err
	}
	msgs := f.pending
	f.pending = nil
	f.mu.Unlock()

	if len(msgs) == 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
	return &sqs.ReceiveMessageOutput{Messages: msgs}, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, aws.ToString(in.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func TestSender_SendMessage(t *testing.T) {
	fake := &fakeSQS{}
	sender := NewSender(fake)

	body := map[string]string{"id": "req-1"}
	id, err := sender.SendMessage(context.Background(), "bdmep-requisition", body, map[string]string{"requestId": "abc"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if id != "msg-1" {
		t.Errorf("id = %q", id)
	}
	if _, err := sender.SendMessage(context.Background(), "bdmep-requisition", body, nil); err != nil {
		t.Fatalf("second SendMessage: %v", err)
	}

	if fake.urlCalls != 1 {
		t.Errorf("queue URL resolved %d times, want 1", fake.urlCalls)
	}
	var decoded map[string]string
	if err := json.Unmarshal([]byte(aws.ToString(fake.sent[0].MessageBody)), &decoded); err != nil || decoded["id"] != "req-1" {
		t.Errorf("body = %s", aws.ToString(fake.sent[0].MessageBody))
	}
	if got := aws.ToString(fake.sent[0].MessageAttributes["requestId"].StringValue); got != "abc" {
		t.Errorf("requestId attribute = %q", got)
	}
}

func TestSender_QueueURLFailure(t *testing.T) {
	fake := &fakeSQS{getURLError: errors.New("queue does not exist")}
	if _, err := NewSender(fake).SendMessage(context.Background(), "missing", "x", nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewWorker_Validation(t *testing.T) {
	fake := &fakeSQS{}
	handler := HandlerFunc(func(context.Context, types.Message) error { return nil })

	tests := []struct {
		name   string
		config *WorkerConfig
	}{
		{"too many messages", &WorkerConfig{MaxNumberOfMessages: 11}},
		{"wait too long", &WorkerConfig{WaitTimeSeconds: 21}},
		{"negative pool", &WorkerConfig{PoolSize: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWorker(context.Background(), fake, "q", handler, tt.config); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWorker_ProcessesAndDeletes(t *testing.T) {
	fake := &fakeSQS{pending: []types.Message{
		{MessageId: aws.String("1"), ReceiptHandle: aws.String("r1"), Body: aws.String("ok")},
		{MessageId: aws.String("2"), ReceiptHandle: aws.String("r2"), Body: aws.String("fail")},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	var handled sync.WaitGroup
	handled.Add(2)
	handler := HandlerFunc(func(_ context.Context, msg types.Message) error {
		defer handled.Done()
		if aws.ToString(msg.Body) == "fail" {
			return errors.New("boom")
		}
		return nil
	})

	worker, err := NewWorker(ctx, fake, "q", handler, &WorkerConfig{WaitTimeSeconds: 1})
	if err != nil {
		t.Fatalf("NewWorker: %v", err)
	}

	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	handled.Wait()
	// Give the worker a poll to record the delete and health
	time.Sleep(20 * time.Millisecond)
	if hc := worker.HealthCheck(); hc.Status != StatusUp || hc.Details["processed"] != "1" || hc.Details["failed"] != "1" {
		t.Errorf("health = %+v", hc)
	}

	cancel()
	<-done

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.deleted) != 1 || fake.deleted[0] != "r1" {
		t.Errorf("deleted = %v, want [r1]", fake.deleted)
	}
	if worker.HealthCheck().Status != StatusDown {
		t.Error("stopped worker must report DOWN")
	}
}

func TestWorker_ReceiveErrorMarksDown(t *testing.T) {
	fake := &fakeSQS{receiveErr: errors.New("access denied")}
	handler := HandlerFunc(func(context.Context, types.Message) error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	worker, err := NewWorker(ctx, fake, "q", handler, &WorkerConfig{ErrorBackoff: time.Millisecond})
	if err != nil {
		t.Fatalf("NewWorker: %v", err)
	}

	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)

	hc := worker.HealthCheck()
	cancel()
	<-done

	if hc.Status != StatusDown || hc.Details["last_error"] != "access denied" {
		t.Errorf("health = %+v", hc)
	}
}
