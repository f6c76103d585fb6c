package processor

import (
	"context"
	"errors"
	"testing"

	"bdmep-api/internal/domain/model"
	"bdmep-api/internal/domain/usecase/requisition"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type fakeRequisition struct {
	requisition.UseCase
	received []model.RequisitionMessage
	err      error
}

func (f *fakeRequisition) Process(_ context.Context, message model.RequisitionMessage) error {
	f.received = append(f.received, message)
	return f.err
}

func TestHandleMessage(t *testing.T) {
	tests := []struct {
		name    string
		msg     types.Message
		useErr  error
		wantErr bool
		wantID  string
	}{
		{
			name:   "decodes body",
			msg:    types.Message{MessageId: aws.String("m1"), Body: aws.String(`{"id":"r1","payload":{"email":"a@b.c","estacoes":["A713"]}}`)},
			wantID: "r1",
		},
		{
			name: "falls back to requestId attribute",
			msg: types.Message{
				MessageId: aws.String("m2"),
				Body:      aws.String(`{"payload":{"email":"a@b.c"}}`),
				MessageAttributes: map[string]types.MessageAttributeValue{
					"requestId": {DataType: aws.String("String"), StringValue: aws.String("r2")},
				},
			},
			wantID: "r2",
		},
		{
			name:    "missing body",
			msg:     types.Message{MessageId: aws.String("m3")},
			wantErr: true,
		},
		{
			name:    "invalid json",
			msg:     types.Message{MessageId: aws.String("m4"), Body: aws.String("{")},
			wantErr: true,
		},
		{
			name:    "use case failure is returned",
			msg:     types.Message{MessageId: aws.String("m5"), Body: aws.String(`{"id":"r5"}`)},
			useErr:  model.ErrRemote,
			wantErr: true,
			wantID:  "r5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeRequisition{err: tt.useErr}
			err := NewRequisitionProcessor(uc).HandleMessage(context.Background(), tt.msg)

			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.useErr != nil && !errors.Is(err, tt.useErr) {
				t.Errorf("err = %v, want wrapping %v", err, tt.useErr)
			}
			if tt.wantID == "" {
				if len(uc.received) != 0 {
					t.Errorf("use case should not be called")
				}
				return
			}
			if len(uc.received) != 1 || uc.received[0].ID != tt.wantID {
				t.Errorf("received = %+v, want id %s", uc.received, tt.wantID)
			}
		})
	}
}
