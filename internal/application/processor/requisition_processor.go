package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"bdmep-api/internal/domain/model"
	"bdmep-api/internal/domain/usecase/requisition"
	"bdmep-api/pkg/log"
	"bdmep-api/pkg/sqs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type RequisitionProcessor struct {
	requisitionUseCase requisition.UseCase
}

func NewRequisitionProcessor(requisitionUseCase requisition.UseCase) *RequisitionProcessor {
	return &RequisitionProcessor{
		requisitionUseCase: requisitionUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *RequisitionProcessor) HandleMessage(ctx context.Context, msg types.Message) error {
	if msg.Body == nil {
		return fmt.Errorf("received message %s without body", aws.ToString(msg.MessageId))
	}

	var message model.RequisitionMessage
	if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}
	if message.ID == "" {
		message.ID = sqs.MessageAttribute(msg, "requestId")
	}

	log.Debugf("Processing requisition message %s (request %s)", aws.ToString(msg.MessageId), message.ID)

	return p.requisitionUseCase.Process(ctx, message)
}
