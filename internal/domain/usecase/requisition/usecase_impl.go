package requisition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/gateway/api"
	"bdmep-api/internal/domain/gateway/queue"
	"bdmep-api/internal/domain/model"
	"bdmep-api/internal/domain/usecase/selector"
	"bdmep-api/pkg/log"
	"bdmep-api/pkg/metrics"
	"bdmep-api/pkg/msg"
)

type requisitionUseCase struct {
	resolver    selector.UseCase
	apiGateway  api.RequisitionGateway
	queueSender queue.Sender
	queueName   string
}

// NewRequisitionUseCase creates the use case. A nil queueSender disables Enqueue.
func NewRequisitionUseCase(resolver selector.UseCase, apiGateway api.RequisitionGateway, queueSender queue.Sender, queueName string) UseCase {
	return &requisitionUseCase{
		resolver:    resolver,
		apiGateway:  apiGateway,
		queueSender: queueSender,
		queueName:   queueName,
	}
}

// Build checks every local argument before resolving selectors against the live catalogs
func (uc *requisitionUseCase) Build(ctx context.Context, req PayloadRequest) (*model.Payload, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", model.ErrValidation)
	}
	frequency, err := entity.ParseFrequency(string(req.Frequency))
	if err != nil {
		return nil, err
	}
	stationType, err := entity.ParseStationType(string(req.StationType))
	if err != nil {
		return nil, err
	}
	region, err := entity.ParseRegion(string(req.Region))
	if err != nil {
		return nil, err
	}

	if req.Attributes.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one attribute selector is required", model.ErrValidation)
	}
	if req.Stations.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one station selector is required", model.ErrValidation)
	}

	decimal := req.Decimal
	if decimal == "" {
		decimal = "."
	}
	marker, ok := decimalMarkers[decimal]
	if !ok {
		return nil, fmt.Errorf("%w: invalid decimal separator %q, expected \".\" or \",\"", model.ErrValidation, req.Decimal)
	}

	startDate, err := req.StartDate.Format()
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	endDate, err := req.EndDate.Format()
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}

	attributes, err := uc.resolver.ResolveAttributes(ctx, frequency, stationType, req.Attributes)
	if err != nil {
		return nil, err
	}
	stations, err := uc.resolver.ResolveStations(ctx, stationType, region, req.Stations)
	if err != nil {
		return nil, err
	}

	payload := &model.Payload{
		Email:         email,
		Frequency:     frequency.Code(),
		StationType:   stationType.Code(),
		Attributes:    attributes,
		Stations:      stations,
		StartDate:     startDate,
		EndDate:       endDate,
		DecimalMarker: marker,
	}

	log.Debug(msg.GetMessage("requisition.built", len(attributes), len(stations)))
	return payload, nil
}

func (uc *requisitionUseCase) Submit(ctx context.Context, req PayloadRequest) (*model.SubmissionResult, error) {
	payload, err := uc.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	response, err := uc.apiGateway.Submit(ctx, *payload)
	metrics.RequisitionsTotal.WithLabelValues("submit", metrics.Outcome(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to submit requisition %s: %w", id, err)
	}

	log.Info(msg.GetMessage("requisition.submitted", id), zap.String("requestId", id))
	return &model.SubmissionResult{ID: id, Payload: *payload, Response: response}, nil
}

func (uc *requisitionUseCase) Enqueue(ctx context.Context, req PayloadRequest) (*model.EnqueueResult, error) {
	if uc.queueSender == nil {
		return nil, model.ErrQueueDisabled
	}

	payload, err := uc.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	message := model.RequisitionMessage{ID: uuid.NewString(), Payload: *payload}
	_, err = uc.queueSender.SendMessage(ctx, uc.queueName, message, map[string]string{"requestId": message.ID})
	metrics.RequisitionsTotal.WithLabelValues("enqueue", metrics.Outcome(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue requisition %s: %w", message.ID, err)
	}

	log.Info(msg.GetMessage("requisition.enqueued", message.ID, uc.queueName), zap.String("requestId", message.ID))
	return &model.EnqueueResult{ID: message.ID, Payload: *payload}, nil
}

func (uc *requisitionUseCase) Process(ctx context.Context, message model.RequisitionMessage) error {
	if message.ID == "" {
		return errors.New("requisition message without id")
	}

	response, err := uc.apiGateway.Submit(ctx, message.Payload)
	metrics.RequisitionsTotal.WithLabelValues("process", metrics.Outcome(err)).Inc()
	if err != nil {
		return fmt.Errorf("failed to submit requisition %s: %w", message.ID, err)
	}

	log.Info(msg.GetMessage("requisition.processed", message.ID),
		zap.String("requestId", message.ID),
		zap.String("response", response))
	return nil
}
