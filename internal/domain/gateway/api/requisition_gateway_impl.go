package api

import (
	"context"
	"fmt"

	"bdmep-api/internal/domain/model"
	"bdmep-api/pkg/http"
)

const requisitionPath = "/requisicao"

type requisitionGatewayImpl struct {
	httpClient *http.Client
}

// NewRequisitionGateway creates a RequisitionGateway on the BDMEP host.
func NewRequisitionGateway(baseURL string, clientOptions http.ClientOptions) RequisitionGateway {
	return &requisitionGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}
}

func (r *requisitionGatewayImpl) Submit(ctx context.Context, payload model.Payload) (string, error) {
	var responseText, errorText string

	_, errResp, status, err := r.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath(requisitionPath).
		WithBody(payload.Form()).
		WithSuccessResp(&responseText).
		WithErrorResp(&errorText).
		Execute()

	if err == nil {
		return responseText, nil
	}

	if errResp != nil && errorText != "" {
		return "", fmt.Errorf("%w: POST %s: status %d: %s", model.ErrRemote, requisitionPath, status, errorText)
	}

	return "", fmt.Errorf("%w: POST %s: %v", model.ErrRemote, requisitionPath, err)
}
