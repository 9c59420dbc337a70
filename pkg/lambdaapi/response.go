// Package lambdaapi serves the storefront through API Gateway proxy integrations.
package lambdaapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/storefront"
)

// Handler adapts storefront.Service to API Gateway proxy events.
type Handler struct {
	service *storefront.Service
	logger  *zap.Logger
}

// NewHandler returns a handler over service.
func NewHandler(service *storefront.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

func (h *Handler) respond(status int, body models.ApiResponse, extra map[string]string) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		h.logger.Error("failed to marshal response", zap.Error(err))
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"message": "Failed to format response", "error": true}`,
		}
	}

	headers := map[string]string{
		"Content-Type":                  "application/json",
		"Access-Control-Allow-Origin":   "*",
		"Access-Control-Allow-Headers":  "Content-Type, " + storefront.SessionHeader,
		"Access-Control-Expose-Headers": storefront.SessionHeader,
	}
	for k, v := range extra {
		headers[k] = v
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(payload),
	}
}

func (h *Handler) fail(entity string, err error) events.APIGatewayProxyResponse {
	status := storefront.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	return h.respond(status, models.ErrorResponse(entity, err.Error()), nil)
}

// queryValues merges the single and multi value query maps API Gateway provides.
func queryValues(req events.APIGatewayProxyRequest) url.Values {
	values := url.Values{}
	for k, vs := range req.MultiValueQueryStringParameters {
		values[k] = append(values[k], vs...)
	}
	for k, v := range req.QueryStringParameters {
		if _, ok := values[k]; !ok {
			values.Set(k, v)
		}
	}
	return values
}

// header looks a header up case-insensitively.
func header(req events.APIGatewayProxyRequest, name string) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	for k, vs := range req.MultiValueHeaders {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}
