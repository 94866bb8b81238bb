package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
	"github.com/unicsmcr/activity_board/config"
	"github.com/unicsmcr/activity_board/entities"
	"github.com/unicsmcr/activity_board/observability"
	"github.com/unicsmcr/activity_board/services"
	"go.uber.org/zap"
)

const (
	activitiesPath = "/activities"
	emailParam     = "email"

	operationList       = "list"
	operationSignUp     = "signup"
	operationUnregister = "unregister"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type activityService struct {
	logger  *zap.Logger
	client  *rest.Client
	baseURL string
}

// NewActivityService creates a new ActivityService that talks to the activities API over HTTP
func NewActivityService(logger *zap.Logger, cfg *config.AppConfig, client *rest.Client) services.ActivityService {
	return &activityService{
		logger:  logger,
		client:  client,
		baseURL: strings.TrimSuffix(cfg.Backend.BaseURL, "/"),
	}
}

func (s *activityService) GetActivities(ctx context.Context) (entities.ActivityCatalog, error) {
	started := time.Now()
	response, err := s.client.SendWithContext(ctx, rest.Request{
		Method:  rest.Get,
		BaseURL: s.baseURL + activitiesPath,
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		observability.RecordBackendRequest(operationList, observability.OutcomeError, time.Since(started))
		return nil, errors.Wrap(services.ErrBackendUnavailable, err.Error())
	}

	if !isSuccessStatus(response.StatusCode) {
		observability.RecordBackendRequest(operationList, observability.OutcomeError, time.Since(started))
		return nil, errors.Wrapf(services.ErrUnexpectedStatus, "status %d", response.StatusCode)
	}

	catalog, err := decodeCatalog(response.Body)
	if err != nil {
		observability.RecordBackendRequest(operationList, observability.OutcomeError, time.Since(started))
		return nil, err
	}

	observability.RecordBackendRequest(operationList, observability.OutcomeOK, time.Since(started))
	return catalog, nil
}

func (s *activityService) SignUp(ctx context.Context, activity entities.ActivityName, email string) (*services.MutationResult, error) {
	return s.mutate(ctx, operationSignUp, activity, email)
}

func (s *activityService) Unregister(ctx context.Context, activity entities.ActivityName, email string) (*services.MutationResult, error) {
	return s.mutate(ctx, operationUnregister, activity, email)
}

func (s *activityService) mutate(ctx context.Context, operation string, activity entities.ActivityName, email string) (*services.MutationResult, error) {
	started := time.Now()
	response, err := s.client.SendWithContext(ctx, rest.Request{
		Method:      rest.Post,
		BaseURL:     s.activityURL(activity, operation),
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: map[string]string{emailParam: email},
	})
	if err != nil {
		observability.RecordBackendRequest(operation, observability.OutcomeError, time.Since(started))
		return nil, errors.Wrap(services.ErrBackendUnavailable, err.Error())
	}

	result, err := decodeMutationResult(response.StatusCode, response.Body)
	if err != nil {
		observability.RecordBackendRequest(operation, observability.OutcomeError, time.Since(started))
		return nil, err
	}

	if result.OK {
		observability.RecordBackendRequest(operation, observability.OutcomeOK, time.Since(started))
	} else {
		s.logger.Info("activities API rejected request",
			zap.String("operation", operation),
			zap.String("activity", string(activity)),
			zap.Int("status", result.StatusCode),
			zap.String("detail", result.Detail))
		observability.RecordBackendRequest(operation, observability.OutcomeRejected, time.Since(started))
	}

	return result, nil
}

// activityURL builds /activities/{activity}/{operation} with the activity name path-encoded
func (s *activityService) activityURL(activity entities.ActivityName, operation string) string {
	return fmt.Sprintf("%s%s/%s/%s", s.baseURL, activitiesPath, url.PathEscape(string(activity)), operation)
}

func isSuccessStatus(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// decodeCatalog decodes the activities object keeping the order of its keys
func decodeCatalog(body string) (entities.ActivityCatalog, error) {
	iter := jsoniter.ParseString(json, body)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.Wrap(services.ErrMalformedResponse, "activities response is not an object")
	}

	catalog := entities.ActivityCatalog{}
	iter.ReadMapCB(func(it *jsoniter.Iterator, name string) bool {
		var details entities.ActivityDetails
		it.ReadVal(&details)
		if it.Error != nil {
			return false
		}
		catalog = append(catalog, entities.Activity{
			Name:    entities.ActivityName(name),
			Details: details,
		})
		return true
	})
	if iter.Error != nil {
		return nil, errors.Wrap(services.ErrMalformedResponse, iter.Error.Error())
	}

	// only whitespace may follow the object
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF {
		return nil, errors.Wrap(services.ErrMalformedResponse, "unexpected data after activities object")
	}

	return catalog, nil
}

type mutationResponse struct {
	Message string      `json:"message"`
	Detail  interface{} `json:"detail"`
}

func decodeMutationResult(status int, body string) (*services.MutationResult, error) {
	var res mutationResponse
	err := json.UnmarshalFromString(body, &res)
	if err != nil {
		return nil, errors.Wrap(services.ErrMalformedResponse, err.Error())
	}

	result := &services.MutationResult{
		OK:         isSuccessStatus(status),
		StatusCode: status,
		Message:    res.Message,
	}
	// only a textual detail is shown; anything else falls back to the generic error
	if detail, ok := res.Detail.(string); ok {
		result.Detail = detail
	}

	return result, nil
}
