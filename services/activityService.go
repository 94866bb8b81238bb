package services

import (
	"context"

	"github.com/unicsmcr/activity_board/entities"
)

//go:generate mockgen -destination=../mocks/services/mock_activityService.go -package=mock_services github.com/unicsmcr/activity_board/services ActivityService

// ActivityService is the service for interactions with the remote activities API
type ActivityService interface {
	// GetActivities fetches the whole activity catalog
	GetActivities(ctx context.Context) (entities.ActivityCatalog, error)
	// SignUp registers email for the activity.
	// A rejected signup is reported through the result, not through the error
	SignUp(ctx context.Context, activity entities.ActivityName, email string) (*MutationResult, error)
	// Unregister removes email from the activity's participants.
	// A rejected removal is reported through the result, not through the error
	Unregister(ctx context.Context, activity entities.ActivityName, email string) (*MutationResult, error)
}

// MutationResult is the decoded answer of the activities API to a signup or unregister request
type MutationResult struct {
	// OK is true when the API answered with a 2xx status
	OK         bool
	StatusCode int
	// Message is the confirmation sent on success
	Message string
	// Detail is the reason sent on failure, empty when the API gave none
	Detail string
}
