package utils

import (
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/unicsmcr/activity_board/config"
)

// NewRESTClient creates the client used to talk to the activities API
func NewRESTClient(cfg *config.AppConfig) *rest.Client {
	return &rest.Client{
		HTTPClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
	}
}
