package frontend

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/activity_board/config"
	mock_services "github.com/unicsmcr/activity_board/mocks/services"
	"github.com/unicsmcr/activity_board/testutils"
	"go.uber.org/zap"
)

func Test_RegisterRoutes__should_register_required_routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAService := mock_services.NewMockActivityService(ctrl)
	scheduler := testutils.NewManualScheduler(time.Now())

	router := NewRouter(zap.NewNop(), &config.AppConfig{Name: "test"}, mockAService, scheduler)

	_, testServer := gin.CreateTestContext(httptest.NewRecorder())
	router.RegisterRoutes(&testServer.RouterGroup)

	tests := []struct {
		route  string
		method string
	}{
		{
			route:  "/",
			method: http.MethodGet,
		},
		{
			route:  "/signup",
			method: http.MethodPost,
		},
		{
			route:  "/participants/remove",
			method: http.MethodPost,
		},
		{
			route:  "/events",
			method: http.MethodGet,
		},
	}

	registered := map[string]bool{}
	for _, route := range testServer.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			assert.True(t, registered[tt.method+" "+tt.route])
		})
	}
}
