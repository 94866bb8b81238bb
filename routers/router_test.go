package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	mock_frontend "github.com/unicsmcr/activity_board/mocks/routers/frontend"
	"github.com/unicsmcr/activity_board/testutils"
	"go.uber.org/zap"
)

func Test_RegisterRoutes__should_register_required_routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFrontendRouter := mock_frontend.NewMockRouter(ctrl)

	// checking the frontend gets registered on the root group
	mockFrontendRouter.EXPECT().RegisterRoutes(testutils.RouterGroupMatcher{Path: "/"}).Times(1)

	router := NewMainRouter(zap.NewNop(), mockFrontendRouter)

	_, testServer := gin.CreateTestContext(httptest.NewRecorder())
	router.RegisterRoutes(&testServer.RouterGroup)

	tests := []struct {
		route  string
		method string
	}{
		{
			route:  "/heartbeat",
			method: http.MethodGet,
		},
		{
			route:  "/metrics",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.route, nil)

			testServer.ServeHTTP(w, req)

			// making sure route is defined
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
